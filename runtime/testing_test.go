package runtime

import (
	"sync"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/terminal"
)

// probe is a minimal widget recording calls.
type probe struct {
	name     string
	children []Widget
	bounds   Rect
	handle   func(Message) HandleResult
	log      *[]string
	renders  int
}

func (p *probe) record(event string) {
	if p.log != nil {
		*p.log = append(*p.log, p.name+":"+event)
	}
}

func (p *probe) Measure(c Constraints) Size { return c.Constrain(Size{Width: 1, Height: 1}) }
func (p *probe) Layout(bounds Rect)         { p.bounds = bounds }
func (p *probe) Bounds() Rect               { return p.bounds }
func (p *probe) ChildWidgets() []Widget     { return p.children }
func (p *probe) Mount()                     { p.record("mount") }
func (p *probe) Unmount()                   { p.record("unmount") }
func (p *probe) Bind(Services)              { p.record("bind") }
func (p *probe) Unbind()                    { p.record("unbind") }

func (p *probe) Render(ctx RenderContext) {
	p.renders++
	if p.name != "" {
		ctx.Buffer.SetString(p.bounds.X, p.bounds.Y, p.name, backend.DefaultStyle())
	}
}

func (p *probe) HandleMessage(msg Message) HandleResult {
	if p.handle != nil {
		return p.handle(msg)
	}
	return Unhandled()
}

// fakeBackend is an in-memory backend fed from a channel.
type fakeBackend struct {
	mu     sync.Mutex
	w, h   int
	cells  map[[2]int]rune
	shows  int
	events chan terminal.Event
	closed chan struct{}
	once   sync.Once
}

func newFakeBackend(w, h int) *fakeBackend {
	return &fakeBackend{
		w:      w,
		h:      h,
		cells:  make(map[[2]int]rune),
		events: make(chan terminal.Event, 16),
		closed: make(chan struct{}),
	}
}

func (f *fakeBackend) Init() error      { return nil }
func (f *fakeBackend) Size() (int, int) { return f.w, f.h }
func (f *fakeBackend) HideCursor()      {}

func (f *fakeBackend) Fini() {
	f.once.Do(func() { close(f.closed) })
}

func (f *fakeBackend) Show() {
	f.mu.Lock()
	f.shows++
	f.mu.Unlock()
}

func (f *fakeBackend) runeAt(x, y int) rune {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cells[[2]int{x, y}]
}

func (f *fakeBackend) SetContent(x, y int, r rune, _ []rune, _ backend.Style) {
	f.mu.Lock()
	f.cells[[2]int{x, y}] = r
	f.mu.Unlock()
}

func (f *fakeBackend) PollEvent() terminal.Event {
	select {
	case ev := <-f.events:
		return ev
	case <-f.closed:
		return nil
	}
}

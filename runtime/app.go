package runtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/state"
	"github.com/odvcencio/furry-spotlight/terminal"
)

// ErrNoBackend is returned by Run when the app has no backend.
var ErrNoBackend = errors.New("backend is required")

// UpdateFunc handles a message and returns true if a render is needed.
type UpdateFunc func(app *App, msg Message) bool

// CommandHandler handles commands the app does not know.
// Return true if the command requires a render.
type CommandHandler func(cmd Command) bool

// AppConfig configures an App.
type AppConfig struct {
	Backend        backend.Backend
	Root           Widget
	Update         UpdateFunc
	CommandHandler CommandHandler
	MessageBuffer  int
	TickRate       time.Duration
	StateQueue     *state.Queue
	FlushPolicy    QueueFlushPolicy
	Logger         *slog.Logger
}

// App runs a widget tree against a backend.
type App struct {
	backend        backend.Backend
	screen         *Screen
	root           Widget
	update         UpdateFunc
	commandHandler CommandHandler
	messages       chan Message
	tickRate       time.Duration
	stateQueue     *state.Queue
	queueScheduler *QueueScheduler
	flushPolicy    QueueFlushPolicy
	invalidator    *Invalidator
	logger         *slog.Logger

	taskCtx        context.Context
	taskCancel     context.CancelFunc
	pendingMu      sync.Mutex
	pendingEffects []Effect

	running atomic.Bool
	dirty   bool
	frames  int64
}

// NewApp creates an App from cfg.
func NewApp(cfg AppConfig) *App {
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	queue := cfg.StateQueue
	if queue == nil {
		queue = state.NewQueue()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	app := &App{
		backend:        cfg.Backend,
		root:           cfg.Root,
		update:         cfg.Update,
		commandHandler: cfg.CommandHandler,
		messages:       make(chan Message, bufferSize),
		tickRate:       cfg.TickRate,
		stateQueue:     queue,
		flushPolicy:    cfg.FlushPolicy,
		logger:         logger,
	}
	if app.update == nil {
		app.update = DefaultUpdate
	}
	if app.flushPolicy == 0 {
		app.flushPolicy = FlushOnMessageAndTick
	}
	app.queueScheduler = NewQueueScheduler(queue, app.TryPost)
	app.invalidator = NewInvalidator(app.TryPost)
	return app
}

// Screen returns the active screen, nil before Run.
func (a *App) Screen() *Screen {
	return a.screen
}

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// StateScheduler returns a scheduler that runs callbacks on the UI loop.
func (a *App) StateScheduler() state.Scheduler {
	if a == nil {
		return nil
	}
	return a.queueScheduler
}

// Invalidate requests a render pass.
func (a *App) Invalidate() {
	if a != nil {
		a.invalidator.Invalidate()
	}
}

// Spawn starts effect with the app task context. Effects spawned before
// Run wait until it starts.
func (a *App) Spawn(effect Effect) {
	if a == nil || effect.Run == nil {
		return
	}
	a.pendingMu.Lock()
	if a.taskCtx == nil {
		a.pendingEffects = append(a.pendingEffects, effect)
		a.pendingMu.Unlock()
		return
	}
	ctx := a.taskCtx
	a.pendingMu.Unlock()
	go effect.Run(ctx, a.TryPost)
}

// SetRoot swaps the root widget.
func (a *App) SetRoot(root Widget) {
	a.root = root
	if a.screen != nil {
		a.screen.SetRoot(root)
		a.dirty = true
	}
}

// Post sends a message to the event loop, dropping it if the loop is
// backed up.
func (a *App) Post(msg Message) {
	if !a.TryPost(msg) {
		a.logger.Warn("message dropped", "type", fmt.Sprintf("%T", msg))
	}
}

// TryPost sends a message to the event loop without blocking.
func (a *App) TryPost(msg Message) bool {
	if a == nil || msg == nil {
		return false
	}
	select {
	case a.messages <- msg:
		return true
	default:
		return false
	}
}

// Run initializes the backend and processes messages until a Quit
// command or ctx is done.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil {
		return ErrNoBackend
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return fmt.Errorf("init backend: %w", err)
	}
	defer a.backend.Fini()
	a.backend.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.start(ctx)
	defer a.stop()

	w, h := a.backend.Size()
	a.logger.Debug("app started", "width", w, "height", h)
	a.screen = NewScreen(w, h)
	a.screen.SetServices(a.Services())
	if a.root != nil {
		a.screen.SetRoot(a.root)
	}
	a.running.Store(true)
	a.dirty = true
	go a.pollEvents()

	var ticks <-chan time.Time
	if a.tickRate > 0 {
		ticker := time.NewTicker(a.tickRate)
		defer ticker.Stop()
		ticks = ticker.C
	}

	for a.running.Load() {
		var msg Message
		select {
		case <-ctx.Done():
			a.running.Store(false)
			continue
		case msg = <-a.messages:
		case now := <-ticks:
			msg = TickMsg{Time: now}
		}
		a.step(msg)
	}
	a.logger.Debug("app stopped", "frames", a.frames)
	return context.Cause(ctx)
}

// step applies one message and renders if anything changed.
func (a *App) step(msg Message) {
	if a.update(a, msg) {
		a.dirty = true
	}
	if !a.running.Load() {
		return
	}
	if shouldFlushQueue(a.flushPolicy, msg) {
		a.queueScheduler.resetPending()
		if a.stateQueue.Flush() > 0 {
			a.dirty = true
		}
	}
	if _, ok := msg.(InvalidateMsg); ok {
		a.invalidator.resetPending()
	}
	if a.dirty {
		a.render()
		a.dirty = false
	}
}

func (a *App) start(ctx context.Context) {
	a.pendingMu.Lock()
	a.taskCtx, a.taskCancel = context.WithCancel(ctx)
	pending := a.pendingEffects
	a.pendingEffects = nil
	a.pendingMu.Unlock()
	for _, effect := range pending {
		go effect.Run(a.taskCtx, a.TryPost)
	}
}

func (a *App) stop() {
	a.running.Store(false)
	a.pendingMu.Lock()
	if a.taskCancel != nil {
		a.taskCancel()
	}
	a.taskCtx, a.taskCancel = nil, nil
	a.pendingMu.Unlock()
}

// DefaultUpdate resizes the screen and dispatches input to the widgets.
func DefaultUpdate(app *App, msg Message) bool {
	if app == nil || app.screen == nil {
		return false
	}
	switch m := msg.(type) {
	case ResizeMsg:
		app.screen.Resize(m.Width, m.Height)
		return true
	case QueueFlushMsg:
		return false
	case InvalidateMsg:
		return true
	default:
		return app.Dispatch(msg)
	}
}

// Dispatch offers msg to the screen and executes the resulting commands.
func (a *App) Dispatch(msg Message) bool {
	if a == nil || a.screen == nil {
		return false
	}
	result := a.screen.HandleMessage(msg)
	dirty := result.Handled
	for _, cmd := range result.Commands {
		if a.ExecuteCommand(cmd) {
			dirty = true
		}
	}
	return dirty
}

// ExecuteCommand runs cmd and reports whether a render is needed.
func (a *App) ExecuteCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case Quit:
		a.running.Store(false)
		return false
	case Refresh:
		if a.screen != nil {
			a.screen.Buffer().MarkAllDirty()
		}
		return true
	case SendMsg:
		a.Post(c.Message)
		return false
	case Effect:
		a.Spawn(c)
		return false
	case PushOverlay, PopOverlay:
		return true
	}
	if a.commandHandler != nil {
		return a.commandHandler(cmd)
	}
	return false
}

func (a *App) pollEvents() {
	for a.running.Load() {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		if msg := eventMessage(ev); msg != nil {
			a.Post(msg)
		}
	}
}

func eventMessage(ev terminal.Event) Message {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		return KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift}
	case terminal.ResizeEvent:
		return ResizeMsg{Width: e.Width, Height: e.Height}
	case terminal.MouseEvent:
		return MouseMsg{X: e.X, Y: e.Y, Button: e.Button, Action: e.Action, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift}
	case terminal.PasteEvent:
		return PasteMsg{Text: e.Text}
	}
	return nil
}

func (a *App) render() {
	if a.screen == nil {
		return
	}
	a.screen.Render()
	a.frames++
	buf := a.screen.Buffer()
	if buf.IsDirty() {
		rows, hasRows := a.backend.(backend.RowWriter)
		buf.ForEachDirtySpan(func(y, startX, endX int) {
			cells := buf.Row(y, startX, endX)
			if hasRows {
				rows.SetRow(y, startX, cells)
				return
			}
			for i, cell := range cells {
				a.backend.SetContent(startX+i, y, cell.Rune, nil, cell.Style)
			}
		})
		buf.ClearDirty()
	}
	a.backend.Show()
}

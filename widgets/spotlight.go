package widgets

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/geom"
	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/spotlight"
	"github.com/odvcencio/furry-spotlight/state"
	"github.com/odvcencio/furry-spotlight/terminal"
)

// Spotlight presents the tours of a sequencer over its content.
//
// While a target is active it dims every cell outside the hole around the
// target, shows the target's message in a panel above or below the hole,
// and captures input: Enter, Right, Space or n advances; Esc or d
// dismisses when the tour is cancellable; clicks on the panel buttons do
// the same. Ctrl+C and non-input messages still reach the content. While
// idle the content is drawn and handled untouched.
type Spotlight struct {
	Component
	content runtime.Widget
	seq     *spotlight.Sequencer
	source  state.Readable[*spotlight.Tour]
	opts    OverlayOptions

	frame   spotlight.Frame
	panel   runtime.Rect
	buttons []button
}

type button struct {
	rect   runtime.Rect
	action func()
}

// NewSpotlight presents seq over content. The caller feeds seq.
func NewSpotlight(content runtime.Widget, seq *spotlight.Sequencer, opts OverlayOptions) *Spotlight {
	if seq == nil {
		seq = spotlight.NewSequencer()
	}
	return &Spotlight{
		content: content,
		seq:     seq,
		opts:    opts.withDefaults(),
	}
}

// PresentSpotlight presents the tours published by source over content.
// The sequencer binds to source when the widget is bound to an app, so
// the tour already held by source starts immediately.
func PresentSpotlight(content runtime.Widget, source state.Readable[*spotlight.Tour], opts OverlayOptions, seqOpts ...spotlight.SequencerOption) *Spotlight {
	s := NewSpotlight(content, spotlight.NewSequencer(seqOpts...), opts)
	s.source = source
	return s
}

// Sequencer returns the sequencer being presented.
func (s *Spotlight) Sequencer() *spotlight.Sequencer {
	return s.seq
}

// Frame returns the frame computed by the last render.
func (s *Spotlight) Frame() spotlight.Frame {
	return s.frame
}

// Bind attaches services and binds the sequencer to its source.
func (s *Spotlight) Bind(services runtime.Services) {
	s.Component.Bind(services)
	if s.source != nil {
		s.seq.Bind(s.source, services.Scheduler())
	}
}

// Unbind drops the source binding and all subscriptions.
func (s *Spotlight) Unbind() {
	if s.source != nil {
		s.seq.Unbind()
	}
	s.Component.Unbind()
}

// Mount requests a render whenever the target changes.
func (s *Spotlight) Mount() {
	s.Observe(s.seq, s.Invalidate)
}

// Unmount drops the render subscription.
func (s *Spotlight) Unmount() {
	s.Subs.Clear()
}

// ChildWidgets returns the content.
func (s *Spotlight) ChildWidgets() []runtime.Widget {
	if s.content == nil {
		return nil
	}
	return []runtime.Widget{s.content}
}

// Measure delegates to the content.
func (s *Spotlight) Measure(c runtime.Constraints) runtime.Size {
	if s.content == nil {
		return c.Constrain(runtime.Size{Width: c.MaxWidth, Height: c.MaxHeight})
	}
	return s.content.Measure(c)
}

// Layout gives the content the full bounds.
func (s *Spotlight) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	if s.content != nil {
		s.content.Layout(bounds)
	}
}

// Render draws the content, then the overlay for the current target.
func (s *Spotlight) Render(ctx runtime.RenderContext) {
	if s.content != nil {
		s.content.Render(ctx)
	}
	s.frame = spotlight.Present(s.seq, CollectTargets(s.content), cellResolver{bounds: s.bounds, opts: s.opts})
	s.buttons = s.buttons[:0]
	s.panel = runtime.Rect{}
	if !s.frame.Active || s.bounds.Empty() {
		return
	}

	dim := s.opts.DimStyle
	ctx.Buffer.Restyle(s.bounds, s.inHole, func(backend.Style) backend.Style { return dim })
	s.drawPanel(ctx.Buffer)
}

// inHole reports whether the centre of cell (x, y) lies in the hole.
func (s *Spotlight) inHole(x, y int) bool {
	p := geom.Point{X: float64(x) + 0.5, Y: (float64(y) + 0.5) * s.opts.CellAspect}
	return s.frame.Focus.ContainsRounded(p, s.frame.CornerRadius)
}

func (s *Spotlight) drawPanel(buf *runtime.Buffer) {
	o := s.opts
	b := s.bounds
	x, width := b.X+o.Margin, min(o.PanelMaxWidth, b.Width-2*o.Margin)
	if width < 8 {
		x, width = b.X, b.Width
	}
	lines := RenderMarkdown(s.frame.Message, width-4, o.markdownTheme())
	height := min(len(lines)+4, b.Height)
	y := b.Y + o.Margin
	if s.frame.MessageAlignment == spotlight.AlignBottom {
		y = b.Y + b.Height - o.Margin - height
	}
	s.panel = runtime.Rect{X: x, Y: max(y, b.Y), Width: width, Height: height}
	p := s.panel

	buf.Fill(p, ' ', o.PanelStyle)
	buf.DrawRoundedBox(p, o.PanelStyle)
	inner := p.Inset(2, 1)
	for i, line := range lines {
		if i >= inner.Height-1 {
			break
		}
		line.Draw(buf, inner.X, inner.Y+i, inner.Width)
	}

	row := inner.Y + inner.Height - 1
	if s.opts.ShowProgress && s.frame.Total > 0 {
		buf.SetString(inner.X, row, fmt.Sprintf("%d/%d", s.frame.Step, s.frame.Total), o.PanelStyle.Dim(true))
	}
	left := s.drawButton(buf, inner.X+inner.Width, row, o.NextLabel, o.NextStyle, s.frame.OnNext)
	if s.frame.Cancellable {
		s.drawButton(buf, left-1, row, o.DismissLabel, o.ButtonStyle, s.frame.OnDismiss)
	}
}

// drawButton right-aligns "[ label ]" so it ends at right and returns its
// left edge.
func (s *Spotlight) drawButton(buf *runtime.Buffer, right, y int, label string, style backend.Style, action func()) int {
	text := "[ " + label + " ]"
	x := right - runewidth.StringWidth(text)
	buf.SetString(x, y, text, style)
	s.buttons = append(s.buttons, button{
		rect:   runtime.Rect{X: x, Y: y, Width: runewidth.StringWidth(text), Height: 1},
		action: action,
	})
	return x
}

// HandleMessage routes input to the overlay while a target is active.
func (s *Spotlight) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if !s.seq.Active() {
		return s.passThrough(msg)
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		return s.handleKey(m, msg)
	case runtime.MouseMsg:
		if m.Pressed() {
			for _, b := range s.buttons {
				if b.rect.Contains(m.X, m.Y) && b.action != nil {
					b.action()
					return runtime.Handled()
				}
			}
		}
		return runtime.Handled()
	case runtime.PasteMsg:
		return runtime.Handled()
	}
	return s.passThrough(msg)
}

func (s *Spotlight) handleKey(k runtime.KeyMsg, msg runtime.Message) runtime.HandleResult {
	switch {
	case k.Key == terminal.KeyCtrlC:
		return s.passThrough(msg)
	case k.Key == terminal.KeyEnter, k.Key == terminal.KeyRight,
		k.Key == terminal.KeyRune && (k.Rune == 'n' || k.Rune == ' '):
		s.seq.Next()
	case k.Key == terminal.KeyEscape, k.Key == terminal.KeyRune && k.Rune == 'd':
		if s.seq.Cancellable() {
			s.seq.Cancel()
		}
	}
	return runtime.Handled()
}

func (s *Spotlight) passThrough(msg runtime.Message) runtime.HandleResult {
	if s.content == nil {
		return runtime.Unhandled()
	}
	return s.content.HandleMessage(msg)
}

// cellResolver maps cell rectangles into square points by scaling rows
// by the cell aspect, so circles stay round on screen.
type cellResolver struct {
	bounds runtime.Rect
	opts   OverlayOptions
}

func (r cellResolver) toPoints(c runtime.Rect) geom.Rect {
	return geom.R(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height)).Scale(1, r.opts.CellAspect)
}

func (r cellResolver) ContainerFrame() geom.Rect {
	return r.toPoints(r.bounds).Outset(r.opts.Insets)
}

func (r cellResolver) ResolveAnchor(anchor spotlight.Anchor, _ geom.Rect) (geom.Rect, bool) {
	bp, ok := anchor.(runtime.BoundsProvider)
	if !ok {
		return geom.Rect{}, false
	}
	b := bp.Bounds()
	if b.Empty() {
		return geom.Rect{}, false
	}
	return r.toPoints(b), true
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/spotlight"
	"github.com/odvcencio/furry-spotlight/state"
	"github.com/odvcencio/furry-spotlight/terminal"
	"github.com/odvcencio/furry-spotlight/widgets"
)

const (
	keyHeading         = "spotlight.heading"
	keyStart           = "spotlight.start"
	keyTarget          = "spotlight.target"
	keyThisSection     = "spotlight.this.section"
	keyThisCard        = "spotlight.this.card.%d"
	keyThisCardInfo    = "spotlight.this.card.info.%d"
	keyThatSection     = "spotlight.that.section"
	keyThatCard        = "spotlight.that.card.%d"
	keyThatCardImage   = "spotlight.that.card.image.%d"
	cardsPerSection    = 3
	thatCardInfoString = "A description excerpt that may entice one to view the complete information."
)

var (
	mutedStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	boldStyle    = tcell.StyleDefault.Bold(true)
	accentStyle  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold).Bold(true)
	sectionStyle = tcell.StyleDefault.Bold(true).Underline(true)
)

// demo is the home screen of the demo app with a spotlight over it.
type demo struct {
	root    runtime.Widget
	overlay *widgets.Spotlight
	source  *state.Signal[*spotlight.Tour]
	tour    *spotlight.Tour
	logger  *slog.Logger
}

func newDemo(tour *spotlight.Tour, opts widgets.OverlayOptions, logger *slog.Logger) *demo {
	d := &demo{
		source: state.NewSignal[*spotlight.Tour](nil),
		tour:   tour,
		logger: logger,
	}
	home := &shortcuts{replay: d.replay}
	d.overlay = widgets.PresentSpotlight(home, d.source, opts, spotlight.WithLogger(logger))
	home.child = homeScreen(d.overlay.Sequencer())
	d.root = d.overlay
	return d
}

// replay publishes the tour again, restarting it from the first element.
func (d *demo) replay() {
	if d.tour == nil {
		return
	}
	d.logger.Info("tour started", "tour", d.tour.Name(), "session", d.overlay.Sequencer().Session().String())
	d.source.Set(d.tour)
}

func homeScreen(seq *spotlight.Sequencer) runtime.Widget {
	rounded := spotlight.RoundedRect(2)

	heading := widgets.NewTarget(keyHeading, widgets.VStack(
		widgets.NewText("Ex.").WithStyle(mutedStyle),
		widgets.NewText("Spotlight").WithStyle(boldStyle),
	))
	start := widgets.NewTarget(keyStart, widgets.NewText("▶ p").WithStyle(accentStyle).WithBorder())
	target := widgets.NewTarget(keyTarget, widgets.NewText("Target: terminal").WithBorder(), spotlight.RoundedRect(4))

	thisCards := make([]runtime.Widget, 0, cardsPerSection)
	for i := 1; i <= cardsPerSection; i++ {
		info := widgets.NewTarget(spotlight.IndexedKey(keyThisCardInfo, i), widgets.VStack(
			widgets.NewText(fmt.Sprintf("Card Heading %d", i)).WithStyle(boldStyle),
			widgets.NewText("See more   →"),
		), rounded)
		card := widgets.VStack(widgets.NewText("Info Category").WithStyle(mutedStyle), info).WithPadding(1, 0)
		thisCards = append(thisCards, widgets.NewTarget(spotlight.IndexedKey(keyThisCard, i), card, rounded))
	}

	thatCards := make([]runtime.Widget, 0, cardsPerSection)
	for i := 1; i <= cardsPerSection; i++ {
		image := widgets.NewTarget(spotlight.IndexedKey(keyThatCardImage, i), widgets.NewText("◉").WithStyle(accentStyle))
		card := widgets.VStack(
			widgets.HStack(image, widgets.NewText(fmt.Sprintf("That Section Card Heading %d", i)).WithStyle(boldStyle)).WithSpacing(1),
			widgets.NewText(thatCardInfoString),
		).WithPadding(1, 0)
		thatCards = append(thatCards, widgets.NewTarget(spotlight.IndexedKey(keyThatCard, i), card, rounded))
	}

	progress := state.NewComputed(func() string {
		step, total := seq.Progress()
		if step == 0 {
			return "p: play tour   q: quit"
		}
		return fmt.Sprintf("step %d of %d   enter: next   esc: dismiss", step, total)
	}, seq)

	return widgets.VStack(
		widgets.HStack(heading, target, start).WithSpacing(4),
		widgets.NewText("This Section").WithStyle(sectionStyle),
		widgets.NewTarget(keyThisSection, widgets.HStack(thisCards...).WithSpacing(2), rounded),
		widgets.NewText("That Section").WithStyle(sectionStyle),
		widgets.NewTarget(keyThatSection, widgets.VStack(thatCards...).WithSpacing(1), rounded),
		widgets.NewStatusLabel(progress).WithStyle(mutedStyle),
	).WithSpacing(1).WithPadding(2, 1)
}

// shortcuts handles the demo keys its child leaves unhandled.
type shortcuts struct {
	widgets.Base
	child  runtime.Widget
	replay func()
}

func (s *shortcuts) ChildWidgets() []runtime.Widget {
	return []runtime.Widget{s.child}
}

func (s *shortcuts) Measure(c runtime.Constraints) runtime.Size {
	return s.child.Measure(c)
}

func (s *shortcuts) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	s.child.Layout(bounds)
}

func (s *shortcuts) Render(ctx runtime.RenderContext) {
	s.child.Render(ctx)
}

func (s *shortcuts) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if result := s.child.HandleMessage(msg); result.Handled {
		return result
	}
	key, ok := msg.(runtime.KeyMsg)
	if !ok {
		return runtime.Unhandled()
	}
	switch {
	case key.Key == terminal.KeyCtrlC, key.Key == terminal.KeyRune && key.Rune == 'q':
		return runtime.WithCommand(runtime.Quit{})
	case key.Key == terminal.KeyRune && key.Rune == 'p':
		s.replay()
		return runtime.Handled()
	}
	return runtime.Unhandled()
}

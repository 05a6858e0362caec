package widgets

import (
	"strings"
	"testing"

	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/spotlight"
	"github.com/odvcencio/furry-spotlight/state"
	"github.com/odvcencio/furry-spotlight/terminal"
)

// newFixture lays out a 40x20 screen with a 6x2 rectangular target whose
// top-left corner is at (2, top).
func newFixture(top int, tour *spotlight.Tour) (*Spotlight, *runtime.Buffer) {
	content := VStack(
		NewText(strings.Repeat("\n", top-1)),
		HStack(NewTarget("a", NewText("abcdef\nghijkl"), spotlight.RoundedRect(0))).WithPadding(2, 0),
	)
	seq := spotlight.NewSequencer()
	overlay := NewSpotlight(content, seq, DefaultOverlayOptions())
	overlay.Layout(runtime.Rect{Width: 40, Height: 20})
	if tour != nil {
		seq.Receive(tour)
	}
	return overlay, runtime.NewBuffer(40, 20)
}

func render(s *Spotlight, buf *runtime.Buffer) {
	buf.Clear()
	s.Render(runtime.RenderContext{Buffer: buf, Bounds: runtime.Rect{Width: 40, Height: 20}})
}

func oneStep(message string, cancellable bool) *spotlight.Tour {
	return spotlight.NewTour([]spotlight.Element{spotlight.NewElement("a", message)}, cancellable)
}

func TestSpotlight_IdleDrawsContentOnly(t *testing.T) {
	overlay, buf := newFixture(2, nil)
	render(overlay, buf)

	if overlay.Frame().Active {
		t.Fatalf("expected idle frame")
	}
	if got := rowText(buf, 2, 2, 8); got != "abcdef" {
		t.Fatalf("unexpected content row %q", got)
	}
	if buf.Get(0, 0).Style == DefaultOverlayOptions().DimStyle {
		t.Fatalf("expected no dimming while idle")
	}
}

func TestSpotlight_DimsOutsideHole(t *testing.T) {
	overlay, buf := newFixture(2, oneStep("Hello", true))
	render(overlay, buf)
	dim := DefaultOverlayOptions().DimStyle

	frame := overlay.Frame()
	if !frame.Active || !frame.Resolved || frame.Key != "a" {
		t.Fatalf("unexpected frame %+v", frame)
	}
	for y := 2; y < 4; y++ {
		for x := 2; x < 8; x++ {
			if buf.Get(x, y).Style == dim {
				t.Fatalf("expected cell (%d,%d) inside the hole to stay lit", x, y)
			}
		}
	}
	for _, c := range [][2]int{{0, 0}, {1, 2}, {8, 2}, {2, 4}, {39, 10}} {
		if buf.Get(c[0], c[1]).Style != dim {
			t.Fatalf("expected cell %v outside the hole to be dimmed", c)
		}
	}
	if got := rowText(buf, 2, 2, 8); got != "abcdef" {
		t.Fatalf("expected content to stay visible in the hole, got %q", got)
	}
}

func TestSpotlight_PanelBelowHoleInUpperHalf(t *testing.T) {
	overlay, buf := newFixture(2, oneStep("Hello", true))
	render(overlay, buf)

	if overlay.Frame().MessageAlignment != spotlight.AlignBottom {
		t.Fatalf("expected bottom alignment")
	}
	// Five rows ending one row above the bottom edge.
	if buf.Get(1, 14).Rune != '╭' || buf.Get(38, 18).Rune != '╯' {
		t.Fatalf("expected panel corners at (1,14) and (38,18)")
	}
	if got := rowText(buf, 15, 3, 8); got != "Hello" {
		t.Fatalf("unexpected message row %q", got)
	}
	if got := rowText(buf, 17, 3, 6); got != "1/1" {
		t.Fatalf("unexpected progress %q", got)
	}
	if got := rowText(buf, 17, 17, 37); got != "[ Dismiss ] [ Next ]" {
		t.Fatalf("unexpected buttons %q", got)
	}
}

func TestSpotlight_PanelAboveHoleInLowerHalf(t *testing.T) {
	overlay, buf := newFixture(16, oneStep("Hello", false))
	render(overlay, buf)

	if overlay.Frame().MessageAlignment != spotlight.AlignTop {
		t.Fatalf("expected top alignment")
	}
	if buf.Get(1, 1).Rune != '╭' {
		t.Fatalf("expected panel at the top margin")
	}
	if got := rowText(buf, 4, 17, 37); got != "            [ Next ]" {
		t.Fatalf("expected only the next button, got %q", got)
	}
}

func TestSpotlight_UnresolvedTargetCoversContainer(t *testing.T) {
	tour := spotlight.NewTour([]spotlight.Element{spotlight.NewElement("missing", "Nowhere")}, true)
	overlay, buf := newFixture(2, tour)
	render(overlay, buf)

	frame := overlay.Frame()
	if !frame.Active || frame.Resolved {
		t.Fatalf("expected an active unresolved frame, got %+v", frame)
	}
	if buf.Get(20, 10).Style == DefaultOverlayOptions().DimStyle {
		t.Fatalf("expected the centre to be lit by the fallback hole")
	}
}

func TestSpotlight_KeysDriveSequencer(t *testing.T) {
	tour := spotlight.NewTour([]spotlight.Element{
		spotlight.NewElement("a", "first"),
		spotlight.NewElement("a", "second"),
		spotlight.NewElement("a", "third"),
	}, true)
	overlay, _ := newFixture(2, tour)
	seq := overlay.Sequencer()

	if !overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter}).Handled {
		t.Fatalf("expected enter to be handled")
	}
	if step, _ := seq.Progress(); step != 2 {
		t.Fatalf("expected step 2, got %d", step)
	}
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'x'})
	if step, _ := seq.Progress(); step != 2 {
		t.Fatalf("expected unrelated key to be ignored, got step %d", step)
	}
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'n'})
	if step, _ := seq.Progress(); step != 3 {
		t.Fatalf("expected step 3, got %d", step)
	}
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEscape})
	if seq.Active() {
		t.Fatalf("expected escape to dismiss the tour")
	}
}

func TestSpotlight_NonCancellableIgnoresEscape(t *testing.T) {
	overlay, _ := newFixture(2, oneStep("stay", false))
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEscape})
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'd'})
	if !overlay.Sequencer().Active() {
		t.Fatalf("expected non-cancellable tour to stay active")
	}
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRight})
	if overlay.Sequencer().Active() {
		t.Fatalf("expected right arrow to finish the tour")
	}
}

func TestSpotlight_MouseButtons(t *testing.T) {
	overlay, buf := newFixture(2, spotlight.NewTour([]spotlight.Element{
		spotlight.NewElement("a", "one"),
		spotlight.NewElement("a", "two"),
	}, true))
	render(overlay, buf)

	press := func(x, y int) runtime.MouseMsg {
		return runtime.MouseMsg{X: x, Y: y, Button: runtime.MouseLeft, Action: runtime.MousePress}
	}
	overlay.HandleMessage(press(5, 5))
	if step, _ := overlay.Sequencer().Progress(); step != 1 {
		t.Fatalf("expected click outside the buttons to do nothing")
	}
	overlay.HandleMessage(press(30, 17))
	if step, _ := overlay.Sequencer().Progress(); step != 2 {
		t.Fatalf("expected next button to advance, got step %d", step)
	}

	render(overlay, buf)
	overlay.HandleMessage(press(20, 17))
	if overlay.Sequencer().Active() {
		t.Fatalf("expected dismiss button to cancel")
	}
}

func TestSpotlight_InputRouting(t *testing.T) {
	content := &recorder{}
	seq := spotlight.NewSequencer()
	overlay := NewSpotlight(content, seq, OverlayOptions{})
	overlay.Layout(runtime.Rect{Width: 40, Height: 20})

	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyEnter})
	if len(content.got) != 1 {
		t.Fatalf("expected idle overlay to pass input through")
	}

	seq.Receive(oneStep("hi", true))
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyRune, Rune: 'q'})
	overlay.HandleMessage(runtime.PasteMsg{Text: "x"})
	if len(content.got) != 1 {
		t.Fatalf("expected active overlay to swallow input, got %d messages", len(content.got))
	}
	overlay.HandleMessage(runtime.KeyMsg{Key: terminal.KeyCtrlC})
	overlay.HandleMessage(runtime.TickMsg{})
	if len(content.got) != 3 {
		t.Fatalf("expected ctrl+c and ticks to reach the content, got %d messages", len(content.got))
	}
}

func TestPresentSpotlight_BindsSource(t *testing.T) {
	source := state.NewSignal(oneStep("first", true))
	overlay := PresentSpotlight(&recorder{}, source, OverlayOptions{})

	if overlay.Sequencer().Active() {
		t.Fatalf("expected sequencer to wait for Bind")
	}
	overlay.Bind(runtime.Services{})
	target, ok := overlay.Sequencer().Target()
	if !ok || target.Message != "first" {
		t.Fatalf("expected bound tour to start, got %+v", target)
	}

	source.Set(oneStep("second", true))
	if target, _ := overlay.Sequencer().Target(); target.Message != "second" {
		t.Fatalf("expected new tour to restart the sequence, got %q", target.Message)
	}

	overlay.Unbind()
	source.Set(oneStep("third", true))
	if target, _ := overlay.Sequencer().Target(); target.Message != "second" {
		t.Fatalf("expected unbound sequencer to ignore the source, got %q", target.Message)
	}
}

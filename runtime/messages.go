package runtime

import (
	"time"

	"github.com/odvcencio/furry-spotlight/terminal"
)

// Message represents an event flowing into the UI.
// Messages come from terminal input, timers, or background goroutines.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg represents a mouse input event.
type MouseMsg struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseMsg) isMessage() {}

// Pressed reports whether the message is a press of the left button.
func (m MouseMsg) Pressed() bool {
	return m.Button == MouseLeft && m.Action == MousePress
}

// PasteMsg represents pasted text from bracketed paste mode.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// MouseButton identifies which mouse button was involved.
type MouseButton = terminal.MouseButton

// MouseAction identifies what happened with the mouse.
type MouseAction = terminal.MouseAction

const (
	MouseNone      = terminal.MouseNone
	MouseLeft      = terminal.MouseLeft
	MouseMiddle    = terminal.MouseMiddle
	MouseRight     = terminal.MouseRight
	MouseWheelUp   = terminal.MouseWheelUp
	MouseWheelDown = terminal.MouseWheelDown

	MousePress   = terminal.MousePress
	MouseRelease = terminal.MouseRelease
	MouseMove    = terminal.MouseMove
)

// TickMsg is sent on each frame tick for animations.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// QueueFlushMsg triggers a state queue flush in the update loop.
type QueueFlushMsg struct{}

func (QueueFlushMsg) isMessage() {}

// InvalidateMsg requests a render pass without forcing a full redraw.
type InvalidateMsg struct{}

func (InvalidateMsg) isMessage() {}

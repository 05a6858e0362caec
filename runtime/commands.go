package runtime

import "context"

// Command is an intent emitted by a widget. Commands bubble up from the
// widget to the screen and then to the app.
type Command interface {
	Command()
}

// PostFunc sends a message into the app.
// It returns false when the message queue is full.
type PostFunc func(Message) bool

// Quit stops the app loop.
type Quit struct{}

// Refresh forces a full redraw.
type Refresh struct{}

// SendMsg posts a message into the app loop.
type SendMsg struct {
	Message Message
}

// Effect runs work in a background goroutine.
// Use ctx for cancellation and post to emit messages.
type Effect struct {
	Run func(ctx context.Context, post PostFunc)
}

// PushOverlay pushes Widget as a new screen layer.
type PushOverlay struct {
	Widget Widget
	Modal  bool
}

// PopOverlay removes the top screen layer.
type PopOverlay struct{}

func (Quit) Command()        {}
func (Refresh) Command()     {}
func (SendMsg) Command()     {}
func (Effect) Command()      {}
func (PushOverlay) Command() {}
func (PopOverlay) Command()  {}

// Send wraps a message in a SendMsg command.
func Send(msg Message) Command {
	return SendMsg{Message: msg}
}

package runtime

// Widget is a node in the UI tree.
type Widget interface {
	// Measure returns the preferred size within constraints.
	Measure(constraints Constraints) Size
	// Layout assigns the widget its bounds.
	Layout(bounds Rect)
	// Render draws the widget into ctx.Buffer.
	Render(ctx RenderContext)
	// HandleMessage processes input and reports whether it was consumed.
	HandleMessage(msg Message) HandleResult
}

// ChildProvider is implemented by widgets with children.
type ChildProvider interface {
	ChildWidgets() []Widget
}

// BoundsProvider is implemented by widgets that expose their layout bounds.
type BoundsProvider interface {
	Bounds() Rect
}

// Lifecycle is implemented by widgets that need mount/unmount hooks.
type Lifecycle interface {
	Mount()
	Unmount()
}

// Bindable widgets receive app services when attached to a screen.
type Bindable interface {
	Bind(services Services)
}

// Unbindable widgets release app services when detached.
type Unbindable interface {
	Unbind()
}

// HandleResult is the outcome of HandleMessage.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled reports a consumed message.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled lets a message continue to the next candidate.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand reports a consumed message that emits cmds.
func WithCommand(cmds ...Command) HandleResult {
	return HandleResult{Handled: true, Commands: cmds}
}

// RenderContext is passed to Render.
type RenderContext struct {
	Buffer  *Buffer
	Focused bool // the widget's layer is on top
	Bounds  Rect
}

// Sub returns a context for a child drawn in bounds.
func (ctx RenderContext) Sub(bounds Rect) RenderContext {
	ctx.Bounds = bounds
	return ctx
}

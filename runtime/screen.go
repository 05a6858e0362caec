package runtime

// Layer is one entry of the screen's layer stack.
type Layer struct {
	Root  Widget
	Modal bool // blocks input to layers below
}

// Screen owns the layer stack and the render buffer.
type Screen struct {
	width, height int
	layers        []*Layer
	buffer        *Buffer
	services      Services
}

// NewScreen creates a w by h screen.
func NewScreen(w, h int) *Screen {
	return &Screen{
		width:  w,
		height: h,
		buffer: NewBuffer(w, h),
	}
}

// SetServices configures the services handed to bindable widgets.
func (s *Screen) SetServices(services Services) {
	s.services = services
}

// Size returns the screen dimensions.
func (s *Screen) Size() (w, h int) {
	return s.width, s.height
}

// Bounds returns the full-screen rectangle.
func (s *Screen) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Resize changes the dimensions and lays every layer out again.
func (s *Screen) Resize(w, h int) {
	s.width, s.height = w, h
	s.buffer.Resize(w, h)
	for _, layer := range s.layers {
		if layer.Root != nil {
			layer.Root.Layout(s.Bounds())
		}
	}
}

// Buffer returns the render buffer.
func (s *Screen) Buffer() *Buffer {
	return s.buffer
}

// SetRoot replaces the root of the base layer. The old root is unmounted
// and unbound; the new one is bound, laid out and mounted.
func (s *Screen) SetRoot(root Widget) {
	if len(s.layers) == 0 {
		s.layers = append(s.layers, &Layer{})
	}
	base := s.layers[0]
	s.detach(base.Root)
	base.Root = root
	s.attach(root)
}

// Root returns the base layer's root.
func (s *Screen) Root() Widget {
	if len(s.layers) == 0 {
		return nil
	}
	return s.layers[0].Root
}

// PushLayer adds root on top of the stack.
func (s *Screen) PushLayer(root Widget, modal bool) {
	s.layers = append(s.layers, &Layer{Root: root, Modal: modal})
	s.attach(root)
}

// PopLayer removes the top layer. The base layer cannot be popped.
func (s *Screen) PopLayer() bool {
	if len(s.layers) <= 1 {
		return false
	}
	top := s.layers[len(s.layers)-1]
	s.layers = s.layers[:len(s.layers)-1]
	s.detach(top.Root)
	return true
}

// LayerCount returns the number of layers.
func (s *Screen) LayerCount() int {
	return len(s.layers)
}

func (s *Screen) attach(root Widget) {
	if root == nil {
		return
	}
	BindTree(root, s.services)
	root.Layout(s.Bounds())
	MountTree(root)
}

func (s *Screen) detach(root Widget) {
	if root == nil {
		return
	}
	UnmountTree(root)
	UnbindTree(root)
}

// Render clears the buffer and draws the layers bottom to top.
func (s *Screen) Render() {
	s.buffer.Clear()
	ctx := RenderContext{Buffer: s.buffer, Bounds: s.Bounds()}
	for i, layer := range s.layers {
		if layer.Root == nil {
			continue
		}
		ctx.Focused = i == len(s.layers)-1
		layer.Root.Render(ctx)
	}
}

// HandleMessage offers msg to the layers top to bottom, stopping at the
// first that handles it or at a modal layer. Layer commands are applied
// here; the result still carries them for the app.
func (s *Screen) HandleMessage(msg Message) HandleResult {
	for i := len(s.layers) - 1; i >= 0; i-- {
		layer := s.layers[i]
		if layer.Root == nil {
			continue
		}
		result := layer.Root.HandleMessage(msg)
		for _, cmd := range result.Commands {
			s.handleCommand(cmd)
		}
		if result.Handled || layer.Modal {
			return result
		}
	}
	return Unhandled()
}

func (s *Screen) handleCommand(cmd Command) {
	switch c := cmd.(type) {
	case PushOverlay:
		s.PushLayer(c.Widget, c.Modal)
	case PopOverlay:
		s.PopLayer()
	}
}

package widgets

import "github.com/odvcencio/furry-spotlight/runtime"

type axis int

const (
	vertical axis = iota
	horizontal
)

// Stack lays its children out in a column (VStack) or a row (HStack),
// each at its measured size along the stack axis.
type Stack struct {
	Base
	axis     axis
	children []runtime.Widget
	spacing  int
	padX     int
	padY     int
}

// VStack stacks children top to bottom.
func VStack(children ...runtime.Widget) *Stack {
	return &Stack{axis: vertical, children: children}
}

// HStack stacks children left to right.
func HStack(children ...runtime.Widget) *Stack {
	return &Stack{axis: horizontal, children: children}
}

// WithSpacing sets the gap between children.
func (s *Stack) WithSpacing(n int) *Stack {
	s.spacing = n
	return s
}

// WithPadding sets the horizontal and vertical padding.
func (s *Stack) WithPadding(x, y int) *Stack {
	s.padX, s.padY = x, y
	return s
}

// ChildWidgets returns the children.
func (s *Stack) ChildWidgets() []runtime.Widget {
	return s.children
}

// Measure sums the children along the axis and takes the widest across it.
func (s *Stack) Measure(c runtime.Constraints) runtime.Size {
	inner := runtime.Loose(max(c.MaxWidth-2*s.padX, 0), max(c.MaxHeight-2*s.padY, 0))
	var main, cross int
	for i, child := range s.children {
		size := child.Measure(inner)
		a, b := size.Height, size.Width
		if s.axis == horizontal {
			a, b = b, a
		}
		if i > 0 {
			main += s.spacing
		}
		main += a
		cross = max(cross, b)
	}
	size := runtime.Size{Width: cross, Height: main}
	if s.axis == horizontal {
		size = runtime.Size{Width: main, Height: cross}
	}
	size.Width += 2 * s.padX
	size.Height += 2 * s.padY
	return c.Constrain(size)
}

// Layout places children one after another inside the padded bounds.
func (s *Stack) Layout(bounds runtime.Rect) {
	s.Base.Layout(bounds)
	inner := bounds.Inset(s.padX, s.padY)
	x, y := inner.X, inner.Y
	for _, child := range s.children {
		if s.axis == vertical {
			avail := max(inner.Y+inner.Height-y, 0)
			size := child.Measure(runtime.Loose(inner.Width, avail))
			child.Layout(runtime.Rect{X: inner.X, Y: y, Width: inner.Width, Height: size.Height})
			y += size.Height + s.spacing
			continue
		}
		avail := max(inner.X+inner.Width-x, 0)
		size := child.Measure(runtime.Loose(avail, inner.Height))
		child.Layout(runtime.Rect{X: x, Y: inner.Y, Width: size.Width, Height: size.Height})
		x += size.Width + s.spacing
	}
}

// Render draws the children.
func (s *Stack) Render(ctx runtime.RenderContext) {
	for _, child := range s.children {
		child.Render(ctx)
	}
}

// HandleMessage offers msg to each child until one handles it.
func (s *Stack) HandleMessage(msg runtime.Message) runtime.HandleResult {
	for _, child := range s.children {
		if result := child.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return runtime.Unhandled()
}

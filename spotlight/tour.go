// Package spotlight implements guided tours over arbitrary UI regions.
//
// A Tour is an ordered list of Elements. A Sequencer walks the tour one
// element at a time. UI regions declare themselves in a Registry under the
// element keys, and the Focus Geometry Engine (ComputeTraits) turns the
// resolved region into the hole cut into the dimmed overlay.
//
// The package is renderer agnostic: anchors are opaque and are resolved by a
// Resolver supplied by the host. See package widgets for the terminal adapter.
package spotlight

import "fmt"

// ShapeKind selects how a focus rectangle becomes a hole.
type ShapeKind int

const (
	// ShapeCircle encloses the focus in its bounding circle.
	ShapeCircle ShapeKind = iota
	// ShapeRoundedRect pads the focus and rounds its corners.
	ShapeRoundedRect
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeCircle:
		return "circle"
	case ShapeRoundedRect:
		return "rect"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape describes the hole drawn around a focused region.
// The zero value is a circle.
type Shape struct {
	Kind ShapeKind
	// CornerRadius is used by ShapeRoundedRect. It must be non-negative;
	// the layout engine does not clamp it.
	CornerRadius float64
}

// Circle returns the circle shape.
func Circle() Shape {
	return Shape{Kind: ShapeCircle}
}

// RoundedRect returns a rounded rectangle shape with the given corner radius.
func RoundedRect(cornerRadius float64) Shape {
	return Shape{Kind: ShapeRoundedRect, CornerRadius: cornerRadius}
}

func (s Shape) String() string {
	if s.Kind == ShapeRoundedRect {
		return fmt.Sprintf("rect(%g)", s.CornerRadius)
	}
	return s.Kind.String()
}

// Element is one step of a tour. Elements are comparable values.
type Element struct {
	Key     string
	Message string
	Shape   Shape
}

// NewElement builds an element. The shape defaults to Circle.
func NewElement(key, message string, shape ...Shape) Element {
	el := Element{Key: key, Message: message}
	if len(shape) > 0 {
		el.Shape = shape[0]
	}
	return el
}

// Tour is an immutable, ordered sequence of elements.
// Keys may repeat; uniqueness is the registry's concern.
type Tour struct {
	name        string
	elements    []Element
	cancellable bool
}

// NewTour creates a tour. The elements slice is copied.
func NewTour(elements []Element, cancellable bool) *Tour {
	return &Tour{
		elements:    append([]Element(nil), elements...),
		cancellable: cancellable,
	}
}

// Named returns a copy of the tour carrying name.
func (t *Tour) Named(name string) *Tour {
	if t == nil {
		return nil
	}
	out := *t
	out.name = name
	return &out
}

// Name returns the tour name, empty for anonymous tours.
func (t *Tour) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Len returns the number of elements.
func (t *Tour) Len() int {
	if t == nil {
		return 0
	}
	return len(t.elements)
}

// At returns the element at i, or false when i is out of range.
func (t *Tour) At(i int) (Element, bool) {
	if t == nil || i < 0 || i >= len(t.elements) {
		return Element{}, false
	}
	return t.elements[i], true
}

// Elements returns a copy of the elements.
func (t *Tour) Elements() []Element {
	if t == nil {
		return nil
	}
	return append([]Element(nil), t.elements...)
}

// Cancellable reports whether the tour may be dismissed early.
func (t *Tour) Cancellable() bool {
	if t == nil {
		return true
	}
	return t.cancellable
}

package spotlight

import "github.com/odvcencio/furry-spotlight/geom"

// Alignment places the message panel relative to the hole.
type Alignment int

const (
	// AlignTop anchors the message panel at the top of the container.
	AlignTop Alignment = iota
	// AlignBottom anchors the message panel at the bottom of the container.
	AlignBottom
)

func (a Alignment) String() string {
	if a == AlignBottom {
		return "bottom"
	}
	return "top"
}

// Traits is the computed appearance of the hole for one element.
type Traits struct {
	Focus            geom.Rect
	CornerRadius     float64
	MessageAlignment Alignment
}

// Layout isolates the overlay calculations so they can be tested without a
// renderer. A nil Focus means the target could not be resolved.
type Layout struct {
	Focus     *geom.Rect
	Container geom.Rect
}

// Traits computes the traits for shape.
func (l Layout) Traits(shape Shape) Traits {
	return ComputeTraits(l.Focus, l.Container, shape)
}

// ComputeTraits turns a focus rectangle into the hole drawn for shape.
//
// When focus is nil the whole container is treated as the focus. The hole
// for ShapeCircle is the bounding circle frame with a radius of half its
// height; ShapeRoundedRect grows the focus by half the corner radius on
// every side. The message goes below a hole centred above the container's
// midline and above it otherwise.
func ComputeTraits(focus *geom.Rect, container geom.Rect, shape Shape) Traits {
	base := container
	if focus != nil {
		base = *focus
	}

	var (
		rect   geom.Rect
		radius float64
	)
	switch shape.Kind {
	case ShapeRoundedRect:
		rect = base.Inset(-shape.CornerRadius/2, -shape.CornerRadius/2)
		radius = shape.CornerRadius
	default:
		rect = base.BoundingCircleFrame()
		radius = rect.Height / 2
	}

	alignment := AlignTop
	if rect.MidY() < container.MidY() {
		alignment = AlignBottom
	}

	return Traits{
		Focus:            rect,
		CornerRadius:     radius,
		MessageAlignment: alignment,
	}
}

package spotlight

import "github.com/odvcencio/furry-spotlight/geom"

// Resolver is implemented by the host renderer.
type Resolver interface {
	// ContainerFrame returns the bounds the overlay is drawn in, already
	// grown or shrunk by any safe-area insets.
	ContainerFrame() geom.Rect
	// ResolveAnchor returns the anchor's rectangle in the container's
	// coordinate space, or false if the region is not laid out.
	ResolveAnchor(anchor Anchor, container geom.Rect) (geom.Rect, bool)
}

// Frame is everything a renderer needs to draw one overlay pass.
type Frame struct {
	Active bool
	Key    string
	// Resolved is false when the target key was missing from the registry
	// or its anchor could not be resolved; Focus then covers the container.
	Resolved bool

	Container        geom.Rect
	Focus            geom.Rect
	CornerRadius     float64
	MessageAlignment Alignment

	Message     string
	Cancellable bool
	Step, Total int

	OnNext    func()
	OnDismiss func()
}

// Present combines the sequencer target with the registry and computes the
// traits for the overlay. The registry entry's shape wins over the
// element's shape when the key resolves.
func Present(seq *Sequencer, reg *Registry, res Resolver) Frame {
	var container geom.Rect
	if res != nil {
		container = res.ContainerFrame()
	}

	frame := Frame{
		Container:   container,
		Cancellable: seq.Cancellable(),
		OnNext:      seq.Next,
		OnDismiss:   seq.Cancel,
	}
	frame.Step, frame.Total = seq.Progress()

	target, ok := seq.Target()
	shape := target.Shape
	var focus *geom.Rect
	if ok {
		frame.Active = true
		frame.Key = target.Key
		frame.Message = target.Message
		if entry, found := reg.Lookup(target.Key); found {
			shape = entry.Shape
			if res != nil {
				if rect, resolved := res.ResolveAnchor(entry.Anchor, container); resolved {
					focus = &rect
					frame.Resolved = true
				}
			}
		}
	}

	traits := ComputeTraits(focus, container, shape)
	frame.Focus = traits.Focus
	frame.CornerRadius = traits.CornerRadius
	frame.MessageAlignment = traits.MessageAlignment
	return frame
}

package widgets

import (
	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/spotlight"
)

// Target marks a region of the tree as a spotlight target. It draws and
// lays out its child unchanged; its anchor is the Target itself, resolved
// through its bounds at render time.
type Target struct {
	Base
	key   string
	shape spotlight.Shape
	child runtime.Widget
}

// NewTarget wraps child as the region for key. The shape defaults to a
// circle.
func NewTarget(key string, child runtime.Widget, shape ...spotlight.Shape) *Target {
	t := &Target{key: key, child: child}
	if len(shape) > 0 {
		t.shape = shape[0]
	}
	return t
}

// Key returns the element key the target declares.
func (t *Target) Key() string {
	return t.key
}

// Contribution returns the registry entry for the target.
func (t *Target) Contribution() spotlight.Contribution {
	return spotlight.Contribution{
		Key:   t.key,
		Entry: spotlight.Entry{Anchor: t, Shape: t.shape},
	}
}

// ChildWidgets returns the wrapped child.
func (t *Target) ChildWidgets() []runtime.Widget {
	if t.child == nil {
		return nil
	}
	return []runtime.Widget{t.child}
}

// Measure delegates to the child.
func (t *Target) Measure(c runtime.Constraints) runtime.Size {
	if t.child == nil {
		return c.Constrain(runtime.Size{})
	}
	return t.child.Measure(c)
}

// Layout assigns the bounds to the target and its child.
func (t *Target) Layout(bounds runtime.Rect) {
	t.Base.Layout(bounds)
	if t.child != nil {
		t.child.Layout(bounds)
	}
}

// Render draws the child.
func (t *Target) Render(ctx runtime.RenderContext) {
	if t.child != nil {
		t.child.Render(ctx.Sub(t.bounds))
	}
}

// HandleMessage delegates to the child.
func (t *Target) HandleMessage(msg runtime.Message) runtime.HandleResult {
	if t.child == nil {
		return runtime.Unhandled()
	}
	return t.child.HandleMessage(msg)
}

// targetProvider is implemented by widgets that declare a spotlight target.
type targetProvider interface {
	Contribution() spotlight.Contribution
}

// CollectTargets folds the targets declared in the tree under root into a
// registry. Parents are visited before their children, so a nested target
// overrides an outer one declaring the same key.
func CollectTargets(root runtime.Widget) *spotlight.Registry {
	var parts []*spotlight.Registry
	runtime.Walk(root, func(w runtime.Widget) bool {
		if p, ok := w.(targetProvider); ok {
			parts = append(parts, spotlight.FromContributions(p.Contribution()))
		}
		return true
	})
	return spotlight.Merge(parts...)
}

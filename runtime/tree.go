package runtime

// Walk visits root and its descendants depth-first, parents before
// children. Returning false from fn skips the node's children.
func Walk(root Widget, fn func(Widget) bool) {
	if root == nil || fn == nil {
		return
	}
	if !fn(root) {
		return
	}
	if parent, ok := root.(ChildProvider); ok {
		for _, child := range parent.ChildWidgets() {
			Walk(child, fn)
		}
	}
}

// walkPost visits children before their parent.
func walkPost(root Widget, fn func(Widget)) {
	if root == nil {
		return
	}
	if parent, ok := root.(ChildProvider); ok {
		for _, child := range parent.ChildWidgets() {
			walkPost(child, fn)
		}
	}
	fn(root)
}

// MountTree calls Mount on widgets that implement Lifecycle.
func MountTree(root Widget) {
	Walk(root, func(w Widget) bool {
		if m, ok := w.(Lifecycle); ok {
			m.Mount()
		}
		return true
	})
}

// UnmountTree calls Unmount on widgets that implement Lifecycle,
// children first.
func UnmountTree(root Widget) {
	walkPost(root, func(w Widget) {
		if m, ok := w.(Lifecycle); ok {
			m.Unmount()
		}
	})
}

// BindTree calls Bind on widgets that implement Bindable.
func BindTree(root Widget, services Services) {
	if services.isZero() {
		return
	}
	Walk(root, func(w Widget) bool {
		if b, ok := w.(Bindable); ok {
			b.Bind(services)
		}
		return true
	})
}

// UnbindTree calls Unbind on widgets that implement Unbindable,
// children first.
func UnbindTree(root Widget) {
	walkPost(root, func(w Widget) {
		if u, ok := w.(Unbindable); ok {
			u.Unbind()
		}
	})
}

package runtime

import (
	"slices"
	"testing"
)

func TestWalk_ParentBeforeChildren(t *testing.T) {
	leaf := &probe{name: "leaf"}
	mid := &probe{name: "mid", children: []Widget{leaf}}
	root := &probe{name: "root", children: []Widget{mid, &probe{name: "side"}}}

	var order []string
	Walk(root, func(w Widget) bool {
		order = append(order, w.(*probe).name)
		return true
	})
	want := []string{"root", "mid", "leaf", "side"}
	if !slices.Equal(order, want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	root := &probe{name: "root", children: []Widget{&probe{name: "hidden"}}}
	visited := 0
	Walk(root, func(Widget) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("expected children to be skipped, visited %d", visited)
	}
}

func TestScreen_AttachDetachOrder(t *testing.T) {
	var log []string
	child := &probe{name: "child", log: &log}
	root := &probe{name: "root", log: &log, children: []Widget{child}}
	screen := NewScreen(10, 5)
	screen.SetServices(NewApp(AppConfig{}).Services())

	screen.SetRoot(root)
	screen.SetRoot(nil)

	want := []string{
		"root:bind", "child:bind",
		"root:mount", "child:mount",
		"child:unmount", "root:unmount",
		"child:unbind", "root:unbind",
	}
	if !slices.Equal(log, want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	if root.bounds != (Rect{Width: 10, Height: 5}) {
		t.Fatalf("expected root laid out to the screen, got %+v", root.bounds)
	}
}

func TestBindTree_SkipsZeroServices(t *testing.T) {
	var log []string
	BindTree(&probe{name: "w", log: &log}, Services{})
	if len(log) != 0 {
		t.Fatalf("expected no bind without services, got %v", log)
	}
}

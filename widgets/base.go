// Package widgets provides the widgets used to build and present guided
// tours: layout containers, text, spotlight targets and the spotlight
// overlay itself.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-spotlight/runtime"
)

// Base provides common functionality for widgets.
// Embed this in widget structs to get default implementations.
type Base struct {
	bounds runtime.Rect
}

// Layout stores the assigned bounds.
func (b *Base) Layout(bounds runtime.Rect) {
	if b != nil {
		b.bounds = bounds
	}
}

// Bounds returns the widget's assigned bounds.
func (b *Base) Bounds() runtime.Rect {
	if b == nil {
		return runtime.Rect{}
	}
	return b.bounds
}

// HandleMessage returns Unhandled by default.
func (b *Base) HandleMessage(msg runtime.Message) runtime.HandleResult {
	return runtime.Unhandled()
}

// Alignment is horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// alignedX returns where text of width w starts inside bounds.
func alignedX(bounds runtime.Rect, w int, align Alignment) int {
	switch align {
	case AlignCenter:
		return bounds.X + max(bounds.Width-w, 0)/2
	case AlignRight:
		return bounds.X + max(bounds.Width-w, 0)
	}
	return bounds.X
}

// truncateString truncates s to maxWidth cells, ending in "..." if cut.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

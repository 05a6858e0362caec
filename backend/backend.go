// Package backend abstracts the terminal the runtime draws to.
package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-spotlight/terminal"
)

// Style is the cell style. Colors and attributes use tcell's model.
type Style = tcell.Style

// Cell is one character cell.
type Cell struct {
	Rune  rune
	Style Style
}

// DefaultStyle returns the terminal's default style.
func DefaultStyle() Style {
	return tcell.StyleDefault
}

// Backend is a terminal the app renders to and reads events from.
type Backend interface {
	Init() error
	Fini()
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
	Show()
	HideCursor()
	// PollEvent blocks for the next event. It returns nil after Fini.
	PollEvent() terminal.Event
}

// RowWriter is implemented by backends that accept a contiguous run of
// cells in one call.
type RowWriter interface {
	SetRow(y, startX int, cells []Cell)
}

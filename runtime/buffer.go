package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-spotlight/backend"
)

// Cell is a single character cell in the buffer.
type Cell = backend.Cell

// Buffer is the grid widgets render into. The app flushes only the cells
// that changed since the last ClearDirty.
type Buffer struct {
	cells  []Cell
	dirty  []bool
	width  int
	height int

	dirtyCount int
	dirtyRect  Rect
}

// NewBuffer creates a w by h buffer with every cell dirty.
func NewBuffer(w, h int) *Buffer {
	b := &Buffer{}
	b.Resize(w, h)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (w, h int) {
	return b.width, b.height
}

// Resize changes the dimensions, keeping the overlapping content, and marks
// everything dirty.
func (b *Buffer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	cells := make([]Cell, w*h)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: backend.DefaultStyle()}
	}
	for y := 0; y < min(h, b.height); y++ {
		n := min(w, b.width)
		copy(cells[y*w:y*w+n], b.cells[y*b.width:y*b.width+n])
	}
	b.cells = cells
	b.dirty = make([]bool, w*h)
	b.width, b.height = w, h
	b.MarkAllDirty()
}

// Get returns the cell at (x, y), or a blank cell outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if !b.inside(x, y) {
		return Cell{Rune: ' '}
	}
	return b.cells[y*b.width+x]
}

// Set writes one cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, r rune, style backend.Style) {
	if !b.inside(x, y) {
		return
	}
	b.put(y*b.width+x, Cell{Rune: r, Style: style})
}

// SetString writes s starting at (x, y) and returns the number of columns
// it advanced. Wide runes take two columns; the second is blanked.
func (b *Buffer) SetString(x, y int, s string, style backend.Style) int {
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		b.Set(col, y, r, style)
		if w == 2 {
			b.Set(col+1, y, ' ', style)
		}
		col += w
	}
	return col - x
}

// Fill sets every cell of r, clipped to the buffer.
func (b *Buffer) Fill(r Rect, ch rune, style backend.Style) {
	r = r.Intersect(b.bounds())
	cell := Cell{Rune: ch, Style: style}
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			b.put(y*b.width+x, cell)
		}
	}
}

// Clear blanks the whole buffer with the default style.
func (b *Buffer) Clear() {
	b.Fill(b.bounds(), ' ', backend.DefaultStyle())
}

// Restyle replaces the style of every cell in r for which keep returns
// false with fn(style). A nil keep restyles every cell.
func (b *Buffer) Restyle(r Rect, keep func(x, y int) bool, fn func(backend.Style) backend.Style) {
	if fn == nil {
		return
	}
	r = r.Intersect(b.bounds())
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if keep != nil && keep(x, y) {
				continue
			}
			idx := y*b.width + x
			cell := b.cells[idx]
			cell.Style = fn(cell.Style)
			b.put(idx, cell)
		}
	}
}

// DrawRoundedBox draws a one-cell border with rounded corners.
func (b *Buffer) DrawRoundedBox(r Rect, style backend.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	right, bottom := r.X+r.Width-1, r.Y+r.Height-1
	for x := r.X + 1; x < right; x++ {
		b.Set(x, r.Y, '─', style)
		b.Set(x, bottom, '─', style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.Set(r.X, y, '│', style)
		b.Set(right, y, '│', style)
	}
	b.Set(r.X, r.Y, '╭', style)
	b.Set(right, r.Y, '╮', style)
	b.Set(r.X, bottom, '╰', style)
	b.Set(right, bottom, '╯', style)
}

// MarkAllDirty forces every cell to be flushed.
func (b *Buffer) MarkAllDirty() {
	for i := range b.dirty {
		b.dirty[i] = true
	}
	b.dirtyCount = len(b.dirty)
	b.dirtyRect = b.bounds()
}

// ClearDirty resets dirty tracking after a flush.
func (b *Buffer) ClearDirty() {
	clear(b.dirty)
	b.dirtyCount = 0
	b.dirtyRect = Rect{}
}

// IsDirty reports whether any cell changed.
func (b *Buffer) IsDirty() bool {
	return b.dirtyCount > 0
}

// DirtyCount returns the number of changed cells.
func (b *Buffer) DirtyCount() int {
	return b.dirtyCount
}

// DirtyRect returns the bounding box of the changed cells.
func (b *Buffer) DirtyRect() Rect {
	return b.dirtyRect
}

// IsCellDirty reports whether (x, y) changed.
func (b *Buffer) IsCellDirty(x, y int) bool {
	return b.inside(x, y) && b.dirty[y*b.width+x]
}

// ForEachDirtySpan calls fn for every horizontal run of dirty cells, with
// endX exclusive.
func (b *Buffer) ForEachDirtySpan(fn func(y, startX, endX int)) {
	if b.dirtyCount == 0 {
		return
	}
	r := b.dirtyRect
	for y := r.Y; y < r.Y+r.Height; y++ {
		row := y * b.width
		start := -1
		for x := r.X; x <= r.X+r.Width; x++ {
			d := x < r.X+r.Width && b.dirty[row+x]
			switch {
			case d && start < 0:
				start = x
			case !d && start >= 0:
				fn(y, start, x)
				start = -1
			}
		}
	}
}

// Row returns the cells of row y from startX to endX.
func (b *Buffer) Row(y, startX, endX int) []Cell {
	row := y * b.width
	return b.cells[row+startX : row+endX]
}

// Cells returns the backing slice in row-major order.
func (b *Buffer) Cells() []Cell {
	return b.cells
}

func (b *Buffer) bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Buffer) put(idx int, cell Cell) {
	if b.cells[idx] == cell {
		return
	}
	b.cells[idx] = cell
	if b.dirty[idx] {
		return
	}
	b.dirty[idx] = true
	b.dirtyCount++
	x, y := idx%b.width, idx/b.width
	if b.dirtyCount == 1 {
		b.dirtyRect = Rect{X: x, Y: y, Width: 1, Height: 1}
		return
	}
	r := b.dirtyRect
	x0, y0 := min(r.X, x), min(r.Y, y)
	x1, y1 := max(r.X+r.Width, x+1), max(r.Y+r.Height, y+1)
	b.dirtyRect = Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/runtime"
)

// Text is a static, possibly multi-line label. Lines longer than the
// bounds are truncated.
type Text struct {
	Base
	lines     []string
	style     backend.Style
	alignment Alignment
	border    bool
}

// NewText creates a text widget. Newlines start new rows.
func NewText(text string) *Text {
	return &Text{
		lines: strings.Split(text, "\n"),
		style: backend.DefaultStyle(),
	}
}

// WithStyle sets the text style.
func (t *Text) WithStyle(style backend.Style) *Text {
	t.style = style
	return t
}

// WithAlignment sets the horizontal alignment.
func (t *Text) WithAlignment(align Alignment) *Text {
	t.alignment = align
	return t
}

// WithBorder draws a rounded border around the text.
func (t *Text) WithBorder() *Text {
	t.border = true
	return t
}

// Measure returns the size of the longest line by the number of lines.
func (t *Text) Measure(c runtime.Constraints) runtime.Size {
	w := 0
	for _, l := range t.lines {
		w = max(w, runewidth.StringWidth(l))
	}
	size := runtime.Size{Width: w, Height: len(t.lines)}
	if t.border {
		size.Width += 4
		size.Height += 2
	}
	return c.Constrain(size)
}

// Render draws the text.
func (t *Text) Render(ctx runtime.RenderContext) {
	bounds := t.bounds
	if bounds.Empty() {
		return
	}
	if t.border {
		ctx.Buffer.DrawRoundedBox(bounds, t.style)
		bounds = bounds.Inset(2, 1)
	}
	for i, l := range t.lines {
		if i >= bounds.Height {
			break
		}
		l = truncateString(l, bounds.Width)
		x := alignedX(bounds, runewidth.StringWidth(l), t.alignment)
		ctx.Buffer.SetString(x, bounds.Y+i, l, t.style)
	}
}

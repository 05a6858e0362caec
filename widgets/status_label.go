package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/runtime"
	"github.com/odvcencio/furry-spotlight/state"
)

// StatusLabel is a one-line label bound to a readable string, such as a
// state.Computed describing tour progress. It subscribes on Mount and
// drops the subscription on Unmount.
type StatusLabel struct {
	Component
	source    state.Readable[string]
	text      string
	style     backend.Style
	alignment Alignment
	mounted   bool
}

// NewStatusLabel creates a label showing source.
func NewStatusLabel(source state.Readable[string]) *StatusLabel {
	label := &StatusLabel{
		source: source,
		style:  backend.DefaultStyle(),
	}
	if source != nil {
		label.text = source.Get()
	}
	return label
}

// Text returns the current label text.
func (s *StatusLabel) Text() string {
	return s.text
}

// WithStyle sets the label style.
func (s *StatusLabel) WithStyle(style backend.Style) *StatusLabel {
	s.style = style
	return s
}

// WithAlignment sets text alignment.
func (s *StatusLabel) WithAlignment(align Alignment) *StatusLabel {
	s.alignment = align
	return s
}

// Measure returns one row as wide as the text.
func (s *StatusLabel) Measure(c runtime.Constraints) runtime.Size {
	return c.Constrain(runtime.Size{Width: runewidth.StringWidth(s.text), Height: 1})
}

// Render draws the label.
func (s *StatusLabel) Render(ctx runtime.RenderContext) {
	bounds := s.bounds
	if bounds.Empty() {
		return
	}
	text := truncateString(s.text, bounds.Width)
	x := alignedX(bounds, runewidth.StringWidth(text), s.alignment)
	ctx.Buffer.SetString(x, bounds.Y, text, s.style)
}

// Mount subscribes to source changes.
func (s *StatusLabel) Mount() {
	s.mounted = true
	s.Subs.Clear()
	if s.source == nil {
		s.text = ""
		return
	}
	s.text = s.source.Get()
	s.Observe(s.source, s.onChange)
}

// Unmount unsubscribes.
func (s *StatusLabel) Unmount() {
	s.mounted = false
	s.Subs.Clear()
}

func (s *StatusLabel) onChange() {
	if !s.mounted || s.source == nil {
		return
	}
	s.text = s.source.Get()
	s.Invalidate()
}

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/furry-spotlight/backend"
	"github.com/odvcencio/furry-spotlight/geom"
)

// OverlayOptions configures how a Spotlight draws its overlay.
// Zero styles, labels and sizes take their defaults.
type OverlayOptions struct {
	// DimStyle replaces the style of every cell outside the hole.
	DimStyle backend.Style
	// PanelStyle is used for the message panel and its text.
	PanelStyle backend.Style
	// ButtonStyle draws the dismiss button, NextStyle the next button.
	ButtonStyle backend.Style
	NextStyle   backend.Style

	NextLabel    string
	DismissLabel string

	// CellAspect is the height of a cell divided by its width.
	CellAspect float64
	// PanelMaxWidth caps the width of the message panel in cells.
	PanelMaxWidth int
	// Margin is the gap between the panel and the container edge.
	Margin int
	// Insets grow the container beyond the widget bounds, in points.
	Insets geom.Insets
	// ShowProgress prints "step/total" in the panel.
	ShowProgress bool
	// Markdown overrides the theme derived from PanelStyle.
	Markdown *MarkdownTheme
}

// DefaultOverlayOptions returns the stock overlay look.
func DefaultOverlayOptions() OverlayOptions {
	panel := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold)
	return OverlayOptions{
		DimStyle:      tcell.StyleDefault.Foreground(tcell.ColorDimGray).Background(tcell.ColorBlack),
		PanelStyle:    panel,
		ButtonStyle:   panel.Bold(true),
		NextStyle:     tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorBlack).Bold(true),
		NextLabel:     "Next",
		DismissLabel:  "Dismiss",
		CellAspect:    2,
		PanelMaxWidth: 60,
		Margin:        1,
		ShowProgress:  true,
	}
}

// withDefaults fills zero fields from DefaultOverlayOptions.
func (o OverlayOptions) withDefaults() OverlayOptions {
	def := DefaultOverlayOptions()
	zero := backend.Style{}
	if o.DimStyle == zero {
		o.DimStyle = def.DimStyle
	}
	if o.PanelStyle == zero {
		o.PanelStyle = def.PanelStyle
	}
	if o.ButtonStyle == zero {
		o.ButtonStyle = def.ButtonStyle
	}
	if o.NextStyle == zero {
		o.NextStyle = def.NextStyle
	}
	if o.NextLabel == "" {
		o.NextLabel = def.NextLabel
	}
	if o.DismissLabel == "" {
		o.DismissLabel = def.DismissLabel
	}
	if o.CellAspect <= 0 {
		o.CellAspect = def.CellAspect
	}
	if o.PanelMaxWidth <= 0 {
		o.PanelMaxWidth = def.PanelMaxWidth
	}
	if o.Margin < 0 {
		o.Margin = 0
	}
	return o
}

func (o OverlayOptions) markdownTheme() MarkdownTheme {
	if o.Markdown != nil {
		return *o.Markdown
	}
	return DefaultMarkdownTheme(o.PanelStyle)
}

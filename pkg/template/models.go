// Package template describes and renders installer-window backgrounds:
// a flat canvas with centred, drop-shadowed text lines.
package template

// Layout is the top-level structure of a layout.json file.
type Layout struct {
	Canvas Canvas     `json:"canvas"`
	Font   FontConfig `json:"font"`
	Lines  []TextLine `json:"lines"`
}

// Canvas defines output dimensions and the flat fill color.
type Canvas struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"` // "#rrggbb"
}

// FontConfig lists the font files tried, in order, for the system tier.
type FontConfig struct {
	Paths []string `json:"paths"`
	Index int      `json:"index"` // face index inside a .ttc/.otc collection
}

// TextLine is one horizontally centred line of text.
//
// Vertical placement is measured to the top of the text. The first line is
// placed OffsetFromBottom pixels above the bottom edge; later lines use
// OffsetFromPrevious below the line before them unless OffsetFromBottom is
// set.
type TextLine struct {
	Text               string  `json:"text"`
	Size               float64 `json:"size"` // points at 72 DPI
	Color              string  `json:"color"`
	ShadowColor        string  `json:"shadowColor,omitempty"` // empty = no shadow
	ShadowOffset       int     `json:"shadowOffset,omitempty"`
	OffsetFromBottom   int     `json:"offsetFromBottom,omitempty"`
	OffsetFromPrevious int     `json:"offsetFromPrevious,omitempty"`
}

// Sizes returns the font size of each line, in line order.
func (l *Layout) Sizes() []float64 {
	sizes := make([]float64, len(l.Lines))
	for i, line := range l.Lines {
		sizes[i] = line.Size
	}
	return sizes
}

// LineTops returns the y coordinate of the top of each line.
func (l *Layout) LineTops() []int {
	tops := make([]int, len(l.Lines))
	for i, line := range l.Lines {
		switch {
		case line.OffsetFromBottom > 0 || i == 0:
			tops[i] = l.Canvas.Height - line.OffsetFromBottom
		default:
			tops[i] = tops[i-1] + line.OffsetFromPrevious
		}
	}
	return tops
}

// Scale returns a copy of the layout with every dimension, size and offset
// multiplied by factor. Used for @2x HiDPI variants.
func (l *Layout) Scale(factor int) *Layout {
	out := &Layout{
		Canvas: Canvas{
			Width:      l.Canvas.Width * factor,
			Height:     l.Canvas.Height * factor,
			Background: l.Canvas.Background,
		},
		Font: FontConfig{
			Paths: append([]string(nil), l.Font.Paths...),
			Index: l.Font.Index,
		},
		Lines: make([]TextLine, len(l.Lines)),
	}
	for i, line := range l.Lines {
		line.Size *= float64(factor)
		line.ShadowOffset *= factor
		line.OffsetFromBottom *= factor
		line.OffsetFromPrevious *= factor
		out.Lines[i] = line
	}
	return out
}

// parser.go - Built-in layout and the example layout.json for `dmgbg init`.
package template

import (
	"github.com/vts-app/dmgbg/pkg/generator"
)

// DefaultLayout returns the standard VTS installer background: an 800x450
// canvas with a bold instruction line and a smaller sub-instruction.
func DefaultLayout() *Layout {
	return &Layout{
		Canvas: Canvas{
			Width:      generator.DefaultWidth,
			Height:     generator.DefaultHeight,
			Background: generator.DefaultColor,
		},
		Font: FontConfig{
			Paths: append([]string(nil), DefaultSystemFonts...),
		},
		Lines: []TextLine{
			{
				Text:             "Drag VTSApp to Applications",
				Size:             24,
				Color:            "#333333",
				ShadowColor:      "#cccccc",
				ShadowOffset:     1,
				OffsetFromBottom: 120,
			},
			{
				Text:               "Install VTS by dragging the app to the Applications folder",
				Size:               16,
				Color:              "#666666",
				ShadowColor:        "#dddddd",
				ShadowOffset:       1,
				OffsetFromPrevious: 35,
			},
		},
	}
}

// ExampleLayoutJSON returns a sample layout.json matching DefaultLayout.
func ExampleLayoutJSON() string {
	return `{
  "canvas": {
    "width": 800,
    "height": 450,
    "background": "#f5f5f7"
  },
  "font": {
    "paths": ["/System/Library/Fonts/Helvetica.ttc"],
    "index": 0
  },
  "lines": [
    {
      "text": "Drag VTSApp to Applications",
      "size": 24,
      "color": "#333333",
      "shadowColor": "#cccccc",
      "shadowOffset": 1,
      "offsetFromBottom": 120
    },
    {
      "text": "Install VTS by dragging the app to the Applications folder",
      "size": 16,
      "color": "#666666",
      "shadowColor": "#dddddd",
      "shadowOffset": 1,
      "offsetFromPrevious": 35
    }
  ]
}
`
}

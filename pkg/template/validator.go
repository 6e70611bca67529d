// validator.go - Sanity checks for a merged layout.
package template

import (
	"fmt"

	"github.com/vts-app/dmgbg/pkg/generator"
)

// ValidateLayout reports problems in layout as warnings. It never fails:
// rendering proceeds with whatever the layout describes.
func ValidateLayout(layout *Layout) []string {
	var warnings []string

	if _, err := generator.ParseColor(layout.Canvas.Background); err != nil {
		warnings = append(warnings, fmt.Sprintf("canvas background: %v — using white", err))
	}

	tops := layout.LineTops()
	for i, line := range layout.Lines {
		if line.Text == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: empty text — skipped", i+1))
		}
		if _, err := generator.ParseColor(line.Color); err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d color: %v — using white", i+1, err))
		}
		if line.ShadowColor != "" {
			if _, err := generator.ParseColor(line.ShadowColor); err != nil {
				warnings = append(warnings, fmt.Sprintf("line %d shadow color: %v — using white", i+1, err))
			}
		}
		if tops[i] < 0 || tops[i] >= layout.Canvas.Height {
			warnings = append(warnings, fmt.Sprintf("line %d: top %d is outside the %dpx canvas", i+1, tops[i], layout.Canvas.Height))
		}
	}

	return warnings
}

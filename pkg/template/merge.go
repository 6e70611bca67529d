// merge.go - Merge layout.json overrides onto the built-in layout.
package template

// MergeLayout applies the non-zero fields of over onto base.
// Lines and font paths, when present, replace the defaults rather than
// being merged element by element.
func MergeLayout(base, over *Layout) {
	mergeCanvas(&base.Canvas, over.Canvas)

	if over.Font.Paths != nil {
		base.Font.Paths = over.Font.Paths
	}
	if over.Font.Index > 0 {
		base.Font.Index = over.Font.Index
	}

	if over.Lines != nil {
		base.Lines = over.Lines // replace, not append
	}
}

func mergeCanvas(base *Canvas, over Canvas) {
	if over.Width > 0 {
		base.Width = over.Width
	}
	if over.Height > 0 {
		base.Height = over.Height
	}
	if over.Background != "" {
		base.Background = over.Background
	}
}

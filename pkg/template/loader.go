// loader.go - Load layout.json and merge it over the built-in layout.
package template

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ParseLayoutFile reads a layout JSON file and merges it over DefaultLayout.
// Fields left out of the file keep their default values.
func ParseLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}

	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes layout JSON and merges it over DefaultLayout.
// Unknown fields are rejected so typos do not silently fall back to defaults.
func ParseLayout(data []byte) (*Layout, error) {
	var over Layout
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&over); err != nil {
		return nil, fmt.Errorf("parse layout JSON: %w", err)
	}

	layout := DefaultLayout()
	MergeLayout(layout, &over)
	for i := range layout.Lines {
		applyLineDefaults(i, &layout.Lines[i])
	}
	return layout, nil
}

// applyLineDefaults sets fallbacks for fields a layout file left empty.
func applyLineDefaults(i int, l *TextLine) {
	if l.Size <= 0 {
		l.Size = 16
	}
	if l.Color == "" {
		l.Color = "#333333"
	}
	if l.ShadowColor != "" && l.ShadowOffset == 0 {
		l.ShadowOffset = 1
	}
	if l.OffsetFromBottom <= 0 && l.OffsetFromPrevious <= 0 {
		if i == 0 {
			l.OffsetFromBottom = 120
		} else {
			l.OffsetFromPrevious = 35
		}
	}
}

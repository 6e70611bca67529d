// Package generator writes background canvases to disk.
//
// Output follows one pipeline: produce an image.Image (either a
// pre-rendered one or a flat canvas built from Config), then encode it
// as PNG.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// Default canvas parameters used when Config leaves them unset.
const (
	DefaultWidth  = 800
	DefaultHeight = 450
	DefaultColor  = "#f5f5f7"
)

// Config holds parameters for background generation.
type Config struct {
	Width  int         // Pixel width (default: 800)
	Height int         // Pixel height (default: 450)
	Color  string      // Hex "#rrggbb" (default: #f5f5f7)
	Image  image.Image // Pre-rendered image; overrides Width/Height/Color
}

// Generate writes an image to output. Only ".png" is supported. The parent
// directory is created when missing and an existing file is overwritten.
//
// If cfg.Image is nil, a flat canvas is created from cfg.Color/Width/Height.
func Generate(output string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}

// GenerateToWriter writes the image to w in the format named by ext.
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".png":
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode PNG: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q: use .png", ext)
	}
}

// resolveImage returns the source image from config, creating a flat
// canvas if none is provided.
func resolveImage(cfg Config) (image.Image, error) {
	if cfg.Image != nil {
		return cfg.Image, nil
	}

	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}

	hex := cfg.Color
	if hex == "" {
		hex = DefaultColor
	}
	c, err := ParseColor(hex)
	if err != nil {
		return nil, err
	}

	return NewSolidImage(w, h, c), nil
}

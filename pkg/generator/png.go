// png.go - PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// writePNG encodes img to a PNG file at the given path, creating the
// parent directory if it does not exist yet. An existing file is replaced.
func writePNG(output string, img image.Image) error {
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", output, err)
	}
	return nil
}

// Probe checks that a canvas can be allocated and encoded as PNG.
// The CLI runs it once at start-up; a failure there is fatal.
func Probe() error {
	img := NewSolidImage(1, 1, ParseHexRGBA(DefaultColor))
	if err := png.Encode(io.Discard, img); err != nil {
		return fmt.Errorf("PNG encoder unavailable: %w", err)
	}
	return nil
}

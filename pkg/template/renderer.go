// renderer.go - Draws a Layout onto a flat canvas.
// Layered approach: background fill -> per line shadow pass -> primary pass.
package template

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/vts-app/dmgbg/pkg/generator"
)

// Renderer composes backgrounds from layouts.
type Renderer struct {
	fonts FontChain
}

// NewRenderer creates a renderer that resolves fonts through chain.
func NewRenderer(chain FontChain) *Renderer {
	return &Renderer{fonts: chain}
}

// Render fills the canvas and draws every line. When no font resolves the
// canvas is returned without text.
func (r *Renderer) Render(layout *Layout) *image.RGBA {
	img := generator.NewSolidImage(layout.Canvas.Width, layout.Canvas.Height,
		generator.ParseHexRGBA(layout.Canvas.Background))

	faces := r.fonts.Resolve(layout.Sizes()...)
	if faces == nil {
		return img
	}
	defer faces.Close()

	tops := layout.LineTops()
	for i, line := range layout.Lines {
		r.drawLine(img, line, tops[i], faces.Face(i))
	}
	return img
}

// drawLine centres one line horizontally and draws its shadow, then the
// text itself on top.
func (r *Renderer) drawLine(img *image.RGBA, line TextLine, top int, face font.Face) {
	text := norm.NFC.String(line.Text)
	if text == "" {
		return
	}

	x := CenterX(img.Bounds().Dx(), face, text)
	if line.ShadowColor != "" {
		off := line.ShadowOffset
		drawString(img, text, x+off, top+off, generator.ParseHexRGBA(line.ShadowColor), face)
	}
	drawString(img, text, x, top, generator.ParseHexRGBA(line.Color), face)
}

// TextWidth returns the width of the ink bounding box of text.
func TextWidth(face font.Face, text string) int {
	bounds, _ := font.BoundString(face, text)
	return bounds.Max.X.Ceil() - bounds.Min.X.Floor()
}

// CenterX returns the x at which text must start to be centred in a canvas
// of the given width.
func CenterX(canvasWidth int, face font.Face, text string) int {
	return (canvasWidth - TextWidth(face, text)) / 2
}

// drawString draws text with its top edge at y.
func drawString(dst draw.Image, text string, x, y int, col color.Color, face font.Face) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)
}

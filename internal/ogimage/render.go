// Package ogimage renders the site's default Open Graph preview card: a
// dark 1200x630 canvas with accent bars, corner brackets and centered
// title/subtitle text.
package ogimage

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Open Graph standard dimensions.
const (
	Width  = 1200
	Height = 630
)

const (
	barInsetX  = 100
	barOffsetY = 120
	barHeight  = 4

	cornerInset     = 80
	cornerSize      = 40
	cornerThickness = 4

	titleOffsetY    = -50 // glyph box top relative to vertical center
	subtitleOffsetY = 20
)

// Spec is the text content of the card.
type Spec struct {
	Title    string
	Subtitle string
}

// Render draws the full card onto a fresh canvas.
func Render(spec Spec) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	// Accent bars above and below the text block.
	fillRect(img, barInsetX, Height/2-barOffsetY, Width-barInsetX, Height/2-barOffsetY+barHeight, Accent)
	fillRect(img, barInsetX, Height/2+barOffsetY, Width-barInsetX, Height/2+barOffsetY+barHeight, Accent)

	drawCorners(img)

	f := loadFaces()
	drawCenteredText(img, spec.Title, f.title, Height/2+titleOffsetY, Text)
	drawCenteredText(img, spec.Subtitle, f.subtitle, Height/2+subtitleOffsetY, Primary)

	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(c), image.Point{}, draw.Src)
}

// drawCorners draws an L-shaped bracket near each canvas corner.
func drawCorners(img *image.RGBA) {
	// Top-left
	fillRect(img, cornerInset, cornerInset, cornerInset+cornerSize, cornerInset+cornerThickness, Accent)
	fillRect(img, cornerInset, cornerInset, cornerInset+cornerThickness, cornerInset+cornerSize, Accent)

	// Top-right
	fillRect(img, Width-cornerInset-cornerSize, cornerInset, Width-cornerInset, cornerInset+cornerThickness, Accent)
	fillRect(img, Width-cornerInset-cornerThickness, cornerInset, Width-cornerInset, cornerInset+cornerSize, Accent)

	// Bottom-left
	fillRect(img, cornerInset, Height-cornerInset-cornerThickness, cornerInset+cornerSize, Height-cornerInset, Accent)
	fillRect(img, cornerInset, Height-cornerInset-cornerSize, cornerInset+cornerThickness, Height-cornerInset, Accent)

	// Bottom-right
	fillRect(img, Width-cornerInset-cornerSize, Height-cornerInset-cornerThickness, Width-cornerInset, Height-cornerInset, Accent)
	fillRect(img, Width-cornerInset-cornerThickness, Height-cornerInset-cornerSize, Width-cornerInset, Height-cornerInset, Accent)
}

// drawCenteredText centers s horizontally and places the top of its glyph
// box at top.
func drawCenteredText(img *image.RGBA, s string, face font.Face, top int, c color.RGBA) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: (fixed.I(Width) - width) / 2,
		Y: fixed.I(top) + face.Metrics().Ascent,
	}
	d.DrawString(s)
}

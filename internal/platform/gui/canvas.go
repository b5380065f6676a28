package gui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/grid-arcade/internal/core"
)

// hudFace is the bitmap font used for HUD text.
var hudFace font.Face = basicfont.Face7x13

// Canvas adapts an ebiten image to core.Canvas. Units are pixels.
type Canvas struct {
	img *ebiten.Image
}

// NewCanvas wraps dst for one frame of drawing.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{img: dst}
}

// Size returns the image size in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole image.
func (c *Canvas) Clear(col core.Color) {
	c.img.Fill(toColor(col))
}

// FillRect draws a filled rectangle. Ebiten clips to the image bounds.
func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(c.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), toColor(col), false)
}

// DrawText draws one line with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y int, s string, col core.Color) {
	text.Draw(c.img, s, hudFace, x, y+hudFace.Metrics().Ascent.Ceil(), toColor(col))
}

// TextSize measures one line in the HUD font.
func (c *Canvas) TextSize(s string) (int, int) {
	return font.MeasureString(hudFace, s).Ceil(), hudFace.Metrics().Height.Ceil()
}

// toColor converts a palette entry to an RGBA color.
func toColor(c core.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

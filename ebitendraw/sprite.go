package ebitendraw

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is a rectangular region of an atlas page. Sprites are small values,
// compare equal when they show the same region, and are drawn by Backend.
type Sprite struct {
	Page *ebiten.Image

	// Rect is the region on Page, in Page's pixel coordinates.
	Rect image.Rectangle

	// Rotated is true if the region is stored 90 degrees clockwise on Page,
	// as TexturePacker does. Rect is then the stored, rotated rectangle.
	Rotated bool
}

// NewSprite returns a sprite covering the whole of img.
func NewSprite(img *ebiten.Image) Sprite {
	return Sprite{Page: img, Rect: img.Bounds()}
}

// Size returns the sprite's width and height as displayed.
func (s Sprite) Size() (w, h int) {
	if s.Rotated {
		return s.Rect.Dy(), s.Rect.Dx()
	}
	return s.Rect.Dx(), s.Rect.Dy()
}

// WidthPerHeight returns the displayed width divided by the displayed
// height, or 1 for an empty sprite.
func (s Sprite) WidthPerHeight() float64 {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return 1
	}
	return float64(w) / float64(h)
}

// Empty reports whether the sprite has nothing to draw.
func (s Sprite) Empty() bool {
	return s.Page == nil || s.Rect.Empty()
}

// srcPoint maps texture coordinates, (0,0) bottom-left and (1,1) top-right
// of the displayed sprite, to pixels on the page.
func (s Sprite) srcPoint(u, v float64) (float32, float32) {
	r := s.Rect
	if s.Rotated {
		return float32(float64(r.Min.X) + v*float64(r.Dx())),
			float32(float64(r.Min.Y) + u*float64(r.Dy()))
	}
	return float32(float64(r.Min.X) + u*float64(r.Dx())),
		float32(float64(r.Max.Y) - v*float64(r.Dy()))
}

// SolidColor returns a sprite that draws as a flat color. The sprite samples
// the center pixel of a 3x3 image so linear filtering never blends in the
// transparent surroundings.
func SolidColor(c color.Color) Sprite {
	img := ebiten.NewImage(3, 3)
	img.Fill(c)
	return Sprite{Page: img, Rect: image.Rect(1, 1, 2, 2)}
}

// magenta placeholder singleton, created on first use.
var magentaImage *ebiten.Image

func ensureMagentaImage() *ebiten.Image {
	if magentaImage == nil {
		magentaImage = ebiten.NewImage(1, 1)
		magentaImage.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return magentaImage
}

// Placeholder returns the 1x1 magenta sprite drawn in place of missing atlas
// regions.
func Placeholder() Sprite {
	return Sprite{Page: ensureMagentaImage(), Rect: image.Rect(0, 0, 1, 1)}
}

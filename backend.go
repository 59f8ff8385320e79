package imui

import "fmt"

// ImageDrawer draws textured triangles with images of type I. Implemented by
// the host renderer.
type ImageDrawer[I any] interface {
	// DrawTriangle draws the triangle (-1,1), (-1,-1), (1,1) of the local
	// square, transformed by m into viewport space. uv holds the texture
	// coordinates of those three corners, with (0,0) the bottom-left corner
	// of the texture and (1,1) the top-right one.
	DrawTriangle(img I, m Matrix, uv [3]Vec2)

	// ImageWidthPerHeight returns the image's width divided by its height.
	ImageWidthPerHeight(img I) float64
}

// ImageUVDrawer is implemented by backends that draw a whole quad faster
// than two DrawTriangle calls. DrawImageUV uses it when available.
type ImageUVDrawer[I any] interface {
	DrawImageUV(img I, m Matrix, uv QuadUV)
}

// TextDrawer draws glyphs of fonts of type F. Every metric is in EM units.
type TextDrawer[F any] interface {
	// DrawGlyph draws glyph so that it covers the local square transformed
	// by m.
	DrawGlyph(font F, glyph rune, m Matrix)

	// LineHeight returns the height of a line of text, usually around 1.2.
	LineHeight(font F) float64

	GlyphInfos(font F, glyph rune) GlyphInfos

	// Kerning returns the offset to add before second when it follows
	// first. Positive values move second further away.
	Kerning(font F, first, second rune) float64
}

// Backend is the full draw contract: images of type I and fonts of type F.
type Backend[I, F any] interface {
	ImageDrawer[I]
	TextDrawer[F]
}

// GlyphInfos describes one glyph, in EM units.
type GlyphInfos struct {
	Width  float64
	Height float64

	// XOffset is the distance from the pen position to the glyph's left edge.
	XOffset float64

	// YOffset is the distance from the baseline up to the glyph's top edge.
	YOffset float64

	// XAdvance is how far the pen moves after the glyph.
	XAdvance float64
}

// QuadUV holds the texture coordinates of the four corners of a quad.
type QuadUV struct {
	TopLeft, TopRight, BottomRight, BottomLeft Vec2
}

// DefaultUV maps the whole texture onto the quad.
var DefaultUV = QuadUV{
	TopLeft:     Vec2{0, 1},
	TopRight:    Vec2{1, 1},
	BottomRight: Vec2{1, 0},
	BottomLeft:  Vec2{0, 0},
}

// DrawImage draws img stretched over the local square transformed by m. The
// image's aspect ratio is not preserved.
func DrawImage[I any](d ImageDrawer[I], img I, m Matrix) {
	DrawImageUV(d, img, m, DefaultUV)
}

// DrawImageUV draws the uv region of img stretched over the local square
// transformed by m, as two triangles. The second triangle reuses the
// top-left triangle shape, rotated half a turn.
func DrawImageUV[I any](d ImageDrawer[I], img I, m Matrix, uv QuadUV) {
	if q, ok := d.(ImageUVDrawer[I]); ok {
		q.DrawImageUV(img, m, uv)
		return
	}
	d.DrawTriangle(img, m, [3]Vec2{uv.TopLeft, uv.BottomLeft, uv.TopRight})
	d.DrawTriangle(img, m.Mul(Scale(-1)), [3]Vec2{uv.BottomRight, uv.TopRight, uv.BottomLeft})
}

// WithImages calls fn with exclusive access to the frame's backend as an
// image drawer. It panics if the backend does not draw images of type I.
// Calls must not nest.
func WithImages[I any](c DrawContext, fn func(d ImageDrawer[I])) {
	fs := c.frame
	fs.drawMu.Lock()
	defer fs.drawMu.Unlock()
	d, ok := fs.backend.(ImageDrawer[I])
	if !ok {
		panic(fmt.Sprintf("imui: backend %T does not implement ImageDrawer[%s]", fs.backend, typeName[I]()))
	}
	fn(d)
}

// WithText calls fn with exclusive access to the frame's backend as a text
// drawer. It panics if the backend does not draw fonts of type F. Calls
// must not nest.
func WithText[F any](c DrawContext, fn func(d TextDrawer[F])) {
	fs := c.frame
	fs.drawMu.Lock()
	defer fs.drawMu.Unlock()
	d, ok := fs.backend.(TextDrawer[F])
	if !ok {
		panic(fmt.Sprintf("imui: backend %T does not implement TextDrawer[%s]", fs.backend, typeName[F]()))
	}
	fn(d)
}

// ImageWidthPerHeight returns the aspect ratio of img as reported by the
// frame's backend.
func ImageWidthPerHeight[I any](c DrawContext, img I) float64 {
	var wph float64
	WithImages(c, func(d ImageDrawer[I]) {
		wph = d.ImageWidthPerHeight(img)
	})
	return wph
}

func typeName[T any]() string {
	var zero *T
	return fmt.Sprintf("%T", zero)[1:]
}

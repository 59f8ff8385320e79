// Package ebitendraw draws imui frames with Ebitengine.
//
// [Backend] implements imui.Backend[Sprite, *Font]: images are [Sprite]
// regions of atlas pages and fonts are BMFont or TrueType [Font]s. Triangles
// that sample the same page are coalesced into a single DrawTriangles32 call.
//
// [Run] opens a window and calls a draw function once per frame with a fresh
// root DrawContext, feeding it mouse and touch input.
package ebitendraw

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/imui"
)

const defaultVertexCap = 1024

// Backend implements imui.Backend[Sprite, *Font] on an ebiten.Image.
//
// Call Begin with the target before drawing a frame and End after it. A
// Backend is not safe for concurrent use; imui already serializes draw calls
// within a frame.
type Backend struct {
	// Filter is the sampling filter used for every draw. Defaults to
	// ebiten.FilterLinear.
	Filter ebiten.Filter

	// Blend is the blend mode used for every draw. The zero value is
	// source-over.
	Blend ebiten.Blend

	target *ebiten.Image
	dst    image.Rectangle

	page  *ebiten.Image
	verts []ebiten.Vertex
	inds  []uint32

	drawCalls int
}

var (
	_ imui.Backend[Sprite, *Font] = (*Backend)(nil)
	_ imui.ImageUVDrawer[Sprite]  = (*Backend)(nil)
)

// NewBackend creates a Backend with linear filtering.
func NewBackend() *Backend {
	return &Backend{
		Filter: ebiten.FilterLinear,
		verts:  make([]ebiten.Vertex, 0, defaultVertexCap),
		inds:   make([]uint32, 0, defaultVertexCap*3/2),
	}
}

// Begin starts drawing into target. The root viewport covers target's
// bounds, which may be a sub-image.
func (b *Backend) Begin(target *ebiten.Image) {
	b.Flush()
	b.target = target
	b.dst = target.Bounds()
	b.drawCalls = 0
}

// End submits every pending triangle and releases the target.
func (b *Backend) End() {
	b.Flush()
	b.target = nil
}

// DrawCalls returns the number of DrawTriangles32 calls issued since Begin.
func (b *Backend) DrawCalls() int {
	return b.drawCalls
}

// DrawTriangle implements imui.ImageDrawer.
func (b *Backend) DrawTriangle(s Sprite, m imui.Matrix, uv [3]imui.Vec2) {
	if s.Empty() {
		return
	}
	b.use(s.Page)
	base := uint32(len(b.verts))
	corners := [3]imui.Vec2{{X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: 1}}
	for i, c := range corners {
		b.verts = append(b.verts, b.vertex(s, m, c, uv[i]))
	}
	b.inds = append(b.inds, base, base+1, base+2)
}

// DrawImageUV implements imui.ImageUVDrawer with four vertices per quad.
func (b *Backend) DrawImageUV(s Sprite, m imui.Matrix, uv imui.QuadUV) {
	if s.Empty() {
		return
	}
	b.use(s.Page)
	base := uint32(len(b.verts))

	// TL, TR, BL, BR
	b.verts = append(b.verts,
		b.vertex(s, m, imui.Vec2{X: -1, Y: 1}, uv.TopLeft),
		b.vertex(s, m, imui.Vec2{X: 1, Y: 1}, uv.TopRight),
		b.vertex(s, m, imui.Vec2{X: -1, Y: -1}, uv.BottomLeft),
		b.vertex(s, m, imui.Vec2{X: 1, Y: -1}, uv.BottomRight),
	)
	// Two triangles: TL-TR-BL, TR-BR-BL
	b.inds = append(b.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// ImageWidthPerHeight implements imui.ImageDrawer.
func (b *Backend) ImageWidthPerHeight(s Sprite) float64 {
	return s.WidthPerHeight()
}

// DrawGlyph implements imui.TextDrawer.
func (b *Backend) DrawGlyph(f *Font, r rune, m imui.Matrix) {
	s, ok := f.sprite(r)
	if !ok {
		return
	}
	b.DrawImageUV(s, m, imui.DefaultUV)
}

// LineHeight implements imui.TextDrawer.
func (b *Backend) LineHeight(f *Font) float64 {
	return f.LineHeight()
}

// GlyphInfos implements imui.TextDrawer.
func (b *Backend) GlyphInfos(f *Font, r rune) imui.GlyphInfos {
	return f.GlyphInfos(r)
}

// Kerning implements imui.TextDrawer.
func (b *Backend) Kerning(f *Font, first, second rune) float64 {
	return f.Kerning(first, second)
}

// use switches the batch to page, flushing triangles of another page.
func (b *Backend) use(page *ebiten.Image) {
	if b.page != page {
		b.Flush()
		b.page = page
	}
}

// vertex maps the local point p through m into target pixels and the
// texture coordinate uv into pixels of the sprite's page.
func (b *Backend) vertex(s Sprite, m imui.Matrix, p, uv imui.Vec2) ebiten.Vertex {
	x, y := m.TransformPoint(p.X, p.Y)
	dx, dy := ndcToPixels(b.dst, x, y)
	sx, sy := s.srcPoint(uv.X, uv.Y)
	return ebiten.Vertex{
		DstX:   dx,
		DstY:   dy,
		SrcX:   sx,
		SrcY:   sy,
		ColorR: 1,
		ColorG: 1,
		ColorB: 1,
		ColorA: 1,
	}
}

// ndcToPixels maps root viewport coordinates onto dst, y pointing down.
func ndcToPixels(dst image.Rectangle, x, y float64) (float32, float32) {
	return float32(float64(dst.Min.X) + (x+1)/2*float64(dst.Dx())),
		float32(float64(dst.Min.Y) + (1-y)/2*float64(dst.Dy()))
}

// Flush submits accumulated vertices as a single DrawTriangles32 call.
func (b *Backend) Flush() {
	if len(b.verts) == 0 {
		return
	}
	if b.target == nil || b.page == nil {
		b.verts = b.verts[:0]
		b.inds = b.inds[:0]
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = b.Blend
	triOp.Filter = b.Filter
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	b.target.DrawTriangles32(b.verts, b.inds, b.page, &triOp)
	b.drawCalls++

	b.verts = b.verts[:0]
	b.inds = b.inds[:0]
}

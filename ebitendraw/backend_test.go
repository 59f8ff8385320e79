package ebitendraw

import (
	"image"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/imui"
)

const epsilon = 1e-4

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNDCToPixels(t *testing.T) {
	dst := image.Rect(0, 0, 200, 100)
	cases := []struct {
		x, y   float64
		px, py float64
	}{
		{-1, 1, 0, 0},
		{1, 1, 200, 0},
		{-1, -1, 0, 100},
		{1, -1, 200, 100},
		{0, 0, 100, 50},
	}
	for _, c := range cases {
		px, py := ndcToPixels(dst, c.x, c.y)
		assertNear(t, "px", float64(px), c.px)
		assertNear(t, "py", float64(py), c.py)
	}
}

func TestNDCToPixels_SubImageOffset(t *testing.T) {
	dst := image.Rect(50, 20, 150, 120)
	px, py := ndcToPixels(dst, -1, 1)
	assertNear(t, "px", float64(px), 50)
	assertNear(t, "py", float64(py), 20)
	px, py = ndcToPixels(dst, 1, -1)
	assertNear(t, "px", float64(px), 150)
	assertNear(t, "py", float64(py), 120)
}

func TestSpriteSrcPoint(t *testing.T) {
	s := Sprite{Rect: image.Rect(10, 20, 30, 60)}

	// (0,0) is the bottom-left corner of the sprite.
	x, y := s.srcPoint(0, 0)
	assertNear(t, "x", float64(x), 10)
	assertNear(t, "y", float64(y), 60)

	x, y = s.srcPoint(1, 1)
	assertNear(t, "x", float64(x), 30)
	assertNear(t, "y", float64(y), 20)
}

func TestSpriteSrcPoint_Rotated(t *testing.T) {
	// Displayed 40 wide and 20 tall, stored rotated as 20x40.
	s := Sprite{Rect: image.Rect(0, 0, 20, 40), Rotated: true}
	if w, h := s.Size(); w != 40 || h != 20 {
		t.Fatalf("Size = %dx%d, want 40x20", w, h)
	}
	assertNear(t, "WidthPerHeight", s.WidthPerHeight(), 2)

	checks := []struct {
		u, v   float64
		sx, sy float64
	}{
		{0, 1, 20, 0},  // top-left
		{1, 1, 20, 40}, // top-right
		{0, 0, 0, 0},   // bottom-left
		{1, 0, 0, 40},  // bottom-right
	}
	for _, c := range checks {
		x, y := s.srcPoint(c.u, c.v)
		assertNear(t, "sx", float64(x), c.sx)
		assertNear(t, "sy", float64(y), c.sy)
	}
}

func TestSpriteWidthPerHeight_Empty(t *testing.T) {
	if got := (Sprite{}).WidthPerHeight(); got != 1 {
		t.Errorf("WidthPerHeight = %v, want 1", got)
	}
	if !(Sprite{}).Empty() {
		t.Error("zero Sprite should be empty")
	}
}

func TestBackendVertex(t *testing.T) {
	b := NewBackend()
	b.dst = image.Rect(0, 0, 100, 100)
	s := Sprite{Rect: image.Rect(0, 0, 8, 8)}

	// Bottom-right quarter of the viewport.
	m := imui.Translate(0.5, -0.5).Mul(imui.Scale(0.5))
	v := b.vertex(s, m, imui.Vec2{X: -1, Y: 1}, imui.Vec2{X: 0, Y: 1})
	assertNear(t, "DstX", float64(v.DstX), 50)
	assertNear(t, "DstY", float64(v.DstY), 50)
	assertNear(t, "SrcX", float64(v.SrcX), 0)
	assertNear(t, "SrcY", float64(v.SrcY), 0)
	if v.ColorA != 1 {
		t.Errorf("ColorA = %v, want 1", v.ColorA)
	}
}

func TestBackendBatchesPerPage(t *testing.T) {
	b := NewBackend()
	b.dst = image.Rect(0, 0, 10, 10)
	pageA := ebiten.NewImage(4, 4)
	pageB := ebiten.NewImage(4, 4)
	a := NewSprite(pageA)

	b.DrawImageUV(a, imui.Identity(), imui.DefaultUV)
	b.DrawTriangle(a, imui.Identity(), [3]imui.Vec2{{X: 0, Y: 1}, {}, {X: 1, Y: 1}})
	if len(b.verts) != 7 || len(b.inds) != 9 {
		t.Fatalf("batch has %d verts and %d indices, want 7 and 9", len(b.verts), len(b.inds))
	}

	// Switching page starts a new batch. Without a target the old one is
	// dropped.
	b.DrawImageUV(NewSprite(pageB), imui.Identity(), imui.DefaultUV)
	if len(b.verts) != 4 || b.page != pageB {
		t.Fatalf("batch has %d verts, want 4 on the new page", len(b.verts))
	}
}

func TestBackendSkipsEmptySprites(t *testing.T) {
	b := NewBackend()
	b.DrawImageUV(Sprite{}, imui.Identity(), imui.DefaultUV)
	b.DrawTriangle(Sprite{}, imui.Identity(), [3]imui.Vec2{})
	if len(b.verts) != 0 {
		t.Errorf("empty sprite produced %d vertices", len(b.verts))
	}
}

func TestBackendThroughWidgets(t *testing.T) {
	screen := ebiten.NewImage(64, 32)
	b := NewBackend()
	page := ebiten.NewImage(8, 8)

	ctx := imui.NewSession().BeginFrame(imui.Frame{Width: 64, Height: 32, Backend: b})
	b.Begin(screen)
	imui.WithImages(ctx, func(d imui.ImageDrawer[Sprite]) {
		imui.DrawImage(d, NewSprite(page), ctx.Matrix())
		imui.DrawImage(d, NewSprite(page), ctx.Matrix())
	})
	b.End()

	if b.DrawCalls() != 1 {
		t.Errorf("DrawCalls = %d, want 1", b.DrawCalls())
	}
	if len(b.verts) != 0 {
		t.Error("End left vertices pending")
	}
}

package widget

import (
	"fmt"

	"github.com/phanxgames/imui"
)

// Borders gives the size of a nine-patch image's border slices, as
// fractions of the image's width (Left, Right) and height (Top, Bottom).
type Borders struct {
	Top, Right, Bottom, Left float64
}

func (b Borders) check() {
	if !(b.Top > 0) || !(b.Right > 0) || !(b.Bottom > 0) || !(b.Left > 0) {
		panic(fmt.Sprintf("widget: nine-patch borders must be positive, got %+v", b))
	}
	if b.Top+b.Bottom > 1 || b.Left+b.Right > 1 {
		panic(fmt.Sprintf("widget: nine-patch borders overlap, got %+v", b))
	}
}

// Image9 draws img as a nine-patch covering ctx. The corners keep their
// shape, the edges stretch along one axis and the middle stretches along
// both.
//
// leftBorder is the width of the drawn left border as a fraction of ctx's
// width. The other borders are sized to keep the slices at the same scale as
// the left one.
func Image9[I any](ctx imui.DrawContext, leftBorder float64, img I, b Borders) {
	b.check()
	imgWPH := imui.ImageWidthPerHeight(ctx, img)
	wph := ctx.WidthPerHeight()

	top := leftBorder * b.Top / b.Left * wph / imgWPH
	right := top * b.Right / b.Top / wph * imgWPH
	bottom := right * b.Bottom / b.Right * wph / imgWPH

	midW := 1 - leftBorder - right
	midH := 1 - top - bottom

	u0, u1 := b.Left, 1-b.Right
	v0, v1 := b.Bottom, 1-b.Top

	pieces := []struct {
		w, h  float64
		align imui.Alignment
		uv    imui.QuadUV
	}{
		{leftBorder, top, imui.AlignTopLeft, quad(0, v1, u0, 1)},
		{right, top, imui.AlignTopRight, quad(u1, v1, 1, 1)},
		{right, bottom, imui.AlignBottomRight, quad(u1, 0, 1, v0)},
		{leftBorder, bottom, imui.AlignBottomLeft, quad(0, 0, u0, v0)},
		{midW, top, imui.AlignTop, quad(u0, v1, u1, 1)},
		{leftBorder, midH, imui.AlignLeft, quad(0, v0, u0, v1)},
		{midW, bottom, imui.AlignBottom, quad(u0, 0, u1, v0)},
		{right, midH, imui.AlignRight, quad(u1, v0, 1, v1)},
		{midW, midH, imui.AlignCenter, quad(u0, v0, u1, v1)},
	}

	imui.WithImages(ctx, func(d imui.ImageDrawer[I]) {
		for _, p := range pieces {
			piece := ctx.Rescale(p.w, p.h, p.align)
			imui.DrawImageUV(d, img, piece.Matrix(), p.uv)
		}
	})
	markHovered(ctx)
}

// Image9Button draws a nine-patch button. See Image9 and ImageButton.
func Image9Button[I any](ctx imui.DrawContext, leftBorder float64, normal, hovered, active I, b Borders) imui.Interaction {
	id := ctx.ReserveWidgetID()
	visual, result := ctx.Interact(id)
	Image9(ctx, leftBorder, pick(visual, normal, hovered, active), b)
	return result
}

// quad returns the texture coordinates of the region from (u0, v0)
// bottom-left to (u1, v1) top-right.
func quad(u0, v0, u1, v1 float64) imui.QuadUV {
	return imui.QuadUV{
		TopLeft:     imui.Vec2{X: u0, Y: v1},
		TopRight:    imui.Vec2{X: u1, Y: v1},
		BottomRight: imui.Vec2{X: u1, Y: v0},
		BottomLeft:  imui.Vec2{X: u0, Y: v0},
	}
}

package widget

import (
	"fmt"
	"math"

	"github.com/phanxgames/imui"
)

func checkProgress(progress float64) {
	if !(progress >= 0 && progress <= 1) {
		panic(fmt.Sprintf("widget: progress must be in [0, 1], got %v", progress))
	}
}

// ProgressBar draws a horizontal bar at the aspect ratio of empty, as large
// as fits in ctx. The bar fills with full from the side given by direction.
// progress must be in [0, 1].
func ProgressBar[I any](ctx imui.DrawContext, empty, full I, progress float64, direction imui.HorizontalAlignment, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	ratio := imui.ImageWidthPerHeight(ctx, empty)
	StretchProgressBar(ctx.EnforceAspectRatioDownscale(ratio, align), empty, full, progress, direction)
}

// StretchProgressBar is like ProgressBar but covers the whole of ctx.
func StretchProgressBar[I any](ctx imui.DrawContext, empty, full I, progress float64, direction imui.HorizontalAlignment) {
	checkProgress(progress)
	Stretch(ctx, empty)
	if progress == 0 {
		return
	}

	// The filled part shows the matching slice of full, not a squeezed copy.
	var u0 float64
	switch direction {
	case imui.HAlignRight:
		u0 = 1 - progress
	case imui.HAlignCenter:
		u0 = (1 - progress) / 2
	}
	filled := ctx.HorizontalRescale(progress, direction)
	imui.WithImages(ctx, func(d imui.ImageDrawer[I]) {
		imui.DrawImageUV(d, full, filled.Matrix(), quad(u0, 0, u0+progress, 1))
	})
}

// CircularProgressBar draws a round progress indicator at the aspect ratio
// of empty, as large as fits in ctx. full is revealed clockwise from twelve
// o'clock. progress must be in [0, 1].
func CircularProgressBar[I any](ctx imui.DrawContext, empty, full I, progress float64, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	ratio := imui.ImageWidthPerHeight(ctx, empty)
	StretchCircularProgressBar(ctx.EnforceAspectRatioDownscale(ratio, align), empty, full, progress)
}

// StretchCircularProgressBar is like CircularProgressBar but covers the
// whole of ctx.
//
// full is revealed with eight triangles, two per quadrant, each sweeping an
// eighth of the turn. A partially revealed triangle is squeezed towards its
// leading edge.
func StretchCircularProgressBar[I any](ctx imui.DrawContext, empty, full I, progress float64) {
	checkProgress(progress)
	Stretch(ctx, empty)

	base := ctx.Matrix()
	quarter := -math.Pi / 2

	imui.WithImages(ctx, func(d imui.ImageDrawer[I]) {
		// First half of each quadrant: from the axis towards the corner.
		for q := 0; q < 4; q++ {
			p := eighthProgress(progress, 0.25*float64(q))
			if p == 0 {
				continue
			}
			m := imui.Rotate(float64(q) * quarter).
				Mul(imui.ScaleWH(0.5*p, 0.5)).
				Mul(imui.Translate(1, 1))
			var uv1, uv3 imui.Vec2
			switch q {
			case 0:
				uv1, uv3 = imui.Vec2{X: 0.5, Y: 1}, imui.Vec2{X: 0.5 + 0.5*p, Y: 1}
			case 1:
				uv1, uv3 = imui.Vec2{X: 1, Y: 0.5}, imui.Vec2{X: 1, Y: 0.5 - 0.5*p}
			case 2:
				uv1, uv3 = imui.Vec2{X: 0.5, Y: 0}, imui.Vec2{X: 0.5 - 0.5*p, Y: 0}
			case 3:
				uv1, uv3 = imui.Vec2{X: 0, Y: 0.5}, imui.Vec2{X: 0, Y: 0.5 + 0.5*p}
			}
			d.DrawTriangle(full, base.Mul(m), [3]imui.Vec2{uv1, {X: 0.5, Y: 0.5}, uv3})
		}

		// Second half of each quadrant: from the corner towards the next axis.
		for q := 0; q < 4; q++ {
			p := eighthProgress(progress, 0.125+0.25*float64(q))
			if p == 0 {
				continue
			}
			m := imui.Rotate(float64(q+1) * quarter).
				Mul(imui.SkewX(-math.Pi / 4)).
				Mul(imui.ScaleWH(0.5*p, 0.5)).
				Mul(imui.Translate(1, 1))
			var uv1, uv3 imui.Vec2
			switch q {
			case 0:
				uv1, uv3 = imui.Vec2{X: 1, Y: 1}, imui.Vec2{X: 1, Y: 1 - 0.5*p}
			case 1:
				uv1, uv3 = imui.Vec2{X: 1, Y: 0}, imui.Vec2{X: 1 - 0.5*p, Y: 0}
			case 2:
				uv1, uv3 = imui.Vec2{X: 0, Y: 0}, imui.Vec2{X: 0, Y: 0.5 * p}
			case 3:
				uv1, uv3 = imui.Vec2{X: 0, Y: 1}, imui.Vec2{X: 0.5 * p, Y: 1}
			}
			d.DrawTriangle(full, base.Mul(m), [3]imui.Vec2{uv1, {X: 0.5, Y: 0.5}, uv3})
		}
	})
}

// eighthProgress returns how much of the eighth of a turn starting at start
// is covered by progress, in [0, 1].
func eighthProgress(progress, start float64) float64 {
	p := (progress - start) / 0.125
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p
}

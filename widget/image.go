// Package widget provides ready-made imui widgets: images, buttons,
// nine-patch frames, text labels and progress bars.
//
// Every widget is a plain function drawing into the given context. Image
// types are whatever the frame's backend draws (imui.ImageDrawer[I]); font
// types likewise (imui.TextDrawer[F]).
package widget

import "github.com/phanxgames/imui"

// Image draws img at its natural aspect ratio, as large as fits in ctx.
func Image[I any](ctx imui.DrawContext, img I, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	ratio := imui.ImageWidthPerHeight(ctx, img)
	Stretch(ctx.EnforceAspectRatioDownscale(ratio, align), img)
}

// Stretch draws img over the whole of ctx, ignoring its aspect ratio.
func Stretch[I any](ctx imui.DrawContext, img I) {
	markHovered(ctx)
	imui.WithImages(ctx, func(d imui.ImageDrawer[I]) {
		imui.DrawImage(d, img, ctx.Matrix())
	})
}

// Cover draws img at its natural aspect ratio, as small as covers ctx. The
// image overflows ctx on one axis.
func Cover[I any](ctx imui.DrawContext, img I, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	ratio := imui.ImageWidthPerHeight(ctx, img)
	Stretch(ctx.EnforceAspectRatioUpscale(ratio, align), img)
}

// markHovered sets the frame's hover flag if the cursor is over ctx.
// Decorative widgets call it so that clicks on them do not fall through to
// whatever lies under the UI.
func markHovered(ctx imui.DrawContext) {
	if !ctx.CursorHoveredWidget() && ctx.IsCursorHovering() {
		ctx.SetCursorHoveredWidget()
	}
}

package widget

import "github.com/phanxgames/imui"

// ImageButton draws a button at the aspect ratio of normal, as large as fits
// in ctx. The hovered and active images are shown while the cursor is over
// the button and while it holds the pointer.
//
// Call it once per frame for each button, in a stable order.
func ImageButton[I any](ctx imui.DrawContext, normal, hovered, active I, align imui.Alignment) imui.Interaction {
	ctx = ctx.AnimationStop()
	ratio := imui.ImageWidthPerHeight(ctx, normal)
	return StretchButton(ctx.EnforceAspectRatioDownscale(ratio, align), normal, hovered, active)
}

// StretchButton is like ImageButton but covers the whole of ctx.
func StretchButton[I any](ctx imui.DrawContext, normal, hovered, active I) imui.Interaction {
	id := ctx.ReserveWidgetID()
	visual, result := ctx.Interact(id)
	img := pick(visual, normal, hovered, active)
	imui.WithImages(ctx, func(d imui.ImageDrawer[I]) {
		imui.DrawImage(d, img, ctx.Matrix())
	})
	return result
}

// pick returns the image matching visual.
func pick[I any](visual imui.Visual, normal, hovered, active I) I {
	switch visual {
	case imui.VisualActive:
		return active
	case imui.VisualHovered:
		return hovered
	default:
		return normal
	}
}

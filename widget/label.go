package widget

import "github.com/phanxgames/imui"

// placedGlyph is a glyph positioned in text space, where one unit is one EM,
// the baseline of the line is y=0 and the pen starts at x=0.
type placedGlyph struct {
	glyph rune
	m     imui.Matrix
}

// layoutText positions every glyph of text on a single line and returns the
// width of the line in EMs.
func layoutText[F any](d imui.TextDrawer[F], font F, text string) ([]placedGlyph, float64) {
	glyphs := make([]placedGlyph, 0, len(text))
	var (
		x    float64
		prev rune
		last imui.GlyphInfos
	)
	for i, r := range []rune(text) {
		info := d.GlyphInfos(font, r)
		if i > 0 {
			x += d.Kerning(font, prev, r)
		}
		m := imui.Translate(x+info.XOffset, info.YOffset-info.Height).
			Mul(imui.ScaleWH(info.Width, info.Height)).
			Mul(imui.Translate(0.5, 0.5)).
			Mul(imui.Scale(0.5))
		glyphs = append(glyphs, placedGlyph{glyph: r, m: m})
		x += info.XAdvance
		prev, last = r, info
	}
	if len(glyphs) > 0 {
		// The line ends at the right edge of the last glyph, not at its
		// advance.
		x += last.XOffset + last.Width - last.XAdvance
	}
	return glyphs, x
}

// drawText lays out text and draws it into the context returned by place,
// which receives the width/height ratio of the line. Nothing is drawn for
// empty text.
func drawText[F any](ctx imui.DrawContext, font F, text string, place func(ratio float64) imui.DrawContext) {
	imui.WithText(ctx, func(d imui.TextDrawer[F]) {
		glyphs, width := layoutText(d, font, text)
		if len(glyphs) == 0 || !(width > 0) {
			return
		}
		target := place(width)
		markHovered(target)

		// Map [0,width]x[0,1] onto the local [-1,1]² square.
		recenter := imui.ScaleWH(2/width, 2).Mul(imui.Translate(-width/2, -0.5))
		final := target.Matrix().Mul(recenter)
		for _, g := range glyphs {
			d.DrawGlyph(font, g.glyph, final.Mul(g.m))
		}
	})
}

// Label draws text on a single line filling the height of ctx. The text
// keeps its proportions and is positioned horizontally by align; it may
// overflow ctx when too long.
func Label[F any](ctx imui.DrawContext, font F, text string, align imui.HorizontalAlignment) {
	ctx = ctx.AnimationStop()
	drawText(ctx, font, text, func(ratio float64) imui.DrawContext {
		return ctx.HorizontalRescale(ratio/ctx.WidthPerHeight(), align)
	})
}

// LabelContain draws text as large as fits in ctx.
func LabelContain[F any](ctx imui.DrawContext, font F, text string, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	drawText(ctx, font, text, func(ratio float64) imui.DrawContext {
		return ctx.EnforceAspectRatioDownscale(ratio, align)
	})
}

// LabelCover draws text as small as covers ctx.
func LabelCover[F any](ctx imui.DrawContext, font F, text string, align imui.Alignment) {
	ctx = ctx.AnimationStop()
	drawText(ctx, font, text, func(ratio float64) imui.DrawContext {
		return ctx.EnforceAspectRatioUpscale(ratio, align)
	})
}

// MeasureText returns the width of text in EMs, which is also the
// width/height ratio a label of that text occupies.
func MeasureText[F any](ctx imui.DrawContext, font F, text string) float64 {
	var width float64
	imui.WithText(ctx, func(d imui.TextDrawer[F]) {
		_, width = layoutText(d, font, text)
	})
	return width
}

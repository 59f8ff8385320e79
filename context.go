package imui

import (
	"fmt"
	"time"
)

// DrawContext describes a rectangular area of the viewport and everything
// needed to draw a widget in it. Layout methods never modify the receiver;
// each returns a new context sharing the frame state of its parent.
//
// The zero value is not usable. Obtain a root context from
// Session.BeginFrame.
type DrawContext struct {
	frame *frameState

	matrix Matrix
	width  float64
	height float64

	// When animating, the effective transform blends from animFrom to
	// matrix by animBlend.
	animating bool
	animFrom  Matrix
	animBlend float64

	cursor    Vec2 // root viewport space, identical for every node
	hasCursor bool
	pressed   bool
	released  bool
}

// Matrix returns the effective transform, which maps the context's local
// [-1,1]² square into root viewport space. While an animation is running
// this is a per-cell blend between the animation's start transform and the
// current target transform.
func (c DrawContext) Matrix() Matrix {
	if c.animating {
		return c.animFrom.Lerp(c.matrix, c.animBlend)
	}
	return c.matrix
}

// Animating reports whether an animation started with AnimationStart is in
// effect.
func (c DrawContext) Animating() bool {
	return c.animating
}

// Width returns the logical width. Only used for aspect-ratio decisions.
func (c DrawContext) Width() float64 { return c.width }

// Height returns the logical height. Only used for aspect-ratio decisions.
func (c DrawContext) Height() float64 { return c.height }

// WidthPerHeight returns the aspect ratio of the context.
func (c DrawContext) WidthPerHeight() float64 {
	return c.width / c.height
}

// Cursor returns the cursor position in root viewport space.
func (c DrawContext) Cursor() (Vec2, bool) {
	return c.cursor, c.hasCursor
}

// CursorPressed reports whether the button went down this frame.
func (c DrawContext) CursorPressed() bool { return c.pressed }

// CursorReleased reports whether the button went up this frame.
func (c DrawContext) CursorReleased() bool { return c.released }

// CursorHoveredWidget reports whether a widget drawn so far this frame was
// under the cursor.
func (c DrawContext) CursorHoveredWidget() bool {
	return c.frame.hovered.Load()
}

// SetCursorHoveredWidget records that the cursor is over a widget. The flag
// stays set for the rest of the frame.
func (c DrawContext) SetCursorHoveredWidget() {
	c.frame.hovered.Store(true)
}

// ReserveWidgetID returns a new id, different from every other id reserved
// this frame. Call it exactly once per widget per frame, at the same point
// of the draw sequence, so that a widget gets the same id every frame.
func (c DrawContext) ReserveWidgetID() WidgetID {
	return WidgetID(c.frame.nextID.Add(1))
}

// derive returns a copy of c whose target transform is c's target transform
// followed by local, with new logical dimensions.
func (c DrawContext) derive(local Matrix, width, height float64) DrawContext {
	c.matrix = c.matrix.Mul(local)
	c.width = width
	c.height = height
	return c
}

// Margin returns a context shrunk by the given fractions of the current
// width (left, right) and height (top, bottom).
func (c DrawContext) Margin(top, right, bottom, left float64) DrawContext {
	return c.derive(
		Translate(left-right, bottom-top).Mul(ScaleWH(1-right-left, 1-top-bottom)),
		c.width*(1-left-right),
		c.height*(1-top-bottom),
	)
}

// UniformMargin is like Margin, except the fractions are relative to the
// smaller of width and height. The same values then produce the same
// absolute margin on every side regardless of aspect ratio.
func (c DrawContext) UniformMargin(top, right, bottom, left float64) DrawContext {
	wph := c.WidthPerHeight()
	if wph < 1 {
		wph = 1
	}
	hpw := 1 / c.WidthPerHeight()
	if hpw < 1 {
		hpw = 1
	}
	return c.Margin(top/hpw, right/wph, bottom/hpw, left/wph)
}

// Rescale returns a context whose width and height are the given fractions
// of the current ones, positioned inside c according to align.
func (c DrawContext) Rescale(widthPercent, heightPercent float64, align Alignment) DrawContext {
	x := align.Horizontal.offset(widthPercent)
	y := align.Vertical.offset(heightPercent)
	return c.derive(
		Translate(x, y).Mul(ScaleWH(widthPercent, heightPercent)),
		c.width*widthPercent,
		c.height*heightPercent,
	)
}

// VerticalRescale keeps the width and multiplies the height by scale.
func (c DrawContext) VerticalRescale(scale float64, align VerticalAlignment) DrawContext {
	return c.derive(
		Translate(0, align.offset(scale)).Mul(ScaleWH(1, scale)),
		c.width,
		c.height*scale,
	)
}

// HorizontalRescale keeps the height and multiplies the width by scale.
func (c DrawContext) HorizontalRescale(scale float64, align HorizontalAlignment) DrawContext {
	return c.derive(
		Translate(align.offset(scale), 0).Mul(ScaleWH(scale, 1)),
		c.width*scale,
		c.height,
	)
}

// EnforceAspectRatioDownscale returns the largest context with the given
// width/height ratio that fits inside c. Only one axis shrinks; the
// alignment component for that axis positions the result.
func (c DrawContext) EnforceAspectRatioDownscale(widthPerHeight float64, align Alignment) DrawContext {
	current := c.checkAspect(widthPerHeight)
	if widthPerHeight > current {
		return c.VerticalRescale(current/widthPerHeight, align.Vertical)
	}
	return c.HorizontalRescale(widthPerHeight/current, align.Horizontal)
}

// EnforceAspectRatioUpscale returns the smallest context with the given
// width/height ratio that covers c. Only one axis grows; the alignment
// component for that axis positions the result.
func (c DrawContext) EnforceAspectRatioUpscale(widthPerHeight float64, align Alignment) DrawContext {
	current := c.checkAspect(widthPerHeight)
	if widthPerHeight > current {
		return c.HorizontalRescale(widthPerHeight/current, align.Horizontal)
	}
	return c.VerticalRescale(current/widthPerHeight, align.Vertical)
}

// checkAspect panics on degenerate aspect-ratio input and returns the
// current ratio.
func (c DrawContext) checkAspect(widthPerHeight float64) float64 {
	if !(widthPerHeight > 0) {
		panic(fmt.Sprintf("imui: aspect ratio must be positive, got %v", widthPerHeight))
	}
	if !(c.width > 0) || !(c.height > 0) {
		panic(fmt.Sprintf("imui: cannot enforce aspect ratio on a %vx%v context", c.width, c.height))
	}
	return c.WidthPerHeight()
}

// VerticalSplit splits c into n stacked rows of equal height, top first.
func (c DrawContext) VerticalSplit(n int) *SplitIter {
	return c.VerticalSplitWeights(equalWeights(n)...)
}

// VerticalSplitWeights splits c into stacked rows whose heights are
// proportional to weights, top first.
func (c DrawContext) VerticalSplitWeights(weights ...float64) *SplitIter {
	return newSplitIter(c, weights, true)
}

// HorizontalSplit splits c into n side-by-side columns of equal width, left
// first.
func (c DrawContext) HorizontalSplit(n int) *SplitIter {
	return c.HorizontalSplitWeights(equalWeights(n)...)
}

// HorizontalSplitWeights splits c into side-by-side columns whose widths are
// proportional to weights, left first.
func (c DrawContext) HorizontalSplitWeights(weights ...float64) *SplitIter {
	return newSplitIter(c, weights, false)
}

// AnimationStart begins an animation. The current effective transform is
// the animation's source; layout calls made on the returned context define
// its destination. The blend factor is sampled once, at the frame's time.
//
// To animate from the destination back to the source, reverse the
// interpolation with Reverse. Call AnimationStop before layout steps that
// should apply to the blended result rather than to the destination.
func (c DrawContext) AnimationStart(in Interpolation, start time.Time, duration time.Duration) DrawContext {
	from := c.Matrix()
	c.animBlend = Sample(in, c.frame.now, start, duration)
	c.animFrom = from
	c.animating = true
	return c
}

// AnimationStop collapses a running animation into a plain context whose
// transform is the current blended transform.
func (c DrawContext) AnimationStop() DrawContext {
	c.matrix = c.Matrix()
	c.animating = false
	c.animFrom = Matrix{}
	c.animBlend = 0
	return c
}

// Now returns the instant the frame samples animations at.
func (c DrawContext) Now() time.Time {
	return c.frame.now
}

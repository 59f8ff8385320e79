package imui

import "math"

// Local-space corners of every context, in edge-walk order.
var (
	cornerTopLeft     = Vec2{-1, 1}
	cornerTopRight    = Vec2{1, 1}
	cornerBottomRight = Vec2{1, -1}
	cornerBottomLeft  = Vec2{-1, -1}
)

// IsCursorHovering reports whether the cursor lies inside the context's area
// under the effective transform. Points on an edge count as inside. NaN
// coordinates are never inside, and neither is anything in a context of zero
// width or height.
func (c DrawContext) IsCursorHovering() bool {
	if !c.hasCursor {
		return false
	}
	m := c.Matrix()
	if _, ok := m.Invert(); !ok {
		// A collapsed area has no inside.
		return false
	}
	tl := m.project(cornerTopLeft.X, cornerTopLeft.Y)
	tr := m.project(cornerTopRight.X, cornerTopRight.Y)
	br := m.project(cornerBottomRight.X, cornerBottomRight.Y)
	bl := m.project(cornerBottomLeft.X, cornerBottomLeft.Y)

	p := c.cursor
	return insideEdge(p, tl, tr) &&
		insideEdge(p, tr, br) &&
		insideEdge(p, br, bl) &&
		insideEdge(p, bl, tl)
}

// insideEdge reports whether p-from points along from->to, i.e. their dot
// product is non-negative.
func insideEdge(p, from, to Vec2) bool {
	dot := (p.X-from.X)*(to.X-from.X) + (p.Y-from.Y)*(to.Y-from.Y)
	return dot >= 0
}

// CursorHoverCoordinates returns the cursor position in the context's local
// [-1,1]² coordinates. ok is false when there is no cursor, the transform is
// singular, or the cursor lies outside the context.
func (c DrawContext) CursorHoverCoordinates() (local Vec2, ok bool) {
	local, ok = c.cursorLocal()
	if !ok {
		return Vec2{}, false
	}
	if !inUnit(local.X) || !inUnit(local.Y) {
		return Vec2{}, false
	}
	return local, true
}

// cursorLocal maps the cursor into local coordinates without bounds checks.
func (c DrawContext) cursorLocal() (Vec2, bool) {
	if !c.hasCursor {
		return Vec2{}, false
	}
	inv, ok := c.Matrix().Invert()
	if !ok {
		return Vec2{}, false
	}
	p := inv.project(c.cursor.X, c.cursor.Y)
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return Vec2{}, false
	}
	return p, true
}

func inUnit(v float64) bool {
	return v >= -1 && v <= 1
}

// --- Shaped hit testing ---

// HitShape is a hit area in a context's local [-1,1]² coordinates, where
// (-1,-1) is the bottom-left corner and (1,1) the top-right one.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area. X, Y is its bottom-left
// corner.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area. In a non-square context it appears as
// an ellipse on screen.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitPolygon is a convex polygon hit area. Points may be in either winding
// order.
type HitPolygon struct {
	Points []Vec2
}

// Contains reports whether (x, y) lies inside the polygon using a
// cross-product sign test.
func (p HitPolygon) Contains(x, y float64) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}

	var positive, negative bool
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		cross := (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// IsCursorHoveringShape reports whether the cursor lies inside shape, given
// in the context's local coordinates. A nil shape covers the whole context.
func (c DrawContext) IsCursorHoveringShape(shape HitShape) bool {
	if shape == nil {
		return c.IsCursorHovering()
	}
	local, ok := c.cursorLocal()
	if !ok {
		return false
	}
	return shape.Contains(local.X, local.Y)
}

package imui

import (
	"math"
	"testing"
)

func TestIsCursorHovering(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, true},
		{"outside", 2, 2, false},
		{"left of", -1.5, 0, false},
		{"below", 0, -1.01, false},
		{"corner", 1, 1, true},
		{"edge", -1, 0.3, true},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCursorContext(100, 100, tt.x, tt.y)
			if got := c.IsCursorHovering(); got != tt.want {
				t.Errorf("IsCursorHovering() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsCursorHoveringNoCursor(t *testing.T) {
	if newTestContext(100, 100).IsCursorHovering() {
		t.Error("no cursor should never hover")
	}
}

func TestIsCursorHoveringEdgeIsStable(t *testing.T) {
	c := newCursorContext(100, 100, 0, 0).Rescale(0.5, 0.5, AlignBottomLeft)
	first := c.IsCursorHovering()
	for i := 0; i < 10; i++ {
		if c.IsCursorHovering() != first {
			t.Fatal("edge result changed between calls")
		}
	}
}

func TestIsCursorHoveringChild(t *testing.T) {
	root := newCursorContext(100, 100, 0.5, 0.5)
	chunks := root.HorizontalSplit(2).Collect()
	if chunks[0].IsCursorHovering() {
		t.Error("left chunk should not hover")
	}
	if !chunks[1].IsCursorHovering() {
		t.Error("right chunk should hover")
	}
}

func TestIsCursorHoveringRotated(t *testing.T) {
	// A diamond: the unit square rotated 45° and scaled down.
	c := newCursorContext(100, 100, 0.6, 0.0)
	c.matrix = Rotate(math.Pi / 4).Mul(Scale(0.5))
	// Diamond tip reaches 0.5*sqrt(2) ≈ 0.707 on the X axis.
	if !c.IsCursorHovering() {
		t.Error("point near tip should hover")
	}
	c.cursor = Vec2{0.5, 0.5}
	if c.IsCursorHovering() {
		t.Error("point outside diamond side should not hover")
	}
}

func TestCursorHoverCoordinates(t *testing.T) {
	c := newCursorContext(100, 100, 0.5, 0.5).Rescale(0.5, 0.5, AlignTopRight)
	local, ok := c.CursorHoverCoordinates()
	if !ok {
		t.Fatal("expected coordinates")
	}
	assertVec(t, "center", local, Vec2{0, 0})

	c = newCursorContext(100, 100, 0.75, 0.25).Rescale(0.5, 0.5, AlignTopRight)
	local, ok = c.CursorHoverCoordinates()
	if !ok {
		t.Fatal("expected coordinates")
	}
	assertVec(t, "off-center", local, Vec2{0.5, -0.5})
}

func TestCursorHoverCoordinatesRejects(t *testing.T) {
	tests := []struct {
		name string
		ctx  DrawContext
	}{
		{"outside", newCursorContext(100, 100, -0.5, 0).Rescale(0.5, 0.5, AlignTopRight)},
		{"singular", newCursorContext(100, 100, 0, 0).VerticalRescale(0, VAlignCenter)},
		{"nan", newCursorContext(100, 100, math.NaN(), 0)},
		{"no cursor", newTestContext(100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if v, ok := tt.ctx.CursorHoverCoordinates(); ok {
				t.Errorf("got %v, want none", v)
			}
		})
	}
}

// --- Hit shapes ---

func TestHitRect(t *testing.T) {
	r := HitRect{X: -1, Y: -1, Width: 1, Height: 2}
	if !r.Contains(-0.5, 0) {
		t.Error("expected inside")
	}
	if r.Contains(0.5, 0) {
		t.Error("expected outside")
	}
}

func TestHitCircle(t *testing.T) {
	c := HitCircle{Radius: 1}
	if !c.Contains(0.6, 0.6) {
		t.Error("expected inside")
	}
	if c.Contains(0.9, 0.9) {
		t.Error("corner should be outside circle")
	}
}

func TestHitPolygon(t *testing.T) {
	tri := HitPolygon{Points: []Vec2{{-1, -1}, {1, -1}, {0, 1}}}
	if !tri.Contains(0, 0) {
		t.Error("expected inside")
	}
	if tri.Contains(-0.9, 0.9) {
		t.Error("expected outside")
	}

	// Reverse winding gives the same answer.
	rev := HitPolygon{Points: []Vec2{{0, 1}, {1, -1}, {-1, -1}}}
	if !rev.Contains(0, 0) {
		t.Error("expected inside with reversed winding")
	}

	if (HitPolygon{Points: []Vec2{{0, 0}, {1, 1}}}).Contains(0.5, 0.5) {
		t.Error("degenerate polygon should contain nothing")
	}
}

func TestIsCursorHoveringShape(t *testing.T) {
	// The cursor sits in the top-right corner of a square context.
	c := newCursorContext(100, 100, 0.9, 0.9)
	if c.IsCursorHoveringShape(HitCircle{Radius: 1}) {
		t.Error("corner should be outside the inscribed circle")
	}
	if !c.IsCursorHoveringShape(HitRect{X: 0, Y: 0, Width: 1, Height: 1}) {
		t.Error("corner should be inside the top-right quadrant")
	}
	if !c.IsCursorHoveringShape(nil) {
		t.Error("nil shape should cover the whole context")
	}
}

func TestIsCursorHoveringCollapsedContext(t *testing.T) {
	cursors := []Vec2{{0, 0}, {0.9, 0}, {0, 0.9}, {-0.5, -0.5}}
	for _, p := range cursors {
		root := newCursorContext(100, 100, p.X, p.Y)
		collapsed := map[string]DrawContext{
			"vertical split gap":   root.VerticalSplitWeights(1, 0, 1).Collect()[1],
			"horizontal split gap": root.HorizontalSplitWeights(1, 0, 1).Collect()[1],
			"rescale to nothing":   root.Rescale(0, 0, AlignCenter),
			"zero width":           root.Rescale(0, 1, AlignCenter),
			"zero height":          root.Rescale(1, 0, AlignTopLeft),
		}
		for name, c := range collapsed {
			if c.IsCursorHovering() {
				t.Errorf("%s: hovered at %v", name, p)
			}
			if _, ok := c.CursorHoverCoordinates(); ok {
				t.Errorf("%s: has hover coordinates at %v", name, p)
			}
		}
	}
}

func TestIsCursorHoveringTinyContext(t *testing.T) {
	c := newCursorContext(100, 100, 0, 0).Rescale(1e-7, 1e-7, AlignCenter)
	if !c.IsCursorHovering() {
		t.Error("a tiny but non-empty context should still contain its center")
	}
}

package imui

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want Matrix) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

var sampleMatrices = map[string]Matrix{
	"identity":  Identity(),
	"translate": Translate(0.25, -0.5),
	"scale":     ScaleWH(2, 0.5),
	"rotate":    Rotate(math.Pi / 6),
	"skew":      SkewX(math.Pi / 8),
	"combined":  Translate(1, 2).Mul(Rotate(0.3)).Mul(ScaleWH(0.5, 3)),
}

// --- Constructors ---

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"identity", Identity(), Matrix{1, 0, 0, 1, 0, 0}},
		{"translate", Translate(3, -4), Matrix{1, 0, 0, 1, 3, -4}},
		{"scale", Scale(2), Matrix{2, 0, 0, 2, 0, 0}},
		{"scaleWH", ScaleWH(2, 5), Matrix{2, 0, 0, 5, 0, 0}},
		// cos(90)=0, sin(90)=1 → a=0, b=1, c=-1, d=0
		{"rot90", Rotate(math.Pi / 2), Matrix{0, 1, -1, 0, 0, 0}},
		{"skew45", SkewX(math.Pi / 4), Matrix{1, 0, 1, 1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertMatrix(t, tt.name, tt.got, tt.want)
		})
	}
}

func TestRotateIsCounterClockwise(t *testing.T) {
	x, y := Rotate(math.Pi/2).TransformPoint(1, 0)
	assertNear(t, "x", x, 0)
	assertNear(t, "y", y, 1)
}

// --- Composition ---

func TestMulAppliesRightOperandFirst(t *testing.T) {
	// Scale then translate: (1,1) → (2,2) → (12,2)
	m := Translate(10, 0).Mul(Scale(2))
	x, y := m.TransformPoint(1, 1)
	assertNear(t, "x", x, 12)
	assertNear(t, "y", y, 2)
}

func TestMulIdentity(t *testing.T) {
	for name, a := range sampleMatrices {
		t.Run(name, func(t *testing.T) {
			assertMatrix(t, "I*A", Identity().Mul(a), a)
			assertMatrix(t, "A*I", a.Mul(Identity()), a)
		})
	}
}

func TestMulAssociative(t *testing.T) {
	a := sampleMatrices["combined"]
	b := sampleMatrices["skew"]
	c := Translate(-0.5, 0.75).Mul(Rotate(-1.2))
	assertMatrix(t, "(AB)C vs A(BC)", a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
}

// --- Inversion ---

func TestInvertRoundTrip(t *testing.T) {
	for name, a := range sampleMatrices {
		t.Run(name, func(t *testing.T) {
			inv, ok := a.Invert()
			if !ok {
				t.Fatal("expected invertible matrix")
			}
			assertMatrix(t, "A*inv(A)", a.Mul(inv), Identity())
			assertMatrix(t, "inv(A)*A", inv.Mul(a), Identity())
		})
	}
}

func TestInvertSingular(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"zero scale", ScaleWH(0, 1)},
		{"zero", Matrix{}},
		{"collapsed rows", Matrix{1, 2, 2, 4, 5, 6}},
		{"nan", Matrix{math.NaN(), 0, 0, 1, 0, 0}},
		{"infinite", Matrix{math.Inf(1), 0, 0, 1, 0, 0}},
		{"underflowing inverse", ScaleWH(1e-160, 1e-160)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.m.Invert(); ok {
				t.Errorf("Invert(%v) succeeded, want failure", tt.m)
			}
		})
	}
}

func TestInvertTinyScale(t *testing.T) {
	// Three nested 1% rescales.
	m := ScaleWH(1e-6, 1e-6).Mul(Translate(0.5, -0.5))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("tiny but non-zero scale should invert")
	}
	x, y := inv.TransformPoint(m.TransformPoint(0.25, 0.75))
	assertNear(t, "x", x, 0.25)
	assertNear(t, "y", y, 0.75)
}

func TestDeterminant(t *testing.T) {
	assertNear(t, "scale", ScaleWH(2, 3).Determinant(), 6)
	assertNear(t, "rotate", Rotate(0.7).Determinant(), 1)
	assertNear(t, "translate", Translate(9, 9).Determinant(), 1)
}

// --- Application ---

func TestApplyKeepsW(t *testing.T) {
	p := Translate(1, 2).Apply([3]float64{3, 4, 2})
	// Translation is scaled by w.
	if p != [3]float64{5, 8, 2} {
		t.Errorf("Apply = %v, want [5 8 2]", p)
	}
}

func TestProjectDividesByW(t *testing.T) {
	v := Scale(2).project(0.5, -0.25)
	assertVec(t, "project", v, Vec2{1, -0.5})
}

// --- Lerp ---

func TestLerpEndpoints(t *testing.T) {
	a := Translate(-1, 0)
	b := Translate(1, 0).Mul(Scale(0.5))
	assertMatrix(t, "t=0", a.Lerp(b, 0), a)
	assertMatrix(t, "t=1", a.Lerp(b, 1), b)
	assertMatrix(t, "t=0.5", a.Lerp(b, 0.5), Matrix{0.75, 0, 0, 0.75, 0, 0})
}

// --- Export ---

func TestMat3ColumnMajor(t *testing.T) {
	m := Matrix{1, 2, 3, 4, 5, 6}.Mat3()
	want := [3][3]float32{{1, 2, 0}, {3, 4, 0}, {5, 6, 1}}
	if m != want {
		t.Errorf("Mat3 = %v, want %v", m, want)
	}
}

func TestMat4ColumnMajor(t *testing.T) {
	m := Matrix{1, 2, 3, 4, 5, 6}.Mat4()
	want := [4][4]float32{{1, 2, 0, 0}, {3, 4, 0, 0}, {0, 0, 1, 0}, {5, 6, 0, 1}}
	if m != want {
		t.Errorf("Mat4 = %v, want %v", m, want)
	}
}

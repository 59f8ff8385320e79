package imui

import "math"

// Matrix is a 2D affine transform stored as [a, b, c, d, tx, ty]:
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// Matrices map a context's local [-1,1]² square into root viewport space.
type Matrix [6]float64

// identityMatrix is the transform that has no effect.
var identityMatrix = Matrix{1, 0, 0, 1, 0, 0}

// Identity returns the identity matrix.
func Identity() Matrix {
	return identityMatrix
}

// Translate returns a matrix that moves points by (x, y).
func Translate(x, y float64) Matrix {
	return Matrix{1, 0, 0, 1, x, y}
}

// Scale returns a matrix that scales both axes by factor.
func Scale(factor float64) Matrix {
	return Matrix{factor, 0, 0, factor, 0, 0}
}

// ScaleWH returns a matrix that multiplies widths by w and heights by h.
func ScaleWH(w, h float64) Matrix {
	return Matrix{w, 0, 0, h, 0, 0}
}

// Rotate returns a counter-clockwise rotation by radians.
func Rotate(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return Matrix{cos, sin, -sin, cos, 0, 0}
}

// SkewX returns a matrix that skews the X coordinate by radians.
func SkewX(radians float64) Matrix {
	return Matrix{1, 0, math.Tan(radians), 1, 0, 0}
}

// Mul returns m * o: o is applied first, then m.
func (m Matrix) Mul(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[2]*o[1],
		m[1]*o[0] + m[3]*o[1],
		m[0]*o[2] + m[2]*o[3],
		m[1]*o[2] + m[3]*o[3],
		m[0]*o[4] + m[2]*o[5] + m[4],
		m[1]*o[4] + m[3]*o[5] + m[5],
	}
}

// Apply transforms the homogeneous point [x, y, w]. Callers divide by the
// returned w to get a perspective-correct position.
func (m Matrix) Apply(p [3]float64) [3]float64 {
	return [3]float64{
		m[0]*p[0] + m[2]*p[1] + m[4]*p[2],
		m[1]*p[0] + m[3]*p[1] + m[5]*p[2],
		p[2],
	}
}

// TransformPoint applies m to the point (x, y).
func (m Matrix) TransformPoint(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// project applies m to (x, y, 1) and performs the homogeneous divide.
func (m Matrix) project(x, y float64) Vec2 {
	p := m.Apply([3]float64{x, y, 1})
	return Vec2{p[0] / p[2], p[1] / p[2]}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m[0]*m[3] - m[2]*m[1]
}

// Invert returns the inverse of m. ok is false when the determinant is zero,
// not finite, or too small for its reciprocal to be finite.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Determinant()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Matrix{}, false
	}
	invDet := 1.0 / det
	if math.IsInf(invDet, 0) {
		return Matrix{}, false
	}
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return Matrix{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}, true
}

// Lerp interpolates every cell of m towards to by t.
//
// This is not a decomposed scale/rotate/translate interpolation: blending two
// rotations passes through a sheared, shrunk matrix. It looks right for small
// deltas and for pure translate/scale animations.
func (m Matrix) Lerp(to Matrix, t float64) Matrix {
	var out Matrix
	for i := range m {
		out[i] = m[i] + (to[i]-m[i])*t
	}
	return out
}

// Mat3 returns m as a column-major 3x3 matrix for shader upload.
func (m Matrix) Mat3() [3][3]float32 {
	return [3][3]float32{
		{float32(m[0]), float32(m[1]), 0},
		{float32(m[2]), float32(m[3]), 0},
		{float32(m[4]), float32(m[5]), 1},
	}
}

// Mat4 returns m as a column-major 4x4 matrix for shader upload.
func (m Matrix) Mat4() [4][4]float32 {
	return [4][4]float32{
		{float32(m[0]), float32(m[1]), 0, 0},
		{float32(m[2]), float32(m[3]), 0, 0},
		{0, 0, 1, 0},
		{float32(m[4]), float32(m[5]), 0, 1},
	}
}

package core

import "math"

// Vector2 is a 2D float vector used for positions, velocities and accelerations.
// It is a value type: every operation returns a new vector and never mutates
// the receiver, so integration code assigns results explicitly.
type Vector2 struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// AddScaled returns v + o*s. This is the only integration primitive the
// simulator needs (v += a*dt, p += v*dt).
func (v Vector2) AddScaled(o Vector2, s float64) Vector2 {
	return Vector2{X: v.X + o.X*s, Y: v.Y + o.Y*s}
}

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * p.
func (v Vector2) Scale(p float64) Vector2 {
	return Vector2{X: v.X * p, Y: v.Y * p}
}

// Length returns the Euclidean length.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between v and o.
func (v Vector2) Dist(o Vector2) float64 {
	return v.Sub(o).Length()
}

// IsZero reports whether both components are exactly zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Matrix2 is a 2x2 matrix:
//
//	| XX XY |
//	| YX YY |
//
// It is an ephemeral transform rebuilt for every collision test.
type Matrix2 struct {
	XX, XY, YX, YY float64
}

// Identity returns the identity matrix.
func Identity() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// SetIdentity resets m to the identity matrix.
func (m *Matrix2) SetIdentity() {
	*m = Identity()
}

// Scaling returns a per-axis scale/reflection matrix.
func Scaling(sx, sy float64) Matrix2 {
	return Matrix2{XX: sx, YY: sy}
}

// Rotation returns the counter-clockwise rotation by alpha radians
// (in a y-up frame).
func Rotation(alpha float64) Matrix2 {
	sin, cos := math.Sincos(alpha)
	return Matrix2{XX: cos, XY: -sin, YX: sin, YY: cos}
}

// Multiply returns m * v.
func (m Matrix2) Multiply(v Vector2) Vector2 {
	return Vector2{
		X: m.XX*v.X + m.XY*v.Y,
		Y: m.YX*v.X + m.YY*v.Y,
	}
}

// Det returns the determinant.
func (m Matrix2) Det() float64 {
	return m.XX*m.YY - m.XY*m.YX
}

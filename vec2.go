package planar

import (
	"fmt"

	"cogentcore.org/core/math32"
)

type Vec2 struct {
	X float32
	Y float32
}

// UnitX is the vector ⟨1, 0⟩.
var UnitX = Vec2{1, 0}

// UnitY is the vector ⟨0, 1⟩.
var UnitY = Vec2{0, 1}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float32) Vec2 {
	return Vec2{
		X: x,
		Y: y,
	}
}

// Splat returns the vector's x and y coordinates.
func (v Vec2) Splat() (float32, float32) {
	return v.X, v.Y
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// Cross returns the two-dimensional cross product of v and o, that is, the z
// component of the 3D cross product of ⟨v.X, v.Y, 0⟩ and ⟨o.X, o.Y, 0⟩. It is
// zero for parallel or zero vectors.
func (v Vec2) Cross(o Vec2) float32 {
	return v.X*o.Y - v.Y*o.X
}

// Hypot returns the magnitude of the vector.
func (v Vec2) Hypot() float32 {
	return math32.Sqrt(v.Hypot2())
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec2.Hypot].
func (v Vec2) Hypot2() float32 {
	return v.Dot(v)
}

// Angle returns the angle in radians between the vector and ⟨1, 0⟩ in the positive y
// direction. This is atan2(y, x).
func (v Vec2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle in radians that rotates v onto o, in the
// range (−π, π]. The result is 0 if either vector has zero length.
func (v Vec2) AngleTo(o Vec2) float32 {
	return math32.Atan2(v.Cross(o), v.Dot(o))
}

// Angle returns the signed angle from a to b. See [Vec2.AngleTo].
func Angle(a, b Vec2) float32 {
	return a.AngleTo(b)
}

// VecFromAngle returns a unit vector of the given angle, which is expressed in radians.
// With θ = 0, the result is the positive x unit vector. At π/2, it is the positive y unit
// vector.
func VecFromAngle(th float32) Vec2 {
	y, x := math32.Sincos(th)
	return Vec2{
		X: x,
		Y: y,
	}
}

// Lerp linearly interpolates between two vectors.
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same angle as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec2) Normalize() Vec2 {
	return v.Mul(1.0 / v.Hypot())
}

// NormalizeSafe is like [Vec2.Normalize] but returns def if the normalized
// vector isn't finite.
func (v Vec2) NormalizeSafe(def Vec2) Vec2 {
	n := v.Normalize()
	if n.IsNaN() || n.IsInf() {
		return def
	}
	return n
}

// Rotate90CCW returns v rotated by 90° counter-clockwise (in a y-up space).
func (v Vec2) Rotate90CCW() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Rotate90CW returns v rotated by 90° clockwise (in a y-up space).
func (v Vec2) Rotate90CW() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Outer returns the outer product v·oᵀ.
func (v Vec2) Outer(o Vec2) Mat2 {
	return Mat2{
		C0: v.Mul(o.X),
		C1: v.Mul(o.Y),
	}
}

// Diag returns the diagonal matrix with v on its diagonal.
func (v Vec2) Diag() Mat2 {
	return Mat2{
		C0: Vec2{v.X, 0},
		C1: Vec2{0, v.Y},
	}
}

// MinVec returns the componentwise minimum of three vectors.
func MinVec(a, b, c Vec2) Vec2 {
	return Vec2{
		X: math32.Min(math32.Min(a.X, b.X), c.X),
		Y: math32.Min(math32.Min(a.Y, b.Y), c.Y),
	}
}

// MaxVec returns the componentwise maximum of three vectors.
func MaxVec(a, b, c Vec2) Vec2 {
	return Vec2{
		X: math32.Max(math32.Max(a.X, b.X), c.X),
		Y: math32.Max(math32.Max(a.Y, b.Y), c.Y),
	}
}

// IsInf reports whether at least one of x and y is infinite.
func (v Vec2) IsInf() bool {
	return math32.IsInf(v.X, 0) || math32.IsInf(v.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (v Vec2) IsNaN() bool {
	return math32.IsNaN(v.X) || math32.IsNaN(v.Y)
}

// Add adds two vectors and returns the resulting vector.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{
		X: v.X + o.X,
		Y: v.Y + o.Y,
	}
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{
		X: v.X - o.X,
		Y: v.Y - o.Y,
	}
}

func (v Vec2) Mul(f float32) Vec2 {
	return Vec2{
		X: v.X * f,
		Y: v.Y * f,
	}
}

func (v Vec2) Div(f float32) Vec2 {
	return Vec2{
		X: v.X / f,
		Y: v.Y / f,
	}
}

// Negate returns a new vector with the signs of x and y flipped.
func (v Vec2) Negate() Vec2 {
	return Vec2{
		X: -v.X,
		Y: -v.Y,
	}
}

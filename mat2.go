package planar

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Mat2 describes a 2×2 matrix via its two columns.
//
// The matrix
//
//	| a c |
//	| b d |
//
// is represented as Mat2{C0: Vec2{a, b}, C1: Vec2{c, d}}, so that m.MulVec(v)
// equals C0·v.X + C1·v.Y.
type Mat2 struct {
	C0, C1 Vec2
}

// Identity is the identity matrix.
var Identity = Mat2{Vec2{1, 0}, Vec2{0, 1}}

// NewMat2 returns the matrix with the given entries, specified in row-major
// order.
func NewMat2(m00, m01, m10, m11 float32) Mat2 {
	return Mat2{
		C0: Vec2{m00, m10},
		C1: Vec2{m01, m11},
	}
}

// Rotation returns the matrix of a rotation by th radians.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y.
func Rotation(th float32) Mat2 {
	sin, cos := math32.Sincos(th)
	return Mat2{
		C0: Vec2{cos, sin},
		C1: Vec2{-sin, cos},
	}
}

// Coefficients returns the entries of the matrix in row-major order.
func (m Mat2) Coefficients() [4]float32 {
	return [4]float32{m.C0.X, m.C1.X, m.C0.Y, m.C1.Y}
}

func (m Mat2) String() string {
	return fmt.Sprintf("[%g %g; %g %g]", m.C0.X, m.C1.X, m.C0.Y, m.C1.Y)
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{
		C0: Vec2{m.C0.X, m.C1.X},
		C1: Vec2{m.C0.Y, m.C1.Y},
	}
}

// Determinant computes the determinant.
func (m Mat2) Determinant() float32 {
	return m.C0.Cross(m.C1)
}

// Invert computes the inverse matrix.
//
// Produces NaN or infinite values when the determinant is zero.
func (m Mat2) Invert() Mat2 {
	invDet := 1 / m.Determinant()
	return Mat2{
		C0: Vec2{+invDet * m.C1.Y, -invDet * m.C0.Y},
		C1: Vec2{-invDet * m.C1.X, +invDet * m.C0.X},
	}
}

// Add returns the entrywise sum of two matrices.
func (m Mat2) Add(o Mat2) Mat2 {
	return Mat2{
		C0: m.C0.Add(o.C0),
		C1: m.C1.Add(o.C1),
	}
}

// Scale multiplies every entry by f.
func (m Mat2) Scale(f float32) Mat2 {
	return Mat2{
		C0: m.C0.Mul(f),
		C1: m.C1.Mul(f),
	}
}

// Mul returns the matrix product m·o.
func (m Mat2) Mul(o Mat2) Mat2 {
	return Mat2{
		C0: m.MulVec(o.C0),
		C1: m.MulVec(o.C1),
	}
}

// MulVec returns the product m·v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{
		X: m.C0.X*v.X + m.C1.X*v.Y,
		Y: m.C0.Y*v.X + m.C1.Y*v.Y,
	}
}

// Congruence returns a·m·aᵀ, the matrix m transformed by a. For a rotation
// a, this expresses the tensor m in the rotated frame.
func (m Mat2) Congruence(a Mat2) Mat2 {
	return a.Mul(m.Mul(a.Transpose()))
}

func (m Mat2) IsInf() bool {
	return m.C0.IsInf() || m.C1.IsInf()
}

func (m Mat2) IsNaN() bool {
	return m.C0.IsNaN() || m.C1.IsNaN()
}

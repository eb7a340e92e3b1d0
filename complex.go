package planar

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Complex is a complex number Re + Im·i. Unit complex numbers represent 2D
// rotations: multiplying by PolarUnit(φ) rotates by φ radians.
type Complex struct {
	Re, Im float32
}

// ComplexIdentity is 1 + 0i, the identity rotation.
var ComplexIdentity = Complex{1, 0}

// ImaginaryUnit is 0 + 1i, the rotation by 90°.
var ImaginaryUnit = Complex{0, 1}

// ComplexFromVec returns the complex number v.X + v.Y·i.
func ComplexFromVec(v Vec2) Complex {
	return Complex{v.X, v.Y}
}

// ComplexFromMat2 returns the rotation stored in the first column of m. m is
// expected to be a rotation matrix, such as the result of [Rotation] or
// [Complex.Mat2].
func ComplexFromMat2(m Mat2) Complex {
	return ComplexFromVec(m.C0)
}

// Polar returns r·e^(iφ).
func Polar(r, phi float32) Complex {
	return PolarUnit(phi).Scale(r)
}

// PolarUnit returns e^(iφ), the rotation by φ radians.
func PolarUnit(phi float32) Complex {
	s, c := math32.Sincos(phi)
	return Complex{c, s}
}

// LookRotation returns the rotation that maps ⟨1, 0⟩ onto the direction of
// dir. It is not finite if dir is zero.
func LookRotation(dir Vec2) Complex {
	return ComplexFromVec(dir.Normalize())
}

// LookRotationSafe is like [LookRotation] but returns def if the rotation
// isn't finite.
func LookRotationSafe(dir Vec2, def Complex) Complex {
	return ComplexFromVec(dir.NormalizeSafe(def.Vec()))
}

func (z Complex) String() string {
	return fmt.Sprintf("%g%+gi", z.Re, z.Im)
}

// Vec returns ⟨Re, Im⟩.
func (z Complex) Vec() Vec2 {
	return Vec2{z.Re, z.Im}
}

// Mat2 returns the matrix representation of z, which for unit z is a
// rotation matrix.
func (z Complex) Mat2() Mat2 {
	return Mat2{
		C0: Vec2{z.Re, z.Im},
		C1: Vec2{-z.Im, z.Re},
	}
}

// Abs returns |z|.
func (z Complex) Abs() float32 {
	return z.Vec().Hypot()
}

// Abs2 returns |z|².
func (z Complex) Abs2() float32 {
	return z.Vec().Hypot2()
}

// Arg returns the polar angle of z.
func (z Complex) Arg() float32 {
	return math32.Atan2(z.Im, z.Re)
}

func (z Complex) Add(o Complex) Complex {
	return Complex{z.Re + o.Re, z.Im + o.Im}
}

func (z Complex) Sub(o Complex) Complex {
	return Complex{z.Re - o.Re, z.Im - o.Im}
}

// AddReal returns z + x.
func (z Complex) AddReal(x float32) Complex {
	return Complex{z.Re + x, z.Im}
}

func (z Complex) Mul(o Complex) Complex {
	return Complex{
		Re: z.Re*o.Re - z.Im*o.Im,
		Im: z.Re*o.Im + z.Im*o.Re,
	}
}

func (z Complex) Div(o Complex) Complex {
	return z.Mul(o.Reciprocal())
}

// Scale returns f·z.
func (z Complex) Scale(f float32) Complex {
	return Complex{z.Re * f, z.Im * f}
}

func (z Complex) Neg() Complex {
	return Complex{-z.Re, -z.Im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{z.Re, -z.Im}
}

// Reciprocal returns 1/z.
func (z Complex) Reciprocal() Complex {
	return z.Conj().Scale(1 / z.Abs2())
}

// Pow returns z raised to the real power x.
func (z Complex) Pow(x float32) Complex {
	return Polar(math32.Pow(z.Abs(), x), z.Arg()*x)
}

// Normalize returns z scaled to unit magnitude. It is not finite if z is
// zero.
func (z Complex) Normalize() Complex {
	return ComplexFromVec(z.Vec().Normalize())
}

// NormalizeSafe is like [Complex.Normalize] but returns def if the result
// isn't finite.
func (z Complex) NormalizeSafe(def Complex) Complex {
	return ComplexFromVec(z.Vec().NormalizeSafe(def.Vec()))
}

// Rotate rotates v by z. For non-unit z, v is also scaled by |z|.
func (z Complex) Rotate(v Vec2) Vec2 {
	return z.Mul(ComplexFromVec(v)).Vec()
}

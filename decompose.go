package planar

import "cogentcore.org/core/math32"

// Eigen solves the eigenproblem of the symmetric matrix m.
//
// Symmetry is assumed: the off-diagonal element is read from C0.Y and C1.X is
// ignored. The eigenvalues are not sorted by magnitude. The first eigenvalue
// is ½(tr + sign(d)·√(d² + 4b²)) with d = a − c and sign(0) = +1. The i-th column of vecs is the eigenvector of the i-th eigenvalue. The
// columns form a rotation, so they are orthonormal. If m is a multiple of the
// identity, vecs is [Identity].
func (m Mat2) Eigen() (vals Vec2, vecs Mat2) {
	a00 := m.C0.X
	a11 := m.C1.Y
	a01 := m.C0.Y

	d := a00 - a11
	p1 := a00 + a11
	var sign float32 = 1
	if d < 0 {
		sign = -1
	}
	p2 := sign * math32.Sqrt(d*d+4*a01*a01)
	vals = Vec2{
		X: 0.5 * (p1 + p2),
		Y: 0.5 * (p1 - p2),
	}

	// The first column of Rotation(½·atan2(2b, d)) belongs to the larger
	// eigenvalue. Flipping both arguments by sign turns the rotation by a
	// quarter turn, pairing the first column with vals.X.
	phi := 0.5 * math32.Atan2(sign*2*a01, sign*d)
	return vals, Rotation(phi)
}

// Unitary returns the unitary factor U of the polar decomposition m = U·P.
// See [Mat2.Polar].
func (m Mat2) Unitary() Mat2 {
	// For 2×2 matrices, A + |det(A)|·A⁻ᵀ = tr(P)·U. Without the absolute
	// value, reflections (det < 0) cancel out to zero.
	u := m.Add(m.Transpose().Invert().Scale(math32.Abs(m.Determinant())))
	return u.Scale(1 / math32.Sqrt(math32.Abs(u.Determinant())))
}

// Polar computes the polar decomposition m = u·p, where u is orthogonal and p
// is symmetric positive semi-definite.
//
// The decomposition is computed in closed form, without iteration. m must be
// invertible; a singular m produces NaN or infinite values.
func (m Mat2) Polar() (u, p Mat2) {
	u = m.Unitary()
	p = u.Transpose().Mul(m)
	return u, p
}

// Package planar provides small, allocation-free 2D geometric and algebraic
// primitives for use in simulation code, such as per-frame collision queries
// and mesh processing. All computations use single-precision floats.
//
// All functions are pure and operate on value types. They hold no state and
// are safe for concurrent use.
//
// # Continuous collision
//
// [IntersectSwept] finds the earliest time at which a moving point touches a
// moving segment, with all motion assumed to be linear over the unit time
// interval. Positions at the start and end of the interval are described by
// [Sweep]. The problem reduces to a polynomial of at most second degree in
// time; [ClassifySweep] reports which kind of polynomial a query produces.
//
// # Closest features
//
// [Segment.ClosestPoint] projects a point onto a segment, and
// [Segment.ShortestSegment] finds the shortest segment connecting two
// segments. Both handle zero-length and parallel segments and never return
// points outside of their segments.
//
// # Matrix decompositions
//
// [Mat2.Eigen] solves the eigenproblem of symmetric 2×2 matrices and
// [Mat2.Polar] computes the polar decomposition of invertible 2×2 matrices,
// both in closed form. The polar decomposition is commonly used to extract
// the rotation from a deformation gradient.
//
// # Degenerate input
//
// No function in this package returns errors. Degenerate input is either
// handled by an explicit fallback, reported via a boolean result, or
// documented to produce non-finite values. Functions with a Safe suffix
// return a caller-provided default instead of non-finite values.
//
// Inputs are assumed to be finite. The package uses plain floating point
// arithmetic and makes no attempt at exact geometric predicates.
package planar

package planar

import "cogentcore.org/core/math32"

// ParallelTolerance is the relative threshold below which the Gram
// determinant of two segment directions is considered zero by
// [Segment.ShortestSegment].
const ParallelTolerance = 1e-9

// Epsilon is the single-precision machine epsilon, used by the "safe"
// variants of functions to detect degenerate input.
const Epsilon = 1.1920928955078125e-7

// Segment represents a line segment, parametrized by s ∈ [0, 1] with s = 0 at
// A0 and s = 1 at A1. A0 and A1 may coincide, in which case the segment is a
// single point.
type Segment struct {
	// The segment's start point.
	A0 Point
	// The segment's end point.
	A1 Point
}

// Seg returns the segment from a0 to a1.
func Seg(a0, a1 Point) Segment {
	return Segment{A0: a0, A1: a1}
}

// Length returns the length of the segment.
func (l Segment) Length() float32 {
	return l.A1.Sub(l.A0).Hypot()
}

// Eval returns the point at parameter s.
func (l Segment) Eval(s float32) Point {
	return l.A0.Lerp(l.A1, s)
}

// Reverse returns the segment with its endpoints swapped.
func (l Segment) Reverse() Segment {
	return Segment{A0: l.A1, A1: l.A0}
}

func (l Segment) Translate(v Vec2) Segment {
	return Segment{
		A0: l.A0.Translate(v),
		A1: l.A1.Translate(v),
	}
}

func (l Segment) Transform(m Mat2) Segment {
	return Segment{
		A0: l.A0.Transform(m),
		A1: l.A1.Transform(m),
	}
}

func (l Segment) IsInf() bool {
	return l.A0.IsInf() || l.A1.IsInf()
}

func (l Segment) IsNaN() bool {
	return l.A0.IsNaN() || l.A1.IsNaN()
}

func (l Segment) BoundingBox() Rect {
	return NewRectFromPoints(l.A0, l.A1)
}

// CrossingPoint computes the point where two segments, if extended to
// infinity, would cross. It returns false if the segments are parallel.
func (l Segment) CrossingPoint(o Segment) (Point, bool) {
	ab := l.A1.Sub(l.A0)
	cd := o.A1.Sub(o.A0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.A0.Sub(o.A0)) / pcd
	return o.A0.Translate(cd.Mul(h)), true
}

// ClosestPoint returns the point on the segment that is closest to pt. The
// result never lies outside the segment. If the segment has zero length, A0
// is returned.
func (l Segment) ClosestPoint(pt Point) Point {
	d := l.A1.Sub(l.A0)
	norm := d.Hypot2()
	if norm == 0 {
		return l.A0
	}
	s := clamp01(pt.Sub(l.A0).Dot(d) / norm)
	return l.Eval(s)
}

// Nearest returns the squared distance from pt to the segment as well as the
// parameter of the closest point.
func (l Segment) Nearest(pt Point) (distSq, s float32) {
	d := l.A1.Sub(l.A0)
	dotp := d.Dot(pt.Sub(l.A0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.A0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.A1).Hypot2(), 1.0
	} else {
		s := dotp / dSquared
		dist := pt.Sub(l.Eval(s)).Hypot2()
		return dist, s
	}
}

// Barycentric expresses pt in the barycentric coordinate system of the
// segment's supporting line. The result (w0, w1) satisfies w0 + w1 = 1 and
// w0·A0 + w1·A1 = pt for points on the line. The weights are not clamped.
//
// The result is not finite if the segment has zero length.
func (l Segment) Barycentric(pt Point) Vec2 {
	ba := l.A0.Sub(l.A1)
	t := pt.Sub(l.A1).Dot(ba) / ba.Hypot2()
	return Vec2{t, 1 - t}
}

// BarycentricSafe is like [Segment.Barycentric] but returns def if the
// squared length of the segment is at most [Epsilon].
func (l Segment) BarycentricSafe(pt Point, def Vec2) Vec2 {
	if l.A0.DistanceSquared(l.A1) <= Epsilon {
		return def
	}
	return l.Barycentric(pt)
}

// ShortestSegment finds the shortest segment connecting l and o, returning
// its endpoints pa on l and pb on o.
//
// Both points are guaranteed to lie on their respective segments, including
// for parallel, overlapping and zero-length segments. For (nearly) parallel
// segments, where the Gram determinant of the directions is smaller than
// [ParallelTolerance] relative to their squared lengths, the closest points
// are not unique and the one nearest to o's start is chosen.
func (l Segment) ShortestSegment(o Segment) (pa, pb Point) {
	r := o.A0.Sub(l.A0)
	u := l.A1.Sub(l.A0)
	v := o.A1.Sub(o.A0)
	ru := r.Dot(u)
	rv := r.Dot(v)
	uu := u.Dot(u)
	uv := u.Dot(v)
	vv := v.Dot(v)

	det := uu*vv - uv*uv
	var s, t float32
	if det < ParallelTolerance*uu*vv {
		s = clamp01(ru / uu)
		t = 0
	} else {
		s = clamp01((ru*vv - rv*uv) / det)
		t = clamp01((ru*uv - rv*uu) / det)
	}
	// Clamping s and t independently doesn't find the closest pair when the
	// unconstrained minimum lies outside the unit square. Re-project each
	// parameter onto the other's clamped result.
	ss := clamp01((t*uv + ru) / uu)
	tt := clamp01((s*uv - rv) / vv)

	return l.A0.Translate(u.Mul(ss)), o.A0.Translate(v.Mul(tt))
}

// clamp01 clamps x to [0, 1]. NaN, which results from 0/0 on zero-length
// segments, maps to 0.
func clamp01(x float32) float32 {
	if !(x > 0) {
		return 0
	}
	return math32.Min(x, 1)
}

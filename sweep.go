package planar

import "cogentcore.org/core/math32"

// Sweep describes the linear motion of a point from P0 at t = 0 to P1 at
// t = 1, at constant velocity.
type Sweep struct {
	P0, P1 Point
}

// Stationary returns the sweep of a point that doesn't move.
func Stationary(pt Point) Sweep {
	return Sweep{P0: pt, P1: pt}
}

// At returns the position at time t.
func (sw Sweep) At(t float32) Point {
	return sw.P0.Lerp(sw.P1, t)
}

// Velocity returns the displacement over the unit time interval.
func (sw Sweep) Velocity() Vec2 {
	return sw.P1.Sub(sw.P0)
}

// SweepKind identifies the polynomial that describes a swept point-segment
// incidence problem.
type SweepKind int

const (
	// SweepNone means that the point is never collinear with the segment.
	SweepNone SweepKind = iota + 1
	// SweepQuadratic means that collinearity is a quadratic equation in t.
	SweepQuadratic
	// SweepLinear means that collinearity is a linear equation in t.
	SweepLinear
	// SweepCollinear means that the point is collinear with the segment at
	// all times.
	SweepCollinear
)

func (k SweepKind) String() string {
	switch k {
	case SweepNone:
		return "none"
	case SweepQuadratic:
		return "quadratic"
	case SweepLinear:
		return "linear"
	case SweepCollinear:
		return "collinear"
	default:
		return "invalid"
	}
}

// sweepSystem holds the motion of p relative to a and of b relative to a:
// x(t) = p(t) − a(t) = x0 + t·vx and y(t) = b(t) − a(t) = y0 + t·vy.
type sweepSystem struct {
	x0, vx Vec2
	y0, vy Vec2
	// Coefficients of Cross(x(t), y(t)) = c2·t² + c1·t + c0.
	c2, c1, c0 float32
}

func newSweepSystem(p, a, b Sweep) sweepSystem {
	va := a.Velocity()
	sys := sweepSystem{
		x0: p.P0.Sub(a.P0),
		vx: p.Velocity().Sub(va),
		y0: b.P0.Sub(a.P0),
		vy: b.Velocity().Sub(va),
	}
	sys.c2 = sys.vx.Cross(sys.vy)
	sys.c1 = sys.x0.Cross(sys.vy) + sys.vx.Cross(sys.y0)
	sys.c0 = sys.x0.Cross(sys.y0)
	return sys
}

func (sys sweepSystem) kind() SweepKind {
	switch {
	case sys.c2 != 0:
		return SweepQuadratic
	case sys.c1 != 0:
		return SweepLinear
	case sys.c0 == 0:
		return SweepCollinear
	default:
		return SweepNone
	}
}

// param returns the position of the point along the segment at time t.
func (sys sweepSystem) param(t float32) float32 {
	x := sys.x0.Add(sys.vx.Mul(t))
	y := sys.y0.Add(sys.vy.Mul(t))
	return x.Dot(y) / y.Hypot2()
}

// ClassifySweep reports which kind of equation [IntersectSwept] has to solve
// for the given motions.
func ClassifySweep(p, a, b Sweep) SweepKind {
	return newSweepSystem(p, a, b).kind()
}

// IntersectSwept finds the earliest time t ∈ [0, 1] at which the moving point
// p lies on the moving segment from a to b. It returns t and the position s
// of the point along the segment, with s = 0 at a(t) and s = 1 at b(t).
//
// If there is no such time, ok is false and t and s are zero.
//
// When the point only touches the segment's supporting line tangentially
// (a double root in t), the contact is reported without checking that s lies
// in [0, 1]. In all other cases, s ∈ [0, 1].
//
// If all three motions keep the point and the segment collinear, the result
// is the earliest time at which the point meets either endpoint, reported as
// s = 0 for a and s = 1 for b. An endpoint that the point doesn't move
// relative to is never met.
func IntersectSwept(p, a, b Sweep) (t, s float32, ok bool) {
	sys := newSweepSystem(p, a, b)
	switch sys.kind() {
	case SweepQuadratic:
		return sys.solveQuadratic()
	case SweepLinear:
		return sys.solveLinear()
	case SweepCollinear:
		return sys.solveCollinear(p, b)
	case SweepNone:
		return 0, 0, false
	default:
		panic("unreachable")
	}
}

func (sys sweepSystem) solveQuadratic() (t, s float32, ok bool) {
	a, b, c := sys.c2, sys.c1, sys.c0
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	if disc == 0 {
		t = -b / (2 * a)
		if !inUnit(t) {
			return 0, 0, false
		}
		return t, sys.param(t), true
	}

	// See https://math.stackexchange.com/questions/866331
	q := math32.Sqrt(disc)
	if b < 0 {
		q = -q
	}
	q = -0.5 * (b + q)
	t0, t1 := q/a, c/q
	if t0 > t1 {
		t0, t1 = t1, t0
	}
	for _, t := range [2]float32{t0, t1} {
		if !inUnit(t) {
			continue
		}
		if s := sys.param(t); inUnit(s) {
			return t, s, true
		}
	}
	return 0, 0, false
}

func (sys sweepSystem) solveLinear() (t, s float32, ok bool) {
	t = -sys.c0 / sys.c1
	if !inUnit(t) {
		return 0, 0, false
	}
	s = sys.param(t)
	if !inUnit(s) {
		return 0, 0, false
	}
	return t, s, true
}

// solveCollinear handles motions along a common line. The times of closest
// approach of the point to a and to b are computed independently.
func (sys sweepSystem) solveCollinear(p, b Sweep) (t, s float32, ok bool) {
	ta, okA := closestApproach(sys.x0, sys.vx)
	tb, okB := closestApproach(p.P0.Sub(b.P0), p.Velocity().Sub(b.Velocity()))
	okA = okA && inUnit(ta)
	okB = okB && inUnit(tb)
	switch {
	case okA && okB:
		if ta < tb {
			return ta, 0, true
		}
		return tb, 1, true
	case okA:
		return ta, 0, true
	case okB:
		return tb, 1, true
	default:
		return 0, 0, false
	}
}

// closestApproach returns the time at which d0 + t·v is shortest. It returns
// false if v is zero and the time is undefined.
func closestApproach(d0, v Vec2) (float32, bool) {
	vv := v.Hypot2()
	if vv == 0 {
		return 0, false
	}
	return -d0.Dot(v) / vv, true
}

func inUnit(x float32) bool {
	return x >= 0 && x <= 1
}

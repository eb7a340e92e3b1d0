package planar

import "cogentcore.org/core/math32"

// Triangle is the triangle with vertices A, B and C.
type Triangle struct {
	A, B, C Point
}

// Barycentric expresses pt in the barycentric coordinate system of the
// triangle, returning the weights of A, B and C. The weights sum to one.
//
// The result is not finite if the triangle is degenerate.
func (tri Triangle) Barycentric(pt Point) [3]float32 {
	v0 := tri.B.Sub(tri.A)
	v1 := tri.C.Sub(tri.A)
	v2 := pt.Sub(tri.A)
	denInv := 1 / v0.Cross(v1)
	v := denInv * v2.Cross(v1)
	w := denInv * v0.Cross(v2)
	u := 1 - v - w
	return [3]float32{u, v, w}
}

// BarycentricSafe is like [Triangle.Barycentric] but returns def if the
// triangle's doubled area is at most [Epsilon].
func (tri Triangle) BarycentricSafe(pt Point, def [3]float32) [3]float32 {
	if math32.Abs(tri.SignedArea2()) <= Epsilon {
		return def
	}
	return tri.Barycentric(pt)
}

// Contains reports whether pt lies inside the triangle or on its boundary.
func (tri Triangle) Contains(pt Point) bool {
	bar := tri.Barycentric(pt)
	return bar[0] >= 0 && bar[1] >= 0 && bar[2] >= 0
}

// SignedArea returns the area of the triangle, which is positive for
// counter-clockwise triangles in a y-up space.
func (tri Triangle) SignedArea() float32 {
	return 0.5 * tri.SignedArea2()
}

// SignedArea2 returns twice the signed area of the triangle. It is cheaper
// to compute than [Triangle.SignedArea].
func (tri Triangle) SignedArea2() float32 {
	return tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
}

// Orientation returns the result of [CCW] for the triangle's vertices.
func (tri Triangle) Orientation() float32 {
	return CCW(tri.A, tri.B, tri.C)
}

// Circumcircle returns the circle that passes through all three vertices.
// Degenerate triangles produce non-finite results.
func (tri Triangle) Circumcircle() Circle {
	a, b, c := tri.A, tri.B, tri.C
	aLenSq := Vec2(a).Hypot2()
	bLenSq := Vec2(b).Hypot2()
	cLenSq := Vec2(c).Hypot2()

	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	p := Point{
		X: (aLenSq*(b.Y-c.Y) + bLenSq*(c.Y-a.Y) + cLenSq*(a.Y-b.Y)) / d,
		Y: (aLenSq*(c.X-b.X) + bLenSq*(a.X-c.X) + cLenSq*(b.X-a.X)) / d,
	}
	return Circle{Center: p, Radius: p.Distance(a)}
}

// BoundingCircle returns the smallest circle enclosing the triangle. For
// obtuse and right triangles, this is the circle whose diameter is the
// longest edge; otherwise it is the circumcircle.
func (tri Triangle) BoundingCircle() Circle {
	a, b, c := tri.A, tri.B, tri.C
	ab := b.Sub(a)
	bc := c.Sub(b)
	ca := a.Sub(c)

	right := float32(math32.Pi / 2)
	switch {
	case math32.Abs(ab.AngleTo(ca.Negate())) >= right:
		return Circle{Center: b.Midpoint(c), Radius: 0.5 * b.Distance(c)}
	case math32.Abs(bc.AngleTo(ab.Negate())) >= right:
		return Circle{Center: a.Midpoint(c), Radius: 0.5 * a.Distance(c)}
	case math32.Abs(ca.AngleTo(bc.Negate())) >= right:
		return Circle{Center: a.Midpoint(b), Radius: 0.5 * a.Distance(b)}
	default:
		return tri.Circumcircle()
	}
}

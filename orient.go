package planar

// CCW returns +1 if the triangle (a, b, c) is counter-clockwise, −1 if it is
// clockwise, and 0 if the points are collinear. Orientation refers to a y-up
// space.
func CCW(a, b, c Point) float32 {
	switch d := b.Sub(a).Cross(c.Sub(a)); {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// IsConvexQuadrilateral reports whether the quadrilateral (a, b, c, d) is
// strictly convex. Quadrilaterals with three collinear vertices are not.
func IsConvexQuadrilateral(a, b, c, d Point) bool {
	acb := CCW(a, c, b)
	acd := CCW(a, c, d)
	bda := CCW(b, d, a)
	bdc := CCW(b, d, c)
	if acb == 0 || acd == 0 || bda == 0 || bdc == 0 {
		return false
	}
	// The diagonals must separate the remaining vertices.
	return acb != acd && bda != bdc
}

// PointLineSignedDistance returns the signed distance of pt from the line
// through a with unit normal n.
func PointLineSignedDistance(pt Point, n Vec2, a Point) float32 {
	return pt.Sub(a).Dot(n)
}

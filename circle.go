package planar

import "cogentcore.org/core/math32"

type Circle struct {
	Center Point
	Radius float32
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math32.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math32.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Area() float32 {
	return math32.Pi * c.Radius * c.Radius
}

func (c Circle) BoundingBox() Rect {
	r := math32.Abs(c.Radius)
	x := c.Center.X
	y := c.Center.Y
	return Rect{
		X0: x - r,
		Y0: y - r,
		X1: x + r,
		Y1: y + r,
	}
}

func (c Circle) Perimeter() float32 {
	return math32.Abs(2 * math32.Pi * c.Radius)
}

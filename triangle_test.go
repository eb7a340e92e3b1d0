package planar

import (
	"testing"

	"cogentcore.org/core/math32"
)

func TestTriangleBarycentric(t *testing.T) {
	h := math32.Sqrt(3) / 2
	tri := Triangle{Pt(0, 0), Pt(1, 0), Pt(0.5, h)}
	tests := []struct {
		name string
		pt   Point
		want [3]float32
	}{
		{"barycenter", Pt(0.5, h/3), [3]float32{1.0 / 3, 1.0 / 3, 1.0 / 3}},
		{"a", tri.A, [3]float32{1, 0, 0}},
		{"b", tri.B, [3]float32{0, 1, 0}},
		{"c", tri.C, [3]float32{0, 0, 1}},
		{"midpoint of ab", Pt(0.5, 0), [3]float32{0.5, 0.5, 0}},
		{"arbitrary", Pt(0.25, 0.25), [3]float32{0.605662, 0.105662, 0.288675}},
		{"outside", Pt(1, h), [3]float32{-0.5, 0.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tri.Barycentric(tt.pt), approx)
		})
	}
}

func TestTriangleBarycentricSafe(t *testing.T) {
	def := [3]float32{-1, -1, -1}
	degenerate := Triangle{Pt(0, 0), Pt(1, 1), Pt(2, 2)}
	diff(t, def, degenerate.BarycentricSafe(Pt(1, 0), def))

	tri := Triangle{Pt(0, 0), Pt(2, 0), Pt(0, 2)}
	diff(t, [3]float32{0.5, 0.25, 0.25}, tri.BarycentricSafe(Pt(0.5, 0.5), def), approx)
}

func TestTriangleContains(t *testing.T) {
	//   *
	//   | `.
	//   |   `.
	//   |  *  `.
	//   |       `.
	//   *---------*
	tri := Triangle{Pt(0, 0), Pt(2, 0), Pt(0, 2)}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(-1, 0), false},
		{Pt(1, 1), true},
		{Pt(0.5, 0.5), true},
		{Pt(0, 0), true},
		{Pt(1, 0), true},
		{Pt(1.5, 1.5), false},
		{Pt(1, -0.001), false},
	}
	for _, tt := range tests {
		if got := tri.Contains(tt.pt); got != tt.want {
			t.Errorf("%v contains %s = %t, want %t", tri, tt.pt, got, tt.want)
		}
	}
}

func TestTriangleArea(t *testing.T) {
	ccw := Triangle{Pt(0, 0), Pt(4, 0), Pt(0, 3)}
	cw := Triangle{ccw.A, ccw.C, ccw.B}
	diff(t, float32(6), ccw.SignedArea())
	diff(t, float32(12), ccw.SignedArea2())
	diff(t, float32(-6), cw.SignedArea())
	diff(t, float32(1), ccw.Orientation())
	diff(t, float32(-1), cw.Orientation())
}

func TestTriangleCircumcircle(t *testing.T) {
	h := math32.Sqrt(3) / 2
	tests := []struct {
		name string
		tri  Triangle
		want Circle
	}{
		{
			"right",
			Triangle{Pt(0, 0), Pt(3, 0), Pt(0, 4)},
			Circle{Center: Pt(1.5, 2), Radius: 2.5},
		},
		{
			"equilateral",
			Triangle{Pt(0, 0), Pt(1, 0), Pt(0.5, h)},
			Circle{Center: Pt(0.5, h/3), Radius: math32.Sqrt(3) / 3},
		},
		{
			"obtuse",
			Triangle{Pt(-1, 0), Pt(1, 0), Pt(0, 0.5)},
			Circle{Center: Pt(0, -0.75), Radius: 1.25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.Circumcircle()
			diff(t, tt.want, got, approx)
			for _, v := range [3]Point{tt.tri.A, tt.tri.B, tt.tri.C} {
				diff(t, got.Radius, got.Center.Distance(v), approx)
			}
		})
	}
}

func TestTriangleBoundingCircle(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want Circle
	}{
		{
			"obtuse at c",
			Triangle{Pt(0, 0), Pt(4, 0), Pt(2, 0.5)},
			Circle{Center: Pt(2, 0), Radius: 2},
		},
		{
			"obtuse at a",
			Triangle{Pt(2, 0.5), Pt(0, 0), Pt(4, 0)},
			Circle{Center: Pt(2, 0), Radius: 2},
		},
		{
			"obtuse at b",
			Triangle{Pt(4, 0), Pt(2, 0.5), Pt(0, 0)},
			Circle{Center: Pt(2, 0), Radius: 2},
		},
		{
			"right",
			Triangle{Pt(0, 0), Pt(3, 0), Pt(0, 4)},
			Circle{Center: Pt(1.5, 2), Radius: 2.5},
		},
		{
			"acute",
			Triangle{Pt(0, 0), Pt(2, 0), Pt(1, 2)},
			Circle{Center: Pt(1, 0.75), Radius: 1.25},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tri.BoundingCircle()
			diff(t, tt.want, got, approx)
			for _, v := range [3]Point{tt.tri.A, tt.tri.B, tt.tri.C} {
				if d := got.Center.Distance(v); d > got.Radius*(1+1e-5) {
					t.Errorf("vertex %s is outside of bounding circle %v", v, got)
				}
			}
		})
	}
}

package planar_test

import (
	"fmt"

	"honnef.co/go/planar"
)

func ExampleIntersectSwept() {
	// A particle travels from (0, 0) to (2, 0) during one time step, while a
	// wall segment moves from x = 1.5 to x = 0.5.
	p := planar.Sweep{P0: planar.Pt(0, 0), P1: planar.Pt(2, 0)}
	a := planar.Sweep{P0: planar.Pt(1.5, -1), P1: planar.Pt(0.5, -1)}
	b := planar.Sweep{P0: planar.Pt(1.5, 1), P1: planar.Pt(0.5, 1)}

	t, s, ok := planar.IntersectSwept(p, a, b)
	if !ok {
		fmt.Println("no contact")
		return
	}
	fmt.Printf("contact at t = %.3f, s = %.3f, position %s\n", t, s, p.At(t))

	// Output:
	// contact at t = 0.500, s = 0.500, position (1, 0)
}

func ExampleSegment_ShortestSegment() {
	l := planar.Seg(planar.Pt(0, 0), planar.Pt(1, 2))
	o := planar.Seg(planar.Pt(1, 1), planar.Pt(2, 1))
	pa, pb := l.ShortestSegment(o)
	fmt.Printf("(%.3f, %.3f) (%.3f, %.3f)\n", pa.X, pa.Y, pb.X, pb.Y)

	// Output:
	// (0.600, 1.200) (1.000, 1.000)
}

func ExampleMat2_Eigen() {
	m := planar.NewMat2(
		2, 1,
		1, 2,
	)
	vals, vecs := m.Eigen()
	fmt.Printf("λ₀ = %.3f, v₀ = (%.4f, %.4f)\n", vals.X, vecs.C0.X, vecs.C0.Y)
	fmt.Printf("λ₁ = %.3f, v₁ = (%.4f, %.4f)\n", vals.Y, vecs.C1.X, vecs.C1.Y)

	// Output:
	// λ₀ = 3.000, v₀ = (0.7071, 0.7071)
	// λ₁ = 1.000, v₁ = (-0.7071, 0.7071)
}

package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx is the comparison option used for most single-precision results.
var approx = cmpopts.EquateApprox(0, 1e-5)

// approxRel additionally tolerates errors relative to the magnitude of the
// values.
var approxRel = cmpopts.EquateApprox(1e-4, 1e-5)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float32) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertMatNear(t *testing.T, got, want Mat2, epsilon float32) {
	t.Helper()
	g := got.Coefficients()
	w := want.Coefficients()
	for i := range 4 {
		if d := g[i] - w[i]; d > epsilon || d < -epsilon {
			t.Fatalf("got %s, expected %s", got, want)
		}
	}
}

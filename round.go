package planar

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// MaxDigits is the largest number of decimal digits accepted by [Round].
const MaxDigits = 9

var pow10 = [MaxDigits + 1]float32{1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9}

// Round rounds x to the given number of decimal digits, which must be in
// [0, MaxDigits]. Halfway cases are rounded away from zero.
//
// When built with the planar_debug build tag, out-of-range digits cause a
// panic. Otherwise they are clamped to the valid range.
func Round(x float32, digits int) float32 {
	if digits < 0 || digits > MaxDigits {
		if debug {
			panic(fmt.Sprintf("planar: digits %d out of range [0, %d]", digits, MaxDigits))
		}
		digits = min(max(digits, 0), MaxDigits)
	}
	f := pow10[digits]
	return math32.Round(x*f) / f
}

// RoundDigits returns v with both components rounded to the given number of
// decimal digits. See [Round].
func (v Vec2) RoundDigits(digits int) Vec2 {
	return Vec2{
		X: Round(v.X, digits),
		Y: Round(v.Y, digits),
	}
}

package hyper4d

import (
	"math"
)

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

// clamp01 also maps NaN to 0.
func clamp01(x Real) Real {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

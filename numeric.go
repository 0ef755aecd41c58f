package figure

import (
	"math"

	"github.com/npillmayer/arithm"
)

// AlmostEqual reports whether a and b differ by at most eps.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// IsZero reports whether x is zero up to arithm.Epsilon.
func IsZero(x float64) bool {
	return arithm.Is0(x)
}

// Zap returns 0 for values that are zero up to arithm.Epsilon, and x
// otherwise. It is applied to coordinates before they are printed, so that
// -0.0000000001 doesn't end up as "-0" in the output.
func Zap(x float64) float64 {
	return arithm.Zap(x)
}

// IsNegative reports whether x is strictly negative. Values that are zero up
// to arithm.Epsilon are not negative.
func IsNegative(x float64) bool {
	return Zap(x) < 0
}

// sign returns -1, 0 or 1, treating values within arithm.Epsilon of zero as
// zero.
func sign(x float64) float64 {
	switch x = Zap(x); {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

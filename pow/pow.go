package pow

import (
	"math"

	"github.com/cwbudde/algo-pow/internal/words"
)

// Pow returns x**y.
//
// Special cases are (in order):
//
//	Pow(x, ±0) = 1 for any x except NaN
//	Pow(NaN, ±0) = NaN
//	Pow(x, y) = NaN if x or y is NaN
//	Pow(x, 2) = x*x
//	Pow(x, 0.5) = Sqrt(x) for x != -Inf
//	Pow(x, 1) = x
//	Pow(x, -1) = 1/x
//	Pow(±1, ±Inf) = NaN
//	Pow(x, +Inf) = +Inf for |x| > 1
//	Pow(x, -Inf) = +0 for |x| > 1
//	Pow(x, +Inf) = +0 for |x| < 1
//	Pow(x, -Inf) = +Inf for |x| < 1
//	Pow(±0, y) = NaN for y < 0 other than -1
//	Pow(±0, y) = ±0 for y an odd integer > 0
//	Pow(±0, y) = +0 for other y > 0
//	Pow(+Inf, y) = +Inf for y > 0, +0 for y < 0
//	Pow(-Inf, y) = -Pow(+Inf, y) for y an odd integer, Pow(+Inf, y) otherwise
//	Pow(-1, y) = ±1 for integer y, NaN otherwise
//	Pow(x, y) = NaN for finite x < 0 and non-integer y
//
// Otherwise the result is nearly rounded (integer powers of integers are
// exact whenever the result is representable), negated when x is negative and
// y is an odd integer, and saturates to ±Inf or ±0 outside the binary64
// range.
func Pow(x, y float64) float64 {
	if y == 0 {
		if math.IsNaN(x) {
			return math.NaN()
		}
		return 1
	}
	if math.IsNaN(x) || math.IsNaN(y) {
		return x + y
	}

	ax := math.Abs(x)
	ay := math.Abs(y)

	switch {
	case y == 2:
		return x * x
	case y == 0.5:
		if x >= -math.MaxFloat64 {
			// +0 keeps Sqrt(-0) from returning -0.
			return math.Sqrt(x + 0)
		}
	case ay == 1:
		if y == 1 {
			return x
		}
		return 1 / x
	case math.IsInf(y, 0):
		return infiniteExponent(ax, y)
	}

	hx := words.High(x)
	ix := hx & signMask
	negative := hx < 0

	yParity := notInteger
	if negative {
		yParity = classifyParity(ay)
	}

	if ax == 0 || ax == 1 || math.IsInf(ax, 1) {
		return specialBase(ax, y, negative, yParity)
	}

	if negative && yParity == notInteger {
		return math.NaN()
	}

	sign := 1.0
	if negative && yParity == oddInteger {
		sign = -1
	}

	var lg dd
	if ay > hugeExponent {
		// Only bases within 2^-20 of 1 can stay in range.
		switch {
		case ax < nearOneLow:
			if y < 0 {
				return sign * math.Inf(1)
			}
			return math.Copysign(0, sign)
		case ax > nearOneHigh:
			if y > 0 {
				return sign * math.Inf(1)
			}
			return math.Copysign(0, sign)
		}
		lg = log2Near1(ax)
	} else {
		lg = log2Extended(ax, ix)
	}

	p := multiply(y, lg)
	if r, ok := p.saturate(sign); ok {
		return r
	}
	return sign * exp2(p)
}

// infiniteExponent handles y = ±Inf for a non-NaN x.
func infiniteExponent(ax, y float64) float64 {
	switch {
	case ax == 1:
		return y - y
	case ax > 1:
		if y >= 0 {
			return y
		}
		return 0
	default:
		if y < 0 {
			return -y
		}
		return 0
	}
}

// specialBase handles |x| in {0, 1, Inf}, where the result is exact.
func specialBase(ax, y float64, negative bool, yParity parity) float64 {
	z := ax
	if y < 0 {
		if ax == 0 {
			return math.NaN()
		}
		z = 1 / z
	}
	if negative {
		switch {
		case ax == 1 && yParity == notInteger:
			return math.NaN()
		case yParity == oddInteger:
			z = -z
		}
	}
	return z
}

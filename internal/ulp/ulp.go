// Package ulp measures the distance between binary64 values in units in the
// last place.
package ulp

import "math"

// ordered maps the bit pattern of f onto a monotonically increasing integer
// line, with -0 and +0 both mapping to zero.
func ordered(f float64) int64 {
	b := int64(math.Float64bits(f))
	if b < 0 {
		return math.MinInt64 - b
	}
	return b
}

// Distance returns the number of representable binary64 values between a and
// b, counting one of the endpoints. Equal values (including +0 and -0) are at
// distance 0. If either argument is NaN, the distance is math.MaxUint64
// unless both are NaN, in which case it is 0.
func Distance(a, b float64) uint64 {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN || bNaN:
		return math.MaxUint64
	}

	oa, ob := ordered(a), ordered(b)
	if oa > ob {
		oa, ob = ob, oa
	}
	return uint64(ob) - uint64(oa)
}

// Float is Distance converted to float64, for accumulating statistics.
func Float(a, b float64) float64 {
	return float64(Distance(a, b))
}

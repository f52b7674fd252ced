package report

import (
	"math"
	"strconv"
)

// Format renders v with eight digits after the decimal point, in scientific
// notation when 0 < |v| < 1e-8 or |v| > 1e8.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "+Inf"
	case math.IsInf(v, -1):
		return "-Inf"
	}
	a := math.Abs(v)
	if (a > 0 && a < 1e-8) || a > 1e8 {
		return strconv.FormatFloat(v, 'e', 8, 64)
	}
	return strconv.FormatFloat(v, 'f', 8, 64)
}

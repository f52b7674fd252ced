package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-pow/internal/ulp"
)

// RequireBits fails t unless got and want have the same bit pattern. Signed
// zeros are distinguished; any two NaNs are accepted.
func RequireBits(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.IsNaN(got) && math.IsNaN(want) {
		return
	}
	if math.Float64bits(got) != math.Float64bits(want) {
		t.Fatalf("%s = %v (%#016x), want %v (%#016x)",
			label, got, math.Float64bits(got), want, math.Float64bits(want))
	}
}

// RequireNaN fails t if got is not NaN.
func RequireNaN(t *testing.T, label string, got float64) {
	t.Helper()
	if !math.IsNaN(got) {
		t.Fatalf("%s = %v, want NaN", label, got)
	}
}

// RequireWithinULP fails t if got and want are more than maxULP representable
// values apart.
func RequireWithinULP(t *testing.T, label string, got, want float64, maxULP uint64) {
	t.Helper()
	if d := ulp.Distance(got, want); d > maxULP {
		t.Fatalf("%s = %v, want %v (%d ulp > %d)", label, got, want, d, maxULP)
	}
}

// RequireNearlyEqual fails t if got and want differ by more than eps, taken
// as an absolute tolerance near zero and a relative one elsewhere.
func RequireNearlyEqual(t *testing.T, label string, got, want, eps float64) {
	t.Helper()
	diff := math.Abs(got - want)
	if diff <= eps {
		return
	}
	if largest := math.Max(math.Abs(got), math.Abs(want)); largest > 1 && diff/largest <= eps {
		return
	}
	t.Fatalf("%s = %v, want %v (diff %v > eps %v)", label, got, want, diff, eps)
}

// MaxULPDiff returns the largest ULP distance between paired elements.
// Returns an error if the slices differ in length.
func MaxULPDiff(a, b []float64) (uint64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	var maxDiff uint64
	for i := range a {
		if d := ulp.Distance(a[i], b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

package ulp

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tiny := math.SmallestNonzeroFloat64

	tests := []struct {
		name string
		a, b float64
		want uint64
	}{
		{"equal", 1.5, 1.5, 0},
		{"signed zeros", 0, negZero, 0},
		{"next up", 1, math.Nextafter(1, 2), 1},
		{"next down", 1, math.Nextafter(1, 0), 1},
		{"symmetric", math.Nextafter(1, 2), 1, 1},
		{"across zero", -tiny, tiny, 2},
		{"zero to subnormal", 0, tiny, 1},
		{"max to inf", math.MaxFloat64, math.Inf(1), 1},
		{"both NaN", math.NaN(), math.NaN(), 0},
		{"one NaN", math.NaN(), 1, math.MaxUint64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.want {
				t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestDistanceAcrossBinade(t *testing.T) {
	// 2^52 values separate 1 and 2.
	if got := Distance(1, 2); got != 1<<52 {
		t.Fatalf("Distance(1, 2) = %d, want %d", got, uint64(1)<<52)
	}
	if got := Float(-1, -2); got != 1<<52 {
		t.Fatalf("Float(-1, -2) = %v, want 2^52", got)
	}
}

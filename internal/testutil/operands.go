package testutil

import (
	"math"
	"math/rand/v2"
)

// DeterministicBases returns n positive values spread log-uniformly over
// [lo, hi] from a fixed seed.
func DeterministicBases(seed uint64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewPCG(seed, 0))
	llo, lhi := math.Log(lo), math.Log(hi)
	for i := range out {
		out[i] = math.Exp(llo + rng.Float64()*(lhi-llo))
	}
	return out
}

// DeterministicExponents returns n values spread uniformly over [lo, hi)
// from a fixed seed.
func DeterministicExponents(seed uint64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewPCG(seed, 1))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Integers returns the float64 values lo, lo+1, ..., hi.
func Integers(lo, hi int) []float64 {
	if hi < lo {
		return nil
	}
	out := make([]float64, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		out = append(out, float64(k))
	}
	return out
}

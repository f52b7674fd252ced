package pow

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-pow/internal/testutil"
)

var benchSink float64

func BenchmarkPow(b *testing.B) {
	bases := testutil.DeterministicBases(1, 1e-3, 1e3, 1024)
	exps := testutil.DeterministicExponents(1, -20, 20, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i & 1023
		benchSink = Pow(bases[j], exps[j])
	}
}

func BenchmarkPowSpecial(b *testing.B) {
	for i := 0; i < b.N; i++ {
		benchSink = Pow(-2, float64(i&7))
	}
}

func BenchmarkMathPowRef(b *testing.B) {
	bases := testutil.DeterministicBases(1, 1e-3, 1e3, 1024)
	exps := testutil.DeterministicExponents(1, -20, 20, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		j := i & 1023
		benchSink = math.Pow(bases[j], exps[j])
	}
}

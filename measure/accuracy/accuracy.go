package accuracy

import (
	"math"
	"math/rand/v2"

	vecmath "github.com/cwbudde/algo-vecmath"
	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-pow/internal/cpu"
	"github.com/cwbudde/algo-pow/internal/ulp"
	"github.com/cwbudde/algo-pow/pow"
)

// Result summarizes a measurement run.
type Result struct {
	Config Config `json:"config"`

	// MaxULP and MeanULP are the worst and average distance between pow.Pow
	// and math.Pow in units in the last place.
	MaxULP  uint64  `json:"maxUlp"`
	MeanULP float64 `json:"meanUlp"`

	// Identical counts samples where both functions returned the same bits.
	Identical int `json:"identical"`

	// WorstBase and WorstExponent are the operands of the MaxULP sample.
	WorstBase     float64 `json:"worstBase"`
	WorstExponent float64 `json:"worstExponent"`

	// ApproxMaxRelErr and ApproxMeanRelErr describe the fast approximation
	// over the ApproxSamples pairs whose reference is finite and non-zero.
	ApproxMaxRelErr  float64 `json:"approxMaxRelErr"`
	ApproxMeanRelErr float64 `json:"approxMeanRelErr"`
	ApproxSamples    int     `json:"approxSamples"`

	// HostFMA records whether the host could have fused the products that
	// pow keeps separate.
	HostFMA bool `json:"hostFma"`
}

// Measure runs a measurement with the given options applied to
// DefaultConfig.
func Measure(opts ...Option) (Result, error) {
	return Run(ApplyOptions(opts...))
}

// Run measures over the sample described by cfg.
func Run(cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	xs, ys := sample(cfg)
	res := Result{Config: cfg, HostFMA: cpu.HasFMA()}

	ulps := make([]float64, len(xs))
	relErrs := make([]float64, 0, len(xs))

	for i := range xs {
		x, y := xs[i], ys[i]
		got := pow.Pow(x, y)
		want := math.Pow(x, y)

		d := ulp.Distance(got, want)
		ulps[i] = float64(d)
		if math.Float64bits(got) == math.Float64bits(want) {
			res.Identical++
		}
		if i == 0 || d > res.MaxULP {
			res.MaxULP = d
			res.WorstBase, res.WorstExponent = x, y
		}

		if e, ok := approxRelErr(x, y, want); ok {
			relErrs = append(relErrs, e)
		}
	}

	res.MeanULP = vecmath.Sum(ulps) / float64(len(ulps))
	if n := len(relErrs); n > 0 {
		res.ApproxSamples = n
		res.ApproxMaxRelErr = vecmath.MaxAbs(relErrs)
		res.ApproxMeanRelErr = vecmath.Sum(relErrs) / float64(n)
	}

	return res, nil
}

// Approx is the fast baseline: exp(y·ln x) from algo-approx. x must be
// positive.
func Approx(x, y float64) float64 {
	return approx.FastExp(y * approx.FastLog(x))
}

func approxRelErr(x, y, want float64) (float64, bool) {
	if want == 0 || math.IsInf(want, 0) || math.IsNaN(want) {
		return 0, false
	}
	got := Approx(x, y)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		return 0, false
	}
	return math.Abs((got - want) / want), true
}

// sample draws the operand pairs of cfg. Bases and exponents use separate
// PCG streams so widening one range leaves the other sequence unchanged.
func sample(cfg Config) (xs, ys []float64) {
	xs = make([]float64, cfg.Samples)
	ys = make([]float64, cfg.Samples)

	bases := rand.New(rand.NewPCG(cfg.Seed, 0))
	exps := rand.New(rand.NewPCG(cfg.Seed, 1))
	llo, lhi := math.Log(cfg.MinBase), math.Log(cfg.MaxBase)

	for i := range xs {
		xs[i] = math.Exp(llo + bases.Float64()*(lhi-llo))
		ys[i] = cfg.MinExponent + exps.Float64()*(cfg.MaxExponent-cfg.MinExponent)
	}
	return xs, ys
}

// Package accuracy measures how closely pow.Pow tracks a reference power
// function over a reproducible sample of operands.
//
// Each run draws Samples operand pairs from a PCG source seeded with Seed:
// bases spread log-uniformly over [MinBase, MaxBase] and exponents spread
// uniformly over [MinExponent, MaxExponent]. For every pair the package
// records the ULP distance between pow.Pow and math.Pow, and the relative
// error of a fast exp(y·log x) approximation built on algo-approx, which
// shows what the double-double pipeline buys over a single-precision style
// shortcut.
//
// Basic usage:
//
//	res, err := accuracy.Measure(accuracy.WithSamples(100000))
//	if err != nil {
//		return err
//	}
//	fmt.Println(res.MaxULP, res.MeanULP)
package accuracy

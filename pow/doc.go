// Package pow computes x**y for binary64 operands with the special-value
// conventions and accuracy of the classic fdlibm pow routine.
//
// The computation runs as a pipeline with early exits:
//
//   - special cases: zero, NaN and exact exponents, exact bases 0, 1 and Inf
//   - parity of the exponent for negative bases, which fixes the sign
//   - log2|x| in double-double precision (a short series when |y| > 2^31,
//     a breakpoint-reduced minimax fit otherwise)
//   - the double-double product y·log2|x|, with overflow and underflow
//     detected before any exponential is evaluated
//   - 2^product from an integer/fraction split and a degree 5 minimax fit,
//     with the integer part added to the result's binary exponent
//
// Undefined results are NaN, out-of-range results are signed infinities or
// zeros. Pow never panics, allocates nothing and keeps no state, so it is safe
// for concurrent use.
//
// # Floating-point contraction
//
// Go allows x*y + z to be evaluated as a fused multiply-add. The double-double
// steps depend on each product being rounded on its own, so every product
// that feeds an addition is written as float64(x*y), which the language
// guarantees is rounded before use.
//
// # Usage
//
//	z := pow.Pow(2, 10)         // 1024
//	r := pow.Pow(8, 1.0/3.0)    // 2
//	n := pow.Pow(-8, 1.0/3.0)   // NaN: negative base, fractional exponent
//	o := pow.Pow(10, 400)       // +Inf
package pow

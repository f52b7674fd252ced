// Package report turns raw operand text and pow results into something a
// person can read.
//
// ParseOperands validates the two operand strings, Classify explains why a
// result is NaN, infinite or a flushed zero, and Format renders a finite
// value with eight significant decimals, switching to scientific notation
// for very small or very large magnitudes.
package report

// Package words reads and writes the two 32-bit halves of a binary64 value.
//
// The high word holds the sign bit, the 11-bit biased exponent and the top 20
// mantissa bits; the low word holds the remaining 32 mantissa bits. Setters
// replace exactly one half and never round or normalize, so
//
//	WithLow(WithHigh(0, High(d)), Low(d))
//
// is bit-identical to d for every d, NaN payloads included.
package words

import "math"

const lowMask = 0x00000000ffffffff

// High returns the upper 32 bits of d.
func High(d float64) int32 {
	return int32(math.Float64bits(d) >> 32)
}

// Low returns the lower 32 bits of d.
func Low(d float64) int32 {
	return int32(uint32(math.Float64bits(d)))
}

// WithHigh returns d with its upper 32 bits replaced by h.
func WithHigh(d float64, h int32) float64 {
	b := math.Float64bits(d)&lowMask | uint64(uint32(h))<<32
	return math.Float64frombits(b)
}

// WithLow returns d with its lower 32 bits replaced by l.
func WithLow(d float64, l int32) float64 {
	b := math.Float64bits(d)&^lowMask | uint64(uint32(l))
	return math.Float64frombits(b)
}

// ClearLow truncates d to its upper 32 bits. The result has at most 21
// significant bits, so products of two such values are exact.
func ClearLow(d float64) float64 {
	return math.Float64frombits(math.Float64bits(d) &^ lowMask)
}

package report

import (
	"fmt"
	"math"
)

// Class is the broad category of a pow result.
type Class int

const (
	ClassFinite Class = iota
	ClassUndefined
	ClassOverflow
	ClassUnderflow
)

// String returns a lower-case name for the class.
func (c Class) String() string {
	switch c {
	case ClassFinite:
		return "finite"
	case ClassUndefined:
		return "undefined"
	case ClassOverflow:
		return "overflow"
	case ClassUnderflow:
		return "underflow"
	default:
		return "unknown"
	}
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Reason narrows a Class down to the operand pattern that produced it.
type Reason int

const (
	ReasonNone Reason = iota
	// ReasonZeroNegativePower: 0 raised to a negative power.
	ReasonZeroNegativePower
	// ReasonComplexResult: a negative base with a fractional exponent.
	ReasonComplexResult
	// ReasonNotReal: any other NaN result, including NaN operands.
	ReasonNotReal
	// ReasonDivisionByZero: ±0 raised to -1 yields an infinity.
	ReasonDivisionByZero
	ReasonOverflow
	ReasonUnderflow
)

// String returns a kebab-case name for the reason.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonZeroNegativePower:
		return "zero-negative-power"
	case ReasonComplexResult:
		return "complex-result"
	case ReasonNotReal:
		return "not-real"
	case ReasonDivisionByZero:
		return "division-by-zero"
	case ReasonOverflow:
		return "overflow"
	case ReasonUnderflow:
		return "underflow"
	default:
		return "unknown"
	}
}

// MarshalText encodes the reason by name.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Outcome explains a single pow result.
type Outcome struct {
	Class   Class  `json:"class"`
	Reason  Reason `json:"reason"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// OK reports whether the result is an ordinary finite value.
func (o Outcome) OK() bool {
	return o.Class == ClassFinite
}

// Classify explains result, which is assumed to be pow(x, y).
func Classify(x, y, result float64) Outcome {
	switch {
	case math.IsNaN(result):
		return classifyNaN(x, y)
	case math.IsInf(result, 0):
		return classifyInf(x, y, result)
	case result == 0 && x != 0 && isFinite(x) && isFinite(y):
		return Outcome{
			Class:   ClassUnderflow,
			Reason:  ReasonUnderflow,
			Title:   "Underflow",
			Message: fmt.Sprintf("%s^%s is too small to represent and was rounded to zero.", Format(x), Format(y)),
		}
	}
	return Outcome{
		Class:   ClassFinite,
		Reason:  ReasonNone,
		Title:   "Result",
		Message: Format(result),
	}
}

func classifyNaN(x, y float64) Outcome {
	o := Outcome{Class: ClassUndefined}
	switch {
	case x == 0 && y < 0:
		o.Reason = ReasonZeroNegativePower
		o.Title = "Division by Zero"
		o.Message = "Raising 0 to a negative power requires dividing by zero. " +
			"Use a positive exponent or a non-zero base."
	case x < 0 && isFinite(y) && y != math.Trunc(y):
		o.Reason = ReasonComplexResult
		o.Title = "Complex Number Result"
		o.Message = "A negative base with a fractional exponent has no real value. " +
			"Use an integer exponent or a positive base."
	default:
		o.Reason = ReasonNotReal
		o.Title = "Invalid Result"
		o.Message = fmt.Sprintf("%s^%s is not a real number.", Format(x), Format(y))
	}
	return o
}

func classifyInf(x, y, result float64) Outcome {
	if x == 0 && y < 0 {
		return Outcome{
			Class:   ClassOverflow,
			Reason:  ReasonDivisionByZero,
			Title:   "Infinite Result",
			Message: "Raising 0 to a negative power divides by zero.",
		}
	}
	o := Outcome{
		Class:  ClassOverflow,
		Reason: ReasonOverflow,
		Title:  "Overflow - Positive Infinity",
		Message: "The result exceeds the largest finite binary64 value " +
			"and saturated to positive infinity.",
	}
	if result < 0 {
		o.Title = "Overflow - Negative Infinity"
		o.Message = "The result exceeds the largest finite binary64 value " +
			"and saturated to negative infinity."
	}
	return o
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

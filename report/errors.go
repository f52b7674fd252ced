package report

import "errors"

var (
	// ErrMissingInput is returned when the base or the exponent is blank.
	ErrMissingInput = errors.New("base and exponent are both required")

	// ErrInvalidInput is returned when an operand is not a decimal or
	// hexadecimal floating-point literal.
	ErrInvalidInput = errors.New("operand is not a valid number")
)

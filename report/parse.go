package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseOperands parses the base and exponent of a power expression.
//
// Surrounding whitespace is ignored. Literals beyond the binary64 range are
// accepted and saturate to ±Inf (or round to zero), so the caller can report
// the resulting overflow instead of rejecting the input.
func ParseOperands(base, exponent string) (x, y float64, err error) {
	base = strings.TrimSpace(base)
	exponent = strings.TrimSpace(exponent)
	if base == "" || exponent == "" {
		return 0, 0, ErrMissingInput
	}

	x, err = parseOperand("base", base)
	if err != nil {
		return 0, 0, err
	}
	y, err = parseOperand("exponent", exponent)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func parseOperand(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return v, nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}
	return 0, fmt.Errorf("%s %q: %w", name, s, ErrInvalidInput)
}

package accuracy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid accuracy config")

// Validate checks a Config built without the With… options.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("%w: samples must be > 0: %d", ErrInvalidConfig, c.Samples)
	}
	if !(c.MinBase > 0) || c.MinBase > c.MaxBase || math.IsInf(c.MaxBase, 0) {
		return fmt.Errorf("%w: base range must satisfy 0 < min <= max < Inf: [%g, %g]",
			ErrInvalidConfig, c.MinBase, c.MaxBase)
	}
	if !(c.MinExponent <= c.MaxExponent) || math.IsInf(c.MinExponent, 0) || math.IsInf(c.MaxExponent, 0) {
		return fmt.Errorf("%w: exponent range must be finite with min <= max: [%g, %g]",
			ErrInvalidConfig, c.MinExponent, c.MaxExponent)
	}
	return nil
}

package accuracy

import "math"

// Config defines the operand sample of a measurement run.
type Config struct {
	Samples     int     `json:"samples"`
	Seed        uint64  `json:"seed"`
	MinBase     float64 `json:"minBase"`
	MaxBase     float64 `json:"maxBase"`
	MinExponent float64 `json:"minExponent"`
	MaxExponent float64 `json:"maxExponent"`
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a sample that stays well inside the binary64 range.
func DefaultConfig() Config {
	return Config{
		Samples:     10000,
		Seed:        1,
		MinBase:     1e-3,
		MaxBase:     1e3,
		MinExponent: -50,
		MaxExponent: 50,
	}
}

// WithSamples sets the number of operand pairs.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Samples = n
		}
	}
}

// WithSeed sets the PCG seed.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Seed = seed
	}
}

// WithBaseRange sets the base interval. Both ends must be positive and
// finite with lo <= hi.
func WithBaseRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if lo > 0 && lo <= hi && !math.IsInf(hi, 0) {
			cfg.MinBase = lo
			cfg.MaxBase = hi
		}
	}
}

// WithExponentRange sets the exponent interval.
func WithExponentRange(lo, hi float64) Option {
	return func(cfg *Config) {
		if lo <= hi && !math.IsInf(lo, 0) && !math.IsInf(hi, 0) {
			cfg.MinExponent = lo
			cfg.MaxExponent = hi
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

package accuracy

import (
	"errors"
	"math"
	"testing"
)

func TestApplyOptions(t *testing.T) {
	cfg := ApplyOptions(
		WithSamples(500),
		WithSeed(42),
		WithBaseRange(0.5, 2),
		WithExponentRange(-10, 10),
	)
	want := Config{Samples: 500, Seed: 42, MinBase: 0.5, MaxBase: 2, MinExponent: -10, MaxExponent: 10}
	if cfg != want {
		t.Fatalf("ApplyOptions() = %+v, want %+v", cfg, want)
	}
}

func TestOptionsIgnoreInvalidValues(t *testing.T) {
	def := DefaultConfig()
	tests := []struct {
		name string
		opt  Option
	}{
		{"zero samples", WithSamples(0)},
		{"negative samples", WithSamples(-3)},
		{"zero base", WithBaseRange(0, 1)},
		{"reversed bases", WithBaseRange(2, 1)},
		{"infinite base", WithBaseRange(1, math.Inf(1))},
		{"nan base", WithBaseRange(math.NaN(), 1)},
		{"reversed exponents", WithExponentRange(5, -5)},
		{"infinite exponent", WithExponentRange(-1, math.Inf(1))},
		{"nan exponent", WithExponentRange(math.NaN(), 1)},
		{"nil", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ApplyOptions(tc.opt); got != def {
				t.Fatalf("ApplyOptions() = %+v, want defaults %+v", got, def)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no samples", func(c *Config) { c.Samples = 0 }},
		{"zero base", func(c *Config) { c.MinBase = 0 }},
		{"nan base", func(c *Config) { c.MinBase = math.NaN() }},
		{"reversed bases", func(c *Config) { c.MinBase, c.MaxBase = 10, 1 }},
		{"infinite base", func(c *Config) { c.MaxBase = math.Inf(1) }},
		{"reversed exponents", func(c *Config) { c.MinExponent, c.MaxExponent = 1, -1 }},
		{"nan exponent", func(c *Config) { c.MaxExponent = math.NaN() }},
		{"infinite exponent", func(c *Config) { c.MinExponent = math.Inf(-1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
			if _, err := Run(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Run() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

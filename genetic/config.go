// SPDX-License-Identifier: MIT

package genetic

import (
	"fmt"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// Config tunes the genetic algorithm's palette-bounded evolution (§4.G).
type Config struct {
	// PopulationSize is P, the number of individuals per generation. Must
	// be ≥ 2.
	PopulationSize int

	// MaxGenerations bounds each K-stage. Must be ≥ 1.
	MaxGenerations int

	// InitialMutationRate is the starting per-individual mutation
	// probability, in [0,1].
	InitialMutationRate float64

	// MutationDecay multiplies the mutation rate after every generation.
	MutationDecay float64

	// MinMutationRate floors the decaying mutation rate.
	MinMutationRate float64

	err error
}

// Option configures a Config via functional options.
type Option func(*Config)

// DefaultConfig returns the specification's default tuning.
func DefaultConfig() Config {
	return Config{
		PopulationSize:      64,
		MaxGenerations:      500,
		InitialMutationRate: 0.03,
		MutationDecay:       0.98,
		MinMutationRate:     0.005,
	}
}

// WithPopulationSize overrides P. v must be ≥ 2.
func WithPopulationSize(v int) Option {
	return func(c *Config) {
		if v < 2 {
			c.err = fmt.Errorf("%w: genetic PopulationSize must be >= 2, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.PopulationSize = v
	}
}

// WithMaxGenerations overrides G. v must be ≥ 1.
func WithMaxGenerations(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: genetic MaxGenerations must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.MaxGenerations = v
	}
}

// WithInitialMutationRate overrides the starting mutation rate. v must be
// in [0,1].
func WithInitialMutationRate(v float64) Option {
	return func(c *Config) {
		if v < 0 || v > 1 {
			c.err = fmt.Errorf("%w: genetic InitialMutationRate must be in [0,1], got %f", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.InitialMutationRate = v
	}
}

// NewConfig resolves DefaultConfig() plus opts, in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Validate surfaces any option misuse recorded during NewConfig.
func (c Config) Validate() error {
	return c.err
}

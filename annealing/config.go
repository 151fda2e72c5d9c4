// SPDX-License-Identifier: MIT

package annealing

import (
	"fmt"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// Config tunes the cooling schedule of each K-stage (§4.F). Defaults
// reproduce the specification's fixed formulas:
//
//	iters = max(IterationFloor, IterationMultiplier * n)
//	alpha = (TMin/T0) ^ (1/iters)
type Config struct {
	// IterationFloor is the minimum iteration budget per K-stage.
	IterationFloor int

	// IterationMultiplier scales the iteration budget with n.
	IterationMultiplier int

	// T0 is the initial temperature.
	T0 float64

	// TMin is the final temperature of the geometric cooling schedule.
	TMin float64

	err error
}

// Option configures a Config via functional options.
type Option func(*Config)

// DefaultConfig returns the specification's default tuning.
func DefaultConfig() Config {
	return Config{
		IterationFloor:      1000,
		IterationMultiplier: 50,
		T0:                  1.0,
		TMin:                1e-4,
	}
}

// WithIterationFloor overrides the minimum per-K-stage iteration budget.
// v must be ≥ 1.
func WithIterationFloor(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: annealing IterationFloor must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.IterationFloor = v
	}
}

// WithIterationMultiplier overrides the n-scaled iteration multiplier. v
// must be ≥ 1.
func WithIterationMultiplier(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: annealing IterationMultiplier must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.IterationMultiplier = v
	}
}

// WithInitialTemperature overrides T0. v must be > 0.
func WithInitialTemperature(v float64) Option {
	return func(c *Config) {
		if v <= 0 {
			c.err = fmt.Errorf("%w: annealing T0 must be > 0, got %f", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.T0 = v
	}
}

// WithMinTemperature overrides TMin. v must be > 0.
func WithMinTemperature(v float64) Option {
	return func(c *Config) {
		if v <= 0 {
			c.err = fmt.Errorf("%w: annealing TMin must be > 0, got %f", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.TMin = v
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
	if c.err != nil {
		return c.err
	}
	if c.TMin >= c.T0 {
		return fmt.Errorf("%w: annealing TMin must be < T0", xerr.ErrInvalidConfiguration)
	}
	return nil
}

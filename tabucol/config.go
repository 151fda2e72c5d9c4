// SPDX-License-Identifier: MIT

package tabucol

import (
	"fmt"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// Config tunes the inner TabuCol loop (§4.E). Defaults reproduce the
// specification's fixed formulas:
//
//	tabu_tenure    = max(TenureFloor, n / TenureDivisor)
//	max_iterations = max(IterationFloor, IterationMultiplier * n)
type Config struct {
	// TenureFloor is the minimum tabu tenure, regardless of graph size.
	TenureFloor int

	// TenureDivisor scales tenure with n: n/TenureDivisor.
	TenureDivisor int

	// IterationFloor is the minimum iteration budget per K-stage.
	IterationFloor int

	// IterationMultiplier scales the iteration budget with n.
	IterationMultiplier int

	// err records an option misuse; surfaced by Validate, not by panicking,
	// since these values may originate from untrusted CLI flags.
	err error
}

// Option configures a Config via functional options, following the
// teacher's bfs.Option / core.GraphOption idiom.
type Option func(*Config)

// DefaultConfig returns the specification's default tuning.
func DefaultConfig() Config {
	return Config{
		TenureFloor:         7,
		TenureDivisor:       10,
		IterationFloor:      10_000,
		IterationMultiplier: 100,
	}
}

// WithTenureFloor overrides the minimum tabu tenure. v must be ≥ 1.
func WithTenureFloor(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: tabucol TenureFloor must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.TenureFloor = v
	}
}

// WithTenureDivisor overrides the tenure/n divisor. v must be ≥ 1.
func WithTenureDivisor(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: tabucol TenureDivisor must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.TenureDivisor = v
	}
}

// WithIterationFloor overrides the minimum per-K-stage iteration budget.
// v must be ≥ 1.
func WithIterationFloor(v int) Option {
	return func(c *Config) {
		if v < 1 {
			c.err = fmt.Errorf("%w: tabucol IterationFloor must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
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
			c.err = fmt.Errorf("%w: tabucol IterationMultiplier must be >= 1, got %d", xerr.ErrInvalidConfiguration, v)
			return
		}
		c.IterationMultiplier = v
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

// Validate surfaces any option misuse recorded during NewConfig, wrapped in
// xerr.ErrInvalidConfiguration.
func (c Config) Validate() error {
	return c.err
}

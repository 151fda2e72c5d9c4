// SPDX-License-Identifier: MIT

package exact

import (
	"fmt"
	"time"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// minProgressInterval and maxProgressInterval bound EXACT_PROGRESS_INTERVAL
// (§6): accepted range [0.05, 600] seconds.
const (
	minProgressInterval = 50 * time.Millisecond
	maxProgressInterval = 600 * time.Second

	// DefaultProgressInterval is used when no override is supplied.
	DefaultProgressInterval = 5 * time.Second
)

// Config tunes the branch-and-bound solver's diagnostic progress reporting
// (§4.H). The search itself has no tunables: pruning is the sole
// correctness-preserving optimisation (§9).
type Config struct {
	// ProgressInterval is the minimum wall-clock gap between progress
	// lines emitted to the diagnostic sink.
	ProgressInterval time.Duration

	err error
}

// Option configures a Config via functional options.
type Option func(*Config)

// DefaultConfig returns the specification's default tuning.
func DefaultConfig() Config {
	return Config{ProgressInterval: DefaultProgressInterval}
}

// WithProgressInterval overrides the diagnostic reporting interval. v must
// lie in [0.05s, 600s].
func WithProgressInterval(v time.Duration) Option {
	return func(c *Config) {
		if v < minProgressInterval || v > maxProgressInterval {
			c.err = fmt.Errorf("%w: exact ProgressInterval must be in [%s,%s], got %s",
				xerr.ErrInvalidConfiguration, minProgressInterval, maxProgressInterval, v)
			return
		}
		c.ProgressInterval = v
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

// SPDX-License-Identifier: MIT
//
// Package dispatch maps a strategy name to its entry point (component J):
// it times the call with a monotonic clock, validates the result size,
// derives an independent RNG stream per strategy, and forwards to whatever
// snapshot sink / progress writer the caller supplied. This is the single
// seam the CLI host (cmd/chromabench) drives; no package outside dispatch
// ever needs to know all six strategies exist.
package dispatch

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/chromatic/annealing"
	"github.com/katalvlaran/chromatic/dsatur"
	"github.com/katalvlaran/chromatic/exact"
	"github.com/katalvlaran/chromatic/genetic"
	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/internal/xerr"
	"github.com/katalvlaran/chromatic/internal/xrand"
	"github.com/katalvlaran/chromatic/snapshot"
	"github.com/katalvlaran/chromatic/tabucol"
	"github.com/katalvlaran/chromatic/welshpowell"
)

// Algorithm is one of the six names in the closed variant set accepted by
// Run. The type exists for documentation; Run still accepts a bare string
// so CLI flag parsing needs no intermediate conversion step.
type Algorithm = string

// The closed set of accepted algorithm names (§4.J). Order here fixes the
// RNG stream id each algorithm is derived from (see streamIndex), so it
// must never be reordered once published.
const (
	WelshPowell        Algorithm = "welsh_powell"
	DSATUR             Algorithm = "dsatur"
	SimulatedAnnealing Algorithm = "simulated_annealing"
	Genetic            Algorithm = "genetic"
	TabuSearch         Algorithm = "tabu_search"
	ExactSolver        Algorithm = "exact_solver"
)

// streamIndex fixes the RNG stream id derived for each algorithm, so a
// fixed base seed reproduces an entire benchmark sweep deterministically
// regardless of which subset of algorithms a given run invokes.
var streamIndex = map[Algorithm]uint64{
	WelshPowell:        0,
	DSATUR:             1,
	SimulatedAnnealing: 2,
	Genetic:            3,
	TabuSearch:         4,
	ExactSolver:        5,
}

// Config aggregates every strategy's tunables. The zero value is valid: a
// caller only sets the fields of the algorithm it intends to invoke, and
// Run substitutes each sub-package's own DefaultConfig() for any field
// left at its zero value (never the sub-package's literal zero Config,
// which e.g. tabucol's tenure-divisor arithmetic would divide by zero on).
type Config struct {
	Tabucol   tabucol.Config
	Annealing annealing.Config
	Genetic   genetic.Config
	Exact     exact.Config
}

// DefaultConfig returns every sub-package's own default tuning, aggregated.
// Equivalent to what Run substitutes for a zero-value Config field, spelled
// out for callers who want to start from defaults and override explicitly.
func DefaultConfig() Config {
	return Config{
		Tabucol:   tabucol.DefaultConfig(),
		Annealing: annealing.DefaultConfig(),
		Genetic:   genetic.DefaultConfig(),
		Exact:     exact.DefaultConfig(),
	}
}

// resolve substitutes each sub-package's DefaultConfig() for any field
// still at its literal zero value, so a caller-supplied Config{} (or a
// Config with only one algorithm's field populated) never reaches a
// strategy with an unusable zero Config.
func (c Config) resolve() Config {
	if c.Tabucol == (tabucol.Config{}) {
		c.Tabucol = tabucol.DefaultConfig()
	}
	if c.Annealing == (annealing.Config{}) {
		c.Annealing = annealing.DefaultConfig()
	}
	if c.Genetic == (genetic.Config{}) {
		c.Genetic = genetic.DefaultConfig()
	}
	if c.Exact == (exact.Config{}) {
		c.Exact = exact.DefaultConfig()
	}
	return c
}

// Result carries a completed run's colouring plus the bookkeeping the CLI
// host needs to emit a metrics CSV row (§6).
type Result struct {
	Algorithm    Algorithm
	Colouring    []int32
	ColoursUsed  int
	RuntimeMS    float64
	VerticesUsed int
	EdgesUsed    int
}

// Run invokes algo on gr, deriving its RNG from baseSeed via the stream id
// fixed by streamIndex, recording snapshots to sink (nil is a valid "no
// snapshots" value), and forwarding progress to progress (consulted only by
// exact_solver; nil is equally valid there).
//
// Errors (wrapping xerr.ErrUnknownAlgorithm / xerr.ErrResultSizeMismatch)
// are returned rather than panicking: algo and the Config values may
// originate from untrusted CLI flags.
func Run(algo Algorithm, gr *graph.Graph, cfg Config, baseSeed int64, sink snapshot.Sink, progress io.Writer) (Result, error) {
	stream, ok := streamIndex[algo]
	if !ok {
		return Result{}, fmt.Errorf("dispatch: %q: %w", algo, xerr.ErrUnknownAlgorithm)
	}
	cfg = cfg.resolve()

	base := xrand.RNGFromSeed(baseSeed)
	rng := xrand.DeriveRNG(base, stream)

	start := time.Now()
	var colouring []int32

	switch algo {
	case WelshPowell:
		colouring = welshpowell.Run(gr, sink)
	case DSATUR:
		colouring = dsatur.Run(gr, sink)
	case SimulatedAnnealing:
		colouring = annealing.Run(gr, rng, cfg.Annealing, sink)
	case Genetic:
		colouring = genetic.Run(gr, rng, cfg.Genetic, sink)
	case TabuSearch:
		colouring = tabucol.Run(gr, rng, cfg.Tabucol, sink)
	case ExactSolver:
		colouring = exact.Run(gr, cfg.Exact, sink, progress)
	}
	elapsed := time.Since(start)

	if len(colouring) != gr.N() {
		return Result{}, fmt.Errorf("dispatch: %s returned %d colours for %d vertices: %w",
			algo, len(colouring), gr.N(), xerr.ErrResultSizeMismatch)
	}

	return Result{
		Algorithm:    algo,
		Colouring:    colouring,
		ColoursUsed:  graph.UsedColours(colouring),
		RuntimeMS:    elapsed.Seconds() * 1000,
		VerticesUsed: gr.N(),
		EdgesUsed:    gr.M(),
	}, nil
}

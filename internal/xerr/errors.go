// SPDX-License-Identifier: MIT
//
// Package xerr declares the five terminal error kinds shared across the
// colouring engine (§7 of the specification): every producer — graph
// compilation, the DIMACS reader, configuration validation, the dispatcher,
// and file I/O — wraps one of these sentinels with fmt.Errorf("%w: ...")
// rather than inventing a bespoke error type per package. Callers branch
// with errors.Is, exactly as core's sentinel errors are used throughout the
// teacher codebase.
package xerr

import "errors"

var (
	// ErrMalformedGraph marks a structurally invalid graph: missing "p" line,
	// an edge referencing an out-of-range vertex, or an unreadable input file.
	ErrMalformedGraph = errors.New("xerr: malformed graph")

	// ErrUnknownAlgorithm marks a strategy name outside the closed variant set
	// {welsh_powell, dsatur, simulated_annealing, genetic, tabu_search, exact_solver}.
	ErrUnknownAlgorithm = errors.New("xerr: unknown algorithm")

	// ErrInvalidConfiguration marks a numeric option that failed to parse or
	// lies outside its accepted range.
	ErrInvalidConfiguration = errors.New("xerr: invalid configuration")

	// ErrResultSizeMismatch marks a strategy returning a colouring whose
	// length differs from the input graph's vertex count. This is an
	// internal-logic violation, never a user-facing condition.
	ErrResultSizeMismatch = errors.New("xerr: result size mismatch")

	// ErrIOFailure marks a failure opening any input, output, results CSV,
	// or snapshot file.
	ErrIOFailure = errors.New("xerr: io failure")
)

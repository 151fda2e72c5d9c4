// SPDX-License-Identifier: MIT
//
// Package tabucol implements Tabu Search (TabuCol) with a k-descent outer
// loop (component E): for palette sizes K = Δ+1, Δ, …, 1, build a
// randomised initial K-colouring and run a tabu-governed conflict-repair
// loop; record the smallest K for which a conflict-free colouring was
// found, and fall back to a guaranteed-valid Δ+1 greedy colouring if the
// descent never legalises anything.
package tabucol

import (
	"math/rand"

	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/repair"
	"github.com/katalvlaran/chromatic/snapshot"
)

// Run executes the k-descent TabuCol search on gr using rng for every
// stochastic decision (the randomised initial builder and allowed-colour
// sampling). cfg must already be valid (see Config.Validate); callers are
// expected to validate configuration once, at the dispatcher boundary,
// rather than on every invocation.
//
// Complexity: each K-stage inner loop is bounded by
// max(cfg.IterationFloor, cfg.IterationMultiplier*n) iterations, each
// O(|C|·K) where C is the current conflict set.
func Run(gr *graph.Graph, rng *rand.Rand, cfg Config, sink snapshot.Sink) []int32 {
	n := gr.N()
	if n == 0 {
		return []int32{}
	}

	k0 := gr.MaxDegree() + 1
	fallback := repair.Repair(gr, make([]int32, n), k0) // guaranteed valid: standard Δ+1 greedy order

	var best []int32
	order := gr.DescendingDegreeOrder()

	for k := k0; k >= 1; k-- {
		colouring := randomisedGreedy(gr, order, rng, k)
		conflicts := gr.TotalConflicts(colouring)

		if conflicts == 0 {
			best = colouring
			snapshot.Record(sink, best)
			continue
		}

		colouring, conflicts = tabuSearch(gr, cfg, sink, colouring, conflicts, k)
		if conflicts == 0 {
			best = colouring
			continue
		}

		// Inner loop exhausted without reaching zero conflicts: the
		// descent stops here, per §4.E step 4.
		break
	}

	if best == nil {
		best = fallback
	}
	snapshot.Record(sink, best)
	return best
}

// randomisedGreedy builds a (possibly invalid) K-colouring: for vertices in
// descending-degree order, uniformly pick an allowed colour (unused by any
// already-coloured neighbour); if none is allowed, pick a
// conflict-minimising colour, ties broken by smaller index.
func randomisedGreedy(gr *graph.Graph, order []int32, rng *rand.Rand, k int) []int32 {
	n := gr.N()
	colouring := make([]int32, n)
	for i := range colouring {
		colouring[i] = -1
	}

	allowed := make([]int32, 0, k)
	for _, v32 := range order {
		v := int(v32)
		allowed = allowed[:0]
		for c := int32(0); int(c) < k; c++ {
			if gr.ConflictsAt(colouring, v, c) == 0 {
				allowed = append(allowed, c)
			}
		}
		if len(allowed) > 0 {
			colouring[v] = allowed[rng.Intn(len(allowed))]
			continue
		}

		best := int32(0)
		bestConflicts := gr.ConflictsAt(colouring, v, 0)
		for c := int32(1); int(c) < k; c++ {
			conflicts := gr.ConflictsAt(colouring, v, c)
			if conflicts < bestConflicts {
				bestConflicts = conflicts
				best = c
			}
		}
		colouring[v] = best
	}
	return colouring
}

// move is a candidate (vertex, new colour) reassignment evaluated by the
// inner TabuCol loop.
type move struct {
	vertex int
	colour int32
	delta  int
	tabu   bool
}

// tabuSearch runs the bounded inner loop for one K-stage, returning the
// final colouring and its conflict count (0 iff legalised).
func tabuSearch(gr *graph.Graph, cfg Config, sink snapshot.Sink, colouring []int32, conflicts int, k int) ([]int32, int) {
	n := gr.N()
	maxIter := cfg.IterationFloor
	if m := cfg.IterationMultiplier * n; m > maxIter {
		maxIter = m
	}
	tenure := cfg.TenureFloor
	if t := n / cfg.TenureDivisor; t > tenure {
		tenure = t
	}

	tabu := make([][]int, n)
	for v := range tabu {
		tabu[v] = make([]int, k)
	}

	bestSeen := conflicts

	for t := 0; t < maxIter && conflicts > 0; t++ {
		best, ok := selectMove(gr, colouring, tabu, k, t, conflicts, bestSeen)
		if !ok {
			break // no admissible move: terminate this K-stage
		}

		v := best.vertex
		oldColour := colouring[v]
		colouring[v] = best.colour
		tabu[v][oldColour] = t + tenure
		conflicts += best.delta

		if conflicts < bestSeen {
			bestSeen = conflicts
			snapshot.Record(sink, colouring)
		}
	}

	return colouring, conflicts
}

// selectMove evaluates every (v in conflict, new colour) move and returns
// the admissible move with the smallest delta, ties preferring non-tabu
// moves and then lower (vertex, colour) for determinism.
func selectMove(gr *graph.Graph, colouring []int32, tabu [][]int, k int, t int, conflicts int, bestSeen int) (move, bool) {
	var best move
	found := false

	n := gr.N()
	for v := 0; v < n; v++ {
		cur := colouring[v]
		if gr.ConflictsAt(colouring, v, cur) == 0 {
			continue // v is not in the conflict set C
		}
		curConflicts := gr.ConflictsAt(colouring, v, cur)

		for c := int32(0); int(c) < k; c++ {
			if c == cur {
				continue
			}
			delta := gr.ConflictsAt(colouring, v, c) - curConflicts
			isTabu := tabu[v][c] > t
			aspirated := conflicts+delta < bestSeen
			if isTabu && !aspirated {
				continue
			}

			cand := move{vertex: v, colour: c, delta: delta, tabu: isTabu}
			if !found || better(cand, best) {
				best = cand
				found = true
			}
		}
	}

	return best, found
}

// better reports whether a should be preferred over b: smaller delta wins;
// ties prefer non-tabu moves; remaining ties are resolved by the fixed
// (vertex, colour) scan order already enforced by selectMove's iteration,
// so this is only reached for equal (delta, tabu) pairs, where keeping b
// (ties go to b) preserves lowest-vertex-then-lowest-colour determinism.
func better(a, b move) bool {
	if a.delta != b.delta {
		return a.delta < b.delta
	}
	if a.tabu != b.tabu {
		return !a.tabu
	}
	return false
}

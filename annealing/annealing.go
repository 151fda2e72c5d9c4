// SPDX-License-Identifier: MIT
//
// Package annealing implements Simulated Annealing with a k-descent outer
// loop (component F): for palette sizes K = Δ+1, Δ, …, 1, legalise a random
// seed colouring via greedy repair, then run a geometric-cooling local
// search; record the smallest K for which a conflict-free colouring was
// found.
package annealing

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/repair"
	"github.com/katalvlaran/chromatic/snapshot"
)

// Run executes the k-descent simulated-annealing search on gr using rng
// for every stochastic decision. cfg must already be valid (see
// Config.Validate).
//
// Complexity: each K-stage runs max(cfg.IterationFloor,
// cfg.IterationMultiplier*n) iterations, each O(degree(v)) for the proposed
// move's conflict delta.
func Run(gr *graph.Graph, rng *rand.Rand, cfg Config, sink snapshot.Sink) []int32 {
	n := gr.N()
	if n == 0 {
		return []int32{}
	}

	k0 := gr.MaxDegree() + 1
	fallback := repair.Repair(gr, make([]int32, n), k0)

	var best []int32
	bestConflicts := n*n + 1 // worse than any achievable conflict count
	bestColours := n + 1

	iters := cfg.IterationFloor
	if m := cfg.IterationMultiplier * n; m > iters {
		iters = m
	}
	alpha := math.Pow(cfg.TMin/cfg.T0, 1.0/float64(iters))

	for k := k0; k >= 1; k-- {
		seed := make([]int32, n)
		for v := range seed {
			seed[v] = int32(rng.Intn(k))
		}
		colouring := repair.Repair(gr, seed, k)
		conflicts := gr.TotalConflicts(colouring)

		stageBest := append([]int32(nil), colouring...)
		stageBestConflicts := conflicts

		temperature := cfg.T0
		for i := 0; i < iters && conflicts > 0; i++ {
			v := rng.Intn(n)
			cur := colouring[v]
			newColour := int32(rng.Intn(k))
			for newColour == cur && k > 1 {
				newColour = int32(rng.Intn(k))
			}

			delta := gr.ConflictsAt(colouring, v, newColour) - gr.ConflictsAt(colouring, v, cur)
			accept := delta <= 0
			if !accept {
				accept = rng.Float64() < math.Exp(-float64(delta)/temperature)
			}
			if accept {
				colouring[v] = newColour
				conflicts += delta
				snapshot.Record(sink, colouring)

				if conflicts < stageBestConflicts ||
					(conflicts == stageBestConflicts && graph.UsedColours(colouring) < graph.UsedColours(stageBest)) {
					stageBestConflicts = conflicts
					copy(stageBest, colouring)
				}
			}
			temperature *= alpha
		}

		if stageBestConflicts == 0 {
			best = append([]int32(nil), stageBest...)
			if stageBestConflicts < bestConflicts ||
				(stageBestConflicts == bestConflicts && graph.UsedColours(stageBest) < bestColours) {
				bestConflicts = stageBestConflicts
				bestColours = graph.UsedColours(stageBest)
			}
			continue
		}

		if stageBestConflicts < bestConflicts ||
			(stageBestConflicts == bestConflicts && graph.UsedColours(stageBest) < bestColours) {
			bestConflicts = stageBestConflicts
			bestColours = graph.UsedColours(stageBest)
			if best == nil {
				best = append([]int32(nil), stageBest...)
			}
		}
		break // this K-stage failed to legalise: the descent stops here
	}

	if best == nil {
		best = fallback
	}
	snapshot.Record(sink, best)
	return best
}

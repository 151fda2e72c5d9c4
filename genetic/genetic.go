// SPDX-License-Identifier: MIT
//
// Package genetic implements the palette-bounded genetic algorithm with a
// k-descent outer loop (component G): for palette sizes K = Δ+1, Δ, …, 1,
// evolve a population of Greedy-Repair-legalised individuals using
// tournament selection, GPX-lite crossover, conflict-focused mutation, and
// elitism; record the smallest K for which a conflict-free individual was
// found.
package genetic

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/repair"
	"github.com/katalvlaran/chromatic/snapshot"
)

// individual pairs a colouring with its cached fitness (§3: lower is
// better — conflicts dominate, then fewer colours).
type individual struct {
	colouring []int32
	fitness   int64
}

const elitismCount = 2

// Run executes the k-descent genetic search on gr using rng for every
// stochastic decision. cfg must already be valid (see Config.Validate).
//
// Complexity: each K-stage runs cfg.MaxGenerations generations of
// cfg.PopulationSize individuals, each legalised by an O(n log n + n·K)
// Greedy Repair pass.
func Run(gr *graph.Graph, rng *rand.Rand, cfg Config, sink snapshot.Sink) []int32 {
	n := gr.N()
	if n == 0 {
		return []int32{}
	}

	k0 := gr.MaxDegree() + 1
	fallback := repair.Repair(gr, make([]int32, n), k0)

	var best []int32
	var bestAny individual
	haveBestAny := false
	globalBestFitness := int64(1) << 62

	for k := k0; k >= 1; k-- {
		pop := initPopulation(gr, rng, cfg, n, k)
		mutationRate := cfg.InitialMutationRate

		for _, ind := range pop {
			if ind.fitness < globalBestFitness {
				globalBestFitness = ind.fitness
				snapshot.Record(sink, ind.colouring)
			}
		}

		for gen := 0; gen < cfg.MaxGenerations; gen++ {
			sort.Slice(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })
			if gr.TotalConflicts(pop[0].colouring) == 0 {
				break
			}

			next := make([]individual, 0, cfg.PopulationSize)
			for e := 0; e < elitismCount && e < len(pop); e++ {
				next = append(next, individual{colouring: append([]int32(nil), pop[e].colouring...), fitness: pop[e].fitness})
			}

			for len(next) < cfg.PopulationSize {
				p1 := tournament(pop, rng)
				p2 := tournament(pop, rng)
				child := crossover(p1.colouring, p2.colouring, rng, k)
				if rng.Float64() < mutationRate {
					mutate(gr, child, rng, k)
				}
				child = repair.Repair(gr, child, k)
				fit := fitness(gr, child, k, n)
				next = append(next, individual{colouring: child, fitness: fit})

				if fit < globalBestFitness {
					globalBestFitness = fit
					snapshot.Record(sink, child)
				}
			}

			pop = next
			mutationRate *= cfg.MutationDecay
			if mutationRate < cfg.MinMutationRate {
				mutationRate = cfg.MinMutationRate
			}
		}

		sort.Slice(pop, func(i, j int) bool { return pop[i].fitness < pop[j].fitness })
		stageBest := pop[0]
		if !haveBestAny || stageBest.fitness < bestAny.fitness {
			bestAny = stageBest
			haveBestAny = true
		}

		if gr.TotalConflicts(stageBest.colouring) == 0 {
			best = stageBest.colouring
			continue
		}
		break // this K-stage never legalised: the descent stops here
	}

	if best == nil {
		if haveBestAny && gr.TotalConflicts(bestAny.colouring) == 0 {
			best = bestAny.colouring
		} else {
			best = fallback
		}
	}
	snapshot.Record(sink, best)
	return best
}

// fitness computes conflicts·n² + colours_used, the strict lexicographic
// ordering of §3/§4.G (conflicts dominate; fewer colours break ties).
func fitness(gr *graph.Graph, colouring []int32, k int, n int) int64 {
	conflicts := int64(gr.TotalConflicts(colouring))
	colours := int64(graph.UsedColours(colouring))
	return conflicts*int64(n)*int64(n) + colours
}

// initPopulation builds cfg.PopulationSize random seed colourings over
// [0,K), each legalised by Greedy Repair.
func initPopulation(gr *graph.Graph, rng *rand.Rand, cfg Config, n int, k int) []individual {
	pop := make([]individual, cfg.PopulationSize)
	for i := range pop {
		seed := make([]int32, n)
		for v := range seed {
			seed[v] = int32(rng.Intn(k))
		}
		c := repair.Repair(gr, seed, k)
		pop[i] = individual{colouring: c, fitness: fitness(gr, c, k, n)}
	}
	return pop
}

// tournament runs a tournament of size 3 with uniform-random sampling with
// replacement, returning the fittest of the three.
func tournament(pop []individual, rng *rand.Rand) individual {
	best := pop[rng.Intn(len(pop))]
	for i := 0; i < 2; i++ {
		cand := pop[rng.Intn(len(pop))]
		if cand.fitness < best.fitness {
			best = cand
		}
	}
	return best
}

// crossover implements GPX-lite: child[i] is parent_a[i] or parent_b[i]
// with equal probability; any value outside [0,K) is resampled uniformly
// in [0,K).
func crossover(a, b []int32, rng *rand.Rand, k int) []int32 {
	n := len(a)
	child := make([]int32, n)
	for i := 0; i < n; i++ {
		var gene int32
		if rng.Intn(2) == 0 {
			gene = a[i]
		} else {
			gene = b[i]
		}
		if gene < 0 || int(gene) >= k {
			gene = int32(rng.Intn(k))
		}
		child[i] = gene
	}
	return child
}

// mutate picks a random vertex and reassigns it to the colour in [0,K)
// that minimises the count of same-coloured neighbours.
func mutate(gr *graph.Graph, colouring []int32, rng *rand.Rand, k int) {
	v := rng.Intn(len(colouring))
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

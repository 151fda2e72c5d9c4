// SPDX-License-Identifier: MIT
//
// Package repair implements greedy repair under a bounded palette K
// (component B of the specification): turning an arbitrary seed colouring
// into a colouring that uses only colours in [0, K). A vertex with no free
// colour left gets the colour with the fewest same-coloured neighbours, so
// it may still carry one or more conflicts.
//
// Every metaheuristic (tabucol, annealing, genetic) legalises its working
// colourings through Repair before evaluating or returning them.
package repair

import "github.com/katalvlaran/chromatic/graph"

// Repair traverses gr's vertices in descending-degree order (ties by
// ascending vertex id, per graph.Graph.DescendingDegreeOrder) and, for each
// vertex, either keeps its seed colour (if still legal and in-palette),
// assigns the smallest legal colour in [0,K), or — if every colour in
// [0,K) is already used by a coloured neighbour — assigns the colour that
// minimises same-coloured coloured neighbours, ties broken by smaller
// colour index.
//
// seed and k are read-only; Repair allocates and returns a new colouring of
// length gr.N(). seed may be shorter than gr.N() or contain values outside
// [0,K) (including negative "uncoloured" markers) — those vertices are
// simply treated as having no usable seed colour.
//
// Complexity: O(n log n + n·K) (degree sort, then K-sized colour scans per vertex).
func Repair(gr *graph.Graph, seed []int32, k int) []int32 {
	n := gr.N()
	c := make([]int32, n)
	for i := range c {
		c[i] = -1
	}
	if k <= 0 {
		return c
	}

	order := gr.DescendingDegreeOrder()
	used := make([]bool, k) // reused scratch buffer: colours seen on coloured neighbours of v

	for _, v32 := range order {
		v := int(v32)
		for i := range used {
			used[i] = false
		}
		for _, w := range gr.Neighbours(v) {
			cw := c[w]
			if cw >= 0 && int(cw) < k {
				used[cw] = true
			}
		}

		var seedColour int32 = -1
		if v < len(seed) {
			seedColour = seed[v]
		}
		if seedColour >= 0 && int(seedColour) < k && !used[seedColour] {
			c[v] = seedColour
			continue
		}

		chosen := int32(-1)
		for col := 0; col < k; col++ {
			if !used[col] {
				chosen = int32(col)
				break
			}
		}
		if chosen < 0 {
			chosen = minConflictColour(gr, c, v, k)
		}
		c[v] = chosen
	}

	return c
}

// minConflictColour returns the colour in [0,K) that minimises the number
// of same-coloured, already-coloured neighbours of v, ties broken by
// smaller colour index.
func minConflictColour(gr *graph.Graph, c []int32, v int, k int) int32 {
	best := int32(0)
	bestCount := gr.ConflictsAt(c, v, 0)
	for col := int32(1); col < int32(k); col++ {
		count := gr.ConflictsAt(c, v, col)
		if count < bestCount {
			bestCount = count
			best = col
		}
	}
	return best
}

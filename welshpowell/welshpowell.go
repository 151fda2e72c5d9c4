// SPDX-License-Identifier: MIT
//
// Package welshpowell implements the Welsh–Powell degree-ordered greedy
// colouring baseline (component C). It is the only Welsh–Powell
// implementation in this repository: the distilled source carried an unused
// stub alongside the working algorithm (§9 open question); it is not
// reproduced here.
package welshpowell

import (
	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/snapshot"
)

// Run produces a valid colouring of gr using at most Δ+1 colours.
//
// Algorithm: sort vertices by descending degree (ties by ascending id, via
// graph.Graph.DescendingDegreeOrder). Maintain a running colour index
// starting at 0: take the first uncoloured vertex in that order, assign it
// the current colour, then sweep the remaining uncoloured vertices in the
// same order, colouring each one that has no neighbour already bearing the
// current colour; increment the colour and repeat until every vertex is
// coloured. If sink is non-nil, a snapshot is recorded after every vertex
// assignment.
//
// Complexity: O(n log n + n·(n+m)).
func Run(gr *graph.Graph, sink snapshot.Sink) []int32 {
	n := gr.N()
	colouring := make([]int32, n)
	for i := range colouring {
		colouring[i] = -1
	}
	if n == 0 {
		return colouring
	}

	order := gr.DescendingDegreeOrder()
	coloured := 0
	colour := int32(0)

	for coloured < n {
		for _, v32 := range order {
			v := int(v32)
			if colouring[v] >= 0 {
				continue
			}
			if gr.ConflictsAt(colouring, v, colour) > 0 {
				continue
			}
			colouring[v] = colour
			coloured++
			snapshot.Record(sink, colouring)
		}
		colour++
	}

	return colouring
}

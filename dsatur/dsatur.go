// SPDX-License-Identifier: MIT
//
// Package dsatur implements DSATUR, saturation-priority greedy colouring
// (component D). It is also used as the warm-start upper bound for the
// exact branch-and-bound solver (component H).
package dsatur

import (
	"container/heap"

	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/snapshot"
)

// Run produces a valid colouring of gr.
//
// Priority: (saturation desc, remaining_degree desc, vertex-id asc),
// maintained with a container/heap max-priority queue grounded on the
// teacher's dijkstra package: rather than repositioning an element in
// place, an update pushes a fresh entry with the vertex's new key and the
// stale entry is simply discarded when popped (checked via the vertex's
// current colour), the same lazy-decrease-key idiom dijkstra.go uses for
// relaxed distances.
//
// At each pop of a live (non-stale) entry for vertex u: assign the
// smallest non-negative colour unused among u's coloured neighbours; for
// every uncoloured neighbour w, if that colour is new to w's neighbourhood,
// increment saturation[w], decrement remaining_degree[w], and push a fresh
// entry for w. If sink is non-nil, a snapshot is recorded after every
// vertex assignment.
//
// Complexity: O((n+m) log n).
func Run(gr *graph.Graph, sink snapshot.Sink) []int32 {
	n := gr.N()
	colouring := make([]int32, n)
	for i := range colouring {
		colouring[i] = -1
	}
	if n == 0 {
		return colouring
	}

	saturation := make([]int32, n)
	remaining := make([]int32, n)
	seenColours := make([]map[int32]struct{}, n)
	for v := 0; v < n; v++ {
		remaining[v] = int32(gr.Degree(v))
		seenColours[v] = make(map[int32]struct{})
	}

	pq := make(satPQ, 0, n)
	heap.Init(&pq)
	for v := 0; v < n; v++ {
		heap.Push(&pq, satItem{vertex: int32(v), saturation: 0, remaining: remaining[v]})
	}

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(satItem)
		u := item.vertex
		if colouring[u] >= 0 {
			continue // stale entry: already assigned via a fresher push
		}
		if item.saturation != saturation[u] || item.remaining != remaining[u] {
			continue // stale entry: key changed since this was pushed
		}

		colour := smallestAvailableColour(gr, colouring, int(u))
		colouring[u] = colour
		snapshot.Record(sink, colouring)

		for _, w32 := range gr.Neighbours(int(u)) {
			w := w32
			if colouring[w] >= 0 {
				continue
			}
			if _, ok := seenColours[w][colour]; ok {
				continue
			}
			seenColours[w][colour] = struct{}{}
			saturation[w]++
			remaining[w]--
			heap.Push(&pq, satItem{vertex: w, saturation: saturation[w], remaining: remaining[w]})
		}
	}

	return colouring
}

// smallestAvailableColour returns the smallest non-negative colour not used
// by any already-coloured neighbour of v.
func smallestAvailableColour(gr *graph.Graph, colouring []int32, v int) int32 {
	used := make(map[int32]struct{}, gr.Degree(v))
	for _, w := range gr.Neighbours(v) {
		if colouring[w] >= 0 {
			used[colouring[w]] = struct{}{}
		}
	}
	for c := int32(0); ; c++ {
		if _, ok := used[c]; !ok {
			return c
		}
	}
}

// satItem is one (vertex, key-at-push-time) entry in the priority queue.
type satItem struct {
	vertex     int32
	saturation int32
	remaining  int32
}

// satPQ is a max-priority queue ordered by (saturation desc, remaining
// desc, vertex asc), implementing container/heap.Interface.
type satPQ []satItem

func (pq satPQ) Len() int { return len(pq) }

func (pq satPQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.saturation != b.saturation {
		return a.saturation > b.saturation
	}
	if a.remaining != b.remaining {
		return a.remaining > b.remaining
	}
	return a.vertex < b.vertex
}

func (pq satPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *satPQ) Push(x interface{}) { *pq = append(*pq, x.(satItem)) }

func (pq *satPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/internal/xerr"
)

// Graph is the immutable, 0-based adjacency model every colouring strategy
// consumes. It is produced by Compile and never mutated afterwards.
type Graph struct {
	n         int
	m         int
	adjacency [][]int32 // adjacency[v] holds v's neighbours, ascending, no duplicates
	degree    []int32
	maxDegree int32
	ids       []string // ids[v] is the original core.Graph vertex ID, for output round-tripping
}

// Compile freezes a core.Graph into the int-indexed form used by every
// colouring strategy. Vertices are assigned indices 0..n-1 in ascending
// string-ID order (core.Graph.Vertices() is already sorted this way), so
// compilation is reproducible regardless of map iteration order.
//
// Compile rejects (ErrMalformedGraph, wrapping xerr.ErrMalformedGraph):
//   - a self-loop edge (u == v),
//   - an edge endpoint that core.Graph itself could not resolve (defensive;
//     core.Graph.NeighborIDs already guarantees existing IDs).
//
// Duplicate neighbours are deduplicated silently: core.Graph's own
// multi-edge policy governs whether they can occur at all, and Compile
// treats the underlying simple-graph structure as the source of truth.
//
// Complexity: O(n + m log m) (per-vertex neighbour sort).
func Compile(g *core.Graph) (*Graph, error) {
	if g == nil {
		return nil, fmt.Errorf("graph: nil core.Graph: %w", xerr.ErrMalformedGraph)
	}

	ids := g.Vertices() // already sorted ascending
	n := len(ids)
	index := make(map[string]int32, n)
	for i, id := range ids {
		index[id] = int32(i)
	}

	adjacency := make([][]int32, n)
	seen := make([]map[int32]struct{}, n)
	for v := range seen {
		seen[v] = make(map[int32]struct{})
	}

	m := 0
	for v, id := range ids {
		neighbourIDs, err := g.NeighborIDs(id)
		if err != nil {
			return nil, fmt.Errorf("graph: resolving neighbours of %q: %w", id, xerr.ErrMalformedGraph)
		}
		for _, nid := range neighbourIDs {
			w, ok := index[nid]
			if !ok {
				return nil, fmt.Errorf("graph: neighbour %q of %q not in vertex set: %w", nid, id, xerr.ErrMalformedGraph)
			}
			if int(w) == v {
				return nil, fmt.Errorf("graph: self-loop at %q: %w", id, xerr.ErrMalformedGraph)
			}
			if _, dup := seen[v][w]; dup {
				continue
			}
			seen[v][w] = struct{}{}
			adjacency[v] = append(adjacency[v], w)
			m++
		}
	}
	// m counted each endpoint once; an undirected edge is mirrored in both
	// adjacency lists by core.Graph, so divide by 2 for the edge count.
	m /= 2

	degree := make([]int32, n)
	var maxDegree int32
	for v := range adjacency {
		sort.Slice(adjacency[v], func(i, j int) bool { return adjacency[v][i] < adjacency[v][j] })
		degree[v] = int32(len(adjacency[v]))
		if degree[v] > maxDegree {
			maxDegree = degree[v]
		}
	}

	return &Graph{
		n:         n,
		m:         m,
		adjacency: adjacency,
		degree:    degree,
		maxDegree: maxDegree,
		ids:       ids,
	}, nil
}

// N returns the vertex count.
func (gr *Graph) N() int { return gr.n }

// M returns the edge count.
func (gr *Graph) M() int { return gr.m }

// Degree returns the degree of vertex v.
func (gr *Graph) Degree(v int) int { return int(gr.degree[v]) }

// Neighbours returns v's neighbours in ascending order. The returned slice
// is shared with the Graph's internal state and must not be mutated.
func (gr *Graph) Neighbours(v int) []int32 { return gr.adjacency[v] }

// MaxDegree returns Δ, the largest degree in the graph (0 for n == 0).
func (gr *Graph) MaxDegree() int { return int(gr.maxDegree) }

// VertexID returns the original core.Graph vertex ID compiled into index v,
// used by the CLI host to round-trip colouring output against 1-indexed
// DIMACS vertex numbers.
func (gr *Graph) VertexID(v int) string { return gr.ids[v] }

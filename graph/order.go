// SPDX-License-Identifier: MIT

package graph

import "sort"

// DescendingDegreeOrder returns vertex indices sorted by descending degree,
// ties broken by ascending vertex index (stable). Welsh–Powell, Greedy
// Repair, and Tabu's randomised initial builder all share this ordering.
//
// Complexity: O(n log n).
func (gr *Graph) DescendingDegreeOrder() []int32 {
	order := make([]int32, gr.n)
	for v := range order {
		order[v] = int32(v)
	}
	sort.SliceStable(order, func(i, j int) bool {
		return gr.degree[order[i]] > gr.degree[order[j]]
	})
	return order
}

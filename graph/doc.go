// SPDX-License-Identifier: MIT
//
// Package graph provides the immutable, int-indexed adjacency model that
// the six colouring strategies operate on (component A of the
// specification). It is compiled from a core.Graph: callers build the
// mutable, string-ID substrate directly, via the DIMACS reader, or via a
// synthetic builder fixture, then call Compile to obtain the frozen form
// used by every strategy.
//
// Compile assigns each string vertex ID a stable integer index by ascending
// ID (string-sorted) — core.Graph.Vertices() already returns IDs in that
// order — so a compiled run is reproducible independent of map iteration
// order. Self-loops in the source graph are rejected; duplicate neighbours
// (parallel edges) are collapsed into one silently. Dropping self-loops and
// duplicate edges from an input file is the DIMACS reader's job — §11.A.
package graph

package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/internal/xerr"
)

// WriteColouring writes a DIMACS-dialect colouring output (§6):
//
//	c colouring produced by <algorithm>
//	p edge <n> <m>
//	v <vertex-1-indexed> <colour-0-indexed>
//
// one "v" line per vertex, in gr's internal (ascending-id) order. The
// 1-indexed vertex number is recovered by parsing gr.VertexID(v) back to
// an integer, which is exact whenever the graph originated from
// ReadGraph's zero-padded decimal IDs.
//
// Errors (wrapping xerr.ErrIOFailure): any write failure. colouring must
// have length gr.N(); a length mismatch is a caller bug and panics, since
// dispatch.Run already guarantees this invariant before a writer is ever
// reached.
func WriteColouring(w io.Writer, algorithm string, gr *graph.Graph, colouring []int32) error {
	if len(colouring) != gr.N() {
		panic(fmt.Sprintf("dimacs: WriteColouring: colouring length %d != graph size %d", len(colouring), gr.N()))
	}

	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "c colouring produced by %s\n", algorithm); err != nil {
		return fmt.Errorf("dimacs: writing header comment: %w", xerr.ErrIOFailure)
	}
	if _, err := fmt.Fprintf(bw, "p edge %d %d\n", gr.N(), gr.M()); err != nil {
		return fmt.Errorf("dimacs: writing problem line: %w", xerr.ErrIOFailure)
	}

	for v := 0; v < gr.N(); v++ {
		vertexNum, err := strconv.Atoi(gr.VertexID(v))
		if err != nil {
			vertexNum = v + 1 // fallback: graphs not produced by ReadGraph may carry non-numeric IDs
		}
		if _, err := fmt.Fprintf(bw, "v %d %d\n", vertexNum, colouring[v]); err != nil {
			return fmt.Errorf("dimacs: writing colour line for vertex %d: %w", vertexNum, xerr.ErrIOFailure)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("dimacs: flushing output: %w", xerr.ErrIOFailure)
	}
	return nil
}

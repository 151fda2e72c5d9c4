package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/chromatic/core"
	"github.com/katalvlaran/chromatic/internal/xerr"
)

// vertexID formats the 1-indexed DIMACS vertex number i as a zero-padded
// decimal string of width digits, so that core.Graph.Vertices()'s
// lexicographic sort order matches DIMACS numeric order. Without the
// padding, "10" would sort before "2" and graph.Compile would assign
// compiled indices in an order that no longer round-trips against the
// 1-indexed "v i c" output line.
func vertexID(i int, width int) string {
	return fmt.Sprintf("%0*d", width, i)
}

func digitWidth(n int) int {
	return len(strconv.Itoa(n))
}

// ReadGraph parses a DIMACS "p edge V E" / "e u v" stream into a
// *core.Graph (§6): 1-indexed vertices, undirected, unweighted. Comment
// lines (leading 'c', '%', or '#') are skipped. Self-loop edges (u == v)
// are silently dropped; duplicate edges are silently deduplicated. The
// resulting graph's own edge count reflects the deduplicated total.
//
// Errors (wrapping xerr.ErrMalformedGraph): a stream with no "p" line, an
// edge line preceding the "p" line, a malformed numeric field, or an edge
// endpoint outside [1, V].
//
// Complexity: O(V + E).
func ReadGraph(r io.Reader) (*core.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	g := core.NewGraph()

	var declaredN, declaredM int
	haveProblemLine := false
	seenPairs := make(map[[2]int]struct{})

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case 'c', '%', '#':
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "p":
			n, m, err := parseProblemLine(fields, lineNo)
			if err != nil {
				return nil, err
			}
			declaredN, declaredM = n, m
			haveProblemLine = true

			width := digitWidth(declaredN)
			for i := 1; i <= declaredN; i++ {
				if err := g.AddVertex(vertexID(i, width)); err != nil {
					return nil, fmt.Errorf("dimacs: line %d: adding vertex %d: %w", lineNo, i, err)
				}
			}
		case "e":
			if !haveProblemLine {
				return nil, fmt.Errorf("dimacs: line %d: edge before problem line: %w", lineNo, xerr.ErrMalformedGraph)
			}
			u, v, err := parseEdgeLine(fields, lineNo)
			if err != nil {
				return nil, err
			}
			if u < 1 || u > declaredN || v < 1 || v > declaredN {
				return nil, fmt.Errorf("dimacs: line %d: edge endpoint out of range [1,%d]: %w", lineNo, declaredN, xerr.ErrMalformedGraph)
			}
			if u == v {
				continue // self-loop: silently dropped
			}
			key := [2]int{u, v}
			if u > v {
				key = [2]int{v, u}
			}
			if _, dup := seenPairs[key]; dup {
				continue // duplicate edge: silently deduplicated
			}
			seenPairs[key] = struct{}{}

			width := digitWidth(declaredN)
			if _, err := g.AddEdge(vertexID(u, width), vertexID(v, width), 0); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: adding edge (%d,%d): %w", lineNo, u, v, err)
			}
		default:
			return nil, fmt.Errorf("dimacs: line %d: unrecognised line type %q: %w", lineNo, fields[0], xerr.ErrMalformedGraph)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: scanning input: %w", xerr.ErrIOFailure)
	}
	if !haveProblemLine {
		return nil, fmt.Errorf("dimacs: missing problem line: %w", xerr.ErrMalformedGraph)
	}
	_ = declaredM // declared edge count is advisory only; the dedup'd graph is authoritative

	return g, nil
}

func parseProblemLine(fields []string, lineNo int) (n int, m int, err error) {
	if len(fields) != 4 || fields[1] != "edge" {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed problem line %q: %w", lineNo, strings.Join(fields, " "), xerr.ErrMalformedGraph)
	}
	n, errN := strconv.Atoi(fields[2])
	m, errM := strconv.Atoi(fields[3])
	if errN != nil || errM != nil || n < 0 || m < 0 {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed problem counts %q: %w", lineNo, strings.Join(fields, " "), xerr.ErrMalformedGraph)
	}
	return n, m, nil
}

func parseEdgeLine(fields []string, lineNo int) (u int, v int, err error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed edge line %q: %w", lineNo, strings.Join(fields, " "), xerr.ErrMalformedGraph)
	}
	u, errU := strconv.Atoi(fields[1])
	v, errV := strconv.Atoi(fields[2])
	if errU != nil || errV != nil {
		return 0, 0, fmt.Errorf("dimacs: line %d: malformed edge endpoints %q: %w", lineNo, strings.Join(fields, " "), xerr.ErrMalformedGraph)
	}
	return u, v, nil
}

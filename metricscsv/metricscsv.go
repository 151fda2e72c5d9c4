// SPDX-License-Identifier: MIT
//
// Package metricscsv appends one benchmark-run row to a fixed-schema CSV
// file (component L, §6). No example repo in the retrieved corpus imports
// a CSV or structured-logging library for a narrow, one-shot row append
// with a fixed schema, so this package is built on encoding/csv; see
// DESIGN.md for the stdlib-only justification.
package metricscsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/chromatic/internal/xerr"
)

// header is the fixed schema (§6). Column order never changes.
var header = []string{
	"algorithm", "graph_name", "vertices", "edges", "colors_used", "known_optimal", "runtime_ms",
}

// Row is one completed benchmark run, ready to append.
type Row struct {
	Algorithm    string
	GraphName    string
	Vertices     int
	Edges        int
	ColoursUsed  int
	KnownOptimal *int // nil renders as an empty field
	RuntimeMS    float64
}

// AppendToFile opens path for append (creating it if absent) and appends
// row, writing the header first iff the file is absent or empty.
//
// Errors (wrapping xerr.ErrIOFailure): opening, reading the size of, or
// writing to path failed.
func AppendToFile(path string, row Row) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf("metricscsv: opening %s: %w", path, xerr.ErrIOFailure)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("metricscsv: stat %s: %w", path, xerr.ErrIOFailure)
	}

	if err := Append(f, row, info.Size() == 0); err != nil {
		return err
	}
	return nil
}

// Append writes row as one CSV record to w, emitting the header first iff
// writeHeader is true. Callers driving their own file lifecycle (e.g. the
// CLI host deciding writeHeader from a pre-open os.Stat) should call this
// directly; AppendToFile is the convenience path.
func Append(w io.Writer, row Row, writeHeader bool) error {
	cw := csv.NewWriter(w)

	if writeHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("metricscsv: writing header: %w", xerr.ErrIOFailure)
		}
	}

	knownOptimal := ""
	if row.KnownOptimal != nil {
		knownOptimal = strconv.Itoa(*row.KnownOptimal)
	}

	record := []string{
		row.Algorithm,
		row.GraphName,
		strconv.Itoa(row.Vertices),
		strconv.Itoa(row.Edges),
		strconv.Itoa(row.ColoursUsed),
		knownOptimal,
		strconv.FormatFloat(row.RuntimeMS, 'f', 3, 64),
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("metricscsv: writing row: %w", xerr.ErrIOFailure)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("metricscsv: flushing: %w", xerr.ErrIOFailure)
	}
	return nil
}

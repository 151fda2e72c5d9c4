// SPDX-License-Identifier: MIT
//
// Package snapshot records colouring states over time for visualisation
// (component I). It generalises the teacher's OnVisit/OnEnqueue/OnDequeue
// functional-hook pattern (bfs.Option) into a single Sink interface: each
// strategy decides *when* to call Record (§4.I of the specification); the
// sink decides only *how* to persist it.
package snapshot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Sink receives one colouring snapshot at a time, in the exact order the
// owning strategy records them. A nil Sink is a valid "no snapshots wanted"
// value; every strategy checks for nil before calling Record.
type Sink interface {
	Record(colouring []int32)
}

// Record calls sink.Record if sink is non-nil; every strategy calls through
// this helper rather than branching on nil itself.
func Record(sink Sink, colouring []int32) {
	if sink == nil {
		return
	}
	sink.Record(colouring)
}

// FileSink writes one line per snapshot — n space-separated integers, no
// header — to a buffered writer. Writes are synchronous to the search loop
// and buffered (bufio.Writer) so that runs with millions of snapshots stay
// within their wall-clock budget; Flush must be called once the owning
// strategy returns.
type FileSink struct {
	w   *bufio.Writer
	buf []byte
}

// NewFileSink wraps w in a buffered writer.
func NewFileSink(w io.Writer) *FileSink {
	return &FileSink{w: bufio.NewWriter(w)}
}

// Record appends one line: the colouring values in vertex order,
// space-separated, newline-terminated. Any write error is swallowed here
// and surfaced on the subsequent Flush call, matching bufio.Writer's own
// error-latching behaviour.
func (s *FileSink) Record(colouring []int32) {
	s.buf = s.buf[:0]
	for i, c := range colouring {
		if i > 0 {
			s.buf = append(s.buf, ' ')
		}
		s.buf = strconv.AppendInt(s.buf, int64(c), 10)
	}
	s.buf = append(s.buf, '\n')
	_, _ = s.w.Write(s.buf)
}

// Flush flushes any buffered snapshot lines to the underlying writer.
func (s *FileSink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("snapshot: flush: %w", err)
	}
	return nil
}

package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/snapshot"
)

type memSink struct {
	calls [][]int32
}

func (m *memSink) Record(c []int32) {
	cp := make([]int32, len(c))
	copy(cp, c)
	m.calls = append(m.calls, cp)
}

func TestRecord_NilSinkIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { snapshot.Record(nil, []int32{0, 1}) })
}

func TestRecord_ForwardsToSink(t *testing.T) {
	m := &memSink{}
	snapshot.Record(m, []int32{0, 1, -1})
	require.Len(t, m.calls, 1)
	assert.Equal(t, []int32{0, 1, -1}, m.calls[0])
}

func TestFileSink_WritesSpaceSeparatedLines(t *testing.T) {
	var buf bytes.Buffer
	sink := snapshot.NewFileSink(&buf)
	sink.Record([]int32{0, 1, 2})
	sink.Record([]int32{-1, -1, 0})
	require.NoError(t, sink.Flush())

	assert.Equal(t, "0 1 2\n-1 -1 0\n", buf.String())
}

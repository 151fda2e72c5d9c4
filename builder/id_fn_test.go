package builder_test

import (
	"testing"

	"github.com/katalvlaran/chromatic/builder"
)

// TestDefaultIDFn verifies decimal ID generation for representative indices.
func TestDefaultIDFn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{123, "123"},
	}
	for _, tc := range tests {
		if got := builder.DefaultIDFn(tc.input); got != tc.want {
			t.Errorf("DefaultIDFn(%d): expected %q, got %q", tc.input, tc.want, got)
		}
	}
}

package annealing_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chromatic/annealing"
	"github.com/katalvlaran/chromatic/builder"
	"github.com/katalvlaran/chromatic/graph"
	"github.com/katalvlaran/chromatic/internal/xerr"
)

func compile(t *testing.T, cons builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons)
	require.NoError(t, err)
	gr, err := graph.Compile(g)
	require.NoError(t, err)
	return gr
}

func TestRun_Triangle(t *testing.T) {
	gr := compile(t, builder.Cycle(3))
	rng := rand.New(rand.NewSource(1))
	c := annealing.Run(gr, rng, annealing.DefaultConfig(), nil)
	require.Len(t, c, 3)
	assert.True(t, gr.IsValid(c))
}

func TestRun_Bipartite(t *testing.T) {
	gr := compile(t, builder.CompleteBipartite(4, 4))
	rng := rand.New(rand.NewSource(3))
	c := annealing.Run(gr, rng, annealing.DefaultConfig(), nil)
	assert.True(t, gr.IsValid(c))
	assert.Equal(t, 2, graph.UsedColours(c))
}

func TestRun_PaletteBound(t *testing.T) {
	gr := compile(t, builder.Wheel(9))
	rng := rand.New(rand.NewSource(5))
	c := annealing.Run(gr, rng, annealing.DefaultConfig(), nil)
	assert.True(t, gr.IsValid(c))
	assert.LessOrEqual(t, graph.UsedColours(c), gr.MaxDegree()+1)
}

func TestRun_EmptyGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil)
	require.NoError(t, err)
	gr, err := graph.Compile(g)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	c := annealing.Run(gr, rng, annealing.DefaultConfig(), nil)
	assert.Empty(t, c)
}

func TestConfig_InvalidTMinSurfacesOnValidate(t *testing.T) {
	cfg := annealing.NewConfig(annealing.WithInitialTemperature(1), annealing.WithMinTemperature(2))
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, xerr.ErrInvalidConfiguration)
}

func TestConfig_NonPositiveIterationFloorRejected(t *testing.T) {
	cfg := annealing.NewConfig(annealing.WithIterationFloor(0))
	assert.ErrorIs(t, cfg.Validate(), xerr.ErrInvalidConfiguration)
}

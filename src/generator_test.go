package src_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"snake-maze/src"
)

func TestGenerateIsDeterministicForASeed(t *testing.T) {
	a := src.Generate(rand.New(rand.NewSource(42)), 11, 11)
	b := src.Generate(rand.New(rand.NewSource(42)), 11, 11)

	require.Equal(t, a.String(), b.String())
}

func TestGenerateDiffersAcrossSeeds(t *testing.T) {
	a := src.Generate(rand.New(rand.NewSource(1)), 15, 15)
	b := src.Generate(rand.New(rand.NewSource(2)), 15, 15)

	require.NotEqual(t, a.String(), b.String())
}

func TestGenerateForcesOddDimensions(t *testing.T) {
	m := src.Generate(rand.New(rand.NewSource(7)), 10, 12)

	require.Equal(t, 11, m.Width)
	require.Equal(t, 13, m.Height)
}

func TestGenerateClampsToMinimumSize(t *testing.T) {
	m := src.Generate(rand.New(rand.NewSource(7)), 1, 1)

	require.GreaterOrEqual(t, m.Width, 5)
	require.GreaterOrEqual(t, m.Height, 5)
}

func TestGenerateProducesReachableMaze(t *testing.T) {
	m := src.Generate(rand.New(rand.NewSource(99)), 15, 15)

	require.True(t, src.Reachable(m), "recursive backtracker must leave start and end connected")

	path := src.Astar(m, m.Start, m.End, nil, false)
	require.NotEmpty(t, path)
	require.Equal(t, m.End, path[len(path)-1].Point)
}

func TestGenerateStartAndEndPlacement(t *testing.T) {
	m := src.Generate(rand.New(rand.NewSource(3)), 9, 9)

	require.Equal(t, src.Point{X: 0, Y: 1}, m.Start)
	require.Equal(t, src.Point{X: m.Width - 1, Y: m.Height - 2}, m.End)
}

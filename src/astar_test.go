package src_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"snake-maze/src"
)

func mustParse(t *testing.T, text string) *src.Maze {
	t.Helper()
	m, err := src.ParseMaze(strings.NewReader(strings.TrimLeft(text, "\n")))
	require.NoError(t, err)
	return m
}

// TestAstarTrivialCorridor covers scenario S1: a straight 4-neighbor
// corridor with no items.
func TestAstarTrivialCorridor(t *testing.T) {
	maze := mustParse(t, `5
3
#####
o  _#
#####
`)

	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.Len(t, path, 4)
	require.Equal(t, maze.Start, path[0].Point)
	require.Equal(t, maze.End, path[len(path)-1].Point)
}

// TestAstarIsDeterministic covers invariant 7: running A* twice on
// identical inputs returns an identical path.
func TestAstarIsDeterministic(t *testing.T) {
	maze := mustParse(t, `7
3
#######
o  $ _#
#######
`)

	first := src.Astar(maze, maze.Start, maze.End, nil, false)
	second := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.Equal(t, first, second)
}

// TestAstarRoutesAroundDanger covers scenario S3: when a bypass exists,
// A*'s cost model (10000 per edge entering a Danger tile) makes the
// detour strictly cheaper than crossing the danger tile.
func TestAstarRoutesAroundDanger(t *testing.T) {
	maze := mustParse(t, `5
5
#####
#o  #
#!# #
#  _#
#####
`)
	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.NotEmpty(t, path)
	last := path[len(path)-1]
	require.Equal(t, 0, last.Dangers)
}

// TestAstarDirectRouteAccumulatesDangerPenalty covers the other half of
// S3: when the only route crosses a danger tile, the returned path
// records the crossing.
func TestAstarDirectRouteAccumulatesDangerPenalty(t *testing.T) {
	maze := mustParse(t, `5
3
#####
o! _#
#####
`)

	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.NotEmpty(t, path)
	last := path[len(path)-1]
	require.Equal(t, maze.End, last.Point)
	require.Equal(t, 1, last.Dangers)
}

// TestAstarUnreachableEnd covers the "start has no valid neighbor"
// failure mode: a start cell fully boxed in by walls yields an empty
// path.
func TestAstarUnreachableEnd(t *testing.T) {
	maze := mustParse(t, `5
3
##o##
# # #
##_##
`)

	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.Empty(t, path)
}

// TestAstarWallNeedsDrill covers scenario S4: a wall can only be crossed
// while carrying drills, and crossing it consumes one.
func TestAstarWallNeedsDrill(t *testing.T) {
	maze := mustParse(t, `7
3
#######
oT #_ #
#######
`)

	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.NotEmpty(t, path)
	require.Equal(t, maze.End, path[len(path)-1].Point)
}

// TestOverlayForbidsInterior checks that Astar never enters another
// path's interior cells when given it as an overlay, the mechanism
// EstimateCoins' mutual-exclusion probe depends on.
func TestOverlayForbidsInterior(t *testing.T) {
	maze := mustParse(t, `5
3
#####
o  _#
#####
`)

	overlay := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.NotEmpty(t, overlay)

	blocked := src.Astar(maze, maze.Start, maze.End, overlay, false)
	require.Empty(t, blocked, "overlay should forbid re-crossing the only corridor")
}

// TestAstarStepsNondecreasing is the "A* is monotonic in steps" law
// applied along a single returned path: each successive location's Steps
// never drops below its predecessor's, since every edge cost is
// non-negative.
func TestAstarStepsNondecreasing(t *testing.T) {
	maze := mustParse(t, `9
3
#########
o      _#
#########
`)
	path := src.Astar(maze, maze.Start, maze.End, nil, false)
	require.NotEmpty(t, path)

	for i := 1; i < len(path); i++ {
		require.GreaterOrEqual(t, path[i].Steps, path[i-1].Steps)
	}
}

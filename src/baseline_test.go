package src_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"snake-maze/src"
)

// TestBaselineSolversReachGoal runs every registered comparison solver
// against the same simple corridor and checks each produces a non-empty
// path that ends at Goal and a non-empty Explored list, the guarantee
// every BaselineSolver implementation must uphold regardless of traversal
// order.
func TestBaselineSolversReachGoal(t *testing.T) {
	maze := mustParse(t, `7
3
#######
o  $ _#
#######
`)

	for _, algo := range []src.Algo{src.BFS, src.DFS, src.DIJKSTRA, src.GBFS, src.ASTAR} {
		t.Run(string(algo), func(t *testing.T) {
			bm := src.NewBaselineMaze(maze, algo)
			var solver src.BaselineSolver
			switch algo {
			case src.BFS:
				solver = src.NewBaselineBFS(bm)
			case src.DFS:
				solver = src.NewBaselineDFS(bm)
			case src.DIJKSTRA:
				solver = src.NewBaselineDijkstra(bm)
			case src.GBFS:
				solver = src.NewBaselineGBFS(bm)
			case src.ASTAR:
				solver = src.NewBaselineAStar(bm)
			}

			solver.Solve()

			require.NotEmpty(t, bm.Solution.Path)
			last := bm.Solution.Path[len(bm.Solution.Path)-1]
			require.Equal(t, bm.Goal, last)
			require.NotEmpty(t, bm.Explored)
		})
	}
}

func TestIsAlgoRecognizesRegisteredNames(t *testing.T) {
	for _, name := range []string{"bfs", "dfs", "dijkstra", "gbfs", "astar"} {
		require.True(t, src.IsAlgo(name), "expected %q to be recognized", name)
	}
	require.False(t, src.IsAlgo("ucs"))
}

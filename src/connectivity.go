package src

import "github.com/katalvlaran/lvlath/gridgraph"

// Reachable runs a cheap connectivity pre-check between a maze's start and
// end, treating every non-wall tile as passable "land" and every wall as
// "water". It is a fast BFS-over-components pass that tells whether a
// maze's end is walled off from its start. Solve does not call it; the
// CLI's runFull logs a warning when it returns false and then solves
// anyway.
//
// Note this pre-check ignores drills: a maze where start and end sit in
// different wall-separated components may still be solvable by piercing
// walls, so a false result here is informative but not authoritative —
// callers should treat it as "definitely reachable" on true, and "solve
// anyway, it might need a drill" on false.
func Reachable(maze *Maze) bool {
	values := make([][]int, maze.Height)
	for y := 0; y < maze.Height; y++ {
		row := make([]int, maze.Width)
		for x := 0; x < maze.Width; x++ {
			if maze.At(Point{X: x, Y: y}) != TileWall {
				row[x] = 1
			}
		}
		values[y] = row
	}

	gg, err := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	if err != nil {
		// A malformed (empty/non-rectangular) grid can't happen for a
		// Maze built by ParseMaze or Generate; treat it as "can't tell".
		return true
	}

	for _, component := range gg.ConnectedComponents()[1] {
		sawStart, sawEnd := false, false
		for _, cell := range component {
			if cell.X == maze.Start.X && cell.Y == maze.Start.Y {
				sawStart = true
			}
			if cell.X == maze.End.X && cell.Y == maze.End.Y {
				sawEnd = true
			}
		}
		if sawStart && sawEnd {
			return true
		}
		if sawStart || sawEnd {
			return false
		}
	}

	return false
}

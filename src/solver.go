package src

import (
	"math"
	"time"
)

// Solve runs the scoring-aware full search: a best-first expansion over
// partial paths that tracks accumulated coins/drills/dangers/steps,
// splices an A* leg towards the goal once a path has collected the
// estimated coin count, and returns the best-scoring completed path found
// within cfg's time budget.
func Solve(maze *Maze, cfg Config) Path {
	estimatedCoins := EstimateCoins(maze)

	open := []Path{{{Point: maze.Start, Steps: 2}}}
	var ended []Path
	bestScore := math.MinInt

	deadline := time.Now().Add(cfg.Timeout)

	for len(open) > 0 {
		if !cfg.IgnoreTimeout && time.Now().After(deadline) {
			break
		}

		idx := smallestStepsIndex(open)
		p := open[idx]
		last, _ := p.Last()

		if last.Coins >= estimatedCoins {
			if spliced, ok := spliceToEnd(maze, p, last); ok {
				p = spliced
				last, _ = p.Last()
			}
		}

		aspirationMet := false
		if last.Point == maze.End {
			score := Score(p)
			if score >= bestScore {
				ended = append(ended, p)
				bestScore = score
			}
			if !cfg.FullPrecision {
				if coins, ok := lastEndedCoins(ended); ok && coins >= estimatedCoins {
					aspirationMet = true
				}
			}
		}

		open = removeAt(open, idx)
		if aspirationMet {
			break
		}

		for _, m := range Moves {
			if m == last.ComesFrom {
				continue
			}

			n := Neighbor(last, m, 1)
			if !InBounds(maze, n.Point) || p.Contains(n.Point) {
				continue
			}

			n.Drills = last.Drills
			n.Steps = last.Steps + 2
			n.Coins = last.Coins
			n.Dangers = last.Dangers

			switch maze.At(n.Point) {
			case TileDanger:
				n.Coins /= 2
				n.Dangers++
			case TileCoin:
				n.Steps--
				n.Coins++
			case TileDrill:
				n.Drills += 3
			case TileWall:
				if n.Drills > 0 {
					n.Drills--
				} else {
					continue
				}
			}

			branch := p.Clone()
			branch = append(branch, n)
			open = append(open, branch)
		}
	}

	return bestEnded(ended)
}

// spliceToEnd runs the aspiration-phase A* leg from the path's current
// tip to the maze's end, overlaid on the path so far so the leg cannot
// re-cross it, and appends the leg's tail onto a clone of p. When the
// spliced result reaches end, the pre-splice carried state (coins,
// drills, dangers) is copied onto the final location, since the A* leg
// itself does not accrue those the way the full search's own expansion
// does.
func spliceToEnd(maze *Maze, p Path, tip Location) (Path, bool) {
	leg := Astar(maze, tip.Point, maze.End, p, false)
	if len(leg) == 0 {
		return nil, false
	}

	spliced := p.Clone()
	spliced = append(spliced, leg[1:]...)

	if final, ok := spliced.Last(); ok && final.Point == maze.End {
		final.Coins = tip.Coins
		final.Drills = tip.Drills
		final.Dangers = tip.Dangers
		spliced[len(spliced)-1] = final
	}

	return spliced, true
}

// smallestStepsIndex returns the index of the open path whose last
// location has the smallest Steps, first found in iteration order.
func smallestStepsIndex(open []Path) int {
	best := 0
	bestSteps := math.MaxInt
	for i, p := range open {
		last, _ := p.Last()
		if last.Steps < bestSteps {
			bestSteps = last.Steps
			best = i
		}
	}
	return best
}

// removeAt drops the path at index i from open, preserving the order of
// the rest so "first found" tie-breaks on later scans stay reproducible.
func removeAt(open []Path, i int) []Path {
	return append(open[:i], open[i+1:]...)
}

// lastEndedCoins returns the coin count of the most recently completed
// path, if any.
func lastEndedCoins(ended []Path) (int, bool) {
	if len(ended) == 0 {
		return 0, false
	}
	last, ok := ended[len(ended)-1].Last()
	if !ok {
		return 0, false
	}
	return last.Coins, true
}

// bestEnded scans ended in reverse, keeping the path with the maximum
// score; ties favor whichever is found later in the reverse scan, since
// the comparison is >= rather than >.
func bestEnded(ended []Path) Path {
	var best Path
	bestScore := math.MinInt

	for i := len(ended) - 1; i >= 0; i-- {
		if s := Score(ended[i]); s >= bestScore {
			bestScore = s
			best = ended[i]
		}
	}

	return best
}

package src

// EstimateCoins upper-bounds the number of coins a path can collect
// without taking a penalty it cannot recover from. It is a pre-pass the
// full search uses as an aspiration target, not a proof — Solve treats it
// as a goal to splice towards, never a hard requirement.
func EstimateCoins(maze *Maze) int {
	var coins []Point
	for i, t := range maze.Tiles {
		if t == TileCoin {
			coins = append(coins, Point{X: i % maze.Width, Y: i / maze.Width})
		}
	}

	var candidates []Point
	for _, c := range coins {
		if dfsReachable(maze, maze.End, c) {
			candidates = append(candidates, c)
			continue
		}
		if p := Astar(maze, maze.Start, c, nil, true); len(p) > 0 {
			candidates = append(candidates, c)
		}
	}

	size := len(candidates)
	for _, c := range candidates {
		pEnd := Astar(maze, maze.End, c, nil, true)
		pStart := Astar(maze, maze.Start, c, pEnd, true)
		if !NeedsVerify(pStart, pEnd, c) {
			continue
		}

		pStart2 := Astar(maze, maze.Start, c, nil, true)
		pEnd2 := Astar(maze, maze.End, c, pStart2, true)
		if NeedsVerify(pStart2, pEnd2, c) {
			size--
		}
	}

	return size
}

// NeedsVerify reports whether the mutual-exclusion probe (A to start, B
// to end, both aimed at coin c) found a conflict: the two paths cross in
// their interiors, either came back empty, either one stops somewhere
// other than c, or either one paid a danger penalty reaching c.
func NeedsVerify(a, b Path, c Point) bool {
	if sharesInterior(a, b) {
		return true
	}
	if len(a) == 0 || len(b) == 0 {
		return true
	}

	lastA, _ := a.Last()
	lastB, _ := b.Last()
	if lastA.Point != c || lastB.Point != c {
		return true
	}
	return lastA.Dangers > 0 || lastB.Dangers > 0
}

// pathInterior returns every point of p except its first and last,
// mirroring the overlay-exclusion notion used by Astar itself.
func pathInterior(p Path) []Point {
	if len(p) <= 2 {
		return nil
	}
	interior := make([]Point, 0, len(p)-2)
	for _, loc := range p[1 : len(p)-1] {
		interior = append(interior, loc.Point)
	}
	return interior
}

func sharesInterior(a, b Path) bool {
	ia := pathInterior(a)
	if len(ia) == 0 {
		return false
	}
	ib := pathInterior(b)
	if len(ib) == 0 {
		return false
	}

	seen := make(map[Point]bool, len(ia))
	for _, p := range ia {
		seen[p] = true
	}
	for _, p := range ib {
		if seen[p] {
			return true
		}
	}
	return false
}

// dfsReachable is a cheap reachability probe that treats walls as
// absolute barriers (no drill accrual happens during the pre-pass, so
// there is nothing to pierce a wall with).
func dfsReachable(maze *Maze, from, to Point) bool {
	if from == to {
		return true
	}

	visited := map[Point]bool{from: true}
	stack := []Point{from}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, m := range Moves {
			n := Neighbor(Location{Point: cur}, m, 1).Point
			if !InBounds(maze, n) || visited[n] || maze.At(n) == TileWall {
				continue
			}
			if n == to {
				return true
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}

	return false
}

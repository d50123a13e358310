package src

import "container/heap"

// astarNode is one entry in Astar's internal open set: a Location plus its
// slot in the heap. Unlike the comparison bank's BaselineNode, it carries
// no parent pointer — the back-trace below reconstructs the path from the
// closed set using the steps/heuristic relationship instead of parent
// links, so nodes never need to remember how they were reached.
type astarNode struct {
	loc   Location
	index int
}

// astarOpen is a container/heap priority queue ordered purely by Steps.
// The teacher's own five solvers use a heap ordered by Cost for the same
// reason: the frontier rule here only ever needs "smallest accumulated
// cost", and a heap drops the cost of repeated linear scans that the
// scoring-aware full search (which needs a stable tie-break) cannot
// afford to pay for.
type astarOpen []*astarNode

func (o astarOpen) Len() int            { return len(o) }
func (o astarOpen) Less(i, j int) bool  { return o[i].loc.Steps < o[j].loc.Steps }
func (o astarOpen) Swap(i, j int) {
	o[i], o[j] = o[j], o[i]
	o[i].index = i
	o[j].index = j
}

func (o *astarOpen) Push(x any) {
	n := x.(*astarNode)
	n.index = len(*o)
	*o = append(*o, n)
}

func (o *astarOpen) Pop() any {
	old := *o
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	*o = old[:last]
	return n
}

// findSteps returns the Steps of the open entry at p, if any is queued.
func (o astarOpen) findSteps(p Point) (int, bool) {
	for _, n := range o {
		if n.loc.Point == p {
			return n.loc.Steps, true
		}
	}
	return 0, false
}

// overlayForbids reports whether p falls inside overlay's interior: every
// cell of overlay except its own first and last location, which stay
// enterable even while the path they belong to is being excluded.
func overlayForbids(overlay Path, p Point) bool {
	if len(overlay) == 0 {
		return false
	}
	first := overlay[0].Point
	last := overlay[len(overlay)-1].Point
	if p == first || p == last {
		return false
	}
	return overlay.Contains(p)
}

// Astar finds a shortest-by-accumulated-cost path from start to end in
// maze. overlay, when non-nil, forbids entry into its interior cells
// (used by EstimateCoins' mutual-exclusion probes). allowReverse permits
// expansion back along a node's ComesFrom.
//
// The frontier is selected purely on Steps, never Steps+Heuristic — this
// is a deliberate deviation from textbook A* that changes which path is
// discovered when several tie, and every caller here depends on that
// exact behavior (see EstimateCoins and Solve's goal splice).
func Astar(maze *Maze, start, end Point, overlay Path, allowReverse bool) Path {
	open := &astarOpen{}
	heap.Init(open)
	closed := map[Point]Location{}

	startLoc := Location{Point: start, ComesFrom: MoveNone, Heuristic: Manhattan(start, end)}
	heap.Push(open, &astarNode{loc: startLoc})

	var lastPopped Location
	reachedEnd := false

	for open.Len() > 0 {
		current := heap.Pop(open).(*astarNode).loc

		if _, seen := closed[current.Point]; seen {
			continue
		}
		closed[current.Point] = current
		lastPopped = current

		if current.Point == end {
			reachedEnd = true
			break
		}

		for _, m := range Moves {
			if m == current.ComesFrom && !allowReverse {
				continue
			}

			n := Neighbor(current, m, 1)
			if !InBounds(maze, n.Point) {
				continue
			}
			if _, seen := closed[n.Point]; seen {
				continue
			}
			if overlayForbids(overlay, n.Point) {
				continue
			}

			n.Heuristic = Manhattan(n.Point, end)
			if maze.At(n.Point) == TileDanger {
				n.Steps = current.Steps + 10000
			} else {
				n.Steps = current.Steps + n.Heuristic
			}
			n.Drills = current.Drills
			n.Coins = current.Coins
			n.Dangers = current.Dangers

			switch maze.At(n.Point) {
			case TileDanger:
				n.Dangers++
			case TileDrill:
				n.Drills += 3
			case TileWall:
				if n.Drills > 0 {
					n.Drills--
				} else {
					continue
				}
			}

			if existing, queued := open.findSteps(n.Point); queued && n.Steps > existing {
				continue
			}
			heap.Push(open, &astarNode{loc: n})
		}
	}

	if !reachedEnd {
		if lastPopped.Point == start {
			return Path{}
		}
		return backtraceAstar(closed, start, lastPopped.Point, overlay)
	}
	return backtraceAstar(closed, start, end, overlay)
}

// backtraceAstar walks closed from goal back to start using the
// steps-minus-heuristic shortcut documented on Astar, then reverses the
// result into start→goal order. This shortcut is only valid because every
// expansion sets a node's Steps to its predecessor's Steps plus the
// node's own Heuristic (or +10000 on a danger tile), so walking backward
// from a node by its own Heuristic, or by 10000 when its Dangers count is
// above the candidate's, lands on the predecessor that produced it.
func backtraceAstar(closed map[Point]Location, start, goal Point, overlay Path) Path {
	current, ok := closed[goal]
	if !ok {
		return Path{}
	}

	path := Path{current}
	for current.Point != start {
		var next Location
		found := false

		for _, m := range Moves {
			candidatePoint := Neighbor(current, m, 1).Point
			cand, seen := closed[candidatePoint]
			if !seen || overlayForbids(overlay, cand.Point) {
				continue
			}
			if cand.Steps == current.Steps-current.Heuristic ||
				(current.Dangers > cand.Dangers && cand.Steps == current.Steps-10000) {
				next = cand
				found = true
				break
			}
		}

		if !found {
			break
		}
		current = next
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

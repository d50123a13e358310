package src

import (
	"container/heap"
	"slices"
)

// BaselineAStar solves a BaselineMaze with classic f = g + h A*: cost so
// far plus Euclidean distance to the goal. This is the comparison
// baseline the teacher bank ships alongside the scoring-aware engine; the
// domain solver's own Astar (astar.go) uses a different cost/frontier
// rule entirely and does not share code with this one.
type BaselineAStar struct {
	Frontier PriorityQueue
	Maze     *BaselineMaze
}

// NewBaselineAStar constructs an f = g + h comparison solver over maze.
func NewBaselineAStar(maze *BaselineMaze) BaselineSolver {
	return &BaselineAStar{Frontier: make(PriorityQueue, 0), Maze: maze}
}

func (a *BaselineAStar) Add(node *BaselineNode) {
	a.Frontier.Push(node)
	heap.Init(&a.Frontier)
}

func (a *BaselineAStar) ContainsSquare(node *BaselineNode) bool {
	for _, f := range a.Frontier {
		if f.Square.Coordinate == node.Square.Coordinate {
			return true
		}
	}
	return false
}

func (a *BaselineAStar) IsEmpty() bool {
	return len(a.Frontier) == 0
}

func (a *BaselineAStar) Remove() *BaselineNode {
	if len(a.Frontier) > 0 {
		return heap.Pop(&a.Frontier).(*BaselineNode)
	}
	return nil
}

func (a *BaselineAStar) GetNeighbor(node *BaselineNode) []*BaselineNode {
	return getBaselineNeighbors(node, a.Maze.Width, a.Maze.Height, a.Maze.Squares)
}

// Solve runs f = g + h A* until it reaches the goal or exhausts the
// frontier.
func (a *BaselineAStar) Solve() {
	start := &BaselineNode{Square: BaselineSquare{Coordinate: a.Maze.Start, Cost: 1}}
	a.Add(start)
	a.Maze.CurrentNode = start
	a.Maze.ExperimentPath = append(a.Maze.ExperimentPath, start.Square.Coordinate)

	for {
		if a.IsEmpty() {
			return
		}

		current := a.Remove()
		if current == nil {
			return
		}

		a.Maze.CurrentNode = current
		a.Maze.ExperimentPath = append(a.Maze.ExperimentPath, current.Square.Coordinate)

		if a.Maze.Goal == current.Square.Coordinate {
			actions, path := backtrace(current)
			a.Maze.Solution = BaselineSolution{Actions: actions, Path: path}
			a.Maze.Explored = append(a.Maze.Explored, current.Square.Coordinate)
			return
		}

		a.Maze.Explored = append(a.Maze.Explored, current.Square.Coordinate)

		g := current.Cost
		if current.Parent != nil {
			g -= int(current.EuclidianDistance(a.Maze.Goal))
		}

		for _, neighbor := range a.GetNeighbor(current) {
			if !a.ContainsSquare(neighbor) && !slices.Contains(a.Maze.Explored, neighbor.Square.Coordinate) {
				neighbor.Cost = g + neighbor.Square.Cost + int(neighbor.EuclidianDistance(a.Maze.Goal))
				a.Add(neighbor)
			}
		}
	}
}

package src

import (
	"container/heap"
	"slices"
)

// BaselineDijkstra solves a BaselineMaze with Dijkstra's algorithm: a
// min-priority frontier keyed by accumulated square cost, which matters on
// mazes with weighted (Danger) squares where BFS's hop count would pick
// the wrong route.
type BaselineDijkstra struct {
	Frontier PriorityQueue
	Maze     *BaselineMaze
}

// NewBaselineDijkstra constructs a Dijkstra comparison solver over maze.
func NewBaselineDijkstra(maze *BaselineMaze) BaselineSolver {
	return &BaselineDijkstra{Frontier: make(PriorityQueue, 0), Maze: maze}
}

func (d *BaselineDijkstra) Add(node *BaselineNode) {
	d.Frontier.Push(node)
	heap.Init(&d.Frontier)
}

func (d *BaselineDijkstra) ContainsSquare(node *BaselineNode) bool {
	for _, f := range d.Frontier {
		if f.Square.Coordinate == node.Square.Coordinate {
			return true
		}
	}
	return false
}

func (d *BaselineDijkstra) IsEmpty() bool {
	return len(d.Frontier) == 0
}

func (d *BaselineDijkstra) Remove() *BaselineNode {
	if len(d.Frontier) > 0 {
		return heap.Pop(&d.Frontier).(*BaselineNode)
	}
	return nil
}

func (d *BaselineDijkstra) GetNeighbor(node *BaselineNode) []*BaselineNode {
	return getBaselineNeighbors(node, d.Maze.Width, d.Maze.Height, d.Maze.Squares)
}

// Solve runs Dijkstra's algorithm until it reaches the goal or exhausts
// the frontier. Since squares carry only positive cost, the first pop of
// a square is already optimal and costs never need revision after being
// queued.
func (d *BaselineDijkstra) Solve() {
	start := &BaselineNode{Square: BaselineSquare{Coordinate: d.Maze.Start, Cost: 1}}
	d.Add(start)
	d.Maze.CurrentNode = start
	d.Maze.ExperimentPath = append(d.Maze.ExperimentPath, start.Square.Coordinate)

	for {
		if d.IsEmpty() {
			return
		}

		current := d.Remove()
		if current == nil {
			return
		}

		d.Maze.CurrentNode = current
		d.Maze.ExperimentPath = append(d.Maze.ExperimentPath, current.Square.Coordinate)

		if d.Maze.Goal == current.Square.Coordinate {
			actions, path := backtrace(current)
			d.Maze.Solution = BaselineSolution{Actions: actions, Path: path}
			d.Maze.Explored = append(d.Maze.Explored, current.Square.Coordinate)
			return
		}

		d.Maze.Explored = append(d.Maze.Explored, current.Square.Coordinate)

		for _, neighbor := range d.GetNeighbor(current) {
			if !d.ContainsSquare(neighbor) && !slices.Contains(d.Maze.Explored, neighbor.Square.Coordinate) {
				neighbor.Cost = current.Cost + neighbor.Square.Cost
				d.Add(neighbor)
			}
		}
	}
}

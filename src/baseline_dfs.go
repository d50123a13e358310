package src

import "slices"

// BaselineDFS solves a BaselineMaze with depth-first search: a LIFO
// frontier that backtracks to the last branch point once a dead end is
// hit.
type BaselineDFS struct {
	Frontier []*BaselineNode
	Maze     *BaselineMaze
}

// NewBaselineDFS constructs a depth-first comparison solver over maze.
func NewBaselineDFS(maze *BaselineMaze) BaselineSolver {
	return &BaselineDFS{Frontier: make([]*BaselineNode, 0), Maze: maze}
}

func (d *BaselineDFS) Add(node *BaselineNode) {
	d.Frontier = append(d.Frontier, node)
}

func (d *BaselineDFS) ContainsSquare(node *BaselineNode) bool {
	for _, f := range d.Frontier {
		if f.Square.Coordinate == node.Square.Coordinate {
			return true
		}
	}
	return false
}

func (d *BaselineDFS) IsEmpty() bool {
	return len(d.Frontier) == 0
}

func (d *BaselineDFS) Remove() *BaselineNode {
	if d.IsEmpty() {
		return nil
	}
	node := d.Frontier[len(d.Frontier)-1]
	d.Frontier = d.Frontier[:len(d.Frontier)-1]
	return node
}

func (d *BaselineDFS) GetNeighbor(node *BaselineNode) []*BaselineNode {
	return getBaselineNeighbors(node, d.Maze.Width, d.Maze.Height, d.Maze.Squares)
}

// Solve runs depth-first search until it reaches the goal or exhausts the
// frontier, recording every step (including dead-end backtracks) into
// Maze.ExperimentPath for the renderer.
func (d *BaselineDFS) Solve() {
	start := &BaselineNode{Square: BaselineSquare{Coordinate: d.Maze.Start}, Action: ActionNone}
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

		hasNewNeighbor := false
		for _, neighbor := range d.GetNeighbor(current) {
			if !d.ContainsSquare(neighbor) && !slices.Contains(d.Maze.Explored, neighbor.Square.Coordinate) {
				d.Add(neighbor)
				hasNewNeighbor = true
				break
			}
		}

		for !hasNewNeighbor {
			if current.Parent == nil {
				return
			}
			current = current.Parent
			d.Maze.ExperimentPath = append(d.Maze.ExperimentPath, current.Square.Coordinate)
			for _, neighbor := range d.GetNeighbor(current) {
				if !d.ContainsSquare(neighbor) && !slices.Contains(d.Maze.Explored, neighbor.Square.Coordinate) {
					d.Add(neighbor)
					hasNewNeighbor = true
					break
				}
			}
		}
	}
}

package src

import (
	"fmt"
	"math"
	"strings"
)

// Algo names one of the registered comparison search strategies. It is
// distinct from the scoring-aware full search (Solve), which has no Algo
// value of its own since it is always the default.
type Algo string

// BaselineAction names a cardinal step the way the comparison solvers
// narrate it, kept separate from Move so the two families never leak into
// each other's vocabulary.
type BaselineAction string

const (
	BFS      Algo = "bfs"
	DFS      Algo = "dfs"
	GBFS     Algo = "gbfs"
	ASTAR    Algo = "astar"
	DIJKSTRA Algo = "dijkstra"

	ActionUp    BaselineAction = "up"
	ActionDown  BaselineAction = "down"
	ActionLeft  BaselineAction = "left"
	ActionRight BaselineAction = "right"
	ActionNone  BaselineAction = "none"
)

// IsAlgo reports whether algo names one of the registered baseline search
// strategies.
func IsAlgo(algo string) bool {
	a := Algo(algo)
	return a == BFS || a == DFS || a == GBFS || a == ASTAR || a == DIJKSTRA
}

// BaselineSquare is one cell of a BaselineMaze: whether it blocks movement
// and what it costs to enter. Danger tiles are modeled as a weighted
// square (cost 9, the heaviest the original teacher's digit-cost scheme
// supported) rather than the 10000-cost/edge-at-u rule the scoring-aware
// engine uses, since these solvers compare plain weighted-grid search, not
// the domain's own cost model.
type BaselineSquare struct {
	Coordinate Point
	IsWall     bool
	Cost       int
}

// BaselineNode is a search-tree node for the comparison solvers: a square
// plus the parent pointer needed to reconstruct a path and the move that
// reached it.
type BaselineNode struct {
	Index  int // slot in the priority queue; unrelated to the algorithm
	Square BaselineSquare
	Parent *BaselineNode
	Action BaselineAction
	Cost   int // running cost, meaning depends on which algorithm uses it
}

// ManhattanDistance is the L1 distance from the node to dest.
func (n *BaselineNode) ManhattanDistance(dest Point) int {
	return abs(dest.X-n.Square.Coordinate.X) + abs(dest.Y-n.Square.Coordinate.Y)
}

// EuclidianDistance is the L2 distance from the node to dest, used by
// BaselineAStar's heuristic.
func (n *BaselineNode) EuclidianDistance(dest Point) float64 {
	dx := math.Pow(float64(dest.X-n.Square.Coordinate.X), 2)
	dy := math.Pow(float64(dest.Y-n.Square.Coordinate.Y), 2)
	return math.Sqrt(dx + dy)
}

// BaselineSolution is the result of one comparison solver run.
type BaselineSolution struct {
	Actions []BaselineAction
	Path    []Point
}

func (s *BaselineSolution) String() string {
	var b strings.Builder

	if len(s.Path) == 0 || len(s.Actions) == 0 {
		return "Start and goal are the same; no moves required."
	}

	for i := 0; i < len(s.Path); i++ {
		action := s.Actions[i]
		if action == ActionNone {
			continue
		}
		coord := s.Path[i]
		if b.Len() == 0 {
			fmt.Fprintf(&b, "Move %s to (%d, %d)", action, coord.X, coord.Y)
		} else {
			fmt.Fprintf(&b, ", move %s to (%d, %d)", action, coord.X, coord.Y)
		}
	}

	if b.Len() == 0 {
		return "No valid moves in the solution."
	}

	return fmt.Sprintf("Start, %s, reach goal.", b.String())
}

// BaselineMaze is the transient, mutable grid the comparison solvers and
// the renderer operate on. It is derived once from an immutable *Maze via
// NewBaselineMaze and discarded after a run.
type BaselineMaze struct {
	Height, Width  int
	Start, Goal    Point
	Squares        [][]BaselineSquare
	CurrentNode    *BaselineNode
	Solution       BaselineSolution
	Explored       []Point
	ExperimentPath []Point
	SearchType     Algo
}

// NewBaselineMaze converts an immutable Maze into the weighted-grid model
// the comparison solvers expect: walls become impassable squares, Danger
// tiles become the heaviest weighted square, everything else costs 1.
func NewBaselineMaze(m *Maze, algo Algo) *BaselineMaze {
	bm := &BaselineMaze{
		Height:     m.Height,
		Width:      m.Width,
		Start:      m.Start,
		Goal:       m.End,
		SearchType: algo,
	}

	bm.Squares = make([][]BaselineSquare, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]BaselineSquare, m.Width)
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			sq := BaselineSquare{Coordinate: p, Cost: 1}
			switch m.At(p) {
			case TileWall:
				sq.IsWall = true
			case TileDanger:
				sq.Cost = 9
			}
			row[x] = sq
		}
		bm.Squares[y] = row
	}

	return bm
}

// GetEmptySquares returns the count of non-wall squares, used to report
// exploration coverage.
func (bm *BaselineMaze) GetEmptySquares() int {
	empty := 0
	for _, row := range bm.Squares {
		for _, sq := range row {
			if !sq.IsWall {
				empty++
			}
		}
	}
	return empty
}

// BaselineSolver is the common interface every comparison search
// strategy implements, mirroring the frontier operations a grid search
// needs regardless of traversal order.
type BaselineSolver interface {
	Add(node *BaselineNode)
	ContainsSquare(node *BaselineNode) bool
	IsEmpty() bool
	Remove() *BaselineNode
	GetNeighbor(node *BaselineNode) []*BaselineNode
	Solve()
}

// getBaselineNeighbors returns the left, top, right, bottom neighbors of
// node that are not walls, each carrying the action that reaches it.
func getBaselineNeighbors(node *BaselineNode, width, height int, squares [][]BaselineSquare) []*BaselineNode {
	x, y := node.Square.Coordinate.X, node.Square.Coordinate.Y
	neighbors := make([]*BaselineNode, 0, 4)

	if x > 0 && !squares[y][x-1].IsWall {
		neighbors = append(neighbors, &BaselineNode{Square: squares[y][x-1], Action: ActionLeft, Parent: node})
	}
	if y > 0 && !squares[y-1][x].IsWall {
		neighbors = append(neighbors, &BaselineNode{Square: squares[y-1][x], Action: ActionUp, Parent: node})
	}
	if x < width-1 && !squares[y][x+1].IsWall {
		neighbors = append(neighbors, &BaselineNode{Square: squares[y][x+1], Action: ActionRight, Parent: node})
	}
	if y < height-1 && !squares[y+1][x].IsWall {
		neighbors = append(neighbors, &BaselineNode{Square: squares[y+1][x], Action: ActionDown, Parent: node})
	}

	return neighbors
}

// backtrace walks Parent pointers from current to the root and returns
// the actions/points in root-to-current order; the root itself is not
// included.
func backtrace(current *BaselineNode) ([]BaselineAction, []Point) {
	var actions []BaselineAction
	var path []Point

	for current.Parent != nil {
		actions = append([]BaselineAction{current.Action}, actions...)
		path = append([]Point{current.Square.Coordinate}, path...)
		current = current.Parent
	}

	return actions, path
}

package src

import (
	"fmt"
	"strings"
)

// Tile is the single-byte encoding of one maze cell, matching the external
// text format exactly so parsing and rendering never need a translation
// table.
type Tile byte

const (
	TileOpen   Tile = ' '
	TileWall   Tile = '#'
	TileCoin   Tile = '$'
	TileDanger Tile = '!'
	TileDrill  Tile = 'T'
	TileStart  Tile = 'o'
	TileEnd    Tile = '_'
)

// IsValidTile reports whether b is one of the characters the maze alphabet
// allows.
func IsValidTile(b byte) bool {
	switch Tile(b) {
	case TileOpen, TileWall, TileCoin, TileDanger, TileDrill, TileStart, TileEnd:
		return true
	default:
		return false
	}
}

// Point is a coordinate inside a Maze.
type Point struct {
	X, Y int
}

// Move is one of the four cardinal directions a path can step in.
type Move int

const (
	MoveNone Move = iota
	MoveLeft
	MoveUp
	MoveRight
	MoveDown
)

// Moves lists the four cardinal directions in the order the solver and A*
// expand them; it exists so callers never have to restate the order.
var Moves = [4]Move{MoveLeft, MoveUp, MoveRight, MoveDown}

// Opposite returns the reverse of a move; MoveNone is its own opposite.
func Opposite(m Move) Move {
	switch m {
	case MoveLeft:
		return MoveRight
	case MoveUp:
		return MoveDown
	case MoveRight:
		return MoveLeft
	case MoveDown:
		return MoveUp
	default:
		return MoveNone
	}
}

// Location is a search-graph node: a coordinate plus every piece of state a
// path carries to it. Locations are small and copied by value on purpose —
// every expansion in the solver produces a fresh Location rather than
// mutating a shared one.
type Location struct {
	Point
	ComesFrom Move // move whose reverse reaches the predecessor
	Steps     int  // accumulation_cost: accrued cost along the path
	Heuristic int  // position_cost: Manhattan distance to the current goal
	Drills    int  // remaining wall-piercings
	Coins     int  // coins collected so far
	Dangers   int  // dangers traversed so far
}

// Neighbor returns the cell count steps away from l in direction, with
// ComesFrom set to the reverse of direction. count == 0 or direction ==
// MoveNone returns l unchanged.
func Neighbor(l Location, direction Move, count int) Location {
	switch direction {
	case MoveLeft:
		l.X -= count
		l.ComesFrom = MoveRight
	case MoveUp:
		l.Y -= count
		l.ComesFrom = MoveDown
	case MoveRight:
		l.X += count
		l.ComesFrom = MoveLeft
	case MoveDown:
		l.Y += count
		l.ComesFrom = MoveUp
	case MoveNone:
		// no-op
	}

	return l
}

// Transition returns the move from a to b for axis-aligned 1-step
// neighbors, or MoveNone if they are equal or not 4-adjacent.
func Transition(a, b Point) Move {
	dx := b.X - a.X
	dy := b.Y - a.Y

	if dx == 0 {
		switch {
		case dy == 0:
			return MoveNone
		case dy > 0:
			return MoveDown
		default:
			return MoveUp
		}
	}

	if dy == 0 {
		if dx > 0 {
			return MoveRight
		}
		return MoveLeft
	}

	return MoveNone
}

// Manhattan is the L1 distance between two points.
func Manhattan(a, b Point) int {
	return abs(b.X-a.X) + abs(b.Y-a.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Path is an ordered sequence of locations; consecutive elements are
// always 4-neighbors. The zero value is a valid empty path.
type Path []Location

// Last returns the final location of the path and true, or the zero
// Location and false when the path is empty.
func (p Path) Last() (Location, bool) {
	if len(p) == 0 {
		return Location{}, false
	}
	return p[len(p)-1], true
}

// Contains reports whether pt appears anywhere in the path.
func (p Path) Contains(pt Point) bool {
	for _, l := range p {
		if l.Point == pt {
			return true
		}
	}
	return false
}

// Score is the objective the full solver maximizes: 1000 minus the number
// of locations in the path, plus 10 per coin collected.
func Score(p Path) int {
	last, ok := p.Last()
	if !ok {
		return 0
	}
	return 1000 - len(p) + 10*last.Coins
}

// Clone returns an independent copy of the path so appends on the copy
// never alias the original's backing array.
func (p Path) Clone() Path {
	clone := make(Path, len(p))
	copy(clone, p)
	return clone
}

// Maze is an immutable rectangular grid of tiles with a unique start and
// end. Once constructed (by the parser or the generator) it is never
// mutated by the solver.
type Maze struct {
	Width, Height int
	Tiles         []Tile // row-major, length Width*Height
	Start, End    Point
}

// At returns the tile at p. Callers must only call it with in-bounds
// points; use InBounds first if p is untrusted.
func (m *Maze) At(p Point) Tile {
	return m.Tiles[p.Y*m.Width+p.X]
}

// set overwrites the tile at p. Used only while the generator is still
// building the maze.
func (m *Maze) set(p Point, t Tile) {
	m.Tiles[p.Y*m.Width+p.X] = t
}

// InBounds reports whether p lies inside m's grid.
func InBounds(m *Maze, p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// CoinCount returns the number of Coin tiles in the maze.
func (m *Maze) CoinCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t == TileCoin {
			n++
		}
	}
	return n
}

// String renders the maze back into the external text format, the inverse
// of ParseMaze.
func (m *Maze) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d\n%d\n", m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]byte, m.Width)
		for x := 0; x < m.Width; x++ {
			p := Point{X: x, Y: y}
			switch {
			case p == m.Start:
				row[x] = byte(TileStart)
			case p == m.End:
				row[x] = byte(TileEnd)
			default:
				row[x] = byte(m.At(p))
			}
		}
		b.Write(row)
		b.WriteByte('\n')
	}
	return b.String()
}

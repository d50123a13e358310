package src

import "math/rand"

// Generate carves a maze with a recursive backtracker (randomized DFS),
// forcing width/height to the next odd value so every carved cell has a
// wall neighbor on every side, and placing coins/dangers while carving.
// rng is caller-owned so tests and concurrent generation can seed it
// deterministically instead of racing on the package-level global.
func Generate(rng *rand.Rand, width, height int) *Maze {
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	if width < 5 {
		width = 5
	}
	if height < 5 {
		height = 5
	}

	m := &Maze{Width: width, Height: height, Tiles: make([]Tile, width*height)}
	for i := range m.Tiles {
		m.Tiles[i] = TileWall
	}

	carve(rng, m, Point{X: 1, Y: 1})

	m.Start = Point{X: 0, Y: 1}
	m.End = Point{X: width - 1, Y: height - 2}
	m.set(m.Start, TileOpen)
	m.set(m.End, TileEnd)

	return m
}

// carve runs the recursive backtracker from p: open p, then visit its
// four two-cell-away neighbors in random order, carving through the wall
// between whenever the far cell hasn't been opened yet.
func carve(rng *rand.Rand, m *Maze, p Point) {
	placeTile(rng, m, p)

	order := rng.Perm(len(Moves))
	for _, idx := range order {
		move := Moves[idx]
		far := Neighbor(Location{Point: p}, move, 2).Point
		if !InBounds(m, far) || m.At(far) != TileWall {
			continue
		}

		between := Neighbor(Location{Point: p}, move, 1).Point
		m.set(between, TileOpen)
		carve(rng, m, far)
	}
}

// placeTile opens p and, with the teacher's original odds, drops a coin
// (1 in 4) or, failing that, a danger (1 in 11); otherwise p stays open.
func placeTile(rng *rand.Rand, m *Maze, p Point) {
	switch {
	case rng.Intn(4) == 0:
		m.set(p, TileCoin)
	case rng.Intn(11) == 0:
		m.set(p, TileDanger)
	default:
		m.set(p, TileOpen)
	}
}

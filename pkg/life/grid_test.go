package life

import (
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

func gridWith(h, w int, alive ...Coord) *Grid {
	g := New(h, w)
	for _, c := range alive {
		if err := g.SetCell(c, Alive); err != nil {
			panic(err)
		}
	}
	return g
}

func aliveCoords(g *Grid) []Coord {
	var out []Coord
	for i, c := range g.Cells() {
		if c == Alive {
			coord, _ := g.IndexToCoord(i)
			out = append(out, coord)
		}
	}
	return out
}

func TestNew(t *testing.T) {
	g := New(3, 4)

	biff.AssertEqual(g.Height(), 3)
	biff.AssertEqual(g.Width(), 4)
	biff.AssertEqual(g.Len(), 12)
	biff.AssertEqual(len(g.back), 12)
	biff.AssertEqual(g.Population(), 0)
}

func TestCoordIndexRoundTrip(t *testing.T) {
	g := New(4, 7)

	for i := 0; i < g.Len(); i++ {
		c, err := g.IndexToCoord(i)
		biff.AssertNil(err)
		back, err := g.CoordToIndex(c)
		biff.AssertNil(err)
		biff.AssertEqual(back, i)
	}

	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			i, err := g.CoordToIndex(At(row, col))
			biff.AssertNil(err)
			biff.AssertEqual(i, col+7*row)
			c, err := g.IndexToCoord(i)
			biff.AssertNil(err)
			biff.AssertEqual(c, At(row, col))
		}
	}
}

// Bounds checks are a hardening: out-of-range access returns ErrOutOfBounds
// instead of faulting, and never changes the grid.
func TestOutOfBounds(t *testing.T) {

	biff.Alternative("Out of bounds", func(a *biff.A) {

		g := gridWith(3, 4, At(1, 1))
		before := g.Clone()

		a.Alternative("Row too large", func(a *biff.A) {
			_, err := g.CoordToIndex(At(3, 0))
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		a.Alternative("Column too large", func(a *biff.A) {
			_, err := g.IsAlive(At(0, 4))
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		a.Alternative("Negative coordinate", func(a *biff.A) {
			err := g.SetCell(At(-1, 0), Alive)
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		a.Alternative("Toggle", func(a *biff.A) {
			err := g.ToggleCell(At(0, 10))
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		a.Alternative("Index", func(a *biff.A) {
			_, err := g.IndexToCoord(12)
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
			_, err = g.GetByIndex(-1)
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
			err = g.SetByIndex(12, Alive)
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		a.Alternative("Neighbor count", func(a *biff.A) {
			_, err := g.AliveNeighborCount(At(5, 5))
			biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		})

		biff.AssertTrue(g.Equal(before))
	})
}

func TestDegenerateGrid(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {0, 5}, {5, 0}, {-2, 3}} {
		g := New(dims[0], dims[1])

		biff.AssertEqual(g.Len(), 0)
		biff.AssertEqual(g.Render(), "")

		g.Tick()
		biff.AssertEqual(g.Len(), 0)

		_, err := g.IsAlive(At(0, 0))
		biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		_, err = g.IndexToCoord(0)
		biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
		_, err = g.AliveNeighborCount(At(0, 0))
		biff.AssertTrue(errors.Is(err, ErrOutOfBounds))
	}
}

func TestCellNot(t *testing.T) {
	biff.AssertEqual(Alive.Not(), Dead)
	biff.AssertEqual(Dead.Not(), Alive)
	biff.AssertTrue(Alive.IsAlive())
	biff.AssertFalse(Dead.IsAlive())
}

func TestToggleInvolution(t *testing.T) {

	biff.Alternative("Toggle twice", func(a *biff.A) {

		g := New(3, 3)
		c := At(2, 1)

		a.Alternative("From Dead", func(a *biff.A) {
			biff.AssertNil(g.ToggleCell(c))
			alive, _ := g.IsAlive(c)
			biff.AssertTrue(alive)

			biff.AssertNil(g.ToggleCell(c))
			alive, _ = g.IsAlive(c)
			biff.AssertFalse(alive)
		})

		a.Alternative("From Alive", func(a *biff.A) {
			biff.AssertNil(g.SetCell(c, Alive))

			biff.AssertNil(g.ToggleCell(c))
			alive, _ := g.IsAlive(c)
			biff.AssertFalse(alive)

			biff.AssertNil(g.ToggleCell(c))
			alive, _ = g.IsAlive(c)
			biff.AssertTrue(alive)
		})

		// only the toggled cell may ever change
		for i, cell := range g.Cells() {
			coord, _ := g.IndexToCoord(i)
			if coord != c {
				biff.AssertEqual(cell, Dead)
			}
		}
	})
}

func TestAccessorsByIndex(t *testing.T) {
	g := New(2, 3)

	biff.AssertNil(g.SetByIndex(4, Alive))

	v, err := g.Get(At(1, 1))
	biff.AssertNil(err)
	biff.AssertEqual(v, Alive)

	v, err = g.GetByIndex(4)
	biff.AssertNil(err)
	biff.AssertEqual(v, Alive)

	biff.AssertNil(g.Set(At(1, 1), Dead))
	v, _ = g.GetByIndex(4)
	biff.AssertEqual(v, Dead)
}

func TestAliveNeighborCountWraps(t *testing.T) {
	g := gridWith(3, 3, At(1, 1))

	n, err := g.AliveNeighborCount(At(0, 0))
	biff.AssertNil(err)
	biff.AssertEqual(n, 1)

	for i := 0; i < g.Len(); i++ {
		c, _ := g.IndexToCoord(i)
		n, _ := g.AliveNeighborCount(c)
		if c == At(1, 1) {
			biff.AssertEqual(n, 0)
			continue
		}
		biff.AssertEqual(n, 1)
	}

	// on a 4x4 grid the opposite corner is only reachable through the wrap
	g = gridWith(4, 4, At(0, 0))
	n, _ = g.AliveNeighborCount(At(3, 3))
	biff.AssertEqual(n, 1)
	n, _ = g.AliveNeighborCount(At(0, 3))
	biff.AssertEqual(n, 1)
	n, _ = g.AliveNeighborCount(At(3, 0))
	biff.AssertEqual(n, 1)
	n, _ = g.AliveNeighborCount(At(2, 2))
	biff.AssertEqual(n, 0)
}

func TestAliveNeighborCountFull(t *testing.T) {
	g := New(3, 3)
	for i := 0; i < g.Len(); i++ {
		biff.AssertNil(g.SetByIndex(i, Alive))
	}

	n, _ := g.AliveNeighborCount(At(0, 0))
	biff.AssertEqual(n, 8)
}

func TestBlockStillLife(t *testing.T) {
	block := []Coord{At(1, 1), At(1, 2), At(2, 1), At(2, 2)}
	g := gridWith(4, 4, block...)
	before := g.Clone()

	g.Tick()

	biff.AssertTrue(g.Equal(before))
	biff.AssertEqual(aliveCoords(g), block)
}

func TestBlinkerOscillation(t *testing.T) {
	horizontal := []Coord{At(2, 1), At(2, 2), At(2, 3)}
	vertical := []Coord{At(1, 2), At(2, 2), At(3, 2)}
	g := gridWith(5, 5, horizontal...)

	g.Tick()
	biff.AssertEqual(aliveCoords(g), vertical)

	g.Tick()
	biff.AssertEqual(aliveCoords(g), horizontal)
}

func TestTickRules(t *testing.T) {

	biff.Alternative("Rules", func(a *biff.A) {

		g := New(5, 5)

		a.Alternative("Lonely cell dies", func(a *biff.A) {
			biff.AssertNil(g.SetCell(At(2, 2), Alive))
			g.Tick()
			biff.AssertEqual(g.Population(), 0)
		})

		a.Alternative("Crowded cell dies", func(a *biff.A) {
			// plus sign: the center has four neighbors
			for _, c := range []Coord{At(2, 2), At(1, 2), At(3, 2), At(2, 1), At(2, 3)} {
				biff.AssertNil(g.SetCell(c, Alive))
			}
			g.Tick()
			alive, _ := g.IsAlive(At(2, 2))
			biff.AssertFalse(alive)
		})

		a.Alternative("Birth with three neighbors", func(a *biff.A) {
			for _, c := range []Coord{At(1, 1), At(1, 3), At(3, 2)} {
				biff.AssertNil(g.SetCell(c, Alive))
			}
			g.Tick()
			alive, _ := g.IsAlive(At(2, 2))
			biff.AssertTrue(alive)
		})

		a.Alternative("Birth across the edge", func(a *biff.A) {
			for _, c := range []Coord{At(4, 0), At(4, 1), At(4, 4)} {
				biff.AssertNil(g.SetCell(c, Alive))
			}
			g.Tick()
			alive, _ := g.IsAlive(At(0, 0))
			biff.AssertTrue(alive)
		})
	})
}

func TestTickDeterministic(t *testing.T) {
	seed := []Coord{At(0, 1), At(1, 2), At(2, 0), At(2, 1), At(2, 2), At(5, 5), At(5, 6)}
	a := gridWith(8, 9, seed...)
	b := gridWith(8, 9, seed...)

	for i := 0; i < 20; i++ {
		a.Tick()
		b.Tick()
		biff.AssertTrue(a.Equal(b))
	}
}

func TestTickLeavesCloneUntouched(t *testing.T) {
	g := gridWith(5, 5, At(2, 1), At(2, 2), At(2, 3))
	snapshot := g.Clone()

	g.Tick()

	biff.AssertFalse(g.Equal(snapshot))
	biff.AssertEqual(aliveCoords(snapshot), []Coord{At(2, 1), At(2, 2), At(2, 3)})
}

func TestSetDimensions(t *testing.T) {

	biff.Alternative("Resize", func(a *biff.A) {

		g := gridWith(3, 3, At(0, 0), At(1, 2), At(2, 1))

		a.Alternative("Grow", func(a *biff.A) {
			g.SetDimensions(5, 4)
			biff.AssertEqual(g.Height(), 5)
			biff.AssertEqual(g.Width(), 4)
			biff.AssertEqual(g.Len(), 20)
			biff.AssertEqual(len(g.back), 20)
			biff.AssertEqual(aliveCoords(g), []Coord{At(0, 0), At(1, 2), At(2, 1)})
		})

		a.Alternative("Shrink", func(a *biff.A) {
			g.SetDimensions(2, 2)
			biff.AssertEqual(g.Len(), 4)
			biff.AssertEqual(aliveCoords(g), []Coord{At(0, 0)})
		})

		a.Alternative("Narrower keeps rows aligned", func(a *biff.A) {
			g.SetDimensions(3, 2)
			biff.AssertEqual(aliveCoords(g), []Coord{At(0, 0), At(2, 1)})
		})

		a.Alternative("To zero and back", func(a *biff.A) {
			g.SetDimensions(0, 0)
			biff.AssertEqual(g.Len(), 0)
			g.SetDimensions(3, 3)
			biff.AssertEqual(g.Population(), 0)
		})

		a.Alternative("Tick after resize", func(a *biff.A) {
			g.SetDimensions(5, 5)
			g.Tick()
			biff.AssertEqual(g.Len(), 25)
			biff.AssertEqual(len(g.back), 25)
		})
	})
}

func TestRender(t *testing.T) {
	g := gridWith(2, 3, At(0, 1), At(1, 2))

	biff.AssertEqual(g.Render(), "◻◼◻\n◻◻◼\n")
	biff.AssertEqual(g.String(), g.Render())
	biff.AssertEqual(Alive.String(), "◼")
	biff.AssertEqual(Dead.String(), "◻")
}

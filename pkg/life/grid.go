// Package life implements Conway's Game of Life on a toroidal grid.
//
// Cells live in a single row-major buffer; index i maps to (i/width, i%width)
// and (row, col) maps to col+width*row. Generations are computed into a second
// buffer of the same shape which is swapped in once the whole grid has been
// evaluated, so every cell sees the same previous generation.
package life

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned when a coordinate or index falls outside the grid.
var ErrOutOfBounds = errors.New("life: out of bounds")

// Grid is a toroidal Game of Life board. It is not safe for concurrent use.
type Grid struct {
	h, w int
	cur  []Cell
	back []Cell
}

// New returns a height*width grid with every cell Dead. Zero dimensions are
// allowed and produce a grid with no addressable cells; negative values are
// treated as zero.
func New(height, width int) *Grid {
	height, width = clampDims(height, width)
	return &Grid{
		h:    height,
		w:    width,
		cur:  make([]Cell, height*width),
		back: make([]Cell, height*width),
	}
}

func clampDims(height, width int) (int, int) {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return height, width
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cur) }

// Population counts the Alive cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Contains reports whether c addresses a cell of the grid.
func (g *Grid) Contains(c Coord) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < g.h && c.Col < g.w
}

// CoordToIndex maps a coordinate to its flat index.
func (g *Grid) CoordToIndex(c Coord) (int, error) {
	if !g.Contains(c) {
		return 0, g.coordError(c)
	}
	return c.Col + g.w*c.Row, nil
}

// IndexToCoord maps a flat index back to its coordinate.
func (g *Grid) IndexToCoord(i int) (Coord, error) {
	if i < 0 || i >= len(g.cur) {
		return Coord{}, g.indexError(i)
	}
	return Coord{Row: i / g.w, Col: i % g.w}, nil
}

// Get returns the cell at c.
func (g *Grid) Get(c Coord) (Cell, error) {
	i, err := g.CoordToIndex(c)
	if err != nil {
		return Dead, err
	}
	return g.cur[i], nil
}

// Set overwrites the cell at c.
func (g *Grid) Set(c Coord, v Cell) error {
	i, err := g.CoordToIndex(c)
	if err != nil {
		return err
	}
	g.cur[i] = v
	return nil
}

// GetByIndex returns the cell at flat index i.
func (g *Grid) GetByIndex(i int) (Cell, error) {
	if i < 0 || i >= len(g.cur) {
		return Dead, g.indexError(i)
	}
	return g.cur[i], nil
}

// SetByIndex overwrites the cell at flat index i.
func (g *Grid) SetByIndex(i int, v Cell) error {
	if i < 0 || i >= len(g.cur) {
		return g.indexError(i)
	}
	g.cur[i] = v
	return nil
}

// IsAlive reports whether the cell at c is Alive.
func (g *Grid) IsAlive(c Coord) (bool, error) {
	v, err := g.Get(c)
	if err != nil {
		return false, err
	}
	return v.IsAlive(), nil
}

// SetCell overwrites a single cell. Neighbors are not affected.
func (g *Grid) SetCell(c Coord, v Cell) error { return g.Set(c, v) }

// ToggleCell flips the cell at c between Alive and Dead.
func (g *Grid) ToggleCell(c Coord) error {
	i, err := g.CoordToIndex(c)
	if err != nil {
		return err
	}
	g.cur[i] = g.cur[i].Not()
	return nil
}

// Cells returns a row-major copy of the current generation.
func (g *Grid) Cells() []Cell {
	return append([]Cell(nil), g.cur...)
}

// SetDimensions rebuilds the grid with new dimensions. Cells inside the
// overlap of the old and new shapes keep their state, new cells are Dead and
// cells outside the new shape are dropped. The flat layout depends on the
// width, so the buffers are always reallocated.
func (g *Grid) SetDimensions(height, width int) {
	height, width = clampDims(height, width)
	cur := make([]Cell, height*width)
	rows, cols := min(g.h, height), min(g.w, width)
	for y := 0; y < rows; y++ {
		copy(cur[y*width:y*width+cols], g.cur[y*g.w:y*g.w+cols])
	}
	*g = Grid{h: height, w: width, cur: cur, back: make([]Cell, len(cur))}
}

// Tick advances the grid by one generation.
func (g *Grid) Tick() {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			i := x + g.w*y
			g.back[i] = nextState(g.cur[i], g.neighbors(y, x))
		}
	}
	g.cur, g.back = g.back, g.cur
}

func nextState(c Cell, n int) Cell {
	switch {
	case c == Alive && n < 2:
		return Dead
	case c == Alive && n > 3:
		return Dead
	case c == Dead && n == 3:
		return Alive
	}
	return c
}

// AliveNeighborCount returns how many of the eight cells around c are Alive.
// Edges wrap, so every cell has exactly eight neighbors.
func (g *Grid) AliveNeighborCount(c Coord) (int, error) {
	if !g.Contains(c) {
		return 0, g.coordError(c)
	}
	return g.neighbors(c.Row, c.Col), nil
}

func (g *Grid) neighbors(y, x int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny := wrap(y+dy, g.h)
			nx := wrap(x+dx, g.w)
			if g.cur[nx+g.w*ny] == Alive {
				n++
			}
		}
	}
	return n
}

// wrap is a Euclidean modulus: the result is always in [0, n).
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{
		h:    g.h,
		w:    g.w,
		cur:  append([]Cell(nil), g.cur...),
		back: make([]Cell, len(g.back)),
	}
}

// Equal reports whether both grids have the same shape and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.h != other.h || g.w != other.w {
		return false
	}
	for i, c := range g.cur {
		if other.cur[i] != c {
			return false
		}
	}
	return true
}

func (g *Grid) coordError(c Coord) error {
	return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, c.Row, c.Col, g.h, g.w)
}

func (g *Grid) indexError(i int) error {
	return fmt.Errorf("%w: index %d on %dx%d grid", ErrOutOfBounds, i, g.h, g.w)
}

package life

// Cell is the state of a single grid position.
type Cell uint8

const (
	// Dead is the zero value so freshly allocated buffers start empty.
	Dead Cell = iota
	// Alive marks a live cell.
	Alive
)

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// IsAlive reports whether the cell is Alive.
func (c Cell) IsAlive() bool { return c == Alive }

// Not returns the opposite state.
func (c Cell) Not() Cell {
	if c == Alive {
		return Dead
	}
	return Alive
}

// Glyph returns the rune used when rendering the cell.
func (c Cell) Glyph() rune {
	if c == Alive {
		return aliveGlyph
	}
	return deadGlyph
}

func (c Cell) String() string { return string(c.Glyph()) }

// Coord addresses a cell by row (vertical axis) and column (horizontal axis).
// It is not checked against any grid until used.
type Coord struct {
	Row int
	Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord { return Coord{Row: row, Col: col} }

// Package life exposes the toroidal Game of Life grid as a core.Sim.
package life

import (
	"torus-life/internal/core"
	pkgcore "torus-life/pkg/core"
	gol "torus-life/pkg/life"
)

// Life drives a gol.Grid for hosts that speak core.Sim.
type Life struct {
	cfg   Config
	grid  *gol.Grid
	bytes []uint8
	gen   int
}

// New returns a Life sim with every cell Dead. Call Reset to seed it.
func New(cfg Config) *Life {
	return &Life{cfg: cfg, grid: gol.New(cfg.Height, cfg.Width)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.Width(), H: l.grid.Height()} }

// Grid exposes the underlying engine.
func (l *Life) Grid() *gol.Grid { return l.grid }

// Generation is the number of steps since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Reset clears the board and seeds a random soup at the configured density.
// A zero seed falls back to the configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	rng := pkgcore.NewRNG(seed)
	for i := 0; i < l.grid.Len(); i++ {
		v := gol.Dead
		if rng.Chance(l.cfg.Density) {
			v = gol.Alive
		}
		// i is always in range here
		_ = l.grid.SetByIndex(i, v)
	}
	l.gen = 0
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.grid.Tick()
	l.gen++
}

// Cells returns the current generation as 0/1 bytes. The slice is reused
// between calls.
func (l *Life) Cells() []uint8 {
	cells := l.grid.Cells()
	if cap(l.bytes) < len(cells) {
		l.bytes = make([]uint8, len(cells))
	}
	l.bytes = l.bytes[:len(cells)]
	for i, c := range cells {
		l.bytes[i] = 0
		if c.IsAlive() {
			l.bytes[i] = 1
		}
	}
	return l.bytes
}

// Toggle flips the cell in column x, row y.
func (l *Life) Toggle(x, y int) error {
	return l.grid.ToggleCell(gol.At(y, x))
}

// Render draws the current generation as text.
func (l *Life) Render() string { return l.grid.Render() }

// Population counts the Alive cells.
func (l *Life) Population() int { return l.grid.Population() }

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}

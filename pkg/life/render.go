package life

import "strings"

// Render draws the grid as text: one glyph per cell and a newline after the
// last column of every row.
func (g *Grid) Render() string {
	if len(g.cur) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(g.cur)*len(string(aliveGlyph)) + g.h)
	for i, c := range g.cur {
		b.WriteRune(c.Glyph())
		if i%g.w == g.w-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (g *Grid) String() string { return g.Render() }

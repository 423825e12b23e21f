// Package ui builds the on-screen status panel for the viewer.
package ui

import (
	"fmt"

	"torus-life/internal/core"
)

type generationCounter interface {
	Generation() int
	Population() int
}

// StatusLines returns the text shown in the HUD for sim.
func StatusLines(sim core.Sim, paused bool) []string {
	size := sim.Size()
	lines := []string{fmt.Sprintf("%s %dx%d", sim.Name(), size.W, size.H)}
	if c, ok := sim.(generationCounter); ok {
		lines = append(lines,
			fmt.Sprintf("gen %d", c.Generation()),
			fmt.Sprintf("pop %d", c.Population()),
		)
	}
	if paused {
		lines = append(lines, "paused (space/n)")
	}
	return lines
}

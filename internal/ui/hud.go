//go:build ebiten

package ui

import (
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 14

// HUD draws a small status block over the top-left corner of the grid.
type HUD struct {
	sim     core.Sim
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim, visible: true}
}

// Toggle shows or hides the HUD.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Draw renders the status lines onto screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || !h.visible {
		return
	}
	lines := StatusLines(h.sim, paused)
	width := 0
	for _, l := range lines {
		width = max(width, len(l)*basicfont.Face7x13.Advance+8)
	}
	height := len(lines)*hudLineHeight + 6
	if h.panel == nil || h.panel.Bounds().Dx() != width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(width, height)
	}
	h.panel.Fill(color.RGBA{A: 160})
	for i, l := range lines {
		text.Draw(h.panel, l, basicfont.Face7x13, 4, (i+1)*hudLineHeight, color.RGBA{R: 120, G: 255, B: 120, A: 255})
	}
	screen.DrawImage(h.panel, nil)
}

//go:build ebiten

package main

import (
	"errors"
	"log"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/fulldump/goconfig"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.Default()
	goconfig.Read(&cfg)

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("torus-life: " + sim.Name())
	ebiten.SetTPS(max(cfg.TPS, 1))
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//go:build !ebiten

// Command ca runs an automaton in the terminal. Build with -tags ebiten for
// the windowed viewer.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"

	"github.com/fulldump/goconfig"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := &app.Runner{
		Sim:    sim,
		Out:    os.Stdout,
		TPS:    cfg.TPS,
		Quiet:  cfg.Quiet,
		Logger: log.New(os.Stderr, "ca: ", log.LstdFlags),
	}
	if err := runner.Run(ctx, cfg.Generations); err != nil {
		log.Fatalf("run: %v", err)
	}
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"torus-life/internal/core"
)

// ErrNoTextRenderer is returned when the sim cannot draw itself as text.
var ErrNoTextRenderer = errors.New("sim does not implement text rendering")

type populationCounter interface {
	Population() int
}

// Runner prints successive generations of a sim as text.
type Runner struct {
	Sim core.Sim
	Out io.Writer

	// TPS paces generations; zero or less prints as fast as possible.
	TPS int
	// Quiet suppresses every frame but the last.
	Quiet bool

	Logger *log.Logger
}

// Run prints the current generation and then advances and prints until
// generations steps have been taken. Zero generations runs until ctx is done.
// Cancelling ctx is not an error.
func (r *Runner) Run(ctx context.Context, generations int) error {
	tr, ok := r.Sim.(core.TextRenderer)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTextRenderer, r.Sim.Name())
	}
	logger := r.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	size := r.Sim.Size()
	logger.Printf("running %s %dx%d for %d generations", r.Sim.Name(), size.W, size.H, generations)

	var pace *core.FixedStep
	if r.TPS > 0 {
		pace = core.NewFixedStep(r.TPS)
	}

	gen := 0
	if !r.Quiet {
		if err := r.frame(tr, gen); err != nil {
			return err
		}
	}
	for generations <= 0 || gen < generations {
		if err := wait(ctx, pace); err != nil {
			logger.Printf("stopped at generation %d", gen)
			break
		}
		r.Sim.Step()
		gen++
		if !r.Quiet {
			if err := r.frame(tr, gen); err != nil {
				return err
			}
		}
	}
	if r.Quiet {
		if err := r.frame(tr, gen); err != nil {
			return err
		}
	}
	logger.Printf("finished after %d generations", gen)
	return nil
}

func (r *Runner) frame(tr core.TextRenderer, gen int) error {
	header := fmt.Sprintf("generation %d", gen)
	if pc, ok := r.Sim.(populationCounter); ok {
		header += fmt.Sprintf(" (population %d)", pc.Population())
	}
	_, err := fmt.Fprintf(r.Out, "%s\n%s\n", header, tr.Render())
	return err
}

// wait blocks until the next tick is due or ctx is done.
func wait(ctx context.Context, pace *core.FixedStep) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if pace == nil {
		return nil
	}
	for !pace.ShouldStep() {
		t := time.NewTimer(pace.Remaining())
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-t.C:
		}
	}
	return nil
}

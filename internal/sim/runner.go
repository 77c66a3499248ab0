// Package sim steps a simulation at a fixed rate.
package sim

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

const DefaultStep = time.Second / 60

type Ticker interface {
	Tick(dt float64) error
}

type TickFunc func(dt float64) error

func (f TickFunc) Tick(dt float64) error { return f(dt) }

// Runner advances Ticker by Step on every tick. The dt handed to the
// ticker is always Step, however late the wall clock fires.
type Runner struct {
	Ticker Ticker
	Step   time.Duration

	ticks atomic.Int64
}

func NewRunner(t Ticker, tps int) *Runner {
	step := DefaultStep
	if tps > 0 {
		step = time.Second / time.Duration(tps)
	}
	return &Runner{Ticker: t, Step: step}
}

// Run ticks until ctx is cancelled or the ticker fails.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.check(); err != nil {
		return err
	}
	ticker := time.NewTicker(r.Step)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.tick(); err != nil {
				return err
			}
		}
	}
}

// RunTicks steps n times without waiting.
func (r *Runner) RunTicks(n int) error {
	if err := r.check(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := r.tick(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) Ticks() int64 {
	return r.ticks.Load()
}

// Elapsed is the simulated time so far.
func (r *Runner) Elapsed() time.Duration {
	return time.Duration(r.ticks.Load()) * r.Step
}

func (r *Runner) check() error {
	if r.Ticker == nil {
		return fmt.Errorf("sim ticker is nil")
	}
	if r.Step <= 0 {
		return fmt.Errorf("sim step must be positive, got %s", r.Step)
	}
	return nil
}

func (r *Runner) tick() error {
	n := r.ticks.Add(1)
	if err := r.Ticker.Tick(r.Step.Seconds()); err != nil {
		return fmt.Errorf("tick %d: %w", n, err)
	}
	return nil
}

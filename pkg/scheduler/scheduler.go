// Package scheduler runs a tick function on a fixed period with at
// most one invocation in flight.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrNilTick         = errors.New("tick function is nil")
	ErrInvalidInterval = errors.New("interval must be positive")
)

// TickFunc is one sample-evaluate-render cycle.
type TickFunc func(ctx context.Context)

// Runner invokes a TickFunc periodically. The tick executes inline in
// the run loop, so a tick that outlives the interval delays the next
// one; ticks never overlap.
type Runner struct {
	interval time.Duration
	tick     TickFunc
}

// NewRunner validates the interval and tick before any scheduling
// starts.
func NewRunner(interval time.Duration, tick TickFunc) (*Runner, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInterval, interval)
	}

	if tick == nil {
		return nil, ErrNilTick
	}

	return &Runner{interval: interval, tick: tick}, nil
}

// Run fires the tick immediately, then once per interval, until ctx is
// canceled. Cancellation is observed between ticks only: a tick in
// progress always runs to completion.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.tick(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}

			r.tick(ctx)
		}
	}
}

// Package headless drives a level run without a terminal: at wall-clock
// pace with a time.Ticker, or as fast as possible on a virtual clock.
package headless

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// ErrStopped is returned by Run after Stop.
var ErrStopped = errors.New("headless: runner stopped")

// Ticker is anything advanced by the scheduler. *engine.Run satisfies it.
type Ticker interface {
	Tick(now time.Time) engine.State
}

// TickFunc adapts a function to Ticker.
type TickFunc func(now time.Time) engine.State

// Tick calls f(now).
func (f TickFunc) Tick(now time.Time) engine.State { return f(now) }

// Result summarizes a finished drive.
type Result struct {
	State   engine.State
	Ticks   int
	Elapsed time.Duration
}

// Runner calls Tick at a fixed interval until the run is terminal, the
// context is cancelled or Stop is called. Ticks are applied on the runner
// goroutine only, so stopping never interrupts a tick.
type Runner struct {
	interval time.Duration
	now      func() time.Time
	logger   *log.Logger

	done     chan struct{}
	doneOnce sync.Once
}

// NewRunner creates a runner. logger may be nil.
func NewRunner(interval time.Duration, logger *log.Logger) *Runner {
	return &Runner{
		interval: interval,
		now:      time.Now,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Run blocks until t reports a terminal state or the runner is cancelled.
func (r *Runner) Run(ctx context.Context, t Ticker) (Result, error) {
	start := r.now()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var res Result
	for {
		select {
		case <-ticker.C:
			now := r.now()
			res.State = t.Tick(now)
			res.Ticks++
			res.Elapsed = now.Sub(start)
			if res.State.Terminal() {
				r.debug("run finished", "state", res.State, "ticks", res.Ticks, "elapsed", res.Elapsed)
				return res, nil
			}

		case <-ctx.Done():
			r.debug("run cancelled", "ticks", res.Ticks)
			return res, ctx.Err()

		case <-r.done:
			r.debug("run stopped", "ticks", res.Ticks)
			return res, ErrStopped
		}
	}
}

// Stop ends Run after the tick in progress, if any. Safe to call more than once.
func (r *Runner) Stop() {
	r.doneOnce.Do(func() {
		close(r.done)
	})
}

func (r *Runner) debug(msg string, keyvals ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, keyvals...)
	}
}

// RunVirtual ticks t at start, start+interval, ... without sleeping, until
// it is terminal or maxTicks ticks have run (0 means no limit).
func RunVirtual(t Ticker, start time.Time, interval time.Duration, maxTicks int) Result {
	var res Result
	for maxTicks <= 0 || res.Ticks < maxTicks {
		res.Ticks++
		res.Elapsed = time.Duration(res.Ticks) * interval
		res.State = t.Tick(start.Add(res.Elapsed))
		if res.State.Terminal() {
			break
		}
	}
	return res
}

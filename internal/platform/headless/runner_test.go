package headless

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

// countdown becomes terminal after n ticks.
type countdown struct {
	n     int
	ticks atomic.Int32
	last  time.Time
}

func (c *countdown) Tick(now time.Time) engine.State {
	c.last = now
	if int(c.ticks.Add(1)) >= c.n {
		return engine.StateSucceeded
	}
	return engine.StateRunning
}

func TestRunnerStopsWhenTerminal(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	c := &countdown{n: 5}

	res, err := r.Run(context.Background(), c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ticks != 5 || res.State != engine.StateSucceeded {
		t.Errorf("result = %+v", res)
	}
	if got := c.ticks.Load(); got != 5 {
		t.Errorf("ticked %d times, want 5", got)
	}
}

func TestRunnerContextCancel(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	c := &countdown{n: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	res, err := r.Run(ctx, c)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if res.State.Terminal() {
		t.Errorf("state = %v", res.State)
	}

	after := c.ticks.Load()
	time.Sleep(10 * time.Millisecond)
	if c.ticks.Load() != after {
		t.Error("ticks continued after Run returned")
	}
}

func TestRunnerStop(t *testing.T) {
	r := NewRunner(time.Millisecond, nil)
	c := &countdown{n: 1 << 30}

	go func() {
		time.Sleep(10 * time.Millisecond)
		r.Stop()
		r.Stop()
	}()

	if _, err := r.Run(context.Background(), c); !errors.Is(err, ErrStopped) {
		t.Errorf("err = %v, want ErrStopped", err)
	}
}

func TestRunVirtual(t *testing.T) {
	start := time.Unix(0, 0)
	c := &countdown{n: 3}

	res := RunVirtual(c, start, 20*time.Millisecond, 0)
	if res.Ticks != 3 || res.State != engine.StateSucceeded {
		t.Errorf("result = %+v", res)
	}
	if want := start.Add(60 * time.Millisecond); !c.last.Equal(want) {
		t.Errorf("last tick at %v, want %v", c.last, want)
	}

	limited := RunVirtual(TickFunc(func(time.Time) engine.State { return engine.StateRunning }), start, time.Second, 7)
	if limited.Ticks != 7 || limited.Elapsed != 7*time.Second {
		t.Errorf("limited = %+v", limited)
	}
}

package silverball

import (
	"context"
	"testing"
	"time"

	"github.com/vovakirdan/tui-silverball/internal/config"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
)

func shortLevel() engine.Level {
	return engine.Level{
		Number:    7,
		Name:      "Short",
		Ball:      engine.Point{X: 1, Y: 1},
		Hole:      engine.Hole{X: 3, Y: 1},
		TimeLimit: 5,
		Points:    500,
	}
}

func TestSimulateRollIntoHole(t *testing.T) {
	res, err := Simulate(context.Background(), SimOptions{
		Level:  shortLevel(),
		Config: config.DefaultSilverballConfig(),
		Script: TiltScript{Steps: []TiltStep{{At: 0, X: 4}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != engine.StateSucceeded {
		t.Fatalf("state = %v, reason = %v", res.State, res.Reason)
	}
	if res.Points <= 0 || res.Points > 500 || res.Ticks == 0 {
		t.Errorf("result = %+v", res)
	}
	if rec := res.Record(); rec.Level != 7 || rec.Outcome != "succeeded" {
		t.Errorf("record = %+v", rec)
	}
}

func TestSimulateTimeout(t *testing.T) {
	res, err := Simulate(context.Background(), SimOptions{
		Level:  shortLevel(),
		Config: config.DefaultSilverballConfig(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != engine.StateFailed || res.Reason != engine.FailTimeout || res.Points != 0 {
		t.Errorf("result = %+v", res)
	}
	// 5s at 20ms per tick; the tick past the deadline does not step.
	if res.Ticks != 250 {
		t.Errorf("ticks = %d, want 250", res.Ticks)
	}
}

func TestSimulateMaxTicks(t *testing.T) {
	res, err := Simulate(context.Background(), SimOptions{
		Level:    shortLevel(),
		Config:   config.DefaultSilverballConfig(),
		MaxTicks: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.State != engine.StateRunning || res.Ticks != 10 {
		t.Errorf("result = %+v", res)
	}
}

func TestSimulateRealtimeCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()

	res, err := Simulate(ctx, SimOptions{
		Level:    shortLevel(),
		Config:   config.DefaultSilverballConfig(),
		Realtime: true,
	})
	if err == nil {
		t.Fatal("expected context error")
	}
	if res.State != engine.StateRunning {
		t.Errorf("state = %v", res.State)
	}
}

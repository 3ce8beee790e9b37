package silverball

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-silverball/internal/config"
	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/platform/headless"
)

// SimOptions configures a headless level run.
type SimOptions struct {
	Level    engine.Level
	Config   config.SilverballConfig
	Script   TiltScript
	Realtime bool // Tick at wall-clock pace instead of a virtual clock
	MaxTicks int  // Virtual runs only; 0 means until the level ends
	Audio    engine.AudioSink
	Logger   *log.Logger
}

// SimResult is the outcome of a headless run.
type SimResult struct {
	Level   int
	State   engine.State
	Reason  engine.FailureReason
	Points  int
	Ticks   int
	Elapsed time.Duration
	Ball    engine.Ball
}

// Record converts the result for persistence.
func (r SimResult) Record() core.LevelRecord {
	return LevelResult{Number: r.Level, State: r.State, Reason: r.Reason, Points: r.Points, Ticks: r.Ticks}.Record()
}

// Simulate plays one level without a terminal, feeding tilt from the script.
func Simulate(ctx context.Context, opts SimOptions) (SimResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	layout := engine.NewLayout(WorldW, WorldH)
	tuning := engine.TuningFromConfig(opts.Config, layout.Scale(opts.Config.Physics.ReferenceBase))

	var tilt core.Tilt
	start := epoch
	if opts.Realtime {
		start = time.Now()
	}

	run := engine.NewRun(engine.RunConfig{
		Level:  opts.Level,
		Layout: layout,
		Tuning: tuning,
		Input:  &tilt,
		Audio:  opts.Audio,
		Logger: logger,
	}, start)

	scripted := headless.TickFunc(func(now time.Time) engine.State {
		tilt.Set(opts.Script.At(now.Sub(start)))
		return run.Tick(now)
	})

	logger.Info("simulating level", "level", opts.Level.Number, "realtime", opts.Realtime, "steps", len(opts.Script.Steps))

	var drive headless.Result
	var err error
	if opts.Realtime {
		drive, err = headless.NewRunner(tuning.TickInterval, logger).Run(ctx, scripted)
	} else {
		drive = headless.RunVirtual(scripted, start, tuning.TickInterval, opts.MaxTicks)
	}

	res := SimResult{
		Level:   opts.Level.Number,
		State:   run.State(),
		Reason:  run.Reason(),
		Points:  run.Points(),
		Ticks:   run.Ticks(),
		Elapsed: drive.Elapsed,
		Ball:    run.Ball(),
	}
	logger.Info("simulation finished", "level", res.Level, "state", res.State, "reason", res.Reason, "points", res.Points, "ticks", res.Ticks)
	return res, err
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-silverball/internal/audio"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/levels"
	"github.com/vovakirdan/tui-silverball/internal/storage"
)

var (
	flagScript   string
	flagRealtime bool
	flagMaxTicks int
	flagSave     bool
)

var simCmd = &cobra.Command{
	Use:   "sim <level>",
	Short: "Run a level without a terminal",
	Long: `Play one level headless, driving the tilt from a YAML script:

  steps:
    - {at: 0,   x: 4, y: 0}    # from t=0s tilt right
    - {at: 1.5, x: 0, y: 4}    # from t=1.5s tilt down

Without --realtime the run uses a virtual clock and finishes instantly;
the result is the same on every run. With --realtime it ticks at wall
clock pace and plays sounds if audio is enabled.

Examples:
  silverball sim 1 --script roll.yaml
  silverball sim 3 --script roll.yaml --realtime --log-level debug
  silverball sim 2 --max-ticks 500 --save`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagScript, "script", "", "Tilt script YAML (empty = level board)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Tick at wall-clock pace")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", 0, "Stop a virtual run after this many ticks (0 = until it ends)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the result as a practice run")
}

func runSim(_ *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("level must be a number, got %q", args[0])
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := loadConfig(logger)

	lvl, err := levels.Open(flagLevelsDir).LoadByNumber(number)
	if err != nil {
		return err
	}

	var script silverball.TiltScript
	if flagScript != "" {
		script, err = silverball.LoadTiltScript(flagScript)
		if err != nil {
			return err
		}
	}

	opts := silverball.SimOptions{
		Level:    lvl,
		Config:   cfg,
		Script:   script,
		Realtime: flagRealtime,
		MaxTicks: flagMaxTicks,
		Logger:   logger,
	}
	if flagRealtime {
		player := audio.Open(cfg.Audio, logger)
		defer player.Close()
		opts.Audio = player
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := silverball.Simulate(ctx, opts)
	if err != nil {
		logger.Warn("simulation interrupted", "err", err)
	}

	fmt.Printf("Level %d (%s): %s", res.Level, lvl.Name, res.State)
	if res.Reason != engine.FailNone {
		fmt.Printf(" (%s)", res.Reason)
	}
	fmt.Printf("\n  points %d  ticks %d  ball (%.1f, %.1f) speed %.1f\n",
		res.Points, res.Ticks, res.Ball.Position.X, res.Ball.Position.Y, res.Ball.Speed())

	if !flagSave || !res.State.Terminal() {
		return nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()
	if _, err := store.SaveLevelRun("silverball_practice", res.Record()); err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	return nil
}

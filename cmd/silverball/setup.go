package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-silverball/internal/config"
	"github.com/vovakirdan/tui-silverball/internal/core"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/engine"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball/levels"
	"github.com/vovakirdan/tui-silverball/internal/platform/tui"
	"github.com/vovakirdan/tui-silverball/internal/registry"
)

// newLogger builds the command logger. Interactive commands pass
// io.Discard as the fallback so logs never draw over the game screen;
// --log-file overrides either way. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "silverball",
	})
	silverball.SetLogger(logger)
	return logger, closeFn, nil
}

// loadConfig reads the config the game will use, with the preset applied.
func loadConfig(logger *log.Logger) config.SilverballConfig {
	cfg, err := config.LoadSilverball(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultSilverballConfig()
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		logger.Warn("unknown difficulty, using normal", "difficulty", flagDifficulty)
		preset = config.DifficultyNormal
	}
	config.ApplySilverballPreset(&cfg, preset)
	return cfg
}

// loadLevels loads the --levels directory or the builtin pack.
func loadLevels() ([]engine.Level, error) {
	return levels.Open(flagLevelsDir).LoadAll()
}

func levelChoices(lvls []engine.Level) []tui.LevelChoice {
	choices := make([]tui.LevelChoice, len(lvls))
	for i, l := range lvls {
		choices[i] = tui.LevelChoice{Number: l.Number, Name: l.Name}
	}
	return choices
}

// runtimeConfig sizes the game to the terminal.
func runtimeConfig(cfg config.SilverballConfig) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.TickRate = cfg.Timing.TickRate()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	return rc
}

// checkMode reports an unknown game mode with a hint.
func checkMode(gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'silverball list' to see available modes)", gameID)
	}
	return nil
}

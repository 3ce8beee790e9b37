package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-silverball/internal/audio"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball"
	"github.com/vovakirdan/tui-silverball/internal/platform/tui"
	"github.com/vovakirdan/tui-silverball/internal/registry"
	"github.com/vovakirdan/tui-silverball/internal/storage"
)

var (
	flagLevel   int
	flagNoSound bool
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a game mode",
	Long: `Start playing the specified mode.

Modes:
  silverball           - Campaign: clear every level in order, points add up
  silverball_practice  - Practice a single level

Controls:
  Arrows/WASD/HJKL  - Tilt the board
  Space/0           - Level the board
  Enter             - Next level (after clearing one)
  P                 - Pause
  R                 - Restart (after game over)
  B/Esc             - Back (when paused or over)
  Q/Ctrl+C          - Quit

Examples:
  silverball play silverball
  silverball play silverball --level 3 --difficulty hard
  silverball play silverball_practice --level 2
  silverball play silverball --config ./tuning.yaml --no-sound`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start level (campaign) or the level to practice")
	playCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if err := checkMode(gameID); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := loadConfig(logger)
	rc := runtimeConfig(cfg)

	if flagNoSound {
		cfg.Audio.Enabled = false
	}
	player := audio.Open(cfg.Audio, logger)
	defer player.Close()
	silverball.SetAudio(player)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	if sel, ok := game.(tui.LevelSelector); ok && flagLevel > 0 {
		sel.SelectLevel(flagLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, rc); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

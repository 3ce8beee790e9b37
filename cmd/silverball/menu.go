package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-silverball/internal/audio"
	"github.com/vovakirdan/tui-silverball/internal/games/silverball"
	"github.com/vovakirdan/tui-silverball/internal/platform/tui"
	"github.com/vovakirdan/tui-silverball/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and level interactively",
	Long: `Start in interactive menu mode.

Up/Down picks the mode, Left/Right picks the level. After a game ends,
B or Esc returns to the menu. Tab opens the scoreboard.

Examples:
  silverball menu
  silverball menu --levels ./my-levels
  silverball menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().BoolVar(&flagNoSound, "no-sound", false, "Disable sound effects")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := loadConfig(logger)
	if flagNoSound {
		cfg.Audio.Enabled = false
	}
	player := audio.Open(cfg.Audio, logger)
	defer player.Close()
	silverball.SetAudio(player)

	lvls, err := loadLevels()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	session := tui.NewSessionModel(store, logger, runtimeConfig(cfg), levelChoices(lvls))
	return tui.RunSession(session)
}

// silverball is a tilt-the-board ball game for the terminal: roll the ball
// into the hole before time runs out, avoiding deadly obstacles and traps.
//
// Usage:
//
//	silverball list                  - List game modes
//	silverball levels                - List the level pack
//	silverball play <mode>           - Play a mode directly
//	silverball menu                  - Pick mode and level interactively
//	silverball sim <level>           - Run a level headless with a tilt script
//	silverball serve                 - Start SSH server for remote play
//	silverball scores <mode>         - Show totals and level bests
//
// Global flags:
//
//	--fps <rate>         - Set tick rate; game time follows it (default: from config, 50)
//	--db <path>          - Set database path (default: ~/.silverball/scores.db)
//	--config <path>      - Custom physics/gameplay config YAML
//	--difficulty <name>  - Difficulty preset: easy, normal, hard
//	--levels <dir>       - Load levels from a directory instead of the builtin pack
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Write logs to a file (interactive modes log nowhere by default)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-silverball/internal/games/silverball"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "silverball",
	Short: "Silverball - tilt the board, sink the ball",
	Long: `Silverball is a terminal tilt-maze game. Tilt the board with the
arrow keys to roll the ball into the hole before time runs out. Points
drain as time passes; deadly obstacles and traps end the run.

Available commands:
  list     - Show game modes
  levels   - Show the level pack
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  sim      - Run a level without a terminal
  serve    - Start SSH server for remote play
  scores   - View totals and level bests

Examples:
  silverball play silverball
  silverball play silverball_practice --level 3
  silverball menu --difficulty hard
  silverball sim 1 --script tilt.yaml
  silverball serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		silverball.SetConfigPath(flagConfig)
		silverball.SetDifficultyPreset(flagDifficulty)
		silverball.SetLevelsDir(flagLevelsDir)
	},
}

func init() {
	// main prints the error once
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Ticks per second; physics steps and timers follow it (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.silverball/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory of level files (YAML or XML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level pack",
	Long: `Loads and validates the level pack and prints a summary of each level.

Examples:
  silverball levels
  silverball levels --levels ./my-levels`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	lvls, err := loadLevels()
	if err != nil {
		return fmt.Errorf("load levels: %w", err)
	}

	source := "builtin"
	if flagLevelsDir != "" {
		source = flagLevelsDir
	}
	fmt.Printf("Levels (%s):\n\n", source)

	fmt.Printf("  %-3s  %-20s  %5s  %6s  %9s  %5s\n", "#", "Name", "Time", "Points", "Obstacles", "Traps")
	fmt.Printf("  %-3s  %-20s  %5s  %6s  %9s  %5s\n", "-", "----", "----", "------", "---------", "-----")
	for _, l := range lvls {
		fmt.Printf("  %-3d  %-20s  %4ds  %6d  %9d  %5d\n",
			l.Number, l.Name, l.TimeLimit, l.Points, len(l.Obstacles), len(l.Traps))
	}
	return nil
}

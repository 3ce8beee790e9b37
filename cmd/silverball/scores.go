package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-silverball/internal/registry"
	"github.com/vovakirdan/tui-silverball/internal/storage"
)

var (
	flagClear     bool
	flagAllScores bool
	flagRecent    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show totals and level bests for a mode",
	Long: `Display the top 10 campaign totals and the best run of each level.
Without a mode, print a summary of every mode that has been played.

Examples:
  silverball scores
  silverball scores silverball
  silverball scores silverball --all
  silverball scores silverball_practice --recent 5
  silverball scores silverball --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and runs for the mode")
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "List every total instead of the top 10")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 0, "Also list the last N level attempts")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}

	gameID := args[0]
	if err := checkMode(gameID); err != nil {
		return err
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}
	title := game.Title()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAllScores {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}
	bests, err := store.BestLevelRuns(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 && len(bests) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'silverball play %s' to set the first high score!\n", gameID)
		return nil
	}

	if len(scores) > 0 {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Total", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
		}
		fmt.Println()
	}

	if len(bests) > 0 {
		fmt.Printf("  %-5s  %-6s  %-5s  %-6s  %s\n", "Level", "Best", "Tries", "Clears", "Fastest")
		fmt.Printf("  %-5s  %-6s  %-5s  %-6s  %s\n", "-----", "----", "-----", "------", "-------")
		for _, b := range bests {
			fastest := "-"
			if b.Clears > 0 {
				fastest = fmt.Sprintf("%d ticks", b.FastestTicks)
			}
			fmt.Printf("  %-5d  %-6d  %-5d  %-6d  %s\n", b.Level, b.BestPoints, b.Attempts, b.Clears, fastest)
		}
		fmt.Println()
	}

	if flagRecent > 0 {
		runs, err := store.RecentLevelRuns(gameID, flagRecent)
		if err != nil {
			return err
		}
		fmt.Printf("  %-5s  %-9s  %-16s  %-6s  %s\n", "Level", "Outcome", "Reason", "Points", "Date")
		fmt.Printf("  %-5s  %-9s  %-16s  %-6s  %s\n", "-----", "-------", "------", "------", "----")
		for _, r := range runs {
			fmt.Printf("  %-5d  %-9s  %-16s  %-6d  %s\n",
				r.Level, r.Outcome, r.Reason, r.Points, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}

	if highScore, err := store.HighScore(gameID); err == nil && highScore > 0 {
		fmt.Printf("Best total: %d\n", highScore)
	}
	return nil
}

// printSummary lists one line per mode that has recorded totals.
func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-20s  %5s  %6s  %8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	fmt.Printf("  %-20s  %5s  %6s  %8s  %s\n", "----", "-----", "----", "-------", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-20s  %5d  %6d  %8.1f  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

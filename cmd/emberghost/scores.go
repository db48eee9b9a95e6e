package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emberghost/internal/storage"
)

var (
	flagShowRuns bool
	flagLimit    int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores, or the most recent runs with --runs.

Examples:
  emberghost scores
  emberghost scores --runs
  emberghost scores --limit 25 --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagShowRuns, "runs", false, "Show recent runs and totals instead of high scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rows to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagShowRuns {
		err = printRuns(store)
	} else {
		err = printHighScores(store)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printHighScores(store *storage.Store) error {
	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Ember Ghost")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'emberghost play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printRuns(store *storage.Store) error {
	runs, err := store.RecentRuns(gameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Runs - Ember Ghost")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-9s  %-8s  %-16s  %-6s  %-6s  %-6s  %s\n",
		"Outcome", "Score", "Level", "Time", "Stomps", "Embers", "Date")
	fmt.Printf("  %-9s  %-8s  %-16s  %-6s  %-6s  %-6s  %s\n",
		"-------", "-----", "-----", "----", "------", "------", "----")
	for _, r := range runs {
		level := fmt.Sprintf("%d %s", r.Level, r.LevelName)
		fmt.Printf("  %-9s  %-8d  %-16.16s  %-6s  %-6d  %-6d  %s\n",
			r.Outcome, r.Score, level, clock(r.Duration), r.Stomps, r.Embers,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Victories: %d  Best level: %d  Best: %d  Average: %.0f\n",
		stats.RunsCount, stats.Victories, stats.BestLevel, stats.HighScore, stats.AvgScore)
	return nil
}

// clock formats seconds as m:ss.
func clock(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

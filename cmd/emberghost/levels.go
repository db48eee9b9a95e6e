package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emberghost/internal/games/platformer/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "Check a level pack",
	Long: `Load every YAML and TOML level file under a directory and report
which levels are playable and which files were skipped.

The directory defaults to --levels, then ./levels.

Examples:
  emberghost levels
  emberghost levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, args []string) {
	dir := flagLevelsDir
	if len(args) == 1 {
		dir = args[0]
	}
	if dir == "" {
		dir = "levels"
	}

	lvls, skipped, err := levels.NewLoader(dir).Scan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", dir, err)
		os.Exit(1)
	}

	fmt.Printf("Levels in %s\n", dir)
	fmt.Println()

	if len(lvls) == 0 {
		fmt.Println("No playable levels found.")
	} else {
		fmt.Printf("  %-3s  %-16s  %-20s  %-9s  %-7s  %s\n", "#", "ID", "Name", "Platforms", "Enemies", "Embers")
		fmt.Printf("  %-3s  %-16s  %-20s  %-9s  %-7s  %s\n", "-", "--", "----", "---------", "-------", "------")
		for i, l := range lvls {
			fmt.Printf("  %-3d  %-16.16s  %-20.20s  %-9d  %-7d  %d\n",
				i+1, l.ID, l.Name, len(l.Platforms), l.EnemyCount, l.CollectibleCount)
		}
	}

	if len(skipped) > 0 {
		fmt.Println()
		fmt.Println("Skipped:")
		for _, fe := range skipped {
			fmt.Printf("  %s\n", fe.Error())
		}
		os.Exit(1)
	}
}

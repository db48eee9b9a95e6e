// emberghost is a terminal platformer: guide the ghost through each level,
// gather every ember and stomp the patrolling shades.
//
// Usage:
//
//	emberghost                - Start the menu
//	emberghost play           - Play directly
//	emberghost menu           - Start the menu
//	emberghost serve          - Start SSH server for remote play
//	emberghost scores         - Show high scores and recent runs
//	emberghost levels [dir]   - Check a level pack
//	emberghost list           - List registered games
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible levels
//	--db <path>          - Set database path (default: ~/.emberghost/scores.db)
//	--log-file <path>    - Write logs to a file
//	--config <path>      - Custom gameplay config YAML
//	--difficulty <name>  - Difficulty preset
//	--levels <dir>       - Load levels from a directory of YAML/TOML files
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emberghost/internal/games/platformer"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "emberghost",
	Short: "Ember Ghost - a platformer in your terminal",
	Long: `Ember Ghost is a terminal platformer. Guide the ghost across each
level, gather every ember and stomp the shades that patrol the ledges.

Available commands:
  play     - Play directly
  menu     - Interactive menu (default)
  serve    - Start SSH server for remote play
  scores   - View high scores and recent runs
  levels   - Check a level pack
  list     - Show registered games

Examples:
  emberghost
  emberghost play --level 2
  emberghost play --levels ./levels --difficulty hard
  emberghost serve --ssh :2222
  emberghost scores --runs`,
	SilenceUsage: true,
	Run:          runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.emberghost/scores.db", "Path to scores database")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of YAML/TOML level files")
	pf.BoolVar(&flagDebug, "debug", false, "Start with the debug overlay (toggle with h)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// gameID is the game every command hosts.
const gameID = platformer.GameID

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/platform/tui"
	"github.com/vovakirdan/emberghost/internal/registry"
	"github.com/vovakirdan/emberghost/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play without the menu",
	Long: `Start playing straight away.

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Jump
  P/Esc            - Pause
  R                - Restart (after game over or victory)
  1-9              - Jump to a level
  H                - Toggle debug overlay
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  emberghost play
  emberghost play --level 3
  emberghost play --difficulty hard
  emberghost play --config ./my-platformer.yaml
  emberghost play --levels ./levels --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level to start on")
}

func runPlay(_ *cobra.Command, _ []string) {
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := configureGame(logger, flagLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	opts := tui.GameOptions{
		Render: core.RenderOptions{Debug: flagDebug},
		Logger: logger,
	}
	runErr := tui.Run(game, store, runtimeConfig(), opts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

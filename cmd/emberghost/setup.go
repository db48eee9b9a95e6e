package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/emberghost/internal/config"
	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/games/platformer"
	"github.com/vovakirdan/emberghost/internal/games/platformer/levels"
)

// openLogger returns a logger writing to --log-file, or fallback when the
// flag is empty. --debug lowers the level to Debug on either writer. The
// returned closer must be called on exit.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w, closer := fallback, func() {}

	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	return newLogger(w, flagDebug), closer, nil
}

// newLogger builds the CLI logger on w.
func newLogger(w io.Writer, debug bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{ReportTimestamp: true, Prefix: "emberghost"})
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// configureGame applies the gameplay flags to the platformer package.
// It fails early on a broken config file or level pack.
func configureGame(logger *log.Logger, startLevel int) error {
	if flagConfig != "" {
		if _, err := config.LoadPlatformer(flagConfig); err != nil {
			return err
		}
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetStartLevel(startLevel)
	platformer.SetLogger(logger)

	if flagLevelsDir == "" {
		platformer.SetLevelPack(nil)
		return nil
	}

	lvls, skipped, err := levels.NewLoader(flagLevelsDir).Scan()
	if err != nil {
		return err
	}
	for _, fe := range skipped {
		logger.Warn("skipping level file", "path", fe.Path, "err", fe.Err)
	}
	if len(lvls) == 0 {
		return fmt.Errorf("no playable levels in %s", flagLevelsDir)
	}
	logger.Info("loaded level pack", "dir", flagLevelsDir, "levels", len(lvls), "skipped", len(skipped))
	platformer.SetLevelPack(levels.Specs(lvls))
	return nil
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

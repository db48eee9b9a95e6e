// Package registry holds the game factories known to the binary.
// Game packages register themselves in init(), so the platform can list and
// start modes without importing them directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/emberghost/internal/core"
)

// Game is the contract between a simulation and the terminal platform.
// Implementations hold pure logic; timing, input mapping and drawing to the
// terminal belong to the platform.
type Game interface {
	// ID returns a unique identifier used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset performs a full restart using the runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	Render(dst *core.Screen)

	// State returns score, game-over and pause flags.
	State() core.GameState
}

// OptionRenderer is implemented by games that accept per-frame render options
// such as the debug overlay.
type OptionRenderer interface {
	RenderWith(dst *core.Screen, opts core.RenderOptions)
}

// LevelJumper is implemented by games whose levels can be loaded directly
// from the host (number keys in the terminal).
type LevelJumper interface {
	LevelCount() int
	LevelName(n int) string
	LoadLevel(n int) error
}

// Resizer is implemented by games that can follow a terminal resize without
// restarting the run.
type Resizer interface {
	Resize(w, h int)
}

// RunReporter is implemented by games that can describe a run for the
// history table.
type RunReporter interface {
	RunReport() core.RunReport
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// RenderFrame draws g with opts when it supports render options and falls
// back to the plain Render otherwise.
func RenderFrame(g Game, dst *core.Screen, opts core.RenderOptions) {
	if r, ok := g.(OptionRenderer); ok {
		r.RenderWith(dst, opts)
		return
	}
	g.Render(dst)
}

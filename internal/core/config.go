package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TicksFor converts a duration in seconds into whole ticks at the configured
// rate, never returning less than one tick for a positive duration.
func (c RuntimeConfig) TicksFor(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if seconds <= 0 {
		return 0
	}
	n := int(seconds*float64(rate) + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

// RenderOptions are per-frame switches owned by the host and handed to the
// renderer. The simulation never reads them.
type RenderOptions struct {
	Debug bool // Draw hitboxes and hazard zones
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended (defeat or victory)
	Paused   bool // Whether the game is paused
}

// RunReport summarizes the current run for history records. Outcome is
// "victory", "game_over" or "" while the run is still going.
type RunReport struct {
	Level     int
	LevelName string
	Outcome   string
	Ticks     int
	Stomps    int
	Embers    int
	Deaths    int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

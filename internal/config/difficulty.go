package config

import "math"

// DifficultyManager derives enemy tuning from the difficulty level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty level (0.0 to 1.0) for the given score and
// level number. A disabled manager always reports 0.
func (d *DifficultyManager) Level(score int, levelNum int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "level":
		progress = float64(levelNum-1) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// EnemySpeed scales a level's base enemy speed.
func (d *DifficultyManager) EnemySpeed(base float64, score, levelNum int) float64 {
	return base * (1.0 + d.Level(score, levelNum)*d.cfg.Scaling.SpeedMultiplier)
}

// EnemyCount adds enemies on top of a level's base count.
func (d *DifficultyManager) EnemyCount(base int, score, levelNum int) int {
	extra := int(math.Floor(d.Level(score, levelNum) * float64(d.cfg.Scaling.ExtraEnemies)))
	return base + extra
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

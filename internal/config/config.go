// Package config provides YAML-based tuning for the platformer and the
// difficulty presets selectable from the command line.
package config

// PlatformerConfig contains every tunable of the platformer simulation.
// Distances are world units (the world is 800x600 by default); durations
// ending in _ticks are simulation ticks and _seconds are converted with the
// runtime tick rate.
type PlatformerConfig struct {
	World       WorldConfig       `yaml:"world"`
	Physics     PhysicsConfig     `yaml:"physics"`
	Player      PlayerConfig      `yaml:"player"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// WorldConfig defines the playfield size.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines player movement physics.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpForce    float64 `yaml:"jump_force"`
	MoveSpeed    float64 `yaml:"move_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PlayerConfig defines the player body and its damage windows.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	SpawnX          float64 `yaml:"spawn_x"`
	SpawnY          float64 `yaml:"spawn_y"`
	InvincibleTicks int     `yaml:"invincible_ticks"`
	DeathTicks      int     `yaml:"death_ticks"`
	Knockback       float64 `yaml:"knockback"`
}

// EnemyConfig defines enemy bodies and their patrol behavior.
type EnemyConfig struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	FallSpeed        float64 `yaml:"fall_speed"`
	DeathTicks       int     `yaml:"death_ticks"`
	SupportInset     float64 `yaml:"support_inset"`
	SupportTolerance float64 `yaml:"support_tolerance"`
	EdgeProbe        float64 `yaml:"edge_probe"`
	EdgeVertical     float64 `yaml:"edge_vertical"`
	EdgeMargin       float64 `yaml:"edge_margin"`
	MaxPatrolRange   float64 `yaml:"max_patrol_range"`
}

// CollectibleConfig defines the floating pickups.
type CollectibleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	FloatSpeed float64 `yaml:"float_speed"`
	FloatRange float64 `yaml:"float_range"`
	Padding    float64 `yaml:"padding"`
	Points     int     `yaml:"points"`
}

// ScoringConfig defines awards and penalties. Per-level values are multiplied
// by the current level number.
type ScoringConfig struct {
	StompBase          int `yaml:"stomp_base"`
	StompPerLevel      int `yaml:"stomp_per_level"`
	SideHitBase        int `yaml:"side_hit_base"`
	SideHitPerLevel    int `yaml:"side_hit_per_level"`
	ThornBase          int `yaml:"thorn_base"`
	ThornPerLevel      int `yaml:"thorn_per_level"`
	LevelBonusPerLevel int `yaml:"level_bonus_per_level"`
	MaxScore           int `yaml:"max_score"`
}

// GameplayConfig defines lives and the timing of death, respawn and level
// transitions.
type GameplayConfig struct {
	Lives                  int     `yaml:"lives"`
	DeathDelaySeconds      float64 `yaml:"death_delay_seconds"`
	RespawnDelaySeconds    float64 `yaml:"respawn_delay_seconds"`
	RespawnInvincibleTicks int     `yaml:"respawn_invincible_ticks"`
	StompBounce            float64 `yaml:"stomp_bounce"`
	StompInvincibleTicks   int     `yaml:"stomp_invincible_ticks"`
	LevelClearSeconds      float64 `yaml:"level_clear_seconds"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score or level number at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed factor at max difficulty
	ExtraEnemies    int     `yaml:"extra_enemies"`    // Enemies added per level at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string into a preset. Unknown names yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

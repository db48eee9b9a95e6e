package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the built-in tuning. It mirrors
// defaults/platformer.yaml and is used when that file cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
		},
		Physics: PhysicsConfig{
			Gravity:      0.8,
			JumpForce:    15,
			MoveSpeed:    5,
			MaxFallSpeed: 20,
		},
		Player: PlayerConfig{
			Width:           64,
			Height:          64,
			SpawnX:          100,
			SpawnY:          100,
			InvincibleTicks: 90,
			DeathTicks:      140,
			Knockback:       8,
		},
		Enemy: EnemyConfig{
			Width:            64,
			Height:           64,
			FallSpeed:        3,
			DeathTicks:       45,
			SupportInset:     10,
			SupportTolerance: 5,
			EdgeProbe:        30,
			EdgeVertical:     50,
			EdgeMargin:       20,
			MaxPatrolRange:   120,
		},
		Collectible: CollectibleConfig{
			Width:      32,
			Height:     32,
			FloatSpeed: 0.03,
			FloatRange: 15,
			Padding:    8,
			Points:     100,
		},
		Scoring: ScoringConfig{
			StompBase:          200,
			StompPerLevel:      50,
			SideHitBase:        50,
			SideHitPerLevel:    20,
			ThornBase:          50,
			ThornPerLevel:      10,
			LevelBonusPerLevel: 500,
			MaxScore:           999999,
		},
		Gameplay: GameplayConfig{
			Lives:                  3,
			DeathDelaySeconds:      1.4,
			RespawnDelaySeconds:    0.3,
			RespawnInvincibleTicks: 90,
			StompBounce:            8,
			StompInvincibleTicks:   3,
			LevelClearSeconds:      1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 3,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				ExtraEnemies:    2,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}

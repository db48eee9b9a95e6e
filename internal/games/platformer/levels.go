package platformer

// ground is the floor shared by the built-in levels.
var ground = PlatformSpec{X: 0, Y: 550, W: 800, H: 32, Kind: KindGround}

// DefaultLevels returns the built-in campaign.
func DefaultLevels() []LevelSpec {
	return []LevelSpec{
		{
			ID:               "beginner",
			Name:             "Beginner",
			Order:            1,
			EnemyCount:       2,
			EnemySpeed:       1.2,
			CollectibleCount: 5,
			Background:       "brown",
			Platforms: []PlatformSpec{
				ground,
				{X: 100, Y: 400, W: 150, H: 32},
				{X: 300, Y: 320, W: 150, H: 32},
				{X: 500, Y: 240, W: 150, H: 32},
				{X: 200, Y: 150, W: 150, H: 32},
				{X: 50, Y: 300, W: 80, H: 32},
				{X: 670, Y: 200, W: 80, H: 32},
				{X: 400, Y: 450, W: 80, H: 32},
			},
		},
		{
			ID:               "intermediate",
			Name:             "Intermediate",
			Order:            2,
			EnemyCount:       3,
			EnemySpeed:       1.5,
			CollectibleCount: 8,
			Background:       "red",
			Platforms: []PlatformSpec{
				ground,
				{X: 100, Y: 400, W: 180, H: 32, Kind: KindHanging, ChainLength: 80},
				{X: 350, Y: 350, W: 120, H: 32},
				{X: 550, Y: 280, W: 150, H: 32, Kind: KindDangerous, Thorns: true},
				{X: 200, Y: 200, W: 100, H: 32},
				{X: 450, Y: 150, W: 120, H: 32},
				{X: 650, Y: 400, W: 100, H: 32},
				{X: 50, Y: 280, W: 80, H: 32},
				{X: 600, Y: 100, W: 120, H: 32, Kind: KindDangerous, Thorns: true, ThornsBelow: true},
				{X: 300, Y: 450, W: 100, H: 32},
			},
		},
		{
			ID:               "hard",
			Name:             "Hard",
			Order:            3,
			EnemyCount:       4,
			EnemySpeed:       1.8,
			CollectibleCount: 10,
			Background:       "magenta",
			Platforms: []PlatformSpec{
				ground,
				{X: 100, Y: 450, W: 120, H: 32},
				{X: 300, Y: 400, W: 100, H: 32, Kind: KindDangerous, Thorns: true},
				{X: 500, Y: 380, W: 150, H: 32, Kind: KindHanging, ChainLength: 120},
				{X: 150, Y: 300, W: 180, H: 32},
				{X: 400, Y: 250, W: 120, H: 32, Kind: KindDangerous, Thorns: true, ThornsBelow: true},
				{X: 600, Y: 200, W: 100, H: 32},
				{X: 250, Y: 150, W: 150, H: 32},
				{X: 500, Y: 100, W: 120, H: 32},
				{X: 50, Y: 350, W: 60, H: 32},
				{X: 700, Y: 300, W: 60, H: 32},
				{X: 350, Y: 180, W: 60, H: 32},
			},
		},
	}
}

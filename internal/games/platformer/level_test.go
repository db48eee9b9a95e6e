package platformer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuildOptions() BuildOptions {
	cfg := testConfig()
	return BuildOptions{
		Enemy:          EnemyOptionsFromConfig(cfg.Enemy),
		MaxPatrolRange: cfg.Enemy.MaxPatrolRange,
		Collectible:    CollectibleOptionsFromConfig(cfg.Collectible),
	}
}

func TestDefaultLevelsBuild(t *testing.T) {
	for _, spec := range DefaultLevels() {
		t.Run(spec.ID, func(t *testing.T) {
			w, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(1))
			require.NoError(t, err)

			assert.Len(t, w.Collectibles, spec.CollectibleCount)
			assert.Len(t, w.Enemies, spec.EnemyCount)
			assert.Equal(t, KindGround, w.Platforms[0].Kind)
			assert.False(t, w.Cleared())

			for _, e := range w.Enemies {
				assert.InDelta(t, spec.EnemySpeed, e.Speed(), 1e-9)
				assert.LessOrEqual(t, e.MaxX()-e.MinX(), 2*testConfig().Enemy.MaxPatrolRange+1e-9)
			}
		})
	}
}

func TestCollectiblePlacementRoundRobin(t *testing.T) {
	spec := DefaultLevels()[0]
	w, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(1))
	require.NoError(t, err)

	// Seven safe platforms and five embers: one section each, centered.
	first := w.Collectibles[0]
	assert.InDelta(t, 100+75-16.0, first.X, 1e-9)
	assert.InDelta(t, 400-40.0, first.BaseY, 1e-9)

	second := w.Collectibles[1]
	assert.InDelta(t, 300+75-16.0, second.X, 1e-9)
	assert.InDelta(t, 320-40.0, second.BaseY, 1e-9)
}

func TestEnemyPlacementSkipsUnsafePlatforms(t *testing.T) {
	spec := LevelSpec{
		Name:             "placement",
		EnemyCount:       4,
		EnemySpeed:       1,
		CollectibleCount: 1,
		Platforms: []PlatformSpec{
			{X: 0, Y: 550, W: 800, Kind: KindGround},
			{X: 100, Y: 400, W: 80},
			{X: 300, Y: 400, W: 150, Thorns: true},
			{X: 500, Y: 400, W: 150, Kind: KindHanging, ChainLength: 200},
			{X: 200, Y: 250, W: 200},
		},
	}

	w, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(3))
	require.NoError(t, err)
	require.Len(t, w.Enemies, 4)

	// Only the last platform qualifies, so all four share it in sections.
	for i, e := range w.Enemies {
		assert.InDelta(t, 250-64.0, e.Y, 1e-9)
		assert.InDelta(t, 200+float64(i+1)*40, e.X, 1e-9)
	}
}

func TestLevelWithoutEnemyHostsHasNoEnemies(t *testing.T) {
	spec := LevelSpec{
		Name:             "narrow",
		EnemyCount:       3,
		CollectibleCount: 2,
		Platforms:        []PlatformSpec{{X: 100, Y: 400, W: 60}},
	}
	w, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(1))
	require.NoError(t, err)
	assert.Empty(t, w.Enemies)
	assert.Len(t, w.Collectibles, 2)
}

func TestLevelValidate(t *testing.T) {
	tests := []struct {
		name string
		spec LevelSpec
	}{
		{"no platforms", LevelSpec{CollectibleCount: 1}},
		{"no collectibles", LevelSpec{Platforms: []PlatformSpec{{W: 100}}}},
		{"only thorns", LevelSpec{CollectibleCount: 1, Platforms: []PlatformSpec{{W: 100, Thorns: true}}}},
		{"only ground", LevelSpec{CollectibleCount: 1, Platforms: []PlatformSpec{{W: 100, Kind: KindGround}}}},
		{"bad width", LevelSpec{CollectibleCount: 1, Platforms: []PlatformSpec{{W: -5}}}},
		{"negative enemies", LevelSpec{CollectibleCount: 1, EnemyCount: -1, Platforms: []PlatformSpec{{W: 100}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			assert.ErrorIs(t, err, ErrInvalidLevel)
		})
	}
}

func TestBuildLevelIsDeterministic(t *testing.T) {
	spec := DefaultLevels()[2]
	a, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(99))
	require.NoError(t, err)
	b, err := BuildLevel(spec, testBuildOptions(), NewSimpleRNG(99))
	require.NoError(t, err)

	for i := range a.Collectibles {
		assert.InDelta(t, a.Collectibles[i].Phase(), b.Collectibles[i].Phase(), 0)
	}
	for i := range a.Enemies {
		assert.Equal(t, a.Enemies[i].Direction, b.Enemies[i].Direction)
	}
}

func TestPurgeEnemies(t *testing.T) {
	w := &World{}
	for i := range 3 {
		e, err := NewEnemy(float64(i*100), 0, EnemyOptions{})
		require.NoError(t, err)
		w.Enemies = append(w.Enemies, e)
	}
	w.Enemies[1].Alive = false
	w.Enemies[2].TakeDamage()

	w.PurgeEnemies()
	assert.Len(t, w.Enemies, 2, "dying enemies stay until their animation ends")
}

func TestSimpleRNGRanges(t *testing.T) {
	r := NewSimpleRNG(0)
	for range 1000 {
		f := r.Float64()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
		n := r.Intn(3)
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 3)
	}
	assert.Zero(t, r.Intn(0))
}

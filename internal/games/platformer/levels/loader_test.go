package levels_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/emberghost/internal/config"
	"github.com/vovakirdan/emberghost/internal/games/platformer"
	"github.com/vovakirdan/emberghost/internal/games/platformer/levels"
	"github.com/vovakirdan/emberghost/internal/games/platformer/levels/formats"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, lvls, 2, "broken and typo files are skipped")

	// Sorted by order, not by file name.
	assert.Equal(t, "beta", lvls[0].ID)
	assert.Equal(t, "alpha", lvls[1].ID)
}

func TestLoaderScanReportsSkippedFiles(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, skipped, err := loader.Scan()
	require.NoError(t, err)
	require.Len(t, skipped, 2)

	names := []string{filepath.Base(skipped[0].Path), filepath.Base(skipped[1].Path)}
	assert.ElementsMatch(t, []string{"broken.yaml", "typo.yaml"}, names)

	for _, fe := range skipped {
		if filepath.Base(fe.Path) == "broken.yaml" {
			assert.ErrorIs(t, fe, platformer.ErrInvalidLevel)
		}
	}
}

func TestLoaderYAMLLevel(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("alpha")
	require.NoError(t, err)

	assert.Equal(t, "Alpha Ridge", lvl.Name)
	assert.Equal(t, 1, lvl.EnemyCount)
	assert.InDelta(t, 1.4, lvl.EnemySpeed, 1e-9)
	assert.Equal(t, 3, lvl.CollectibleCount)
	require.Len(t, lvl.Platforms, 4)

	assert.Equal(t, platformer.KindGround, lvl.Platforms[0].Kind)
	assert.Equal(t, platformer.KindHanging, lvl.Platforms[2].Kind)
	assert.InDelta(t, 90.0, lvl.Platforms[2].ChainLength, 1e-9)
	assert.True(t, lvl.Platforms[3].Thorns)
	assert.False(t, lvl.Platforms[3].ThornsBelow)
	assert.Equal(t, filepath.Join(getTestdataPath(), "alpha.yaml"), lvl.FilePath)
}

func TestLoaderTOMLLevel(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByID("beta")
	require.NoError(t, err)

	assert.Equal(t, "Beta Chains", lvl.Name)
	assert.Equal(t, 2, lvl.EnemyCount)
	require.Len(t, lvl.Platforms, 3)
	assert.True(t, lvl.Platforms[2].Thorns)
	assert.True(t, lvl.Platforms[2].ThornsBelow)
	assert.Equal(t, 2, lvl.Platforms[2].Damage)
}

func TestLoaderLoadByIDMissing(t *testing.T) {
	_, err := levels.NewLoader(getTestdataPath()).LoadByID("nope")
	assert.Error(t, err)
}

func TestLoaderListIDs(t *testing.T) {
	ids, err := levels.NewLoader(getTestdataPath()).ListIDs()
	require.NoError(t, err)
	assert.Equal(t, []string{"beta", "alpha"}, ids)
}

func TestLoadedLevelsBuild(t *testing.T) {
	lvls, err := levels.NewLoader(getTestdataPath()).LoadAll()
	require.NoError(t, err)

	cfg := config.DefaultPlatformerConfig()
	opts := platformer.BuildOptions{
		Enemy:          platformer.EnemyOptionsFromConfig(cfg.Enemy),
		MaxPatrolRange: cfg.Enemy.MaxPatrolRange,
		Collectible:    platformer.CollectibleOptionsFromConfig(cfg.Collectible),
	}
	for _, spec := range levels.Specs(lvls) {
		w, err := platformer.BuildLevel(spec, opts, platformer.NewSimpleRNG(1))
		require.NoError(t, err, spec.ID)
		assert.Len(t, w.Collectibles, spec.CollectibleCount)
		assert.Len(t, w.Enemies, spec.EnemyCount)
	}
}

func TestFormatsRoundTripDefaultLevels(t *testing.T) {
	for _, spec := range platformer.DefaultLevels() {
		y, err := formats.MarshalYAML(spec)
		require.NoError(t, err)
		fromYAML, err := formats.ParseYAML(y)
		require.NoError(t, err)
		assert.Equal(t, spec, fromYAML)

		tm, err := formats.MarshalTOML(spec)
		require.NoError(t, err)
		fromTOML, err := formats.ParseTOML(tm)
		require.NoError(t, err)
		assert.Equal(t, spec, fromTOML)
	}
}

func TestParseRejectsBadThorns(t *testing.T) {
	_, err := formats.ParseYAML([]byte("platforms:\n  - {x: 0, y: 0, w: 10, thorns: sideways}\n"))
	assert.Error(t, err)

	_, err = formats.ParseTOML([]byte("[[platforms]]\nx = 0\ny = 0\nw = 10\nkind = \"lava\"\n"))
	assert.Error(t, err)
}

func TestParseTOMLRejectsUnknownKeys(t *testing.T) {
	_, err := formats.ParseTOML([]byte("collectibels = 3\n"))
	assert.ErrorContains(t, err, "collectibels")
}

// Package formats provides the level file parsers. Every format decodes
// into the same file structure, which is then converted to a level spec.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/emberghost/internal/games/platformer"
)

// FileLevel is the on-disk shape of a level, shared by all formats.
type FileLevel struct {
	ID           string         `yaml:"id" toml:"id"`
	Name         string         `yaml:"name" toml:"name"`
	Order        int            `yaml:"order" toml:"order"`
	Background   string         `yaml:"background,omitempty" toml:"background,omitempty"`
	Enemies      FileEnemies    `yaml:"enemies" toml:"enemies"`
	Collectibles int            `yaml:"collectibles" toml:"collectibles"`
	Platforms    []FilePlatform `yaml:"platforms" toml:"platforms"`
}

// FileEnemies configures enemy placement.
type FileEnemies struct {
	Count int     `yaml:"count" toml:"count"`
	Speed float64 `yaml:"speed" toml:"speed"`
}

// FilePlatform is one platform entry.
type FilePlatform struct {
	X      float64 `yaml:"x" toml:"x"`
	Y      float64 `yaml:"y" toml:"y"`
	W      float64 `yaml:"w" toml:"w"`
	H      float64 `yaml:"h,omitempty" toml:"h,omitempty"`
	Kind   string  `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Thorns string  `yaml:"thorns,omitempty" toml:"thorns,omitempty"` // "", "top" or "bottom"
	Damage int     `yaml:"damage,omitempty" toml:"damage,omitempty"`
	Chain  float64 `yaml:"chain,omitempty" toml:"chain,omitempty"`
}

// Spec converts the file level into a level spec.
func (fl FileLevel) Spec() (platformer.LevelSpec, error) {
	spec := platformer.LevelSpec{
		ID:               fl.ID,
		Name:             fl.Name,
		Order:            fl.Order,
		EnemyCount:       fl.Enemies.Count,
		EnemySpeed:       fl.Enemies.Speed,
		CollectibleCount: fl.Collectibles,
		Background:       fl.Background,
		Platforms:        make([]platformer.PlatformSpec, 0, len(fl.Platforms)),
	}

	for i, fp := range fl.Platforms {
		kind, err := platformer.ParsePlatformKind(fp.Kind)
		if err != nil {
			return platformer.LevelSpec{}, fmt.Errorf("platform %d: %w", i, err)
		}

		ps := platformer.PlatformSpec{
			X:           fp.X,
			Y:           fp.Y,
			W:           fp.W,
			H:           fp.H,
			Kind:        kind,
			Damage:      fp.Damage,
			ChainLength: fp.Chain,
		}
		switch strings.ToLower(fp.Thorns) {
		case "":
		case "top":
			ps.Thorns = true
		case "bottom":
			ps.Thorns = true
			ps.ThornsBelow = true
		default:
			return platformer.LevelSpec{}, fmt.Errorf("platform %d: thorns must be top or bottom, got %q", i, fp.Thorns)
		}
		spec.Platforms = append(spec.Platforms, ps)
	}

	return spec, nil
}

// FromSpec converts a level spec back into its file shape.
func FromSpec(spec platformer.LevelSpec) FileLevel {
	fl := FileLevel{
		ID:           spec.ID,
		Name:         spec.Name,
		Order:        spec.Order,
		Background:   spec.Background,
		Enemies:      FileEnemies{Count: spec.EnemyCount, Speed: spec.EnemySpeed},
		Collectibles: spec.CollectibleCount,
	}
	for _, ps := range spec.Platforms {
		fp := FilePlatform{X: ps.X, Y: ps.Y, W: ps.W, H: ps.H, Damage: ps.Damage, Chain: ps.ChainLength}
		if ps.Kind != platformer.KindNormal {
			fp.Kind = ps.Kind.String()
		}
		if ps.Thorns {
			fp.Thorns = "top"
			if ps.ThornsBelow {
				fp.Thorns = "bottom"
			}
		}
		fl.Platforms = append(fl.Platforms, fp)
	}
	return fl
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

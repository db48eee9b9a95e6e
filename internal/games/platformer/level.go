package platformer

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidLevel is wrapped by level validation failures.
	ErrInvalidLevel = errors.New("invalid level")
	// ErrUnknownLevel is returned when a level number is outside the pack.
	ErrUnknownLevel = errors.New("unknown level")
)

// Placement offsets relative to the host platform's top.
const (
	collectibleLift  = 40.0 // Collectibles rest this far above their platform
	maxHangingChain  = 150  // Hanging platforms on longer chains get no enemies
	minEnemyPlatform = 100  // Narrower platforms get no enemies
	patrolShare      = 0.6  // Share of a section an enemy patrols
)

// PlatformSpec describes one platform of a level.
type PlatformSpec struct {
	X, Y, W, H  float64
	Kind        PlatformKind
	Thorns      bool
	ThornsBelow bool
	Damage      int
	ChainLength float64
}

// Build converts the spec into a platform.
func (s PlatformSpec) Build() (Platform, error) {
	return NewPlatform(s.X, s.Y, s.W, s.H, PlatformOptions{
		Kind:        s.Kind,
		Thorns:      s.Thorns,
		ThornsBelow: s.ThornsBelow,
		Damage:      s.Damage,
		ChainLength: s.ChainLength,
	})
}

// LevelSpec is the static description of a level. Enemies and collectibles
// are placed on the platforms when the level is built.
type LevelSpec struct {
	ID               string
	Name             string
	Order            int
	EnemyCount       int
	EnemySpeed       float64
	CollectibleCount int
	Background       string // Color name, see core.ParseColor
	Platforms        []PlatformSpec
}

// Validate checks that the level can be built and completed.
func (s LevelSpec) Validate() error {
	switch {
	case len(s.Platforms) == 0:
		return fmt.Errorf("%w: %s has no platforms", ErrInvalidLevel, s.label())
	case s.CollectibleCount <= 0:
		return fmt.Errorf("%w: %s needs at least one collectible", ErrInvalidLevel, s.label())
	case s.EnemyCount < 0:
		return fmt.Errorf("%w: %s has a negative enemy count", ErrInvalidLevel, s.label())
	case s.EnemySpeed < 0:
		return fmt.Errorf("%w: %s has a negative enemy speed", ErrInvalidLevel, s.label())
	}

	safe := 0
	for i, ps := range s.Platforms {
		p, err := ps.Build()
		if err != nil {
			return fmt.Errorf("%w: %s platform %d: %w", ErrInvalidLevel, s.label(), i, err)
		}
		if collectibleHost(p) {
			safe++
		}
	}
	if safe == 0 {
		return fmt.Errorf("%w: %s has no platform that can hold collectibles", ErrInvalidLevel, s.label())
	}
	return nil
}

func (s LevelSpec) label() string {
	if s.Name != "" {
		return fmt.Sprintf("level %q", s.Name)
	}
	if s.ID != "" {
		return fmt.Sprintf("level %q", s.ID)
	}
	return "level"
}

// BuildOptions carry the entity tuning used while populating a level.
type BuildOptions struct {
	Enemy          EnemyOptions
	MaxPatrolRange float64
	Collectible    CollectibleOptions
}

// World is a built level: its platforms and the live entities on them.
type World struct {
	Spec         LevelSpec
	Platforms    []Platform
	Enemies      []*Enemy
	Collectibles []*Collectible
}

// BuildLevel validates spec and populates it. Collectibles are spread over
// platforms without thorns, enemies over wide safe platforms, both round
// robin in platform order. rng only decides float phases and initial
// enemy directions.
func BuildLevel(spec LevelSpec, opts BuildOptions, rng *SimpleRNG) (*World, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	w := &World{Spec: spec, Platforms: make([]Platform, 0, len(spec.Platforms))}
	for _, ps := range spec.Platforms {
		p, err := ps.Build()
		if err != nil {
			return nil, err
		}
		w.Platforms = append(w.Platforms, p)
	}

	if err := w.placeCollectibles(spec.CollectibleCount, opts.Collectible, rng); err != nil {
		return nil, err
	}
	if err := w.placeEnemies(spec.EnemyCount, spec.EnemySpeed, opts, rng); err != nil {
		return nil, err
	}
	return w, nil
}

func collectibleHost(p Platform) bool {
	return !p.HasThorns && p.Kind != KindGround
}

func enemyHost(p Platform) bool {
	if p.Kind == KindGround || p.HasThorns || p.W < minEnemyPlatform {
		return false
	}
	return p.Kind != KindHanging || p.ChainLength <= maxHangingChain
}

func hosts(platforms []Platform, keep func(Platform) bool) []Platform {
	var out []Platform
	for _, p := range platforms {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// slot returns the x offset of the i-th of count items spread round robin
// over n hosts, and the width of the host's sections.
func slot(host Platform, i, count, n int) (x, sectionW float64) {
	sections := int(math.Ceil(float64(count) / float64(n)))
	sectionW = host.W / float64(sections+1)
	section := i / n
	return host.X + float64(section+1)*sectionW, sectionW
}

func (w *World) placeCollectibles(count int, opts CollectibleOptions, rng *SimpleRNG) error {
	safe := hosts(w.Platforms, collectibleHost)
	if len(safe) == 0 {
		return fmt.Errorf("%w: no platform can hold collectibles", ErrInvalidLevel)
	}

	for i := range count {
		host := safe[i%len(safe)]
		x, _ := slot(host, i, count, len(safe))

		o := opts
		o.Float.Phase = rng.Float64() * 2 * math.Pi
		c, err := NewCollectible(x-opts.Width/2, host.Y-collectibleLift, o)
		if err != nil {
			return err
		}
		w.Collectibles = append(w.Collectibles, c)
	}
	return nil
}

func (w *World) placeEnemies(count int, speed float64, opts BuildOptions, rng *SimpleRNG) error {
	suitable := hosts(w.Platforms, enemyHost)
	if len(suitable) == 0 {
		return nil
	}

	for i := range count {
		host := suitable[i%len(suitable)]
		x, sectionW := slot(host, i, count, len(suitable))

		o := opts.Enemy
		o.Speed = speed
		o.PatrolRange = sectionW * patrolShare
		if opts.MaxPatrolRange > 0 {
			o.PatrolRange = math.Min(o.PatrolRange, opts.MaxPatrolRange)
		}
		center := x
		o.PatrolCenter = &center
		o.Direction = 1
		if rng.Intn(2) == 0 {
			o.Direction = -1
		}

		height := o.Height
		if height == 0 {
			height = o.withDefaults(x).Height
		}
		e, err := NewEnemy(x, host.Y-height, o)
		if err != nil {
			return err
		}
		w.Enemies = append(w.Enemies, e)
	}
	return nil
}

// Remaining returns the number of uncollected collectibles.
func (w *World) Remaining() int {
	n := 0
	for _, c := range w.Collectibles {
		if !c.Collected {
			n++
		}
	}
	return n
}

// Collected returns the number of collected collectibles.
func (w *World) Collected() int {
	return len(w.Collectibles) - w.Remaining()
}

// Cleared reports whether every collectible has been collected.
func (w *World) Cleared() bool {
	return len(w.Collectibles) > 0 && w.Remaining() == 0
}

// PurgeEnemies drops enemies that finished dying or fell out of the world.
func (w *World) PurgeEnemies() {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !e.Removed() {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
}

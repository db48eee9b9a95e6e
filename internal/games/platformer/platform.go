package platformer

import (
	"fmt"
	"strings"
)

// Platform defaults.
const (
	DefaultPlatformHeight = 32.0
	DefaultChainLength    = 50.0
)

// PlatformKind classifies a platform. Kind only changes how a platform is
// drawn and where entities are placed; thorns are governed by HasThorns.
type PlatformKind int

const (
	KindNormal PlatformKind = iota
	KindGround
	KindHanging
	KindDangerous
)

var kindNames = map[PlatformKind]string{
	KindNormal:    "normal",
	KindGround:    "ground",
	KindHanging:   "hanging",
	KindDangerous: "dangerous",
}

// String returns the lowercase name used in level files.
func (k PlatformKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParsePlatformKind converts a level-file name into a kind.
// An empty name is a normal platform.
func ParsePlatformKind(name string) (PlatformKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return KindNormal, nil
	}
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return KindNormal, fmt.Errorf("unknown platform kind %q", name)
}

// Platform is a static rectangle entities stand on. Platforms never move
// after construction.
type Platform struct {
	X, Y, W, H  float64
	Kind        PlatformKind
	HasThorns   bool
	ThornsOnTop bool
	Damage      int
	ChainLength float64 // Only meaningful for hanging platforms
}

// PlatformOptions are the optional properties of a platform. The zero value
// is a plain platform of default height.
type PlatformOptions struct {
	Kind        PlatformKind
	Thorns      bool
	ThornsBelow bool    // Thorns hang under the platform instead of on top
	Damage      int     // 0 means 1 for thorny platforms
	ChainLength float64 // 0 means DefaultChainLength for hanging platforms
}

// NewPlatform builds a platform at (x, y). A zero height means
// DefaultPlatformHeight.
func NewPlatform(x, y, w, h float64, opts PlatformOptions) (Platform, error) {
	if h == 0 {
		h = DefaultPlatformHeight
	}
	if w <= 0 || h < 0 {
		return Platform{}, fmt.Errorf("platform at (%.0f,%.0f): %w", x, y, ErrInvalidSize)
	}

	p := Platform{
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		Kind:        opts.Kind,
		HasThorns:   opts.Thorns,
		ThornsOnTop: !opts.ThornsBelow,
		Damage:      opts.Damage,
	}
	if p.HasThorns && p.Damage <= 0 {
		p.Damage = 1
	}
	if p.Kind == KindHanging {
		p.ChainLength = opts.ChainLength
		if p.ChainLength <= 0 {
			p.ChainLength = DefaultChainLength
		}
	}
	return p, nil
}

// Bounds returns the platform rectangle.
func (p Platform) Bounds() Box {
	return Box{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

// Top returns the walking surface height.
func (p Platform) Top() float64 { return p.Y }

package platformer

import (
	"math"

	"github.com/vovakirdan/emberghost/internal/config"
)

const (
	emberFrameTicks = 12
	emberFrames     = 4
)

// FloatParams describe the vertical bobbing of a collectible.
type FloatParams struct {
	Phase     float64 // Radians
	Speed     float64 // Radians per tick
	Amplitude float64 // World units
}

// CollectibleOptions configure a collectible.
type CollectibleOptions struct {
	Width, Height float64
	Float         FloatParams
	Padding       float64 // The collectible box shrinks by this for pickup tests
	Points        int
}

// CollectibleOptionsFromConfig returns options from the config with a zero
// float phase.
func CollectibleOptionsFromConfig(cfg config.CollectibleConfig) CollectibleOptions {
	return CollectibleOptions{
		Width:  cfg.Width,
		Height: cfg.Height,
		Float: FloatParams{
			Speed:     cfg.FloatSpeed,
			Amplitude: cfg.FloatRange,
		},
		Padding: cfg.Padding,
		Points:  cfg.Points,
	}
}

// Collectible is a floating ember. It bobs around its spawn height until
// the player touches it.
type Collectible struct {
	X, Y      float64
	BaseY     float64
	Collected bool
	AnimFrame int
	animTicks int

	opts CollectibleOptions
}

// NewCollectible places a collectible with its resting top-left at (x, y).
func NewCollectible(x, y float64, opts CollectibleOptions) (*Collectible, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, ErrInvalidSize
	}
	return &Collectible{X: x, Y: y, BaseY: y, opts: opts}, nil
}

// Bounds returns the current rectangle.
func (c *Collectible) Bounds() Box {
	return Box{X: c.X, Y: c.Y, W: c.opts.Width, H: c.opts.Height}
}

// Phase returns the current float phase.
func (c *Collectible) Phase() float64 { return c.opts.Float.Phase }

// Update advances the float animation. Collected items stay still.
func (c *Collectible) Update() {
	if c.Collected {
		return
	}
	c.animTicks++
	c.AnimFrame = (c.animTicks / emberFrameTicks) % emberFrames

	c.opts.Float.Phase += c.opts.Float.Speed
	c.Y = c.BaseY + math.Sin(c.opts.Float.Phase)*c.opts.Float.Amplitude
}

// Touches reports whether body overlaps the collectible's padded box.
// Collected items touch nothing.
func (c *Collectible) Touches(body Box) bool {
	if c.Collected {
		return false
	}
	pad := c.opts.Padding
	return Overlaps(body, c.Bounds().Inset(pad, pad))
}

// Collect marks the item collected and returns its points. Later calls
// return 0.
func (c *Collectible) Collect() int {
	if c.Collected {
		return 0
	}
	c.Collected = true
	return c.opts.Points
}

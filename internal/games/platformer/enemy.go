package platformer

import (
	"math"

	"github.com/vovakirdan/emberghost/internal/config"
)

const (
	enemyFrameTicks = 15
	enemyFrames     = 6
	defaultSpeed    = 1.5
	defaultRange    = 100.0
)

// EnemyOptions configure one enemy. Zero values take the defaults noted on
// each field.
type EnemyOptions struct {
	Width, Height float64  // 0 means 64
	Speed         float64  // 0 means 1.5
	Direction     int      // -1 or +1; 0 means +1
	PatrolRange   float64  // Half-width of the patrol interval; 0 means 100
	PatrolCenter  *float64 // nil means the spawn x

	FallSpeed        float64 // Units per tick while unsupported
	DeathTicks       int     // Length of the death animation
	SupportInset     float64
	SupportTolerance float64
	EdgeProbe        float64 // How far ahead the edge probe looks
	EdgeVertical     float64 // Max height difference for a platform ahead
	EdgeMargin       float64 // Distance to the patrol bound that allows an early turn
}

// EnemyOptionsFromConfig returns options carrying the config's shared enemy
// tuning. Per-enemy fields are left zero.
func EnemyOptionsFromConfig(cfg config.EnemyConfig) EnemyOptions {
	return EnemyOptions{
		Width:            cfg.Width,
		Height:           cfg.Height,
		FallSpeed:        cfg.FallSpeed,
		DeathTicks:       cfg.DeathTicks,
		SupportInset:     cfg.SupportInset,
		SupportTolerance: cfg.SupportTolerance,
		EdgeProbe:        cfg.EdgeProbe,
		EdgeVertical:     cfg.EdgeVertical,
		EdgeMargin:       cfg.EdgeMargin,
	}
}

func (o EnemyOptions) withDefaults(x float64) EnemyOptions {
	base := EnemyOptionsFromConfig(config.DefaultPlatformerConfig().Enemy)
	if o.Width == 0 {
		o.Width = base.Width
	}
	if o.Height == 0 {
		o.Height = base.Height
	}
	if o.Speed == 0 {
		o.Speed = defaultSpeed
	}
	if o.Direction >= 0 {
		o.Direction = 1
	} else {
		o.Direction = -1
	}
	if o.PatrolRange == 0 {
		o.PatrolRange = defaultRange
	}
	center := x
	if o.PatrolCenter != nil {
		center = *o.PatrolCenter
	}
	o.PatrolCenter = &center
	if o.FallSpeed == 0 {
		o.FallSpeed = base.FallSpeed
	}
	if o.DeathTicks == 0 {
		o.DeathTicks = base.DeathTicks
	}
	if o.SupportInset == 0 {
		o.SupportInset = base.SupportInset
	}
	if o.SupportTolerance == 0 {
		o.SupportTolerance = base.SupportTolerance
	}
	if o.EdgeProbe == 0 {
		o.EdgeProbe = base.EdgeProbe
	}
	if o.EdgeVertical == 0 {
		o.EdgeVertical = base.EdgeVertical
	}
	if o.EdgeMargin == 0 {
		o.EdgeMargin = base.EdgeMargin
	}
	return o
}

// Enemy is a patrolling hazard. It walks back and forth inside
// [PatrolCenter-PatrolRange, PatrolCenter+PatrolRange], turns at platform
// edges and falls when nothing supports it.
type Enemy struct {
	X, Y      float64
	VX        float64
	Direction int

	Alive      bool
	Dying      bool
	Fell       bool // Left the world by falling
	DeathTicks int
	AnimFrame  int
	animTicks  int

	opts EnemyOptions
}

// NewEnemy creates an enemy at (x, y). The spawn x is clamped into the
// patrol interval.
func NewEnemy(x, y float64, opts EnemyOptions) (*Enemy, error) {
	opts = opts.withDefaults(x)
	if opts.Width <= 0 || opts.Height <= 0 || opts.PatrolRange < 0 {
		return nil, ErrInvalidSize
	}
	e := &Enemy{
		X:         x,
		Y:         y,
		Direction: opts.Direction,
		Alive:     true,
		opts:      opts,
	}
	e.X = math.Max(e.MinX(), math.Min(e.MaxX(), e.X))
	return e, nil
}

// Width returns the body width.
func (e *Enemy) Width() float64 { return e.opts.Width }

// Height returns the body height.
func (e *Enemy) Height() float64 { return e.opts.Height }

// Speed returns the patrol speed.
func (e *Enemy) Speed() float64 { return e.opts.Speed }

// Center returns the middle of the patrol interval.
func (e *Enemy) Center() float64 { return *e.opts.PatrolCenter }

// MinX returns the left patrol bound.
func (e *Enemy) MinX() float64 { return e.Center() - e.opts.PatrolRange }

// MaxX returns the right patrol bound.
func (e *Enemy) MaxX() float64 { return e.Center() + e.opts.PatrolRange }

// Bounds returns the body rectangle.
func (e *Enemy) Bounds() Box {
	return Box{X: e.X, Y: e.Y, W: e.opts.Width, H: e.opts.Height}
}

// Removed reports whether the enemy is gone for good and can be purged.
func (e *Enemy) Removed() bool { return !e.Alive && !e.Dying }

// Active reports whether the enemy can still hurt or be stomped.
func (e *Enemy) Active() bool { return e.Alive && !e.Dying }

// Update advances the enemy one tick.
func (e *Enemy) Update(platforms []Platform, worldH float64) {
	if !e.Alive {
		return
	}
	if e.Dying {
		e.DeathTicks++
		if e.DeathTicks >= e.opts.DeathTicks {
			e.Dying = false
			e.Alive = false
		}
		return
	}

	e.patrol()

	e.animTicks++
	e.AnimFrame = (e.animTicks / enemyFrameTicks) % enemyFrames

	if !e.settle(platforms, worldH) {
		return
	}
	e.checkEdge(platforms)
}

func (e *Enemy) patrol() {
	e.VX = float64(e.Direction) * e.opts.Speed
	e.X += e.VX

	switch {
	case e.X >= e.MaxX():
		e.X = e.MaxX()
		e.Direction = -1
	case e.X <= e.MinX():
		e.X = e.MinX()
		e.Direction = 1
	}
}

// settle snaps the enemy onto a supporting platform or lets it fall.
// It returns false once the enemy has fallen out of the world.
func (e *Enemy) settle(platforms []Platform, worldH float64) bool {
	body := e.Bounds()
	for i := range platforms {
		if IsSupported(body, platforms[i].Bounds(), e.opts.SupportInset, e.opts.SupportTolerance) {
			e.Y = platforms[i].Y - e.opts.Height
			return true
		}
	}

	e.Y += e.opts.FallSpeed
	if e.Y > worldH {
		e.Alive = false
		e.Fell = true
		return false
	}
	return true
}

// checkEdge turns the enemy around when no platform continues ahead and a
// patrol bound is close anyway.
func (e *Enemy) checkEdge(platforms []Platform) {
	probeX := e.X - e.opts.EdgeProbe
	if e.Direction > 0 {
		probeX = e.X + e.opts.Width + e.opts.EdgeProbe
	}
	feet := e.Y + e.opts.Height

	for _, p := range platforms {
		if probeX > p.X && probeX < p.X+p.W && math.Abs(feet-p.Y) < e.opts.EdgeVertical {
			return
		}
	}

	dist := e.X - e.MinX()
	if e.Direction > 0 {
		dist = e.MaxX() - e.X
	}
	if dist < e.opts.EdgeMargin {
		e.Direction = -e.Direction
	}
}

// TakeDamage starts the death sequence. It returns false when the enemy is
// already dying or dead.
func (e *Enemy) TakeDamage() bool {
	if !e.Active() {
		return false
	}
	e.Dying = true
	e.DeathTicks = 0
	e.VX = 0
	return true
}

// StompedBy reports whether p is landing on top of the enemy: both active,
// p falling, the spans overlapping with a stompInset on each side and p's
// feet within stompBand below the enemy's top.
func (e *Enemy) StompedBy(p *Player) bool {
	if !e.Active() || !p.Alive || p.Dying {
		return false
	}
	if p.VY <= 0 {
		return false
	}
	pb, eb := p.Bounds(), e.Bounds()
	if pb.Right()-stompInset <= eb.X+stompInset || pb.X+stompInset >= eb.Right()-stompInset {
		return false
	}
	feet := pb.Bottom()
	return feet >= eb.Y && feet <= eb.Y+stompBand
}

// SideHit reports whether p touches the enemy in any way other than a stomp.
// Both boxes shrink by sideHitPadding first.
func (e *Enemy) SideHit(p *Player) bool {
	if !e.Active() || !p.Alive || p.Dying {
		return false
	}
	if e.StompedBy(p) {
		return false
	}
	return OverlapsPadded(p.Bounds(), e.Bounds(), sideHitPadding)
}

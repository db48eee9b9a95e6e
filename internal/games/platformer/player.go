package platformer

import (
	"github.com/vovakirdan/emberghost/internal/config"
	"github.com/vovakirdan/emberghost/internal/core"
)

// Facing is the direction the player last moved in.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// AnimState is the player's animation state.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalking
	AnimJumping
	AnimFalling
	AnimDeath
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalking:
		return "walking"
	case AnimJumping:
		return "jumping"
	case AnimFalling:
		return "falling"
	case AnimDeath:
		return "death"
	default:
		return "unknown"
	}
}

// Animation pacing in ticks per frame.
const (
	idleFrameTicks  = 15
	idleFrames      = 4
	walkFrameTicks  = 8
	walkFrames      = 3
	deathFrameTicks = 20
	deathLastFrame  = 6
)

// PlayerTuning holds the physics and timing of the player body.
type PlayerTuning struct {
	Width, Height   float64
	MoveSpeed       float64
	JumpForce       float64
	Gravity         float64
	MaxFallSpeed    float64
	Knockback       float64
	InvincibleTicks int
	DeathTicks      int
}

// DefaultPlayerTuning returns the tuning of the built-in config.
func DefaultPlayerTuning() PlayerTuning {
	return PlayerTuningFromConfig(config.DefaultPlatformerConfig())
}

// PlayerTuningFromConfig extracts the player tuning from a config.
func PlayerTuningFromConfig(cfg config.PlatformerConfig) PlayerTuning {
	return PlayerTuning{
		Width:           cfg.Player.Width,
		Height:          cfg.Player.Height,
		MoveSpeed:       cfg.Physics.MoveSpeed,
		JumpForce:       cfg.Physics.JumpForce,
		Gravity:         cfg.Physics.Gravity,
		MaxFallSpeed:    cfg.Physics.MaxFallSpeed,
		Knockback:       cfg.Player.Knockback,
		InvincibleTicks: cfg.Player.InvincibleTicks,
		DeathTicks:      cfg.Player.DeathTicks,
	}
}

// Intent is the per-tick input the player body reacts to.
type Intent struct {
	Left, Right bool
	Jump        bool
	Pause       bool
}

// IntentFromFrame reads an intent out of a platform input frame.
func IntentFromFrame(in core.InputFrame) Intent {
	return Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
		Jump:  in.Has(core.ActionJump),
		Pause: in.Has(core.ActionPause),
	}
}

// Player is the controllable ghost.
type Player struct {
	X, Y   float64
	VX, VY float64
	Facing Facing

	OnGround bool
	Jumping  bool

	Alive           bool
	Dying           bool
	DeathTicks      int
	DeathX, DeathY  float64
	Invincible      bool
	InvincibleTicks int

	Anim      AnimState
	AnimFrame int
	animTicks int

	spawnX, spawnY float64
	tuning         PlayerTuning
}

// NewPlayer creates a player at its spawn point.
func NewPlayer(spawnX, spawnY float64, tuning PlayerTuning) (*Player, error) {
	if tuning.Width <= 0 || tuning.Height <= 0 {
		return nil, ErrInvalidSize
	}
	p := &Player{spawnX: spawnX, spawnY: spawnY, tuning: tuning}
	p.ResetPosition()
	return p, nil
}

// Width returns the body width.
func (p *Player) Width() float64 { return p.tuning.Width }

// Height returns the body height.
func (p *Player) Height() float64 { return p.tuning.Height }

// Bounds returns the body rectangle.
func (p *Player) Bounds() Box {
	return Box{X: p.X, Y: p.Y, W: p.tuning.Width, H: p.tuning.Height}
}

// Feet returns the y-coordinate of the bottom edge.
func (p *Player) Feet() float64 { return p.Y + p.tuning.Height }

// Update advances the player one tick. It reports whether a jump started.
func (p *Player) Update(in Intent, platforms []Platform, worldW, worldH float64) (jumped bool) {
	p.tickInvincibility()

	if p.Dying {
		p.updateDeath()
		return false
	}
	if !p.Alive {
		return false
	}

	jumped = p.applyIntent(in)
	p.applyGravity()

	p.X += p.VX
	p.Y += p.VY

	p.advanceAnimation()
	p.resolveLanding(platforms)

	p.X = core.ClampF(p.X, 0, worldW-p.tuning.Width)
	if p.Y > worldH {
		p.Die()
	}
	return jumped
}

func (p *Player) tickInvincibility() {
	if !p.Invincible {
		return
	}
	p.InvincibleTicks--
	if p.InvincibleTicks <= 0 {
		p.InvincibleTicks = 0
		p.Invincible = false
	}
}

func (p *Player) updateDeath() {
	p.DeathTicks++
	p.advanceAnimation()

	p.X, p.Y = p.DeathX, p.DeathY
	p.VX, p.VY = 0, 0

	if p.DeathTicks >= p.tuning.DeathTicks {
		p.Alive = false
		p.Dying = false
	}
}

func (p *Player) applyIntent(in Intent) bool {
	switch {
	case in.Left && !in.Right:
		p.VX = -p.tuning.MoveSpeed
		p.Facing = FacingLeft
		if p.OnGround {
			p.Anim = AnimWalking
		}
	case in.Right && !in.Left:
		p.VX = p.tuning.MoveSpeed
		p.Facing = FacingRight
		if p.OnGround {
			p.Anim = AnimWalking
		}
	default:
		p.VX = 0
		if p.OnGround {
			p.Anim = AnimIdle
		}
	}

	if !in.Jump || !p.OnGround {
		return false
	}
	p.VY = -p.tuning.JumpForce
	p.OnGround = false
	p.Jumping = true
	p.Anim = AnimJumping
	p.animTicks = 0
	return true
}

func (p *Player) applyGravity() {
	if p.OnGround {
		p.VY = 0
		p.Jumping = false
		return
	}
	p.VY += p.tuning.Gravity
	if p.VY > p.tuning.MaxFallSpeed {
		p.VY = p.tuning.MaxFallSpeed
	}
	if p.VY > 0 && !p.Jumping {
		p.Anim = AnimFalling
	}
}

// resolveLanding snaps the player onto the first platform it is landing on.
func (p *Player) resolveLanding(platforms []Platform) {
	p.OnGround = false
	body := p.Bounds()
	for i := range platforms {
		if !Landing(body, p.VY, platforms[i].Bounds()) {
			continue
		}
		p.Y = platforms[i].Y - p.tuning.Height
		p.VY = 0
		p.OnGround = true
		p.Jumping = false
		if p.Anim == AnimFalling || p.Anim == AnimJumping {
			p.Anim = AnimIdle
		}
		return
	}
}

func (p *Player) advanceAnimation() {
	p.animTicks++
	switch p.Anim {
	case AnimIdle:
		p.AnimFrame = (p.animTicks / idleFrameTicks) % idleFrames
	case AnimWalking:
		p.AnimFrame = (p.animTicks / walkFrameTicks) % walkFrames
	case AnimDeath:
		p.AnimFrame = min(p.DeathTicks/deathFrameTicks, deathLastFrame)
	default:
		p.AnimFrame = 0
	}
}

// TakeDamage applies a hit with knockback and an invincibility window.
// It returns false and changes nothing while invincible, dying or dead.
func (p *Player) TakeDamage() bool {
	if p.Invincible || p.Dying || !p.Alive {
		return false
	}
	p.GrantInvincibility(p.tuning.InvincibleTicks)
	p.VY = -p.tuning.Knockback
	p.VX = 0
	p.OnGround = false
	p.Jumping = true
	return true
}

// Die starts the death sequence at the current position. Calling it again
// while dying or dead has no effect; the return value reports whether the
// sequence started.
func (p *Player) Die() bool {
	if p.Dying || !p.Alive {
		return false
	}
	p.Dying = true
	p.DeathTicks = 0
	p.DeathX, p.DeathY = p.X, p.Y
	p.VX, p.VY = 0, 0
	p.OnGround = false
	p.Anim = AnimDeath
	p.AnimFrame = 0
	p.animTicks = 0
	return true
}

// Bounce launches the player upward after a stomp.
func (p *Player) Bounce(impulse float64, invincibleTicks int) {
	p.VY = -impulse
	p.OnGround = false
	p.Jumping = true
	p.GrantInvincibility(invincibleTicks)
}

// GrantInvincibility makes the player invincible for at least ticks ticks.
// A longer window already running is kept.
func (p *Player) GrantInvincibility(ticks int) {
	if ticks <= 0 {
		return
	}
	p.Invincible = true
	p.InvincibleTicks = max(p.InvincibleTicks, ticks)
}

// ResetPosition puts the player back on its spawn point, alive and with all
// transient state cleared.
func (p *Player) ResetPosition() {
	p.X, p.Y = p.spawnX, p.spawnY
	p.VX, p.VY = 0, 0
	p.Facing = FacingRight
	p.OnGround = false
	p.Jumping = false
	p.Alive = true
	p.Dying = false
	p.DeathTicks = 0
	p.DeathX, p.DeathY = 0, 0
	p.Invincible = false
	p.InvincibleTicks = 0
	p.Anim = AnimIdle
	p.AnimFrame = 0
	p.animTicks = 0
}

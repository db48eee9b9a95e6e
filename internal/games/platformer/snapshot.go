package platformer

import "math"

// Snapshot contains the state that determines the rest of a run.
// Positions are stored as float bits so equal snapshots hash equally.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Countdown int
	Score     int
	Lives     int
	Level     int

	// Player: X, Y, VX, VY as float bits
	PlayerData      []uint64
	PlayerFlags     int // bit 0 alive, 1 dying, 2 on ground, 3 jumping, 4 invincible
	InvincibleTicks int
	DeathTicks      int

	// Each enemy is 4 values: X bits, Y bits, Direction, Dying
	EnemyCount int
	EnemyData  []uint64

	// Each collectible is 2 values: Y bits, Collected
	CollectibleCount int
	CollectibleData  []uint64

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	p := g.player
	flags := 0
	for i, set := range []bool{p.Alive, p.Dying, p.OnGround, p.Jumping, p.Invincible} {
		if set {
			flags |= 1 << i
		}
	}

	snap := Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:     int(g.phase),
		Countdown: g.countdown,
		Score:     g.score,
		Lives:     g.lives,
		Level:     g.level,

		PlayerData: []uint64{
			math.Float64bits(p.X), math.Float64bits(p.Y),
			math.Float64bits(p.VX), math.Float64bits(p.VY),
		},
		PlayerFlags:     flags,
		InvincibleTicks: p.InvincibleTicks,
		DeathTicks:      p.DeathTicks,

		RNGState: g.rng.State(),
	}

	if g.world == nil {
		return snap
	}

	snap.EnemyCount = len(g.world.Enemies)
	snap.EnemyData = make([]uint64, 0, len(g.world.Enemies)*4)
	for _, e := range g.world.Enemies {
		var dying uint64
		if e.Dying {
			dying = 1
		}
		snap.EnemyData = append(snap.EnemyData,
			math.Float64bits(e.X), math.Float64bits(e.Y),
			uint64(int64(e.Direction)), dying) //#nosec G115 -- direction is -1 or 1
	}

	snap.CollectibleCount = len(g.world.Collectibles)
	snap.CollectibleData = make([]uint64, 0, len(g.world.Collectibles)*2)
	for _, c := range g.world.Collectibles {
		var collected uint64
		if c.Collected {
			collected = 1
		}
		snap.CollectibleData = append(snap.CollectibleData, math.Float64bits(c.Y), collected)
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Countdown)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerFlags)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.InvincibleTicks)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.DeathTicks)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnemyCount)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CollectibleCount) //#nosec G115 -- hash computation

	for _, v := range snap.PlayerData {
		h = h*31 + v
	}
	for _, v := range snap.EnemyData {
		h = h*31 + v
	}
	for _, v := range snap.CollectibleData {
		h = h*31 + v
	}

	h = h*31 + snap.RNGState

	return h
}

package platformer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/emberghost/internal/config"
	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/registry"
)

func testConfig() config.PlatformerConfig {
	return config.DefaultPlatformerConfig()
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	require.Equal(t, PhaseRunning, g.Phase())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// stepN steps n ticks with the same input and returns every event emitted.
func stepN(g *Game, n int, actions ...core.Action) []Event {
	var events []Event
	for range n {
		g.Step(frame(actions...))
		events = append(events, g.Events()...)
	}
	return events
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

// dropPlayerOutOfWorld puts the player just above the lower bound with
// nothing beneath it.
func dropPlayerOutOfWorld(g *Game) {
	g.world.Enemies = nil
	g.player.X = 100
	g.player.Y = g.cfg.World.Height
	g.player.VY = 0
	g.player.OnGround = false
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists(GameID))
	g, err := registry.Create(GameID)
	require.NoError(t, err)
	assert.Equal(t, "Ember Ghost", g.Title())
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	hud := g.HUD()
	assert.Equal(t, 0, hud.Score)
	assert.Equal(t, 3, hud.Lives)
	assert.Equal(t, 1, hud.Level)
	assert.Equal(t, 3, hud.LevelCount)
	assert.Equal(t, "Beginner", hud.LevelName)
	assert.Equal(t, 5, hud.Total)
	assert.False(t, g.State().GameOver)
	assert.Equal(t, 84, g.deathDelay)
	assert.Equal(t, 18, g.respawnDelay)
}

func TestScoreIsClamped(t *testing.T) {
	g := newTestGame(t)

	g.addScore(-500)
	assert.Equal(t, 0, g.score)

	g.addScore(2_000_000)
	assert.Equal(t, 999999, g.score)
}

func TestFallWithLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	g.lives = 1
	dropPlayerOutOfWorld(g)

	g.Step(frame())
	require.Equal(t, PhaseDying, g.Phase())
	assert.Equal(t, 1, g.lives, "the life is taken when the death commits")
	assert.Equal(t, 1, countEvents(g.Events(), EventFall))

	events := stepN(g, 200)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 0, g.lives)
	assert.True(t, g.State().GameOver)
	assert.Equal(t, 1, countEvents(events, EventGameOver))
}

func TestFallCostsOneLifeAndRespawns(t *testing.T) {
	g := newTestGame(t)
	dropPlayerOutOfWorld(g)

	g.Step(frame())
	require.Equal(t, PhaseDying, g.Phase())

	stepN(g, g.deathDelay-1)
	assert.Equal(t, PhaseDying, g.Phase())
	assert.Equal(t, 3, g.lives)

	stepN(g, 1)
	assert.Equal(t, PhaseRespawning, g.Phase())
	assert.Equal(t, 2, g.lives)

	events := stepN(g, g.respawnDelay)
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 1, countEvents(events, EventRespawn))
	assert.True(t, g.player.Alive)
	assert.False(t, g.player.Dying)
	assert.True(t, g.player.Invincible)
	assert.InDelta(t, g.cfg.Player.SpawnX, g.player.X, 1e-9)
	assert.Equal(t, 2, g.lives)
}

func TestStompAwardsPointsAndBounces(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}

	g.player.X, g.player.Y, g.player.VY = 300, 300-g.player.Height()+10, 5
	g.resolveCollisions()

	assert.Equal(t, 250, g.score)
	assert.Equal(t, 3, g.lives)
	assert.True(t, e.Dying)
	assert.InDelta(t, -8.0, g.player.VY, 1e-9)
	assert.True(t, g.player.Invincible)
	assert.Equal(t, 3, g.player.InvincibleTicks)
}

func TestStompKeepsRespawnInvincibility(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}
	g.player.GrantInvincibility(g.cfg.Gameplay.RespawnInvincibleTicks)

	g.player.X, g.player.Y, g.player.VY = 300, 300-g.player.Height()+10, 5
	g.resolveCollisions()

	assert.True(t, e.Dying, "stomps still land while invincible")
	assert.Equal(t, 250, g.score)
	assert.Equal(t, 90, g.player.InvincibleTicks, "a stomp never shortens a longer window")
}

func TestStompSkipsSideHitsThatTick(t *testing.T) {
	g := newTestGame(t)
	below, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	beside, err := NewEnemy(330, 250, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{below, beside}

	g.player.X, g.player.Y, g.player.VY = 300, 300-g.player.Height()+10, 5
	require.True(t, beside.SideHit(g.player))

	g.resolveCollisions()
	assert.Equal(t, 3, g.lives)
	assert.True(t, below.Dying)
	assert.False(t, beside.Dying)
}

func TestSideHitCostsLifeAndPoints(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}
	g.score = 1000

	g.player.X, g.player.Y, g.player.VY = 260, 300, 0
	g.resolveCollisions()

	assert.Equal(t, 930, g.score)
	assert.Equal(t, 2, g.lives)
	assert.True(t, g.player.Invincible)
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 1, countEvents(g.Events(), EventHurt))

	// Still touching but invincible: nothing more happens.
	g.player.X, g.player.Y = 260, 300
	g.resolveCollisions()
	assert.Equal(t, 2, g.lives)
	assert.Equal(t, 930, g.score)
}

func TestSideHitPenaltyNeverGoesNegative(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}

	g.player.X, g.player.Y = 260, 300
	g.resolveCollisions()
	assert.Equal(t, 0, g.score)
}

func TestSideHitOnLastLifeEndsGame(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}
	g.lives = 1

	g.player.X, g.player.Y = 260, 300
	g.resolveCollisions()
	require.Equal(t, PhaseDying, g.Phase())
	assert.Equal(t, 0, g.lives)
	assert.True(t, g.player.Dying)

	stepN(g, g.deathDelay)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 0, g.lives, "damage deaths do not take a second life")
}

func TestThornsHurt(t *testing.T) {
	g := newTestGame(t)
	thorny, err := NewPlatform(300, 400, 100, 32, PlatformOptions{Kind: KindDangerous, Thorns: true})
	require.NoError(t, err)
	g.world.Platforms = []Platform{thorny}
	g.world.Enemies = nil
	g.score = 500

	g.player.X, g.player.Y = 300, 340
	g.resolveCollisions()

	assert.Equal(t, 440, g.score)
	assert.Equal(t, 2, g.lives)
	assert.Equal(t, 1, countEvents(g.Events(), EventThorns))

	g.resolveCollisions()
	assert.Equal(t, 2, g.lives, "invincibility protects from thorns")
}

func TestThornsBelowHurtFromUnderneath(t *testing.T) {
	g := newTestGame(t)
	thorny, err := NewPlatform(300, 200, 100, 32, PlatformOptions{Thorns: true, ThornsBelow: true})
	require.NoError(t, err)
	g.world.Platforms = []Platform{thorny}
	g.world.Enemies = nil

	g.player.X, g.player.Y = 300, 200-g.player.Height()
	g.resolveCollisions()
	assert.Equal(t, 3, g.lives, "standing on top of downward thorns is safe")

	g.player.X, g.player.Y = 300, 250
	g.resolveCollisions()
	assert.Equal(t, 2, g.lives)
}

// prepareLastEmber marks all but one ember collected and moves the last
// one onto the player.
func prepareLastEmber(g *Game) {
	g.world.Enemies = nil
	last := len(g.world.Collectibles) - 1
	for i, c := range g.world.Collectibles {
		if i < last {
			c.Collected = true
			continue
		}
		c.X = g.player.X + 10
		c.BaseY = g.player.Y + 10
		c.Y = c.BaseY
	}
}

func TestLastEmberCompletesLevelOnce(t *testing.T) {
	g := newTestGame(t)
	prepareLastEmber(g)

	g.Step(frame())
	assert.Equal(t, PhaseLevelComplete, g.Phase())
	assert.Equal(t, 1, countEvents(g.Events(), EventCollect))
	assert.Equal(t, 1, countEvents(g.Events(), EventLevelClear))
	assert.Equal(t, 600, g.score, "100 for the ember and 500 for clearing level 1")

	events := stepN(g, g.clearDelay-1)
	assert.Zero(t, countEvents(events, EventLevelClear))
	assert.Equal(t, PhaseLevelComplete, g.Phase())

	events = stepN(g, 1)
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 2, g.level)
	assert.Equal(t, 600, g.score)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 1, countEvents(events, EventLevelStart))
	assert.Equal(t, 8, len(g.world.Collectibles))
}

func TestClearingLastLevelIsVictory(t *testing.T) {
	SetLevelPack([]LevelSpec{DefaultLevels()[0]})
	t.Cleanup(func() { SetLevelPack(nil) })

	g := newTestGame(t)
	require.Equal(t, 1, g.LevelCount())
	prepareLastEmber(g)

	g.Step(frame())
	assert.Equal(t, PhaseVictory, g.Phase())
	assert.True(t, g.State().GameOver)
	assert.Equal(t, 600, g.score)
	assert.Equal(t, 1, countEvents(g.Events(), EventVictory))

	// Finished runs ignore input apart from restart.
	stepN(g, 10, core.ActionRight)
	assert.Equal(t, PhaseVictory, g.Phase())
}

func TestRestartMidDeathLeavesNoResidue(t *testing.T) {
	g := newTestGame(t)
	g.score = 1234
	dropPlayerOutOfWorld(g)
	stepN(g, 10)
	require.Equal(t, PhaseDying, g.Phase())

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, 1, countEvents(g.Events(), EventRestart))
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 0, g.score)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 1, g.level)
	assert.True(t, g.player.Alive)
	assert.False(t, g.player.Dying)
	assert.False(t, g.player.Invincible)

	g.world.Enemies = nil
	events := stepN(g, 200)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Zero(t, countEvents(events, EventRespawn))
	assert.Zero(t, countEvents(events, EventGameOver))
}

func TestPauseFreezesEverything(t *testing.T) {
	g := newTestGame(t)
	dropPlayerOutOfWorld(g)
	g.Step(frame())
	require.Equal(t, PhaseDying, g.Phase())
	before := g.Snapshot()

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhasePaused, g.Phase())
	assert.True(t, g.State().Paused)

	stepN(g, 300)
	assert.Equal(t, PhasePaused, g.Phase())
	assert.Equal(t, 3, g.lives)

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhaseDying, g.Phase(), "resume returns to the paused phase")
	after := g.Snapshot()
	assert.Equal(t, before.Tick+1, after.Tick)
}

func TestJumpEmitsEvent(t *testing.T) {
	g := newTestGame(t)
	g.world.Enemies = nil

	// Fall onto the first platform, then jump.
	stepN(g, 120)
	require.True(t, g.player.OnGround)

	g.Step(frame(core.ActionJump))
	assert.Equal(t, 1, countEvents(g.Events(), EventJump))
	assert.Less(t, g.player.VY, 0.0)
}

func TestLoadLevel(t *testing.T) {
	g := newTestGame(t)
	g.score = 300

	require.NoError(t, g.LoadLevel(3))
	assert.Equal(t, 3, g.level)
	assert.Equal(t, 300, g.score)
	assert.Equal(t, "Hard", g.HUD().LevelName)

	assert.ErrorIs(t, g.LoadLevel(0), ErrUnknownLevel)
	assert.ErrorIs(t, g.LoadLevel(4), ErrUnknownLevel)

	assert.Equal(t, "Intermediate", g.LevelName(2))
	assert.Empty(t, g.LevelName(9))

	var _ registry.LevelJumper = g
}

func TestLoadLevelDuringLastDeathStartsOver(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}
	g.lives = 1
	g.score = 800

	g.player.X, g.player.Y = 260, 300
	g.resolveCollisions()
	require.Equal(t, PhaseDying, g.Phase())
	require.Equal(t, 0, g.lives)

	require.NoError(t, g.LoadLevel(2))
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 2, g.level)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, 0, g.score)

	// Nothing from the old death fires later.
	g.world.Enemies = nil
	events := stepN(g, 300)
	assert.Equal(t, 3, g.lives)
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Zero(t, countEvents(events, EventGameOver))
}

func TestLoadLevelSettlesPendingFall(t *testing.T) {
	g := newTestGame(t)
	g.score = 400
	dropPlayerOutOfWorld(g)

	g.Step(frame())
	require.Equal(t, PhaseDying, g.Phase())
	require.Equal(t, 3, g.lives)

	require.NoError(t, g.LoadLevel(2))
	assert.Equal(t, PhaseRunning, g.Phase())
	assert.Equal(t, 2, g.lives, "the fall still costs its life")
	assert.Equal(t, 400, g.score)

	// Out-of-range jumps change nothing, even mid-death.
	dropPlayerOutOfWorld(g)
	g.Step(frame())
	require.Equal(t, PhaseDying, g.Phase())
	assert.ErrorIs(t, g.LoadLevel(9), ErrUnknownLevel)
	assert.Equal(t, PhaseDying, g.Phase())
	assert.Equal(t, 2, g.lives)
}

func TestStartLevel(t *testing.T) {
	SetStartLevel(2)
	t.Cleanup(func() { SetStartLevel(1) })

	g := newTestGame(t)
	assert.Equal(t, 2, g.level)

	g.Step(frame(core.ActionRestart))
	assert.Equal(t, 1, g.level, "the in-game restart always goes back to level 1")
}

func TestInvalidLevelsInPackAreSkipped(t *testing.T) {
	broken := LevelSpec{Name: "broken"}
	SetLevelPack([]LevelSpec{broken, DefaultLevels()[1]})
	t.Cleanup(func() { SetLevelPack(nil) })

	g := newTestGame(t)
	assert.Equal(t, 1, g.LevelCount())
	assert.Equal(t, "Intermediate", g.HUD().LevelName)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%90 < 40:
			inputs[i].Set(core.ActionRight)
		case i%90 < 70:
			inputs[i].Set(core.ActionLeft)
		}
		if i%37 == 0 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, a, b)
}

func TestDifferentSeedsDifferentLevels(t *testing.T) {
	g1 := New()
	g1.Reset(testRuntime())

	rt := testRuntime()
	rt.Seed = 7
	g2 := New()
	g2.Reset(rt)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	assert.NotEqual(t, s1.Hash(), s2.Hash())
}

func TestRenderSmoke(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Level 1/3")
	assert.Contains(t, out, "Beginner")
	assert.Equal(t, core.ColorBrown, screen.Backdrop(), "level background")

	registry.RenderFrame(g, screen, core.RenderOptions{Debug: true})
	assert.Contains(t, screen.Row(23), "running")

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.Reset(rt)

	screen := core.NewScreen(20, 8)
	g.Render(screen)
	assert.True(t, strings.Contains(screen.String(), "too small"))
}

func TestResizeKeepsRun(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 20, 8
	g.Reset(rt)
	assert.True(t, g.screenTooSmall)

	g.Resize(100, 30)
	assert.False(t, g.screenTooSmall)

	g.score = 700
	g.Resize(30, 10)
	assert.True(t, g.screenTooSmall)
	g.Resize(80, 24)
	assert.Equal(t, 700, g.score, "resizing never restarts the run")

	var _ registry.Resizer = g
}

func TestRunReport(t *testing.T) {
	g := newTestGame(t)
	e, err := NewEnemy(300, 300, EnemyOptions{})
	require.NoError(t, err)
	g.world.Enemies = []*Enemy{e}
	g.player.X, g.player.Y, g.player.VY = 300, 300-g.player.Height()+10, 5
	g.resolveCollisions()

	g.lives = 1
	dropPlayerOutOfWorld(g)
	stepN(g, 200)

	r := g.RunReport()
	assert.Equal(t, "game_over", r.Outcome)
	assert.Equal(t, 1, r.Level)
	assert.Equal(t, "Beginner", r.LevelName)
	assert.Equal(t, 1, r.Stomps)
	assert.Equal(t, 1, r.Deaths)
	assert.Positive(t, r.Ticks)

	g.Step(frame(core.ActionRestart))
	r = g.RunReport()
	assert.Empty(t, r.Outcome)
	assert.Zero(t, r.Stomps)
	assert.Zero(t, r.Deaths)
}

// Package platformer implements Ember Ghost, a single-screen platformer:
// a ghost collects embers across a campaign of levels while avoiding
// patrolling enemies and thorned platforms.
package platformer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emberghost/internal/config"
	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/registry"
)

// GameID is the registry identifier of the campaign.
const GameID = "emberghost"

// Phase is the top-level state of a run.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseRunning
	PhasePaused
	PhaseDying         // Death sequence playing; life loss not yet committed
	PhaseRespawning    // Short wait before the player reappears
	PhaseLevelComplete // Bonus awarded, next level pending
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseDying:
		return "dying"
	case PhaseRespawning:
		return "respawning"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// deathCause decides whether committing a death costs a life. Damage has
// already taken its life when it started the sequence.
type deathCause int

const (
	causeNone deathCause = iota
	causeFall
	causeDamage
)

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	startLevel       = 1
	levelPack        []LevelSpec
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the level (1-based) new runs start on.
func SetStartLevel(n int) {
	startLevel = max(n, 1)
}

// SetLevelPack replaces the built-in levels for new games. A nil or empty
// pack restores the built-in campaign.
func SetLevelPack(levels []LevelSpec) {
	levelPack = levels
}

// SetLogger sets the logger new games report to. nil silences them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is the Ember Ghost controller. It owns the player and the current
// level, arbitrates collisions, and times death, respawn and level
// transitions in ticks.
type Game struct {
	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	levels     []LevelSpec
	rng        *SimpleRNG
	log        *log.Logger

	player *Player
	world  *World

	phase       Phase
	resumePhase Phase
	countdown   int
	cause       deathCause

	score     int
	lives     int
	level     int
	tickCount int
	events    []Event
	stats     runStats

	deathDelay   int
	respawnDelay int
	clearDelay   int

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

type runStats struct {
	stomps int
	embers int
	deaths int
}

// New creates a new game. Reset must be called before Step.
func New() *Game {
	return &Game{phase: PhaseLoading, log: logger}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return GameID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Ember Ghost" }

// SetLogger replaces the logger of this game.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.log = l
}

// Reset starts a new run on the configured start level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.levels = g.validLevels()

	g.deathDelay = runtime.TicksFor(cfg.Gameplay.DeathDelaySeconds)
	g.respawnDelay = runtime.TicksFor(cfg.Gameplay.RespawnDelaySeconds)
	g.clearDelay = runtime.TicksFor(cfg.Gameplay.LevelClearSeconds)

	g.minScreenW = 40
	g.minScreenH = 12
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.rng = NewSimpleRNG(runtime.Seed)
	g.player, err = NewPlayer(cfg.Player.SpawnX, cfg.Player.SpawnY, PlayerTuningFromConfig(cfg))
	if err != nil {
		// Validate rejects non-positive sizes, so this only guards hand-made configs.
		g.log.Error("player tuning rejected, using defaults", "err", err)
		g.player, _ = NewPlayer(100, 100, DefaultPlayerTuning())
	}

	g.restartAt(min(startLevel, len(g.levels)))
}

// validLevels returns the level pack with unbuildable levels dropped,
// falling back to the built-in campaign.
func (g *Game) validLevels() []LevelSpec {
	pack := levelPack
	if len(pack) == 0 {
		return DefaultLevels()
	}
	valid := make([]LevelSpec, 0, len(pack))
	for _, spec := range pack {
		if err := spec.Validate(); err != nil {
			g.log.Warn("skipping level", "err", err)
			continue
		}
		valid = append(valid, spec)
	}
	if len(valid) == 0 {
		g.log.Warn("level pack has no playable levels, using built-in levels")
		return DefaultLevels()
	}
	return valid
}

// restartAt clears score and lives and loads level n.
func (g *Game) restartAt(n int) {
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tickCount = 0
	g.events = g.events[:0]
	g.stats = runStats{}
	if err := g.loadLevel(n); err != nil {
		g.log.Error("failed to load level", "level", n, "err", err)
		g.phase = PhaseGameOver
	}
}

// restart is the in-game full restart: score 0, full lives, level 1.
func (g *Game) restart() {
	g.log.Info("restart", "score", g.score, "level", g.level)
	g.restartAt(1)
	g.emit(EventRestart, 0)
}

// loadLevel builds level n (1-based) and places the player at spawn.
// Score and lives are kept.
func (g *Game) loadLevel(n int) error {
	if n < 1 || n > len(g.levels) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrUnknownLevel, n, len(g.levels))
	}
	g.phase = PhaseLoading

	spec := g.levels[n-1]
	spec.EnemySpeed = g.difficulty.EnemySpeed(spec.EnemySpeed, g.score, n)
	spec.EnemyCount = g.difficulty.EnemyCount(spec.EnemyCount, g.score, n)

	world, err := BuildLevel(spec, g.buildOptions(), g.rng)
	if err != nil {
		return err
	}

	g.world = world
	g.level = n
	g.player.ResetPosition()
	g.phase = PhaseRunning
	g.resumePhase = PhaseRunning
	g.countdown = 0
	g.cause = causeNone

	g.log.Info("level start", "level", n, "name", spec.Name,
		"enemies", len(world.Enemies), "embers", len(world.Collectibles),
		"enemy_speed", fmt.Sprintf("%.2f", spec.EnemySpeed))
	g.emit(EventLevelStart, 0)
	return nil
}

func (g *Game) buildOptions() BuildOptions {
	return BuildOptions{
		Enemy:          EnemyOptionsFromConfig(g.cfg.Enemy),
		MaxPatrolRange: g.cfg.Enemy.MaxPatrolRange,
		Collectible:    CollectibleOptionsFromConfig(g.cfg.Collectible),
	}
}

// Resize records the new terminal size. The world keeps its coordinates,
// only the viewport changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// LevelCount returns the number of levels in the campaign.
func (g *Game) LevelCount() int { return len(g.levels) }

// LevelName returns the name of level n (1-based), or "" when out of range.
func (g *Game) LevelName(n int) string {
	if n < 1 || n > len(g.levels) {
		return ""
	}
	return g.levels[n-1].Name
}

// LoadLevel jumps straight to level n keeping score and lives. A pending
// fall death is settled first; a run with no lives left starts over.
func (g *Game) LoadLevel(n int) error {
	if n < 1 || n > len(g.levels) {
		return fmt.Errorf("%w: %d not in 1..%d", ErrUnknownLevel, n, len(g.levels))
	}
	if g.phase == PhaseDying && g.cause == causeFall {
		g.lives = max(g.lives-1, 0)
	}
	if g.lives <= 0 || g.phase == PhaseGameOver || g.phase == PhaseVictory {
		g.lives = g.cfg.Gameplay.Lives
		g.score = 0
		g.stats = runStats{}
	}
	return g.loadLevel(n)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.screenTooSmall || g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	intent := IntentFromFrame(in)
	if intent.Pause {
		g.togglePause()
	}

	switch g.phase {
	case PhasePaused, PhaseGameOver, PhaseVictory, PhaseLoading:
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	switch g.phase {
	case PhaseLevelComplete:
		g.countdown--
		if g.countdown <= 0 {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	case PhaseDying:
		g.countdown--
		if g.countdown <= 0 {
			g.commitDeath()
		}
	case PhaseRespawning:
		g.countdown--
		if g.countdown <= 0 {
			g.respawn()
		}
	}

	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	g.simulate(intent)
	return core.StepResult{State: g.State()}
}

// simulate runs the entity updates and, while running, the arbitration.
func (g *Game) simulate(intent Intent) {
	if g.phase != PhaseRunning {
		intent = Intent{}
	}

	worldW, worldH := g.cfg.World.Width, g.cfg.World.Height
	if g.player.Update(intent, g.world.Platforms, worldW, worldH) {
		g.emit(EventJump, 0)
	}

	for _, e := range g.world.Enemies {
		e.Update(g.world.Platforms, worldH)
	}
	g.world.PurgeEnemies()

	running := g.phase == PhaseRunning
	if running {
		g.resolveCollisions()
	}

	for _, c := range g.world.Collectibles {
		c.Update()
	}
	if g.phase == PhaseRunning {
		g.collectEmbers()
	}

	if g.phase == PhaseRunning && g.player.Y > worldH {
		g.startFallDeath()
	}

	if g.phase == PhaseRunning && g.world.Cleared() {
		g.completeLevel()
	}
}

func (g *Game) togglePause() {
	switch g.phase {
	case PhasePaused:
		g.phase = g.resumePhase
		g.emit(EventResume, 0)
	case PhaseRunning, PhaseDying, PhaseRespawning, PhaseLevelComplete:
		g.resumePhase = g.phase
		g.phase = PhasePaused
		g.emit(EventPause, 0)
	}
}

// addScore changes the score, keeping it within [0, max_score].
func (g *Game) addScore(delta int) {
	g.score = core.Clamp(g.score+delta, 0, g.cfg.Scoring.MaxScore)
}

func (g *Game) emit(kind EventKind, points int) {
	ev := Event{Kind: kind, Tick: g.tickCount, Level: g.level, Points: points}
	g.events = append(g.events, ev)
	g.log.Debug("event", "kind", kind, "tick", ev.Tick, "level", ev.Level, "points", points, "score", g.score)
}

// Events returns the events of the last Step. The slice is reused by the
// next Step.
func (g *Game) Events() []Event {
	return g.events
}

// startFallDeath begins the death sequence for a fall out of the world.
// The life is taken when the sequence commits.
func (g *Game) startFallDeath() {
	g.player.Die()
	g.enterDying(causeFall)
	g.emit(EventFall, 0)
}

func (g *Game) enterDying(cause deathCause) {
	g.phase = PhaseDying
	g.cause = cause
	g.countdown = g.deathDelay
	g.stats.deaths++
	g.emit(EventDeath, 0)
	if g.countdown <= 0 {
		g.commitDeath()
	}
}

// commitDeath ends the death sequence: a fall costs a life, then the run
// either ends or schedules a respawn.
func (g *Game) commitDeath() {
	if g.cause == causeFall {
		g.lives = max(g.lives-1, 0)
	}
	g.cause = causeNone

	if g.lives <= 0 {
		g.phase = PhaseGameOver
		g.log.Info("game over", "score", g.score, "level", g.level, "ticks", g.tickCount)
		g.emit(EventGameOver, 0)
		return
	}

	g.phase = PhaseRespawning
	g.countdown = g.respawnDelay
	if g.countdown <= 0 {
		g.respawn()
	}
}

func (g *Game) respawn() {
	g.player.ResetPosition()
	g.player.GrantInvincibility(g.cfg.Gameplay.RespawnInvincibleTicks)
	g.phase = PhaseRunning
	g.emit(EventRespawn, 0)
}

// completeLevel awards the clear bonus for the current level and either
// schedules the next level or ends the campaign.
func (g *Game) completeLevel() {
	bonus := g.cfg.Scoring.LevelBonusPerLevel * g.level
	g.addScore(bonus)
	g.emit(EventLevelClear, bonus)

	if g.level >= len(g.levels) {
		g.phase = PhaseVictory
		g.log.Info("victory", "score", g.score, "ticks", g.tickCount)
		g.emit(EventVictory, 0)
		return
	}

	g.phase = PhaseLevelComplete
	g.countdown = g.clearDelay
	if g.countdown <= 0 {
		g.advanceLevel()
	}
}

func (g *Game) advanceLevel() {
	if err := g.loadLevel(g.level + 1); err != nil {
		g.log.Error("failed to load next level", "level", g.level+1, "err", err)
		g.phase = PhaseGameOver
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseVictory,
		Paused:   g.phase == PhasePaused,
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase { return g.phase }

// HUD is the information shown above the playfield.
type HUD struct {
	Score       int
	Lives       int
	Level       int
	LevelCount  int
	LevelName   string
	Collected   int
	Total       int
	Phase       Phase
	Invincible  bool
	EnemiesLeft int
}

// HUD returns the current HUD values.
func (g *Game) HUD() HUD {
	h := HUD{
		Score:      g.score,
		Lives:      g.lives,
		Level:      g.level,
		LevelCount: len(g.levels),
		Phase:      g.phase,
	}
	if g.world != nil {
		h.LevelName = g.world.Spec.Name
		h.Collected = g.world.Collected()
		h.Total = len(g.world.Collectibles)
		h.EnemiesLeft = len(g.world.Enemies)
	}
	if g.player != nil {
		h.Invincible = g.player.Invincible
	}
	return h
}

// RunReport describes the run so far.
func (g *Game) RunReport() core.RunReport {
	r := core.RunReport{
		Level:  g.level,
		Ticks:  g.tickCount,
		Stomps: g.stats.stomps,
		Embers: g.stats.embers,
		Deaths: g.stats.deaths,
	}
	if g.world != nil {
		r.LevelName = g.world.Spec.Name
	}
	switch g.phase {
	case PhaseVictory:
		r.Outcome = "victory"
	case PhaseGameOver:
		r.Outcome = "game_over"
	}
	return r
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

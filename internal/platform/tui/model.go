package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/registry"
	"github.com/vovakirdan/emberghost/internal/storage"
)

// defaultHoldSeconds is how long a direction key stays held after a press.
// It bridges the gap before the terminal starts auto-repeating.
const defaultHoldSeconds = 0.12

// GameOptions tune how a game is hosted.
type GameOptions struct {
	StartLevel int                // Level to load after reset, 0 or 1 for the first
	Render     core.RenderOptions // Initial render options
	Embedded   bool               // Back returns to a menu instead of quitting
	Logger     *log.Logger
}

// GameModel runs one game: it ticks the simulation, latches input and
// records the run when it ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       GameOptions
	latch      *InputLatch
	keyMapper  *KeyMapper
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
	backToMenu bool
	runSaved   bool
	tickGen    uint64
}

// NewGameModel creates a model hosting game.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	} else if ls, ok := game.(interface{ SetLogger(*log.Logger) }); ok {
		ls.SetLogger(logger)
	}

	return GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		opts:      opts,
		latch:     NewInputLatch(cfg.TicksFor(defaultHoldSeconds)),
		keyMapper: NewKeyMapper(),
		logger:    logger,
		tickGen:   nextTickGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.opts.StartLevel > 1 {
		if lj, ok := m.game.(registry.LevelJumper); ok {
			if err := lj.LoadLevel(m.opts.StartLevel); err != nil {
				m.logger.Warn("cannot load start level", "level", m.opts.StartLevel, "err", err)
			}
		}
	}
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "h":
		m.opts.Render.Debug = !m.opts.Render.Debug
		return m, nil
	}

	if n, ok := m.keyMapper.LevelKey(msg); ok {
		m.jumpToLevel(n)
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.finishRun("quit")
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.finishRun("quit")
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if action != core.ActionNone {
		m.latch.Press(action)
	}
	return m, nil
}

// jumpToLevel loads level n directly when the game supports it.
func (m *GameModel) jumpToLevel(n int) {
	lj, ok := m.game.(registry.LevelJumper)
	if !ok || n > lj.LevelCount() {
		return
	}
	if err := lj.LoadLevel(n); err != nil {
		m.logger.Warn("cannot load level", "level", n, "err", err)
		return
	}
	m.gameState = m.game.State()
	m.runSaved = false
	m.latch.Reset()
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without resize support restart with the new dimensions.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.latch.Frame())
	m.latch.Advance()

	// A restart leaves the game-over state behind.
	if m.runSaved && !result.State.GameOver {
		m.runSaved = false
	}
	m.gameState = result.State

	if m.gameState.GameOver && !m.runSaved {
		m.finishRun("")
	}

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// finishRun records the run once. An empty outcome takes the one reported
// by the game.
func (m *GameModel) finishRun(outcome string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	ticks := 0
	run := storage.RunSummary{
		GameID:  m.game.ID(),
		Score:   m.game.State().Score,
		Outcome: outcome,
		Seed:    m.config.Seed,
	}
	if rr, ok := m.game.(registry.RunReporter); ok {
		rep := rr.RunReport()
		run.Level = rep.Level
		run.LevelName = rep.LevelName
		run.Duration = rep.Ticks / max(m.config.TickRate, 1)
		ticks = rep.Ticks
		run.Stomps = rep.Stomps
		run.Embers = rep.Embers
		if outcome == "" {
			run.Outcome = rep.Outcome
		}
	}
	if run.Outcome == "" {
		run.Outcome = "game_over"
	}

	m.logger.Info("run finished", "game", run.GameID, "outcome", run.Outcome, "score", run.Score, "level", run.Level)

	if m.store == nil || (ticks == 0 && run.Score == 0) {
		return
	}
	if run.Score > 0 {
		if _, err := m.store.SaveScore(run.GameID, run.Score); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot save run", "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	registry.RenderFrame(m.game, m.screen, m.opts.Render)

	dir := filepath.Join(os.Getenv("HOME"), ".emberghost", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	registry.RenderFrame(m.game, m.screen, m.opts.Render)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program hosting a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

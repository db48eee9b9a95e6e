package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/emberghost/internal/core"
	"github.com/vovakirdan/emberghost/internal/registry"
	"github.com/vovakirdan/emberghost/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenLevels
	screenGame
	screenScores
)

// SessionModel manages the full flow of one player: menu, level select,
// game and scoreboard. It backs both the local menu command and every SSH
// session.
type SessionModel struct {
	gameID    string
	store     *storage.Store
	config    core.RuntimeConfig
	opts      GameOptions
	username  string
	screen    sessionScreen
	menu      MenuModel
	levels    LevelSelectModel
	scores    ScoreboardModel
	gameModel *GameModel
	quitting  bool
}

// NewSessionModel creates a session for the registered game gameID.
func NewSessionModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions, username string) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	opts.Embedded = true

	m := SessionModel{
		gameID:   gameID,
		store:    store,
		config:   cfg,
		opts:     opts,
		username: username,
	}
	m.menu = m.newMenu()
	return m
}

// probe creates a reset game instance for reading titles and level names.
func (m SessionModel) probe() (registry.Game, error) {
	g, err := registry.Create(m.gameID)
	if err != nil {
		return nil, err
	}
	g.Reset(m.config)
	return g, nil
}

func (m SessionModel) newMenu() MenuModel {
	title, levelCount := m.gameID, 0
	if g, err := m.probe(); err == nil {
		title = g.Title()
		if lj, ok := g.(registry.LevelJumper); ok {
			levelCount = lj.LevelCount()
		}
	}

	high := 0
	if m.store != nil {
		if h, err := m.store.HighScore(m.gameID); err == nil {
			high = h
		}
	}
	return NewMenuModel(title, levelCount, high, m.config)
}

func (m SessionModel) levelNames() []string {
	g, err := m.probe()
	if err != nil {
		return nil
	}
	lj, ok := g.(registry.LevelJumper)
	if !ok {
		return nil
	}
	names := make([]string, lj.LevelCount())
	for i := range names {
		names[i] = lj.LevelName(i + 1)
	}
	return names
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenLevels:
		return m.updateLevels(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menu, ok := newMenu.(MenuModel); ok {
		m.menu = menu
	}

	switch m.menu.Choice() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoicePlay:
		return m.startGame(1)
	case ChoiceSelectLevel:
		m.levels = NewLevelSelectModel(m.levelNames(), m.config.ScreenW, m.config.ScreenH)
		m.screen = screenLevels
		return m, m.levels.Init()
	case ChoiceScoreboard:
		m.scores = NewScoreboardModel(m.store, m.gameID, m.menu.title, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

func (m SessionModel) updateLevels(msg tea.Msg) (tea.Model, tea.Cmd) {
	newLevels, cmd := m.levels.Update(msg)
	if levels, ok := newLevels.(LevelSelectModel); ok {
		m.levels = levels
	}

	switch {
	case m.levels.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.levels.WantsBack():
		return m.backToMenu()
	case m.levels.Selected() > 0:
		return m.startGame(m.levels.Selected())
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newScores, cmd := m.scores.Update(msg)
	if scores, ok := newScores.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		return m.backToMenu()
	}
	return m, cmd
}

// startGame creates a fresh game starting at level n.
func (m SessionModel) startGame(n int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.opts.Logger.Error("cannot create game", "game", m.gameID, "err", err)
		return m.backToMenu()
	}

	opts := m.opts
	opts.StartLevel = n
	opts.Logger = m.opts.Logger.With("user", m.username)

	gameModel := NewGameModel(game, m.store, m.config, opts)
	m.gameModel = &gameModel
	m.screen = screenGame

	return m, m.gameModel.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		if m.gameModel != nil {
			return m.gameModel.View()
		}
	case screenLevels:
		return m.levels.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs a local session in the current terminal.
func RunSession(gameID string, store *storage.Store, cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewSessionModel(gameID, store, cfg, opts, "local")

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

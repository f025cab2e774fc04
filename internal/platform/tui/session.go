package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// gameTracker remembers the game a session is playing so it can be
// finished when the connection drops.
type gameTracker struct {
	mu   sync.Mutex
	game registry.Game
}

func (t *gameTracker) set(g registry.Game) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.game = g
	t.mu.Unlock()
}

func (t *gameTracker) finish() {
	if t == nil {
		return
	}
	t.mu.Lock()
	g := t.game
	t.game = nil
	t.mu.Unlock()

	if f, ok := g.(registry.Finisher); ok {
		f.Finish()
	}
}

// sessionScreen is what a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScoreboard
)

// SessionModel manages the full session flow: menu -> game or scoreboard -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store      *storage.Store
	recorder   core.StatsRecorder
	config     core.RuntimeConfig
	tracker    *gameTracker
	current    sessionScreen
	menu       MenuModel
	gameModel  Model
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, rec core.StatsRecorder, cfg core.RuntimeConfig, tracker *gameTracker) SessionModel {
	return SessionModel{
		store:    store,
		recorder: rec,
		config:   cfg,
		tracker:  tracker,
		menu:     NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		// A tick left over from a finished game.
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}
	m.config.PlayerName = m.menu.Config().PlayerName

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.current = screenScoreboard
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		return m, m.scoreboard.Init()

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().GameID)
		if err != nil {
			// Shouldn't happen since menu only shows registered games
			m.menu = m.freshMenu()
			return m, nil
		}

		m.tracker.set(game)
		m.gameModel = NewModel(game, m.recorder, m.config)
		m.current = screenGame
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.gameModel = gameModel
	}

	switch {
	case m.gameModel.IsGoingBack():
		// The game model already finished the game.
		m.tracker.set(nil)
		m.current = screenMenu
		m.menu = m.freshMenu()
		return m, m.menu.Init()

	case m.gameModel.quitting:
		m.tracker.set(nil)
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is open.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	switch {
	case m.scoreboard.IsGoingBack():
		m.current = screenMenu
		m.menu = m.freshMenu()
		return m, m.menu.Init()

	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// freshMenu builds a menu that remembers the player's name.
func (m SessionModel) freshMenu() MenuModel {
	return NewMenuModel(m.config)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
	_ "github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

func sendMenu(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func typeText(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runeKey(r))
	}
	return msgs
}

func namedConfig(name string) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.PlayerName = name
	return cfg
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(namedConfig("alice"))

	ids := make([]string, len(m.items))
	for i, item := range m.items {
		ids[i] = item.GameID
	}
	assert.Equal(t, []string{"platformer", "platformer_practice"}, ids)
	assert.Contains(t, m.View(), "Playing as alice")
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(namedConfig("alice"))
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "platformer_practice", m.Selected().GameID)
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(NewMenuModel(namedConfig("alice")), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = sendMenu(NewMenuModel(namedConfig("alice")), runeKey('q'))
	assert.True(t, m.IsQuitting())
}

func TestMenuAsksForName(t *testing.T) {
	m := NewMenuModel(namedConfig(""))
	assert.True(t, m.editingName)
	assert.Contains(t, m.View(), "Who is playing?")

	// Menu keys type into the prompt while it is open.
	m = sendMenu(m, typeText("qbert")...)
	assert.False(t, m.IsQuitting())

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.editingName)
	assert.Equal(t, "qbert", m.Config().PlayerName)
}

func TestMenuEmptyNameFallsBack(t *testing.T) {
	m := sendMenu(NewMenuModel(namedConfig("")), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, core.DefaultConfig().PlayerName, m.Config().PlayerName)
}

func TestMenuRenameCancel(t *testing.T) {
	m := NewMenuModel(namedConfig("alice"))
	m = sendMenu(m, runeKey('n'))
	require.True(t, m.editingName)

	m = sendMenu(m, typeText("zz")...)
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.editingName)
	assert.Equal(t, "alice", m.Config().PlayerName)
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	tracker := &gameTracker{}
	s := NewSessionModel(nil, nil, namedConfig("alice"), tracker)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.NotNil(t, cmd)
	assert.Equal(t, screenGame, s.current)
	assert.NotNil(t, tracker.game)

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	assert.Equal(t, 1, s.gameModel.State().Level)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.current)
	assert.Nil(t, tracker.game)
	assert.Equal(t, "alice", s.menu.Config().PlayerName)

	// A tick still in flight from the old game is ignored.
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.current)
}

func TestSessionScoreboard(t *testing.T) {
	s := NewSessionModel(nil, nil, namedConfig("alice"), nil)

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	assert.Equal(t, screenScoreboard, s.current)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	assert.Equal(t, screenMenu, s.current)
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the page sidebar
	sidebarWidth       = 20  // Width of the page sidebar
	maxScores          = 100 // Max scores to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev page"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev page"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// scoreboardPage is one table of the scoreboard.
type scoreboardPage struct {
	title   string
	columns []table.Column
	load    func(*storage.Store) ([]table.Row, error)
	empty   string
}

var scoreboardPages = []scoreboardPage{
	{
		title: "High Scores",
		columns: []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 16},
			{Title: "Score", Width: 8},
			{Title: "Level", Width: 6},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 13},
		},
		load:  loadScoreRows,
		empty: "No scores recorded yet.\nPlay a game to set a high score!",
	},
	{
		title: "Levels",
		columns: []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Completed", Width: 10},
			{Title: "Best Time", Width: 10},
		},
		load:  loadLevelRows,
		empty: "No levels known yet.",
	},
	{
		title: "Players",
		columns: []table.Column{
			{Title: "Name", Width: 16},
			{Title: "Games", Width: 6},
			{Title: "Coins", Width: 6},
			{Title: "Kills", Width: 6},
			{Title: "Deaths", Width: 7},
			{Title: "Played", Width: 8},
		},
		load:  loadPlayerRows,
		empty: "No player statistics yet.",
	},
}

func loadScoreRows(store *storage.Store) ([]table.Row, error) {
	scores, err := store.TopScores(maxScores)
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Name,
			strconv.Itoa(s.Score),
			strconv.Itoa(s.Level),
			formatDuration(s.PlayTime),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows, nil
}

func loadLevelRows(store *storage.Store) ([]table.Row, error) {
	levels, err := store.AllLevelStats()
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(levels))
	for i, l := range levels {
		best := "-"
		if l.BestTime < storage.DefaultBestTime {
			best = formatDuration(l.BestTime)
		}
		rows[i] = table.Row{
			strconv.Itoa(l.Level),
			strconv.Itoa(l.CompletedTimes),
			best,
		}
	}
	return rows, nil
}

func loadPlayerRows(store *storage.Store) ([]table.Row, error) {
	players, err := store.AllPlayerStats()
	if err != nil {
		return nil, err
	}
	rows := make([]table.Row, len(players))
	for i, p := range players {
		rows[i] = table.Row{
			p.Name,
			strconv.Itoa(p.GamesPlayed),
			strconv.Itoa(p.CoinsCollected),
			strconv.Itoa(p.EnemiesKilled),
			strconv.Itoa(p.Deaths),
			formatDuration(p.PlayTime),
		}
	}
	return rows, nil
}

// formatDuration renders seconds as m:ss.
func formatDuration(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	pages       []scoreboardPage
	pageCursor  int
	store       *storage.Store
	rows        []table.Row
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show the page sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		pages:       scoreboardPages,
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	m.loadPage()

	return m
}

// createTable creates a new table with the current page's columns.
func (m *ScoreboardModel) createTable() table.Model {
	page := m.pages[m.pageCursor]
	columns := make([]table.Column, len(page.columns))
	copy(columns, page.columns)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadPage reads the current page's rows from the store.
func (m *ScoreboardModel) loadPage() {
	m.rows = nil
	m.loadErr = nil
	if m.store != nil {
		m.rows, m.loadErr = m.pages[m.pageCursor].load(m.store)
	}
	m.table.SetRows(m.rows)
	m.table.GotoTop()
}

// switchPage moves to another page by delta, wrapping around.
func (m *ScoreboardModel) switchPage(delta int) {
	n := len(m.pages)
	m.pageCursor = ((m.pageCursor+delta)%n + n) % n
	m.table = m.createTable()
	m.loadPage()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage), key.Matches(msg, m.keys.Right):
			m.switchPage(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevPage), key.Matches(msg, m.keys.Left):
			m.switchPage(-1)
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.table.SetRows(m.rows)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := strings.ToUpper(m.pages[m.pageCursor].title)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout renders the scoreboard with a sidebar listing pages.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Pages\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.pages {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.pageCursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		sidebar.WriteString(style.Render(cursor + p.title))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with page tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.pages))
	for i, p := range m.pages {
		if i == m.pageCursor {
			tabs[i] = activeTabStyle.Render(p.title)
		} else {
			tabs[i] = tabStyle.Render(" " + p.title + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 {
		tabLine = fmt.Sprintf("< %s >", m.pages[m.pageCursor].title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// renderTableContent renders the table, an error or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Statistics are unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load statistics:\n" + m.loadErr.Error())
	case len(m.rows) == 0:
		return emptyStyle.Render(m.pages[m.pageCursor].empty)
	}

	return m.table.View()
}

// Page returns the title of the page on display.
func (m ScoreboardModel) Page() string {
	return m.pages[m.pageCursor].title
}

// Rows returns the rows of the page on display.
func (m ScoreboardModel) Rows() []table.Row {
	return m.rows
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pong/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 100 // Minimum width to show the summary sidebar
	sidebarWidth       = 24
	maxRuns            = 100 // Max runs to load
)

// HistoryKeyMap defines the key bindings for the run history view.
type HistoryKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Refresh, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Refresh},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel lists the recorded runs of a game.
type HistoryModel struct {
	gameID      string
	store       *storage.Store
	runs        []storage.Run
	summary     storage.Summary
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	standalone  bool // Back and quit end the program
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a run history view for gameID.
func NewHistoryModel(store *storage.Store, gameID string, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		gameID:      gameID,
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table sized for the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 8},
		{Title: "Src", Width: 4},
		{Title: "Arena", Width: 9},
		{Title: "Ticks", Width: 7},
		{Title: "Hits", Width: 5},
		{Title: "Digest", Width: 16},
		{Title: "Date", Width: 12},
	}

	// Drop the digest column on narrow terminals
	tableWidth := m.width - 4
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if tableWidth < 80 {
		columns = append(columns[:5], columns[6])
	}

	height := m.height - 8 // Leave room for title, help and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// load reads runs and the summary from the store.
func (m *HistoryModel) load() {
	m.runs, m.summary, m.loadErr = nil, storage.Summary{GameID: m.gameID}, nil
	if m.store != nil {
		if runs, err := m.store.RecentRuns(m.gameID, maxRuns); err != nil {
			m.loadErr = err
		} else {
			m.runs = runs
		}
		if sum, err := m.store.Summarize(m.gameID); err == nil {
			m.summary = sum
		}
	}
	m.updateTableRows()
}

// updateTableRows refills the table from the loaded runs.
func (m *HistoryModel) updateTableRows() {
	withDigest := len(m.table.Columns()) == 7

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			shortID(r.ID),
			r.Source,
			fmt.Sprintf("%gx%g", r.ArenaW, r.ArenaH),
			fmt.Sprintf("%d", r.Ticks),
			fmt.Sprintf("%d", r.Contacts()),
		}
		if withDigest {
			row = append(row, fmt.Sprintf("%016x", r.Digest))
		}
		rows[i] = append(row, r.Created.Local().Format("Jan 02 15:04"))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.standalone {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.load()
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
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting || (m.goingBack && m.standalone) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := fmt.Sprintf("RUN HISTORY - %s", m.gameID)
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(tableRendered, m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar renders the aggregate numbers for the game.
func (m HistoryModel) renderSidebar() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	last := "never"
	if !m.summary.LastPlayed.IsZero() {
		last = m.summary.LastPlayed.Local().Format("Jan 02 15:04")
	}

	lines := []string{
		"Summary",
		strings.Repeat("-", sidebarWidth-4),
		labelStyle.Render("runs      ") + fmt.Sprintf("%d", m.summary.Runs),
		labelStyle.Render("ticks     ") + fmt.Sprintf("%d", m.summary.TotalTicks),
		labelStyle.Render("longest   ") + fmt.Sprintf("%d", m.summary.MaxTicks),
		labelStyle.Render("contacts  ") + fmt.Sprintf("%d", m.summary.Contacts),
		labelStyle.Render("last      ") + last,
	}
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.\nThe database could not be opened.")
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load runs:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs recorded yet.\nPlay a round to record one!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to leave the history view.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// RunHistory runs the history view as its own program.
func RunHistory(store *storage.Store, gameID string, width, height int) error {
	model := NewHistoryModel(store, gameID, width, height)
	model.standalone = true

	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

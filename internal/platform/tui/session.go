package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// SessionModel is the top-level model for a terminal session. It runs the
// game and switches to the run history when the player backs out; leaving
// the history starts a fresh game.
type SessionModel struct {
	gameID   string
	recorder *Recorder
	config   core.RuntimeConfig
	game     *Model
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a session for the registered game gameID.
func NewSessionModel(gameID string, recorder *Recorder, cfg core.RuntimeConfig) (SessionModel, error) {
	m := SessionModel{
		gameID:   gameID,
		recorder: recorder,
		config:   cfg,
	}
	if err := m.newGame(); err != nil {
		return SessionModel{}, err
	}
	return m, nil
}

// newGame replaces the active view with a fresh game.
func (m *SessionModel) newGame() error {
	game, err := registry.Create(m.gameID)
	if err != nil {
		return err
	}
	model := NewModel(game, m.recorder, m.config)
	m.game = &model
	m.history = nil
	return nil
}

// Init starts the game.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.history != nil {
		return m.updateHistory(msg)
	}
	return m.updateGame(msg)
}

// updateGame handles updates while the game is shown.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if g, ok := next.(Model); ok {
		m.game = &g
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackRequested():
		h := NewHistoryModel(m.store(), m.gameID, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		m.game = nil
		return m, h.Init()
	}
	return m, cmd
}

// updateHistory handles updates while the run history is shown.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	if h, ok := next.(HistoryModel); ok {
		m.history = &h
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		// The game was registered when the session started
		if err := m.newGame(); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) store() *storage.Store {
	if m.recorder == nil {
		return nil
	}
	return m.recorder.Store
}

// View renders the active view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.history != nil:
		return m.history.View()
	default:
		return m.game.View()
	}
}

// Run starts a local session for gameID in the current terminal.
func Run(gameID string, recorder *Recorder, cfg core.RuntimeConfig) error {
	model, err := NewSessionModel(gameID, recorder, cfg)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

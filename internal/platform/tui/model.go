package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Recorder saves finished sessions to the run history.
// A nil Recorder or one without a store records nothing.
type Recorder struct {
	Store  *storage.Store
	Logger *log.Logger
	Source string // storage.SourceTUI, SourceSSH or SourceSim
}

// Record stores the game's current session if it ran at least one tick.
// Games that cannot summarize themselves are skipped.
func (r *Recorder) Record(game registry.Game) {
	if r == nil || r.Store == nil {
		return
	}
	s, ok := game.(registry.Summarizer)
	if !ok {
		return
	}
	sum := s.Summary()
	if sum.Ticks == 0 {
		return
	}

	id, err := r.Store.SaveRun(storage.Run{
		GameID: game.ID(),
		Source: r.Source,
		ArenaW: sum.ArenaW,
		ArenaH: sum.ArenaH,
		Ticks:  sum.Ticks,
		Left:   sum.Left,
		Right:  sum.Right,
		Top:    sum.Top,
		Bottom: sum.Bottom,
		Inside: sum.Inside,
		Digest: sum.Digest,
	})
	logger := r.logger()
	if err != nil {
		logger.Warn("could not save run", "game", game.ID(), "error", err)
		return
	}
	logger.Info("run saved", "id", id, "ticks", sum.Ticks, "digest", fmt.Sprintf("%016x", sum.Digest))
}

func (r *Recorder) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

// Model is the Bubble Tea model for running one simulation.
type Model struct {
	game     registry.Game
	screen   *core.Screen
	recorder *Recorder
	config   core.RuntimeConfig
	keys     *KeyMapper
	input    *HeldInput
	gen      uint64 // Tick generation owned by this model
	state    core.GameState
	quitting bool
	back     bool // User asked to leave the game view
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, recorder *Recorder, cfg core.RuntimeConfig) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	return Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		recorder: recorder,
		config:   cfg,
		keys:     NewKeyMapper(),
		input:    NewHeldInput(DefaultHoldWindow),
		gen:      nextTickGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.recorder.Record(m.game)
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.recorder.Record(m.game)
		m.input.Release()
		m.back = true
		return m, nil
	}

	m.input.Press(action, now)
	return m, nil
}

// handleResize follows the terminal size. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(m.config)
	return m, nil
}

// handleTick samples input and advances the simulation by one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.back || m.quitting {
		return m, nil
	}

	frame := m.input.Frame(now)
	if frame.Has(core.ActionRestart) {
		m.recorder.Record(m.game)
	}

	result := m.game.Step(frame)
	m.state = result.State

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// IsQuitting returns true if the user asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackRequested returns true if the user asked to leave the game view.
func (m Model) BackRequested() bool {
	return m.back
}

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// DefaultHoldWindow is how long a direction key counts as held after its
// last press or auto-repeat. Terminals report no key releases, so a held
// key is one whose repeats keep arriving within this window.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "p", " ":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b", "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// HeldInput turns a stream of key presses into per-tick input frames.
// Up and Down are held state: they stay active while presses keep arriving
// within the hold window. Other actions fire once, on the next frame.
type HeldInput struct {
	window   time.Duration
	lastUp   time.Time
	lastDown time.Time
	pending  core.InputFrame
}

// NewHeldInput creates a sampler with the given hold window.
// A non-positive window uses DefaultHoldWindow.
func NewHeldInput(window time.Duration) *HeldInput {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &HeldInput{window: window, pending: core.NewInputFrame()}
}

// Press records an action observed at time now. Pressing one direction
// releases the other.
func (h *HeldInput) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
	case core.ActionUp:
		h.lastUp = now
		h.lastDown = time.Time{}
	case core.ActionDown:
		h.lastDown = now
		h.lastUp = time.Time{}
	default:
		h.pending.Set(a)
	}
}

// Release drops every held direction and pending trigger.
func (h *HeldInput) Release() {
	h.lastUp, h.lastDown = time.Time{}, time.Time{}
	h.pending.Clear()
}

// Frame samples the input for a tick at time now and consumes the pending
// one-shot actions.
func (h *HeldInput) Frame(now time.Time) core.InputFrame {
	frame := h.pending.Clone()
	h.pending.Clear()

	if h.held(h.lastUp, now) {
		frame.Set(core.ActionUp)
	}
	if h.held(h.lastDown, now) {
		frame.Set(core.ActionDown)
	}
	return frame
}

func (h *HeldInput) held(last, now time.Time) bool {
	return !last.IsZero() && now.Sub(last) < h.window
}

package core

// Action is a semantic input, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move paddle up
	ActionDown           // S, Down arrow - move paddle down
	ActionPause          // P - pause/unpause simulation
	ActionRestart        // R - respawn all entities
	ActionBack           // B, Escape - leave the current view
	ActionQuit           // Q, Ctrl+C - exit

	actionCount
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions active during one simulation tick.
// Up and Down are held state sampled at tick time; the others are one-shot
// triggers. The zero value is an empty frame.
type InputFrame struct {
	bits uint32
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks an action as active for this frame. ActionNone and unknown
// actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a <= ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << uint(a)
}

// Has reports whether a is active this frame.
func (f InputFrame) Has(a Action) bool {
	if a <= ActionNone || a >= actionCount {
		return false
	}
	return f.bits&(1<<uint(a)) != 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.bits = 0
}

// Clone returns a copy of the frame.
func (f InputFrame) Clone() InputFrame {
	return f
}

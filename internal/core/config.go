package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and arena dimensions.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)

	// ArenaW and ArenaH override the arena size in simulation units.
	// Zero means the game derives it from its own config or the screen.
	ArenaW float64
	ArenaH float64
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Tick     uint64 // Simulated ticks since the last reset
	Paused   bool   // Whether the simulation is paused
	Contacts int    // Ball contacts resolved since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// RunSummary describes a finished session for run history.
type RunSummary struct {
	ArenaW, ArenaH float64
	Ticks          uint64
	Left, Right    int // Contacts by side
	Top, Bottom    int
	Inside         int
	Digest         uint64 // Hash of the final state
}

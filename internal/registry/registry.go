// Package registry maps simulation IDs to factories. Simulations register
// themselves from init, so the CLI and the TUI can create one by name
// without importing its package directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Game is a fixed-step simulation the platform can drive.
// Implementations hold no terminal or network state: the platform samples
// input, owns the clock and paints the screen buffer.
type Game interface {
	// ID returns the unique key used on the command line and in run history.
	ID() string

	// Title returns a display name.
	Title() string

	// Reset spawns a fresh world sized for the runtime config.
	Reset(cfg core.RuntimeConfig)

	// Resize follows a terminal size change without respawning.
	Resize(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render paints the current state into dst. It must not mutate the game.
	Render(dst *core.Screen)

	// State reports the tick counter, pause flag and contact count.
	State() core.GameState
}

// Summarizer is implemented by games that can describe a finished session.
// The platform uses it to record run history.
type Summarizer interface {
	Summary() core.RunSummary
}

// GameInfo describes a registered simulation.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new simulation instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered simulation sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates the simulation registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

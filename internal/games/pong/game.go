// Package pong implements the ball-and-paddle simulation: an entity
// registry, a per-tick input mapper, integrator and AABB collision
// response, and a Game adapter that plugs them into the platform.
// The left paddle follows player input; the right paddle stays idle.
package pong

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

var logger = log.Default()

// SetLogger sets the logger used to report config load failures.
// A nil logger restores the default.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	logger = l
}

// Game adapts the simulation to the platform's game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.PongConfig
	loaded  bool // cfg was supplied or loaded
	params  Params
	world   *World

	tick   uint64
	paused bool
	stats  Stats
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset spawns a fresh set of entities for the runtime's arena.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if !g.loaded {
		cfg, err := config.LoadPong(configPath)
		if err != nil {
			logger.Warn("failed to load config, using defaults", "path", configPath, "error", err)
			cfg = config.DefaultPongConfig()
		}
		g.cfg = cfg
		g.loaded = true
	}
	g.params = ParamsFromConfig(g.cfg)
	g.respawn()
	g.paused = false
}

// respawn rebuilds the world from the current arena size.
func (g *Game) respawn() {
	world, err := NewArenaWorld(ArenaFor(g.runtime, g.cfg), g.params)
	if err != nil {
		// NewArenaWorld only fails on a duplicate singleton in a fresh world
		panic(fmt.Sprintf("pong: spawn failed: %v", err))
	}
	g.world = world
	g.tick = 0
	g.stats = Stats{}
}

// Resize follows a change of screen size without respawning. The arena
// size seen by paddle movement changes; gutters keep their spawn-time
// position and width.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.world != nil {
		g.world.SetArena(ArenaFor(runtime, g.cfg))
	}
}

// ArenaFor resolves the arena size: runtime override, then the configured
// size, then the screen size scaled by the configured cell size.
func ArenaFor(runtime core.RuntimeConfig, cfg config.PongConfig) Arena {
	w, h := runtime.ArenaW, runtime.ArenaH
	if w <= 0 {
		w = cfg.Arena.Width
	}
	if w <= 0 {
		w = float64(runtime.ScreenW) * cfg.Arena.CellWidth
	}
	if h <= 0 {
		h = cfg.Arena.Height
	}
	if h <= 0 {
		h = float64(runtime.ScreenH) * cfg.Arena.CellHeight
	}
	return Arena{Width: w, Height: h}
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) {
		g.respawn()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	contacts := Tick(g.world, g.params, in.Has(core.ActionUp), in.Has(core.ActionDown))
	g.stats.Record(contacts)
	g.tick++

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:     g.tick,
		Paused:   g.paused,
		Contacts: g.stats.Total(),
	}
}

// World exposes the entity registry for read access by tools and tests.
func (g *Game) World() *World {
	return g.world
}

// Params returns the simulation params in use.
func (g *Game) Params() Params {
	return g.params
}

// Stats returns the contact statistics since the last reset.
func (g *Game) Stats() Stats {
	return g.stats
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}

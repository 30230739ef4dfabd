package pong

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultPongConfig())
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestArenaFor(t *testing.T) {
	cfg := config.DefaultPongConfig()

	assert.Equal(t, Arena{Width: 800, Height: 600}, ArenaFor(core.DefaultConfig(), cfg))

	override := core.DefaultConfig()
	override.ArenaW, override.ArenaH = 1024, 768
	assert.Equal(t, Arena{Width: 1024, Height: 768}, ArenaFor(override, cfg))

	cfg.Arena.Width, cfg.Arena.Height = 640, 480
	assert.Equal(t, Arena{Width: 640, Height: 480}, ArenaFor(core.DefaultConfig(), cfg))
}

func TestStepHoldingUp(t *testing.T) {
	g := newTestGame(t)

	for range 10 {
		g.Step(frame(core.ActionUp))
	}

	player, ok := g.World().Player()
	require.True(t, ok)
	assert.Equal(t, 10.0, player.Position.Y)
	assert.Equal(t, uint64(10), g.State().Tick)

	ball, _ := g.World().Ball()
	assert.Equal(t, core.V(50, 0), ball.Position)
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.Equal(t, uint64(0), res.State.Tick)

	g.Step(frame(core.ActionUp))
	player, _ := g.World().Player()
	assert.Equal(t, 0.0, player.Position.Y, "paused game ignores held keys")

	res = g.Step(frame(core.ActionPause, core.ActionUp))
	assert.False(t, res.State.Paused)
	assert.Equal(t, uint64(1), res.State.Tick)
	assert.Equal(t, 1.0, player.Position.Y)
}

func TestRestartRespawns(t *testing.T) {
	g := newTestGame(t)
	for range 20 {
		g.Step(frame(core.ActionDown))
	}

	g.Step(frame(core.ActionRestart))

	assert.Equal(t, uint64(1), g.State().Tick)
	ball, _ := g.World().Ball()
	assert.Equal(t, core.V(5, 0), ball.Position)
	player, _ := g.World().Player()
	assert.Equal(t, 0.0, player.Position.Y)
}

func TestResizeMovesBoundNotGutters(t *testing.T) {
	g := newTestGame(t)
	gutters := g.World().Obstacles()[2:]
	top, bottom := *gutters[0], *gutters[1]

	small := core.DefaultConfig()
	small.ScreenH = 12
	g.Resize(small)

	assert.Equal(t, Arena{Width: 800, Height: 300}, g.World().Arena())
	after := g.World().Obstacles()[2:]
	assert.Equal(t, top, *after[0], "gutters keep their spawn-time placement")
	assert.Equal(t, bottom, *after[1])

	// Bound for 300 high is 150 - 20 - 25 = 105
	for range 200 {
		g.Step(frame(core.ActionUp))
	}
	player, _ := g.World().Player()
	assert.Equal(t, 104.0, player.Position.Y)
	assert.Equal(t, uint64(200), g.State().Tick, "resize does not reset the tick counter")
}

func TestStatsCountContacts(t *testing.T) {
	g := newTestGame(t)

	for range 69 {
		g.Step(core.NewInputFrame())
	}

	assert.Equal(t, 1, g.Stats().Left)
	assert.Equal(t, 1, g.State().Contacts)
}

func TestSnapshotHashDeterministic(t *testing.T) {
	run := func(pattern func(i int) core.InputFrame) uint64 {
		g := newTestGame(t)
		for i := range 500 {
			g.Step(pattern(i))
		}
		return g.Snapshot().Hash()
	}

	alternating := func(i int) core.InputFrame {
		if i%40 < 20 {
			return frame(core.ActionUp)
		}
		return frame(core.ActionDown)
	}
	idle := func(int) core.InputFrame { return core.NewInputFrame() }

	assert.Equal(t, run(alternating), run(alternating))
	assert.NotEqual(t, run(alternating), run(idle))
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()
	snap.Entities[0].Position = core.V(1, 1)

	ball, _ := g.World().Ball()
	assert.Equal(t, core.V(0, 0), ball.Position)
}

func TestRenderProjection(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	ball := screen.GetCell(40, 12)
	assert.Equal(t, BallChar, ball.Rune)
	assert.Equal(t, core.ColorRed, ball.Color)

	player := screen.GetCell(5, 12)
	assert.Equal(t, PaddleChar, player.Rune)
	assert.Equal(t, core.ColorBlue, player.Color)

	idle := screen.GetCell(75, 12)
	assert.Equal(t, PaddleChar, idle.Rune)
	assert.Equal(t, core.ColorGreen, idle.Color)

	gutter := screen.GetCell(79, 23)
	assert.Equal(t, GutterChar, gutter.Rune)
	assert.Equal(t, core.ColorGray, gutter.Color)

	assert.Contains(t, screen.Row(0), "tick 0")
}

func TestRenderDoesNotMutate(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionUp))
	before := g.Snapshot().Hash()

	g.Render(core.NewScreen(80, 24))

	assert.Equal(t, before, g.Snapshot().Hash())
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionPause))
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	assert.Contains(t, screen.String(), "PAUSED")
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists("pong"))

	g, err := registry.Create("pong")
	require.NoError(t, err)
	assert.Equal(t, "Pong", g.Title())
}

func TestSummary(t *testing.T) {
	g := newTestGame(t)
	for range 69 {
		g.Step(core.NewInputFrame())
	}

	sum := g.Summary()
	assert.Equal(t, uint64(69), sum.Ticks)
	assert.Equal(t, 800.0, sum.ArenaW)
	assert.Equal(t, 600.0, sum.ArenaH)
	assert.Equal(t, 1, sum.Left)
	assert.Equal(t, g.Snapshot().Hash(), sum.Digest)
}

func TestResetWarnsOnConfigLoadFailure(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() {
		SetLogger(nil)
		SetConfigPath("")
	})

	g := New()
	g.Reset(core.DefaultConfig())

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "missing.yaml")
	assert.Equal(t, ParamsFromConfig(config.DefaultPongConfig()), g.Params(), "falls back to defaults")
}

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagSimTicks int
	flagSimArena string
	flagSimHold  string
	flagSimEvery int
	flagSimSave  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation and print the trajectory",
	Long: `Run the simulation without a terminal UI for a fixed number of ticks
and print the ball and player paddle every few ticks, followed by the
contact totals and the final state digest. Runs with the same config,
arena and input print the same digest.

Hold patterns:
  none       - No input, the player paddle stays put
  up         - Up held on every tick
  down       - Down held on every tick
  alternate  - Up and down in turns of 60 ticks

Examples:
  pong sim
  pong sim --ticks 300 --hold up
  pong sim --arena 1024x768 --every 1 --save=false`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 300, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimArena, "arena", "800x600", "Arena size as WIDTHxHEIGHT")
	simCmd.Flags().StringVar(&flagSimHold, "hold", "none", "Input pattern: none, up, down, alternate")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 10, "Print a row every N ticks")
	simCmd.Flags().BoolVar(&flagSimSave, "save", true, "Record the run in the database")
}

// holdPattern returns the input for a tick, counted from zero.
type holdPattern func(tick int) core.InputFrame

func parseHold(name string) (holdPattern, error) {
	held := func(a core.Action) core.InputFrame {
		in := core.NewInputFrame()
		in.Set(a)
		return in
	}

	switch name {
	case "none", "":
		return func(int) core.InputFrame { return core.NewInputFrame() }, nil
	case "up":
		return func(int) core.InputFrame { return held(core.ActionUp) }, nil
	case "down":
		return func(int) core.InputFrame { return held(core.ActionDown) }, nil
	case "alternate":
		return func(tick int) core.InputFrame {
			if (tick/60)%2 == 0 {
				return held(core.ActionUp)
			}
			return held(core.ActionDown)
		}, nil
	}
	return nil, fmt.Errorf("unknown hold pattern %q", name)
}

// parseArena parses a WIDTHxHEIGHT size and checks it against cfg.
func parseArena(s string, cfg config.PongConfig) (pong.Arena, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return pong.Arena{}, fmt.Errorf("arena %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.ParseFloat(ws, 64)
	if err != nil {
		return pong.Arena{}, fmt.Errorf("arena width %q: %w", ws, err)
	}
	h, err := strconv.ParseFloat(hs, 64)
	if err != nil {
		return pong.Arena{}, fmt.Errorf("arena height %q: %w", hs, err)
	}
	if err := cfg.CheckArena(w, h); err != nil {
		return pong.Arena{}, err
	}
	return pong.Arena{Width: w, Height: h}, nil
}

func runSim(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	arena, err := parseArena(flagSimArena, cfg)
	if err != nil {
		return err
	}
	hold, err := parseHold(flagSimHold)
	if err != nil {
		return err
	}
	if flagSimTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagSimTicks)
	}

	logger := newLogger(os.Stderr, "pong-sim")
	game := pong.NewWithConfig(cfg)
	simulate(os.Stdout, game, arena, flagSimTicks, flagSimEvery, hold)

	if !flagSimSave {
		return nil
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run not recorded", "error", err)
		return nil
	}
	defer store.Close()

	recorder := &tui.Recorder{Store: store, Logger: logger, Source: storage.SourceSim}
	recorder.Record(game)
	return nil
}

// simulate resets game to arena, runs it for ticks ticks and writes the
// trajectory table and summary to w.
func simulate(w io.Writer, game *pong.Game, arena pong.Arena, ticks, every int, hold holdPattern) {
	runtime := core.DefaultConfig()
	runtime.ArenaW, runtime.ArenaH = arena.Width, arena.Height
	game.Reset(runtime)

	if every <= 0 {
		every = 1
	}

	fmt.Fprintf(w, "Arena %gx%g, paddle bound |y| < %g\n\n", arena.Width, arena.Height, game.Params().PaddleBound(arena.Height))
	fmt.Fprintf(w, "  %6s  %9s  %9s  %6s  %6s  %9s  %8s\n", "Tick", "Ball X", "Ball Y", "Vel X", "Vel Y", "Player Y", "Contacts")
	fmt.Fprintf(w, "  %6s  %9s  %9s  %6s  %6s  %9s  %8s\n", "----", "------", "------", "-----", "-----", "--------", "--------")

	for i := range ticks {
		game.Step(hold(i))
		state := game.State()
		if int(state.Tick)%every != 0 && i != ticks-1 {
			continue
		}

		var ball, player pong.Entity
		if b, ok := game.World().Ball(); ok {
			ball = *b
		}
		if p, ok := game.World().Player(); ok {
			player = *p
		}
		fmt.Fprintf(w, "  %6d  %9.2f  %9.2f  %6.2f  %6.2f  %9.2f  %8d\n",
			state.Tick, ball.Position.X, ball.Position.Y,
			ball.Velocity.X, ball.Velocity.Y, player.Position.Y, state.Contacts)
	}

	stats := game.Stats()
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Contacts: left %d, right %d, top %d, bottom %d, inside %d\n",
		stats.Left, stats.Right, stats.Top, stats.Bottom, stats.Inside)
	fmt.Fprintf(w, "Digest:   %016x\n", game.Snapshot().Hash())
}

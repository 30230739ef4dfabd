package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the current terminal",
	Long: `Start a session in the current terminal.

Controls:
  W/Up       - Move your paddle up (hold)
  S/Down     - Move your paddle down (hold)
  P/Space    - Pause
  R          - Respawn everything
  B/Esc      - Show run history
  Ctrl+S     - Save a screenshot to ~/.pong/screenshots
  Q/Ctrl+C   - Quit

Runs are recorded in the database when you quit, respawn or open the
history. Log output goes to a file so it does not disturb the screen.

Examples:
  pong play
  pong play --fps 30
  pong play --config ./big-arena.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "~/.pong/pong.log", "Path to the log file")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'pong list' to see available games", gameID)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger := newLogger(logFile, "pong")
	pong.SetLogger(logger)

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cfg),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "error", err)
		// Continue without history
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("session started", "game", gameID, "screen", fmt.Sprintf("%dx%d", width, height), "fps", runtime.TickRate)
	recorder := &tui.Recorder{Store: store, Logger: logger, Source: storage.SourceTUI}
	if err := tui.Run(gameID, recorder, runtime); err != nil {
		logger.Error("session failed", "error", err)
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("session ended", "game", gameID)
	return nil
}

// openLogFile opens path for appending, creating parent directories.
func openLogFile(path string) (*os.File, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("expand log path: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

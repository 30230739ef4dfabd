// pong runs a ball-and-paddle simulation in the terminal.
//
// Usage:
//
//	pong play               - Play in the current terminal
//	pong sim                - Run headless and print the trajectory
//	pong runs [id]          - Show recorded runs
//	pong serve              - Start SSH server for remote play
//	pong list               - List available simulations
//	pong config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Override the configured tick rate
//	--db <path>           - Set database path (default: ~/.pong/runs.db)
//	--config <path>       - Use a custom config YAML
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

const defaultGameID = "pong"

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - a paddle and ball simulation for your terminal",
	Long: `Pong simulates a ball bouncing between two paddles and two gutters.
The left paddle follows your input; the right one stands still.

Available commands:
  play     - Play in the current terminal
  sim      - Run a headless simulation and print the trajectory
  runs     - Show recorded runs
  serve    - Start SSH server for remote play
  list     - Show available simulations
  config   - Print the effective configuration

Examples:
  pong play
  pong sim --ticks 300 --hold up
  pong runs
  pong serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if _, err := log.ParseLevel(flagLogLevel); err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		pong.SetConfigPath(flagConfig)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger at the configured level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// loadConfig loads and validates the configuration selected by --config.
func loadConfig() (config.PongConfig, error) {
	cfg, err := config.LoadPong(flagConfig)
	if err != nil {
		return config.PongConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// tickRate returns the --fps override or the configured rate.
func tickRate(cfg config.PongConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.Sim.TickRate
}

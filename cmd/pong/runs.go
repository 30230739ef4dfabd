package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsGame  string
	flagRunsTUI   bool
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [id]",
	Short: "Show recorded runs",
	Long: `List the most recent recorded runs, or show one run in detail.

Examples:
  pong runs
  pong runs --limit 50
  pong runs 3f2a9c1e-...
  pong runs --tui
  pong runs --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().StringVar(&flagRunsGame, "game", defaultGameID, "Game to list runs for (empty = all)")
	runsCmd.Flags().BoolVar(&flagRunsTUI, "tui", false, "Browse runs interactively")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete every recorded run of --game")
}

func runRuns(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open run database: %w", err)
	}
	defer store.Close()

	switch {
	case len(args) == 1:
		return showRun(store, args[0])
	case flagRunsClear:
		if err := store.DeleteRuns(flagRunsGame); err != nil {
			return err
		}
		fmt.Printf("Deleted all runs of %s.\n", flagRunsGame)
		return nil
	case flagRunsTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, flagRunsGame, width, height)
	}

	runs, err := store.RecentRuns(flagRunsGame, flagRunsLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' or 'pong sim' to record one.")
		return nil
	}

	fmt.Printf("  %-8s  %-4s  %-10s  %7s  %5s  %-16s  %s\n", "Run", "Src", "Arena", "Ticks", "Hits", "Digest", "Date")
	fmt.Printf("  %-8s  %-4s  %-10s  %7s  %5s  %-16s  %s\n", "---", "---", "-----", "-----", "----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-4s  %-10s  %7d  %5d  %016x  %s\n",
			shortRunID(r.ID), r.Source, fmt.Sprintf("%gx%g", r.ArenaW, r.ArenaH),
			r.Ticks, r.Contacts(), r.Digest, r.Created.Local().Format("2006-01-02 15:04"))
	}

	if flagRunsGame != "" {
		sum, err := store.Summarize(flagRunsGame)
		if err == nil {
			fmt.Println()
			fmt.Printf("%d runs, %d ticks in total, longest %d ticks\n", sum.Runs, sum.TotalTicks, sum.MaxTicks)
		}
	}
	return nil
}

func showRun(store *storage.Store, id string) error {
	r, err := store.Run(id)
	if err != nil {
		return err
	}

	fmt.Printf("Run      %s\n", r.ID)
	fmt.Printf("Game     %s (%s)\n", r.GameID, r.Source)
	fmt.Printf("Date     %s\n", r.Created.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("Arena    %gx%g\n", r.ArenaW, r.ArenaH)
	fmt.Printf("Ticks    %d\n", r.Ticks)
	fmt.Printf("Contacts left %d, right %d, top %d, bottom %d, inside %d\n",
		r.Left, r.Right, r.Top, r.Bottom, r.Inside)
	fmt.Printf("Digest   %016x\n", r.Digest)
	return nil
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

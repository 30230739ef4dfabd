// Package tui runs simulations in the terminal with Bubble Tea: a fixed
// rate tick loop, held-key input sampling, screen rendering, the run
// history browser and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen ties the tick to the
// game model that scheduled it, so a tick still in flight when a game is
// replaced does not drive its successor.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a command that sends a tick message after one tick interval.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

package pong

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/registry"
)

// Snapshot is a copy of the simulation state at a tick.
type Snapshot struct {
	Tick     uint64
	Arena    Arena
	Entities []Entity
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{Tick: g.tick}
	if g.world != nil {
		snap.Arena = g.world.Arena()
		snap.Entities = g.world.Entities()
	}
	return snap
}

// Hash returns a digest of the snapshot for determinism checks.
// Two runs with the same config and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	buf := make([]byte, 0, 16+len(s.Entities)*64)
	buf = binary.LittleEndian.AppendUint64(buf, s.Tick)
	buf = appendFloat(buf, s.Arena.Width)
	buf = appendFloat(buf, s.Arena.Height)

	for _, e := range s.Entities {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e.ID)) //#nosec G115 -- ids are non-negative
		buf = append(buf, byte(e.Kind))
		if e.Player {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
		for _, v := range []float64{
			e.Position.X, e.Position.Y,
			e.Shape.X, e.Shape.Y,
			e.Velocity.X, e.Velocity.Y,
		} {
			buf = appendFloat(buf, v)
		}
	}
	return xxhash.Sum64(buf)
}

func appendFloat(buf []byte, v float64) []byte {
	if v == 0 {
		v = 0 // fold -0 into +0
	}
	return binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
}

// Summary describes the session since the last reset.
func (g *Game) Summary() core.RunSummary {
	sum := core.RunSummary{
		Ticks:  g.tick,
		Left:   g.stats.Left,
		Right:  g.stats.Right,
		Top:    g.stats.Top,
		Bottom: g.stats.Bottom,
		Inside: g.stats.Inside,
		Digest: g.Snapshot().Hash(),
	}
	if g.world != nil {
		arena := g.world.Arena()
		sum.ArenaW, sum.ArenaH = arena.Width, arena.Height
	}
	return sum
}

var _ registry.Summarizer = (*Game)(nil)

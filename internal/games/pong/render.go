package pong

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '█'
	GutterChar = '▒'
)

// projection maps arena space (origin at center, y up) onto screen cells
// (origin top-left, y down).
type projection struct {
	arena      Arena
	cols, rows int
}

func (p projection) col(x float64) int {
	return int(math.Round((x + p.arena.Width/2) * float64(p.cols) / p.arena.Width))
}

func (p projection) row(y float64) int {
	return int(math.Round((p.arena.Height/2 - y) * float64(p.rows) / p.arena.Height))
}

// rect returns the cells covered by a box, at least one cell in each direction.
func (p projection) rect(b core.Box) core.Rect {
	lo, hi := b.Min(), b.Max()
	x0, x1 := p.col(lo.X), p.col(hi.X)
	y0, y1 := p.row(hi.Y), p.row(lo.Y)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws every entity at its current position. It only reads the world.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	arena := g.world.Arena()
	if arena.Width <= 0 || arena.Height <= 0 {
		return
	}
	proj := projection{arena: arena, cols: dst.Width(), rows: dst.Height()}

	for _, e := range g.world.Entities() {
		glyph, color := appearance(e)
		dst.FillRect(proj.rect(e.Box()), glyph, color)
	}

	hud := fmt.Sprintf(" tick %d  contacts %d ", g.tick, g.stats.Total())
	dst.DrawText(1, 0, hud)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "P to resume  |  R to respawn")
	}
}

// appearance picks the glyph and color for an entity.
func appearance(e Entity) (rune, core.Color) {
	switch e.Kind {
	case KindBall:
		return BallChar, core.ColorRed
	case KindPaddle:
		if e.Player {
			return PaddleChar, core.ColorBlue
		}
		return PaddleChar, core.ColorGreen
	default:
		return GutterChar, core.ColorGray
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect((dst.Width()-boxW)/2, boxY, boxW, boxH)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}

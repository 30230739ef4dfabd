package pong

import (
	"github.com/vovakirdan/tui-pong/internal/core"
)

// NewArenaWorld creates a world and spawns every entity for the arena:
// the ball at the origin, a paddle inset from each side and a gutter along
// the top and bottom edges. The left paddle is the player's.
func NewArenaWorld(arena Arena, p Params) (*World, error) {
	w := NewWorld(arena)
	if err := SpawnBall(w, p); err != nil {
		return nil, err
	}
	if err := SpawnPaddles(w, p); err != nil {
		return nil, err
	}
	SpawnGutters(w, p)
	return w, nil
}

// SpawnBall adds the ball at the arena origin.
func SpawnBall(w *World, p Params) error {
	_, err := w.Spawn(Entity{
		Kind:     KindBall,
		Position: core.V(0, 0),
		Shape:    core.V(p.BallWidth, p.BallWidth),
		Velocity: p.BallVelocity,
	})
	return err
}

// SpawnPaddles adds the player paddle on the left and an idle paddle on
// the right, both vertically centered.
func SpawnPaddles(w *World, p Params) error {
	arena := w.Arena()
	shape := core.V(p.PaddleWidth, p.PaddleHeight)

	if _, err := w.Spawn(Entity{
		Kind:     KindPaddle,
		Player:   true,
		Position: core.V(-arena.Width/2+p.PaddleInset, 0),
		Shape:    shape,
	}); err != nil {
		return err
	}

	// Right paddle: no controller yet, stays put
	_, err := w.Spawn(Entity{
		Kind:     KindPaddle,
		Position: core.V(arena.Width/2-p.PaddleInset, 0),
		Shape:    shape,
	})
	return err
}

// SpawnGutters adds the top and bottom gutters spanning the arena width.
// They are placed once from the current arena size and never updated.
func SpawnGutters(w *World, p Params) {
	arena := w.Arena()
	shape := core.V(arena.Width, p.GutterHeight)

	// Gutters are never a ball or a player, so Spawn cannot fail.
	_, _ = w.Spawn(Entity{
		Kind:     KindGutter,
		Position: core.V(0, arena.Height/2-p.GutterHeight/2),
		Shape:    shape,
	})
	_, _ = w.Spawn(Entity{
		Kind:     KindGutter,
		Position: core.V(0, -arena.Height/2+p.GutterHeight/2),
		Shape:    shape,
	})
}

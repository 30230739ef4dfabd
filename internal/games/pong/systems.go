package pong

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ApplyInput sets the player paddle's velocity to ±PaddleSpeed from the
// held directions. Up wins when both are held; nothing held stops the
// paddle. Without a player paddle this is a no-op.
func ApplyInput(w *World, p Params, up, down bool) {
	player, ok := w.Player()
	if !ok {
		return
	}

	player.Velocity.X = 0
	switch {
	case up:
		player.Velocity.Y = p.PaddleSpeed
	case down:
		player.Velocity.Y = -p.PaddleSpeed
	default:
		player.Velocity.Y = 0
	}
}

// MoveBall advances the ball by its scaled velocity.
func MoveBall(w *World, p Params) {
	ball, ok := w.Ball()
	if !ok {
		return
	}
	ball.Position = ball.Position.Add(ball.Velocity.Scale(p.BallSpeed))
}

// MovePaddles advances every paddle by its scaled velocity. A move that
// would take the paddle center to or past the bound is dropped for this
// tick, leaving the paddle where it was. The bound is computed from the
// arena size current at this tick.
func MovePaddles(w *World, p Params) {
	bound := p.PaddleBound(w.Arena().Height)
	for _, paddle := range w.Paddles() {
		candidate := paddle.Position.Add(paddle.Velocity.Scale(p.PaddleSpeed))
		if math.Abs(candidate.Y) < bound {
			paddle.Position = candidate
		}
	}
}

// Contact records one resolved overlap between the ball and another entity.
type Contact struct {
	Other EntityID
	Kind  Kind
	Side  core.CollisionSide
}

// HandleCollisions tests the ball against every other entity in spawn
// order and reflects the ball velocity for each overlap: Left/Right flip
// x, Top/Bottom flip y, Inside does nothing. Overlaps are handled
// independently, so two contacts in one tick can flip the same axis twice.
func HandleCollisions(w *World) []Contact {
	ball, ok := w.Ball()
	if !ok {
		return nil
	}

	var contacts []Contact
	for _, other := range w.Obstacles() {
		side := core.Collide(ball.Box(), other.Box(), ball.Velocity)
		if side == core.CollisionNone {
			continue
		}

		switch {
		case side.Horizontal():
			ball.Velocity.X = -ball.Velocity.X
		case side.Vertical():
			ball.Velocity.Y = -ball.Velocity.Y
		}
		contacts = append(contacts, Contact{Other: other.ID, Kind: other.Kind, Side: side})
	}
	return contacts
}

// Tick runs one simulation step in causal order: input, integration,
// collision response.
func Tick(w *World, p Params, up, down bool) []Contact {
	ApplyInput(w, p, up, down)
	MoveBall(w, p)
	MovePaddles(w, p)
	return HandleCollisions(w)
}

package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Default simulation constants.
const (
	BallWidth    = 10.0
	BallSpeed    = 5.0
	PaddleSpeed  = 1.0
	PaddleWidth  = 10.0
	PaddleHeight = 50.0
	GutterHeight = 20.0
	PaddleInset  = 50.0
)

// Params holds the geometry and speed scale factors of a simulation.
type Params struct {
	BallWidth    float64
	BallSpeed    float64   // Ball velocity scale factor
	BallVelocity core.Vec2 // Initial ball velocity
	PaddleSpeed  float64   // Paddle velocity scale factor
	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // Distance of each paddle from its side of the arena
	GutterHeight float64
}

// DefaultParams returns the reference constants.
func DefaultParams() Params {
	return Params{
		BallWidth:    BallWidth,
		BallSpeed:    BallSpeed,
		BallVelocity: core.V(1, 0),
		PaddleSpeed:  PaddleSpeed,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		PaddleInset:  PaddleInset,
		GutterHeight: GutterHeight,
	}
}

// ParamsFromConfig converts a loaded configuration into simulation params.
func ParamsFromConfig(cfg config.PongConfig) Params {
	return Params{
		BallWidth:    cfg.Ball.Width,
		BallSpeed:    cfg.Ball.Speed,
		BallVelocity: core.V(cfg.Ball.VelocityX, cfg.Ball.VelocityY),
		PaddleSpeed:  cfg.Paddle.Speed,
		PaddleWidth:  cfg.Paddle.Width,
		PaddleHeight: cfg.Paddle.Height,
		PaddleInset:  cfg.Paddle.Inset,
		GutterHeight: cfg.Gutter.Height,
	}
}

// PaddleBound returns the exclusive limit on |y| for a paddle center:
// the paddle must stay strictly between the gutters.
func (p Params) PaddleBound(arenaHeight float64) float64 {
	return arenaHeight/2 - p.GutterHeight - p.PaddleHeight/2
}

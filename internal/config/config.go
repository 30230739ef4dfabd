// Package config provides YAML-based configuration loading for the pong
// simulation: arena geometry, entity sizes and speed scale factors.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all configuration for the Pong simulation.
type PongConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Ball   BallConfig   `yaml:"ball"`
	Paddle PaddleConfig `yaml:"paddle"`
	Gutter GutterConfig `yaml:"gutter"`
	Sim    SimConfig    `yaml:"sim"`
}

// ArenaConfig defines the playing field.
// A zero Width or Height means the size follows the terminal:
// columns*CellWidth by rows*CellHeight.
type ArenaConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	CellWidth  float64 `yaml:"cell_width"`  // Arena units per terminal column
	CellHeight float64 `yaml:"cell_height"` // Arena units per terminal row
}

// BallConfig defines the ball.
type BallConfig struct {
	Width     float64 `yaml:"width"`      // Side of the square ball
	Speed     float64 `yaml:"speed"`      // Velocity scale factor
	VelocityX float64 `yaml:"velocity_x"` // Initial velocity before scaling
	VelocityY float64 `yaml:"velocity_y"`
}

// PaddleConfig defines both paddles.
type PaddleConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Velocity scale factor
	Inset  float64 `yaml:"inset"` // Distance from each side of the arena
}

// GutterConfig defines the top and bottom obstacles.
type GutterConfig struct {
	Height float64 `yaml:"height"`
}

// SimConfig defines timing.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid pong config")

// Validate checks that the configuration describes a playable arena.
func (c PongConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"arena.cell_width", c.Arena.CellWidth},
		{"arena.cell_height", c.Arena.CellHeight},
		{"ball.width", c.Ball.Width},
		{"ball.speed", c.Ball.Speed},
		{"paddle.width", c.Paddle.Width},
		{"paddle.height", c.Paddle.Height},
		{"paddle.speed", c.Paddle.Speed},
		{"gutter.height", c.Gutter.Height},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidConfig, p.name, p.value)
		}
	}

	if c.Arena.Width < 0 || c.Arena.Height < 0 {
		return fmt.Errorf("%w: arena size must not be negative", ErrInvalidConfig)
	}
	if c.Paddle.Inset < 0 {
		return fmt.Errorf("%w: paddle.inset must not be negative", ErrInvalidConfig)
	}
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalidConfig, c.Sim.TickRate)
	}
	if c.Ball.VelocityX == 0 {
		return fmt.Errorf("%w: ball.velocity_x must not be zero", ErrInvalidConfig)
	}
	// A zero axis is taken from the terminal at run time.
	if c.Arena.Width > 0 {
		if err := c.checkWidth(c.Arena.Width); err != nil {
			return err
		}
	}
	if c.Arena.Height > 0 {
		if err := c.checkHeight(c.Arena.Height); err != nil {
			return err
		}
	}
	return nil
}

// CheckArena checks that an arena of the given size leaves the paddles a
// legal vertical range between the gutters and room on both sides.
func (c PongConfig) CheckArena(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: arena %gx%g must have a positive size", ErrInvalidConfig, width, height)
	}
	if err := c.checkHeight(height); err != nil {
		return err
	}
	return c.checkWidth(width)
}

func (c PongConfig) checkHeight(height float64) error {
	if c.PaddleBound(height) <= 0 {
		return fmt.Errorf("%w: arena height %g leaves no room for paddles between gutters", ErrInvalidConfig, height)
	}
	return nil
}

func (c PongConfig) checkWidth(width float64) error {
	if width/2-c.Paddle.Inset <= 0 {
		return fmt.Errorf("%w: arena width %g is too narrow for paddle inset %g", ErrInvalidConfig, width, c.Paddle.Inset)
	}
	return nil
}

// PaddleBound returns the exclusive limit on |y| for a paddle center in an
// arena of the given height.
func (c PongConfig) PaddleBound(height float64) float64 {
	return height/2 - c.Gutter.Height - c.Paddle.Height/2
}

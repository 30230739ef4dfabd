package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			CellWidth:  10,
			CellHeight: 25, // 80x24 terminal -> 800x600 arena
		},
		Ball: BallConfig{
			Width:     10,
			Speed:     5,
			VelocityX: 1,
			VelocityY: 0,
		},
		Paddle: PaddleConfig{
			Width:  10,
			Height: 50,
			Speed:  1,
			Inset:  50,
		},
		Gutter: GutterConfig{
			Height: 20,
		},
		Sim: SimConfig{
			TickRate: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}

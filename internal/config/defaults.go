package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It mirrors defaults/flappy.yaml and is used if the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  500,
			Height: 640,
		},
		Physics: PhysicsConfig{
			Gravity:     0.65,
			JumpImpulse: -8.5,
		},
		Player: PlayerConfig{
			X:      80,
			Width:  40,
			Height: 30,
		},
		Obstacles: ObstacleConfig{
			Width:         80,
			Gap:           180,
			Margin:        50,
			SpawnInterval: Duration(1400 * time.Millisecond),
		},
		Difficulty: DifficultyConfig{
			ScrollSpeed: -3,
			Ramp:        0.002,
		},
		Render: RenderConfig{
			TiltFactor: 3,
			MinTilt:    -30,
			MaxTilt:    45,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

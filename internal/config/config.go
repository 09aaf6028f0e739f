// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// FlappyConfig contains all tunable parameters of the game.
type FlappyConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Render     RenderConfig     `yaml:"render"`
}

// BoardConfig defines the logical playfield size.
type BoardConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines per-frame vertical physics.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the player's fixed column and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstacleConfig defines obstacle pair geometry and spawn cadence.
type ObstacleConfig struct {
	Width         float64  `yaml:"width"`
	Gap           float64  `yaml:"gap"`
	Margin        float64  `yaml:"margin"`
	SpawnInterval Duration `yaml:"spawn_interval"`
}

// DifficultyConfig defines the scroll speed ramp.
type DifficultyConfig struct {
	ScrollSpeed float64 `yaml:"scroll_speed"` // Initial speed, negative moves obstacles left
	Ramp        float64 `yaml:"ramp"`         // Subtracted from the speed every playing frame
}

// RenderConfig defines presentation parameters.
type RenderConfig struct {
	TiltFactor float64 `yaml:"tilt_factor"`
	MinTilt    float64 `yaml:"min_tilt"`
	MaxTilt    float64 `yaml:"max_tilt"`
}

// Duration is a time.Duration that reads and writes YAML as "1400ms".
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// UnmarshalYAML accepts Go duration strings ("1.4s") or integer milliseconds.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var ms int64
	if err := node.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("config: line %d: duration must be a string or milliseconds: %w", node.Line, err)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("config: line %d: %w", node.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration in Go notation.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Validate checks the invariants the game relies on.
// All violations are reported together, wrapped in ErrInvalidConfig.
func (c FlappyConfig) Validate() error {
	var problems []string
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			problems = append(problems, fmt.Sprintf(format, args...))
		}
	}

	check(c.Board.Width > 0 && c.Board.Height > 0,
		"board must have positive dimensions, got %vx%v", c.Board.Width, c.Board.Height)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player must have positive dimensions, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.X >= 0 && c.Player.X+c.Player.Width <= c.Board.Width,
		"player column [%v, %v] must lie inside the board", c.Player.X, c.Player.X+c.Player.Width)
	check(c.Player.Height < c.Board.Height,
		"player height %v must be smaller than the board height %v", c.Player.Height, c.Board.Height)

	check(c.Obstacles.Width > 0, "obstacles.width must be positive, got %v", c.Obstacles.Width)
	check(c.Obstacles.Gap > 0, "obstacles.gap must be positive, got %v", c.Obstacles.Gap)
	check(c.Obstacles.Margin >= 0, "obstacles.margin must not be negative, got %v", c.Obstacles.Margin)
	check(c.Obstacles.SpawnInterval > 0, "obstacles.spawn_interval must be positive, got %v", c.Obstacles.SpawnInterval.Std())
	// The gap band must stay at least one margin wide after reserving a margin above and below.
	check(c.Obstacles.Gap+3*c.Obstacles.Margin < c.Board.Height,
		"obstacles.gap + 3*margin (%v) must be less than board height %v",
		c.Obstacles.Gap+3*c.Obstacles.Margin, c.Board.Height)

	check(c.Difficulty.ScrollSpeed < 0, "difficulty.scroll_speed must be negative, got %v", c.Difficulty.ScrollSpeed)
	check(c.Difficulty.Ramp >= 0, "difficulty.ramp must not be negative, got %v", c.Difficulty.Ramp)

	check(c.Render.MinTilt <= c.Render.MaxTilt,
		"render.min_tilt %v must not exceed render.max_tilt %v", c.Render.MinTilt, c.Render.MaxTilt)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// StartY returns the player's vertical position after a reset.
func (c FlappyConfig) StartY() float64 {
	return c.Board.Height / 2
}

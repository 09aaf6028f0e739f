package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// presetScaling holds the multipliers a preset applies to the configured ramp.
type presetScaling struct {
	speed float64 // Multiplier on the initial scroll speed
	ramp  float64 // Multiplier on the per-frame ramp
}

var scalings = map[DifficultyPreset]presetScaling{
	DifficultyEasy:   {speed: 0.8, ramp: 0.5},
	DifficultyNormal: {speed: 1.0, ramp: 1.0},
	DifficultyHard:   {speed: 1.3, ramp: 1.5},
	DifficultyFixed:  {speed: 1.0, ramp: 0},
}

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return DifficultyNormal, nil
	}
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := scalings[p]; !ok {
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
	return p, nil
}

// ApplyPreset scales the scroll speed and ramp of cfg for a preset.
// Normal leaves the configured values untouched; fixed disables the ramp.
func ApplyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	s, ok := scalings[preset]
	if !ok {
		return
	}
	cfg.Difficulty.ScrollSpeed *= s.speed
	cfg.Difficulty.Ramp *= s.ramp
}

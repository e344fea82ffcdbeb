// Package config provides YAML-based configuration loading and difficulty
// presets for Road Jump.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all configuration for a Road Jump session.
type Config struct {
	Road     RoadConfig   `yaml:"road"`
	Input    InputConfig  `yaml:"input"`
	Player   PlayerConfig `yaml:"player"`
	TickRate int          `yaml:"tick_rate"`
	Sim      SimConfig    `yaml:"sim"`
}

// RoadConfig defines road generation parameters.
type RoadConfig struct {
	Length   int `yaml:"length"`
	TileSize int `yaml:"tile_size"`
}

// InputConfig defines input timing.
type InputConfig struct {
	EnableDelay time.Duration `yaml:"enable_delay"`
}

// PlayerConfig defines player controller parameters.
type PlayerConfig struct {
	JumpTicks int `yaml:"jump_ticks"`
}

// SimConfig defines headless simulation parameters.
type SimConfig struct {
	Runs   int    `yaml:"runs"`
	Policy string `yaml:"policy"` // "random" or "cautious"
}

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate checks that the config can drive a game.
func (c Config) Validate() error {
	switch {
	case c.Road.Length < 1:
		return fmt.Errorf("%w: road.length must be at least 1 (got %d)", ErrInvalid, c.Road.Length)
	case c.Road.TileSize < 1:
		return fmt.Errorf("%w: road.tile_size must be at least 1 (got %d)", ErrInvalid, c.Road.TileSize)
	case c.Input.EnableDelay < 0:
		return fmt.Errorf("%w: input.enable_delay must not be negative (got %s)", ErrInvalid, c.Input.EnableDelay)
	case c.Player.JumpTicks < 0:
		return fmt.Errorf("%w: player.jump_ticks must not be negative (got %d)", ErrInvalid, c.Player.JumpTicks)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tick_rate must be at least 1 (got %d)", ErrInvalid, c.TickRate)
	case c.Sim.Runs < 0:
		return fmt.Errorf("%w: sim.runs must not be negative (got %d)", ErrInvalid, c.Sim.Runs)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Empty means "use the config".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return "", nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts road length and jump speed for a difficulty preset.
// Normal restores the default game.
// Longer roads mean more gaps to clear; shorter jumps leave less time to react.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Road.Length = 8
		cfg.Player.JumpTicks = 12
	case DifficultyNormal:
		d := Default()
		cfg.Road.Length = d.Road.Length
		cfg.Player.JumpTicks = d.Player.JumpTicks
	case DifficultyHard:
		cfg.Road.Length = 30
		cfg.Player.JumpTicks = 4
	}
}

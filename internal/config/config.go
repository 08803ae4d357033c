// Package config provides YAML-based configuration loading and speed
// presets for the snake simulation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Start  StartConfig  `yaml:"start"`
	Timing TimingConfig `yaml:"timing"`
}

// ArenaConfig defines the playable grid.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// StartConfig defines the head cell of a fresh round. The body starts
// directly below it.
type StartConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// TimingConfig defines the tick cadences.
type TimingConfig struct {
	MoveInterval time.Duration `yaml:"move_interval"`
	FoodInterval time.Duration `yaml:"food_interval"`
	FPS          int           `yaml:"fps"` // Input sampling and redraw rate
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Validate reports the first setting the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	if c.Arena.Width < 2 || c.Arena.Height < 2 {
		return fmt.Errorf("%w: arena %dx%d is smaller than 2x2", ErrInvalid, c.Arena.Width, c.Arena.Height)
	}

	arena := core.NewArena(c.Arena.Width, c.Arena.Height)
	head := core.Position{X: c.Start.X, Y: c.Start.Y}
	body := core.Position{X: c.Start.X, Y: c.Start.Y - 1}
	if !arena.Contains(head) || !arena.Contains(body) {
		return fmt.Errorf("%w: start %v needs itself and %v inside the arena", ErrInvalid, head, body)
	}

	if c.Timing.MoveInterval <= 0 {
		return fmt.Errorf("%w: move_interval must be positive, got %v", ErrInvalid, c.Timing.MoveInterval)
	}
	if c.Timing.FoodInterval <= 0 {
		return fmt.Errorf("%w: food_interval must be positive, got %v", ErrInvalid, c.Timing.FoodInterval)
	}
	if c.Timing.FoodInterval <= c.Timing.MoveInterval {
		return fmt.Errorf("%w: food_interval %v must be longer than move_interval %v",
			ErrInvalid, c.Timing.FoodInterval, c.Timing.MoveInterval)
	}
	if c.Timing.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Timing.FPS)
	}
	return nil
}

// Runtime converts the file configuration into simulation parameters.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Arena:        core.NewArena(c.Arena.Width, c.Arena.Height),
		Start:        core.Position{X: c.Start.X, Y: c.Start.Y},
		MoveInterval: c.Timing.MoveInterval,
		FoodInterval: c.Timing.FoodInterval,
		FPS:          c.Timing.FPS,
		Seed:         seed,
	}
}

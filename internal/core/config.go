package core

import "time"

// Default simulation parameters.
const (
	DefaultArenaWidth   = 10
	DefaultArenaHeight  = 10
	DefaultMoveInterval = 500 * time.Millisecond
	DefaultFoodInterval = 2 * time.Second
	DefaultFPS          = 30
)

// DefaultStart is the head position of a fresh round.
var DefaultStart = Position{X: 3, Y: 3}

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	Arena        Arena
	Start        Position      // Head position at round start; body sits at Start.Y-1
	MoveInterval time.Duration // Period of the movement tick
	FoodInterval time.Duration // Period of the food tick
	FPS          int           // Input sampling / render rate of the platform layer
	Seed         int64         // RNG seed for deterministic food placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Arena:        NewArena(DefaultArenaWidth, DefaultArenaHeight),
		Start:        DefaultStart,
		MoveInterval: DefaultMoveInterval,
		FoodInterval: DefaultFoodInterval,
		FPS:          DefaultFPS,
		Seed:         0, // 0 means use current time in platform layer
	}
}

package config

import (
	_ "embed"

	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  core.DefaultArenaWidth,
			Height: core.DefaultArenaHeight,
		},
		Start: StartConfig{
			X: core.DefaultStart.X,
			Y: core.DefaultStart.Y,
		},
		Timing: TimingConfig{
			MoveInterval: core.DefaultMoveInterval,
			FoodInterval: core.DefaultFoodInterval,
			FPS:          core.DefaultFPS,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}

package config

import (
	"fmt"
	"strings"
	"time"
)

// SpeedPreset represents a named tick cadence.
type SpeedPreset string

const (
	SpeedEasy   SpeedPreset = "easy"
	SpeedNormal SpeedPreset = "normal"
	SpeedHard   SpeedPreset = "hard"
)

// SpeedPresets lists the accepted preset names, slowest first.
var SpeedPresets = []SpeedPreset{SpeedEasy, SpeedNormal, SpeedHard}

// ParseSpeedPreset resolves a preset name. The empty string means none.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	p := SpeedPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case "", SpeedEasy, SpeedNormal, SpeedHard:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown speed %q (expected easy, normal or hard)", s)
}

// ApplySpeedPreset overrides the tick intervals for a preset. An empty
// preset keeps the configured values.
func ApplySpeedPreset(cfg *SnakeConfig, preset SpeedPreset) {
	switch preset {
	case SpeedEasy:
		cfg.Timing.MoveInterval = 700 * time.Millisecond
		cfg.Timing.FoodInterval = 3 * time.Second
	case SpeedNormal:
		cfg.Timing.MoveInterval = 500 * time.Millisecond
		cfg.Timing.FoodInterval = 2 * time.Second
	case SpeedHard:
		cfg.Timing.MoveInterval = 250 * time.Millisecond
		cfg.Timing.FoodInterval = 1500 * time.Millisecond
	}
}

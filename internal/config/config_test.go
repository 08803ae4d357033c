package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// isolate points the home directory and working directory at empty temp
// dirs so only the embedded defaults are visible.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded %+v, hardcoded %+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "arena:\n  width: 20\ntiming:\n  move_interval: 150ms\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.Width != 20 || cfg.Arena.Height != core.DefaultArenaHeight {
		t.Errorf("arena = %+v, expected 20x%d", cfg.Arena, core.DefaultArenaHeight)
	}
	if cfg.Timing.MoveInterval != 150*time.Millisecond {
		t.Errorf("move_interval = %v, expected 150ms", cfg.Timing.MoveInterval)
	}
	if cfg.Timing.FoodInterval != core.DefaultFoodInterval {
		t.Errorf("food_interval = %v, expected default", cfg.Timing.FoodInterval)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "arena: [oops")
	if _, err := Load(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "arena:\n  width: 1\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config err = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "configs", ConfigFile), "arena:\n  width: 12\n")
	writeFile(t, filepath.Join(work, "configs", ConfigFile), "arena:\n  width: 14\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.Width != 12 {
		t.Errorf("width = %d, expected user config (12)", cfg.Arena.Width)
	}

	// An invalid user config falls through to the local directory
	writeFile(t, filepath.Join(home, ".snake", "configs", ConfigFile), "start:\n  y: 0\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Arena.Width != 14 {
		t.Errorf("width = %d, expected local config (14)", cfg.Arena.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(*SnakeConfig) {}, true},
		{"smallest arena", func(c *SnakeConfig) {
			c.Arena = ArenaConfig{Width: 2, Height: 2}
			c.Start = StartConfig{X: 1, Y: 1}
		}, true},
		{"arena too narrow", func(c *SnakeConfig) { c.Arena.Width = 1 }, false},
		{"arena too short", func(c *SnakeConfig) { c.Arena.Height = 1 }, false},
		{"start outside", func(c *SnakeConfig) { c.Start.X = 10 }, false},
		{"body below arena", func(c *SnakeConfig) { c.Start.Y = 0 }, false},
		{"zero move interval", func(c *SnakeConfig) { c.Timing.MoveInterval = 0 }, false},
		{"negative food interval", func(c *SnakeConfig) { c.Timing.FoodInterval = -time.Second }, false},
		{"food as fast as movement", func(c *SnakeConfig) { c.Timing.FoodInterval = c.Timing.MoveInterval }, false},
		{"food faster than movement", func(c *SnakeConfig) {
			c.Timing.MoveInterval = time.Second
			c.Timing.FoodInterval = 500 * time.Millisecond
		}, false},
		{"food just slower than movement", func(c *SnakeConfig) {
			c.Timing.FoodInterval = c.Timing.MoveInterval + time.Millisecond
		}, true},
		{"zero fps", func(c *SnakeConfig) { c.Timing.FPS = 0 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Start = StartConfig{X: 5, Y: 6}

	rt := cfg.Runtime(77)
	if rt.Arena != core.NewArena(10, 10) || rt.Start != (core.Position{X: 5, Y: 6}) {
		t.Errorf("Runtime() arena %+v start %v", rt.Arena, rt.Start)
	}
	if rt.Seed != 77 || rt.MoveInterval != core.DefaultMoveInterval || rt.FPS != core.DefaultFPS {
		t.Errorf("Runtime() = %+v", rt)
	}
}

func TestSpeedPresets(t *testing.T) {
	var prev time.Duration
	for _, p := range SpeedPresets {
		cfg := DefaultSnakeConfig()
		ApplySpeedPreset(&cfg, p)
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %s: %v", p, err)
		}
		if prev != 0 && cfg.Timing.MoveInterval >= prev {
			t.Errorf("preset %s should move faster than the previous one", p)
		}
		prev = cfg.Timing.MoveInterval
	}

	cfg := DefaultSnakeConfig()
	ApplySpeedPreset(&cfg, SpeedNormal)
	if cfg != DefaultSnakeConfig() {
		t.Error("normal preset should match the defaults")
	}

	cfg.Timing.MoveInterval = time.Second
	ApplySpeedPreset(&cfg, "")
	if cfg.Timing.MoveInterval != time.Second {
		t.Error("empty preset should keep configured values")
	}
}

func TestParseSpeedPreset(t *testing.T) {
	if p, err := ParseSpeedPreset(" Hard "); err != nil || p != SpeedHard {
		t.Errorf("ParseSpeedPreset(Hard) = %q, %v", p, err)
	}
	if p, err := ParseSpeedPreset(""); err != nil || p != "" {
		t.Errorf("ParseSpeedPreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("expected an error for an unknown preset")
	}
}

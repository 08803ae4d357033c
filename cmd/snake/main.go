// snake is a grid snake simulation for the terminal.
//
// Usage:
//
//	snake play              - Play in the local terminal
//	snake sim               - Run a headless simulation with random input
//	snake replay <id>       - Re-simulate a recorded session and verify it
//	snake sessions          - List recorded sessions
//	snake serve             - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>     - Set RNG seed for reproducible food placement
//	--config <path>    - Load configuration from a YAML file
//	--speed <preset>   - Speed preset: easy, normal, hard
//	--db <path>        - Set session database path (default: ~/.snake/sessions.db)
//	--log-level <lvl>  - debug, info, warn or error
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagSpeed    string
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Grid snake - steer, eat, grow, don't hit the walls",
	Long: `A grid snake simulation for the terminal.

The head moves one cell per movement tick, food appears on its own
cadence, and a round ends when the head leaves the arena or runs into
the body. Sessions are journaled with a replay tape so every round can
be re-simulated exactly.

Available commands:
  play      - Play in the local terminal
  sim       - Headless simulation with random input
  replay    - Re-simulate a recorded session
  sessions  - List recorded sessions
  serve     - Start SSH server for remote play

Examples:
  snake play
  snake play --speed hard --seed 42
  snake sim --ticks 5000 --record
  snake replay 3
  snake serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(serveCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// loadRuntime resolves the configuration file, speed preset and seed.
func loadRuntime() (core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return core.RuntimeConfig{}, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return cfg.Runtime(seed), nil
}

// newLogger builds the command logger. Logs go to --log-file when set and
// to fallback otherwise. The returned cleanup must be called on exit.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	cleanup := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		cleanup = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, cleanup, nil
}

// openStore opens the session database, or returns nil with a warning on
// failure so the game still runs.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session database, not recording", "error", err)
		return nil
	}
	return store
}

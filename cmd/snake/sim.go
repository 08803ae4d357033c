package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/session"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var (
	flagTicks      int
	flagTurnChance float64
	flagRecord     bool
	flagRealtime   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation with random input",
	Long: `Run the simulation without a terminal UI.

Before each movement tick a random heading is requested with probability
--turn-chance. Time is simulated, so thousands of ticks finish instantly;
--realtime runs at the configured cadence instead.

Input is drawn from its own RNG derived from --seed, so the same seed
reproduces the same run.

Examples:
  snake sim --ticks 1000
  snake sim --ticks 5000 --turn-chance 0.4 --seed 7 --record
  snake sim --ticks 20 --realtime --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 1000, "Number of movement ticks to simulate")
	simCmd.Flags().Float64Var(&flagTurnChance, "turn-chance", 0.25, "Probability of a turn request before each move")
	simCmd.Flags().BoolVar(&flagRecord, "record", false, "Journal the run to the session database")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at wall-clock cadence")
}

func runSim(_ *cobra.Command, _ []string) {
	if flagTicks <= 0 {
		fatalf("--ticks must be positive")
	}
	if flagTurnChance < 0 || flagTurnChance > 1 {
		fatalf("--turn-chance must be between 0 and 1")
	}

	cfg, err := loadRuntime()
	if err != nil {
		fatalf("%v", err)
	}

	logger, cleanup, err := newLogger(os.Stderr, "snake-sim")
	if err != nil {
		fatalf("%v", err)
	}
	defer cleanup()

	var store *storage.Store
	if flagRecord {
		store = openStore(logger)
	}
	if store != nil {
		defer store.Close()
	}

	sess, err := session.New(cfg, session.Options{Source: "sim", Store: store, Logger: logger})
	if err != nil {
		fatalf("%v", err)
	}

	input := rand.New(rand.NewSource(cfg.Seed + 1))
	frame := core.NewInputFrame()
	directional := []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown}

	moves := 0
	maxLen := sess.Game().Len()
	onMove := func() {
		if input.Float64() < flagTurnChance {
			frame.Set(directional[input.Intn(len(directional))])
		}
		sess.ApplyInput(frame)
		frame.Clear()

		sess.MoveTick()
		maxLen = max(maxLen, sess.Game().Len())
		moves++
	}
	onFood := func() { sess.FoodTick() }

	logger.Info("simulation started", "seed", cfg.Seed, "ticks", flagTicks, "arena", cfg.Arena)

	if flagRealtime {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		err = core.RunTicker(ctx, cfg.MoveInterval, cfg.FoodInterval, func() {
			onMove()
			if moves >= flagTicks {
				cancel()
			}
		}, onFood)
		if moves < flagTicks {
			logger.Warn("simulation interrupted", "moves", moves, "error", err)
		}
	} else {
		clock := core.NewVirtualClock(cfg.MoveInterval, cfg.FoodInterval)
		clock.AdvanceMoves(flagTicks, onMove, onFood)
	}

	if err := sess.Close(); err != nil {
		logger.Error("could not save tape", "error", err)
	}

	rounds := sess.Rounds()
	fmt.Printf("Seed:            %d\n", cfg.Seed)
	fmt.Printf("Movement ticks:  %d\n", moves)
	fmt.Printf("Rounds finished: %d\n", len(rounds))
	fmt.Printf("Longest snake:   %d\n", maxLen)
	fmt.Printf("Current round:   %d (length %d)\n", sess.Game().Round(), sess.Game().Len())
	if sess.ID() != 0 {
		fmt.Printf("Session %d recorded. Replay with: snake replay %d\n", sess.ID(), sess.ID())
	}
}

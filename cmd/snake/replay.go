package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/replay"
	"github.com/vovakirdan/gridsnake/internal/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
	"github.com/vovakirdan/gridsnake/internal/world"
)

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Re-simulate a recorded session and verify it",
	Long: `Decode the replay tape of a recorded session, run it through a fresh
game and compare every finished round with the journal.

Exits with status 1 when the recomputed rounds differ.

Examples:
  snake replay 3
  snake replay 3 --log-level debug`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatalf("invalid session id %q", args[0])
	}

	logger, cleanup, err := newLogger(os.Stderr, "snake-replay")
	if err != nil {
		fatalf("%v", err)
	}
	defer cleanup()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening session database: %v", err)
	}
	defer store.Close()

	rec, err := store.Session(id)
	if errors.Is(err, storage.ErrNotFound) {
		fatalf("session %d does not exist; run 'snake sessions' to list them", id)
	}
	if err != nil {
		fatalf("%v", err)
	}
	if len(rec.Tape) == 0 {
		fatalf("session %d has no replay tape (still running, or it did not exit cleanly)", id)
	}

	tape, err := replay.Decode(rec.Tape)
	if err != nil {
		fatalf("%v", err)
	}

	rows, err := store.Rounds(id)
	if err != nil {
		fatalf("%v", err)
	}
	want := make([]snake.RoundSummary, len(rows))
	for i, r := range rows {
		want[i] = r.Summary()
	}

	game := snake.New(world.New(), tape.Runtime(), snake.WithLogger(logger))
	got, err := replay.Play(tape, game)
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Session %d (%s, seed %d)\n", rec.ID, rec.Source, rec.Seed)
	fmt.Printf("  %-6s  %-6s  %-6s  %-5s  %s\n", "Round", "Ticks", "Length", "Food", "Cause")
	for _, r := range got {
		fmt.Printf("  %-6d  %-6d  %-6d  %-5d  %v\n", r.Round, r.Ticks, r.Length, r.FoodEaten, r.Causes)
	}
	fmt.Printf("Events: %d moves, %d food, %d turns\n",
		tape.Count(replay.EventMove), tape.Count(replay.EventFood), tape.Count(replay.EventTurn))

	if err := replay.Compare(got, want); err != nil {
		fatalf("replay does not match the journal: %v", err)
	}
	fmt.Printf("Replay matches the journal (%d rounds).\n", len(got))
}

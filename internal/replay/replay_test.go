package replay

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// recordGame drives a seeded game for ticks movement ticks with random turns
// and a food tick every fourth move.
func recordGame(t *testing.T, seed int64, ticks int) (*Recorder, []snake.RoundSummary) {
	t.Helper()

	cfg := core.DefaultConfig()
	cfg.Seed = seed

	var rounds []snake.RoundSummary
	game := snake.New(world.New(), cfg, snake.WithRoundListener(func(s snake.RoundSummary) {
		rounds = append(rounds, s)
	}))
	rec := NewRecorder(game)

	input := rand.New(rand.NewSource(seed + 1))
	for i := range ticks {
		if i%4 == 0 {
			rec.FoodTick()
		}
		if input.Intn(3) == 0 {
			rec.Turn(core.Directions[input.Intn(len(core.Directions))])
		}
		rec.MoveTick()
	}
	return rec, rounds
}

func TestPlayReproducesRounds(t *testing.T) {
	rec, want := recordGame(t, 99, 500)
	if len(want) == 0 {
		t.Fatal("expected at least one finished round in 500 ticks")
	}

	tape := rec.Tape()
	game := snake.New(world.New(), tape.Runtime())
	got, err := Play(tape, game)
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := Compare(got, want); err != nil {
		t.Error(err)
	}

	orig, replayed := rec.Game().Snapshot(), game.Snapshot()
	if !slices.Equal(orig.Segments, replayed.Segments) || !slices.Equal(orig.Food, replayed.Food) {
		t.Errorf("final state differs:\n  recorded %+v\n  replayed %+v", orig, replayed)
	}
}

func TestPlayAfterEncode(t *testing.T) {
	rec, want := recordGame(t, 5, 300)

	data, err := Encode(rec.Tape())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	tape, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(tape.Events) != rec.Len() {
		t.Fatalf("decoded %d events, expected %d", len(tape.Events), rec.Len())
	}
	if tape.Seed != 5 || tape.Arena != core.NewArena(10, 10) || tape.Start != core.DefaultStart {
		t.Errorf("header = seed %d arena %+v start %v", tape.Seed, tape.Arena, tape.Start)
	}

	got, err := Play(tape, snake.New(world.New(), tape.Runtime()))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if err := Compare(got, want); err != nil {
		t.Error(err)
	}
}

func TestRecorderSkipsRejectedTurns(t *testing.T) {
	game := snake.New(world.New(), core.DefaultConfig())
	rec := NewRecorder(game)

	rec.Turn(core.DirDown) // reversal of the initial heading
	rec.Turn(core.DirLeft)

	frame := core.NewInputFrame()
	frame.Set(core.ActionRight) // reversal of left
	rec.ApplyInput(frame)
	rec.MoveTick()

	tape := rec.Tape()
	if tape.Count(EventTurn) != 1 || tape.Count(EventMove) != 1 {
		t.Errorf("events = %+v, expected one turn and one move", tape.Events)
	}
	if tape.Events[0].Dir != core.DirLeft {
		t.Errorf("recorded turn %v, expected left", tape.Events[0].Dir)
	}
}

func TestTapeIsCopied(t *testing.T) {
	rec := NewRecorder(snake.New(world.New(), core.DefaultConfig()))
	rec.MoveTick()

	tape := rec.Tape()
	rec.FoodTick()

	if len(tape.Events) != 1 {
		t.Errorf("earlier tape grew to %d events", len(tape.Events))
	}
}

func TestPlayRejectsBadEvents(t *testing.T) {
	tests := []struct {
		name  string
		event Event
	}{
		{"unknown kind", Event{Kind: 42}},
		{"invalid direction", Event{Kind: EventTurn, Dir: core.Direction(9)}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tape := Tape{Version: TapeVersion, Events: []Event{{Kind: EventMove}, tc.event}}
			game := snake.New(world.New(), core.DefaultConfig())
			if _, err := Play(tape, game); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("expected an error for malformed data")
	}

	data, err := msgpack.Marshal(&Tape{Version: TapeVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrVersion) {
		t.Errorf("Decode future version: err = %v, expected ErrVersion", err)
	}
}

func TestCompare(t *testing.T) {
	a := []snake.RoundSummary{{Round: 1, Ticks: 4, Length: 2, Causes: []snake.Cause{snake.CauseBoundary}}}
	b := []snake.RoundSummary{{Round: 1, Ticks: 4, Length: 2, Causes: []snake.Cause{snake.CauseSelf}}}

	if err := Compare(a, a); err != nil {
		t.Errorf("Compare(a, a) = %v", err)
	}
	if err := Compare(a, b); err == nil {
		t.Error("different causes should be reported")
	}
	if err := Compare(a, nil); err == nil {
		t.Error("different lengths should be reported")
	}
}

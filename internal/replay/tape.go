// Package replay records the stream of movement, food and turn events that
// drove a game and feeds them back into a fresh one. Food placement is the
// only source of randomness and comes from the seeded RNG, so a tape plus
// its header reproduces every round exactly.
package replay

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// TapeVersion is bumped whenever the encoded layout changes.
const TapeVersion = 1

// EventKind identifies a recorded simulation step.
type EventKind uint8

const (
	EventMove EventKind = iota + 1
	EventFood
	EventTurn
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "move"
	case EventFood:
		return "food"
	case EventTurn:
		return "turn"
	default:
		return fmt.Sprintf("EventKind(%d)", k)
	}
}

// Event is one recorded step. Dir is only meaningful for EventTurn.
type Event struct {
	Kind EventKind      `msgpack:"k"`
	Dir  core.Direction `msgpack:"d,omitempty"`
}

// Tape is a recorded game: the parameters needed to rebuild the initial
// state plus the ordered event stream.
type Tape struct {
	Version int           `msgpack:"v"`
	Seed    int64         `msgpack:"seed"`
	Arena   core.Arena    `msgpack:"arena"`
	Start   core.Position `msgpack:"start"`
	Events  []Event       `msgpack:"events"`
}

// ErrVersion is returned when decoding a tape written by another layout.
var ErrVersion = errors.New("replay: unsupported tape version")

// Runtime returns the runtime configuration a replaying game must use.
func (t Tape) Runtime() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Arena = t.Arena
	cfg.Start = t.Start
	cfg.Seed = t.Seed
	return cfg
}

// Count returns how many events of kind the tape holds.
func (t Tape) Count(kind EventKind) int {
	n := 0
	for _, e := range t.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Encode serializes a tape with msgpack.
func Encode(t Tape) ([]byte, error) {
	if t.Version == 0 {
		t.Version = TapeVersion
	}
	data, err := msgpack.Marshal(&t)
	if err != nil {
		return nil, fmt.Errorf("replay: encode tape: %w", err)
	}
	return data, nil
}

// Decode parses a tape produced by Encode.
func Decode(data []byte) (Tape, error) {
	var t Tape
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return Tape{}, fmt.Errorf("replay: decode tape: %w", err)
	}
	if t.Version != TapeVersion {
		return Tape{}, fmt.Errorf("%w: %d", ErrVersion, t.Version)
	}
	return t, nil
}

package replay

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Recorder wraps a game and appends every step it forwards to a tape.
type Recorder struct {
	game *snake.Game
	tape Tape
}

// NewRecorder starts recording game from its current state. The game should
// be freshly created so the tape header matches its initial state.
func NewRecorder(game *snake.Game) *Recorder {
	cfg := game.Config()
	return &Recorder{
		game: game,
		tape: Tape{
			Version: TapeVersion,
			Seed:    cfg.Seed,
			Arena:   cfg.Arena,
			Start:   cfg.Start,
		},
	}
}

// Game returns the wrapped game.
func (r *Recorder) Game() *snake.Game {
	return r.game
}

// Turn forwards a heading request. Rejected reversals leave no trace.
func (r *Recorder) Turn(d core.Direction) bool {
	ok := r.game.Turn(d)
	if ok {
		r.tape.Events = append(r.tape.Events, Event{Kind: EventTurn, Dir: d})
	}
	return ok
}

// ApplyInput resolves frame and forwards the resulting request, if any.
func (r *Recorder) ApplyInput(frame core.InputFrame) (core.Direction, bool) {
	d, ok := frame.Direction()
	if ok {
		r.Turn(d)
	}
	return d, ok
}

// MoveTick records and runs one movement tick.
func (r *Recorder) MoveTick() snake.TickResult {
	r.tape.Events = append(r.tape.Events, Event{Kind: EventMove})
	return r.game.MoveTick()
}

// FoodTick records and runs one food tick.
func (r *Recorder) FoodTick() core.Position {
	r.tape.Events = append(r.tape.Events, Event{Kind: EventFood})
	return r.game.FoodTick()
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.tape.Events)
}

// Tape returns a copy of the tape recorded so far.
func (r *Recorder) Tape() Tape {
	t := r.tape
	t.Events = slices.Clone(r.tape.Events)
	return t
}

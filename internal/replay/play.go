package replay

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/gridsnake/internal/snake"
)

// Play feeds every event of t into game in order and returns the summaries
// of the rounds that ended along the way. game must be freshly created from
// t.Runtime().
func Play(t Tape, game *snake.Game) ([]snake.RoundSummary, error) {
	var rounds []snake.RoundSummary
	for i, e := range t.Events {
		switch e.Kind {
		case EventMove:
			if res := game.MoveTick(); res.Summary != nil {
				rounds = append(rounds, *res.Summary)
			}
		case EventFood:
			game.FoodTick()
		case EventTurn:
			if !e.Dir.Valid() {
				return rounds, fmt.Errorf("replay: event %d: invalid direction %d", i, e.Dir)
			}
			game.Turn(e.Dir)
		default:
			return rounds, fmt.Errorf("replay: event %d: unknown kind %v", i, e.Kind)
		}
	}
	return rounds, nil
}

// Compare reports the first difference between two round sequences.
func Compare(got, want []snake.RoundSummary) error {
	if len(got) != len(want) {
		return fmt.Errorf("replay: %d rounds, expected %d", len(got), len(want))
	}
	for i := range got {
		g, w := got[i], want[i]
		if g.Round != w.Round || g.Ticks != w.Ticks || g.Length != w.Length ||
			g.FoodEaten != w.FoodEaten || !slices.Equal(g.Causes, w.Causes) {
			return fmt.Errorf("replay: round %d differs: got %+v, expected %+v", w.Round, g, w)
		}
	}
	return nil
}

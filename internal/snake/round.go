package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// RoundSummary describes a finished round.
type RoundSummary struct {
	Round     int
	Ticks     uint64 // Movement ticks the round lasted, including the fatal one
	Length    int    // Segment count when the round ended, including growth from the fatal tick
	FoodEaten int
	Causes    []Cause
}

// RoundListener is notified once per finished round, before the reset.
type RoundListener func(RoundSummary)

// Reset tears down every head, segment and food object and starts a fresh
// snake: head at the start position facing up, one segment directly below.
// Calling it repeatedly always yields the same two-segment state.
func (g *Game) Reset() {
	for _, kind := range []core.Kind{core.KindFood, core.KindSegment, core.KindHead} {
		for _, h := range g.store.Handles(kind) {
			g.store.Destroy(h)
		}
	}

	start := g.cfg.Start
	head := g.store.Create(core.KindHead)
	g.store.SetPosition(head, start)
	body := g.store.Create(core.KindSegment)
	g.store.SetPosition(body, core.Position{X: start.X, Y: start.Y - 1})

	g.state = State{
		Segments:  []core.Handle{head, body},
		Direction: core.DirUp,
	}
	g.signals.Reset()
}

// endRound reports the finished round and re-initializes the snake.
func (g *Game) endRound(causes []Cause) RoundSummary {
	// Growth runs before the game-over check, so food eaten on the fatal
	// tick is counted in Length.
	summary := RoundSummary{
		Round:     g.round,
		Ticks:     g.ticks,
		Length:    g.state.Len(),
		FoodEaten: g.foodEaten,
		Causes:    causes,
	}

	g.logger.Info("round over",
		"round", summary.Round,
		"ticks", summary.Ticks,
		"length", summary.Length,
		"food", summary.FoodEaten,
		"cause", causes,
	)
	if g.onRound != nil {
		g.onRound(summary)
	}

	g.round++
	g.ticks = 0
	g.foodEaten = 0
	g.Reset()
	return summary
}

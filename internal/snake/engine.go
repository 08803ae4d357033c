package snake

import (
	"slices"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// TickResult reports what happened during one movement tick.
type TickResult struct {
	Ate      int           // Food objects consumed this tick
	Grew     bool          // A segment was appended
	GameOver bool          // The round ended and was reset
	Summary  *RoundSummary // Set when GameOver is true
}

// MoveTick advances the simulation by one cell. The systems run in a fixed
// order: move, eat, grow, game-over.
func (g *Game) MoveTick() TickResult {
	g.ticks++
	g.totalTicks++

	g.move()
	res := TickResult{Ate: g.eat()}
	res.Grew = g.grow()

	if overs := g.signals.Drain(SignalGameOver); len(overs) > 0 {
		causes := make([]Cause, len(overs))
		for i, s := range overs {
			causes[i] = s.Cause
		}
		summary := g.endRound(causes)
		res.GameOver = true
		res.Summary = &summary
	}

	g.signals.Reset()
	g.state.HasPendingTail = false
	return res
}

// move shifts the head one cell along the held direction and drags the body
// behind it. Collisions are tested against the pre-move positions of every
// segment, so moving into the cell the tail is vacating still ends the round.
func (g *Game) move() {
	segs := g.state.Segments
	if len(segs) == 0 {
		panic("snake: empty state")
	}

	g.snapshot = g.snapshot[:0]
	for _, h := range segs {
		g.snapshot = append(g.snapshot, g.store.Position(h))
	}

	newHead := g.snapshot[0].Step(g.state.Direction)

	if !g.cfg.Arena.Contains(newHead) {
		g.signals.Push(Signal{Kind: SignalGameOver, Cause: CauseBoundary})
	}
	if slices.Contains(g.snapshot, newHead) {
		g.signals.Push(Signal{Kind: SignalGameOver, Cause: CauseSelf})
	}

	g.store.SetPosition(segs[0], newHead)
	for i := 1; i < len(segs); i++ {
		g.store.SetPosition(segs[i], g.snapshot[i-1])
	}

	g.state.PendingTail = g.snapshot[len(g.snapshot)-1]
	g.state.HasPendingTail = true
}

// eat destroys every food object under the head, one growth signal each.
func (g *Game) eat() int {
	head := g.store.Position(g.state.Head())

	eaten := 0
	for _, h := range g.store.Handles(core.KindFood) {
		if g.store.Position(h) != head {
			continue
		}
		g.store.Destroy(h)
		g.signals.Push(Signal{Kind: SignalGrowth})
		eaten++
	}
	g.foodEaten += eaten
	return eaten
}

// grow appends one segment at the tail's pre-move cell if any growth signal
// is pending. Additional growth signals from the same tick are dropped.
func (g *Game) grow() bool {
	if len(g.signals.Drain(SignalGrowth)) == 0 {
		return false
	}
	if !g.state.HasPendingTail {
		panic("snake: growth without a pending tail position")
	}

	h := g.store.Create(core.KindSegment)
	g.store.SetPosition(h, g.state.PendingTail)
	g.state.Segments = append(g.state.Segments, h)
	return true
}

package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Snapshot captures the observable game state for presentation, determinism
// testing and replay verification.
type Snapshot struct {
	Round      int
	Tick       uint64 // Movement ticks in the current round
	TotalTicks uint64
	Arena      core.Arena
	Dir        core.Direction
	Segments   []core.Position // Head first
	Food       []core.Position
	FoodEaten  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:      g.round,
		Tick:       g.ticks,
		TotalTicks: g.totalTicks,
		Arena:      g.cfg.Arena,
		Dir:        g.state.Direction,
		Segments:   g.Segments(),
		Food:       g.FoodPositions(),
		FoodEaten:  g.foodEaten,
	}
}

// Head returns the head position.
func (s Snapshot) Head() core.Position {
	if len(s.Segments) == 0 {
		panic("snake: empty snapshot")
	}
	return s.Segments[0]
}

// Len returns the snake length.
func (s Snapshot) Len() int {
	return len(s.Segments)
}

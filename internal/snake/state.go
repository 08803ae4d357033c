package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// ObjectStore is the engine-owned storage the simulation reads and writes
// game objects through. Handles passed in must be live; implementations
// panic otherwise.
type ObjectStore interface {
	Create(kind core.Kind) core.Handle
	Destroy(h core.Handle)
	Position(h core.Handle) core.Position
	SetPosition(h core.Handle, p core.Position)
	Handles(kind core.Kind) []core.Handle
}

// State is the snake's body and heading for the current round.
type State struct {
	Segments  []core.Handle // Head at index 0
	Direction core.Direction

	// PendingTail is the tail's position before the current tick's shift.
	// Only valid between the move step and the growth step of one tick.
	PendingTail    core.Position
	HasPendingTail bool
}

// Head returns the head handle.
func (s *State) Head() core.Handle {
	if len(s.Segments) == 0 {
		panic("snake: empty state")
	}
	return s.Segments[0]
}

// Tail returns the last segment's handle.
func (s *State) Tail() core.Handle {
	if len(s.Segments) == 0 {
		panic("snake: empty state")
	}
	return s.Segments[len(s.Segments)-1]
}

// Len returns the number of segments including the head.
func (s *State) Len() int {
	return len(s.Segments)
}

// Turn requests a new heading. A 180° reversal is ignored and reported as
// false; any other request replaces the held direction.
func (s *State) Turn(req core.Direction) bool {
	if !req.Valid() || req == s.Direction.Opposite() {
		return false
	}
	s.Direction = req
	return true
}

// Positions resolves every segment's position, head first.
func (s *State) Positions(store ObjectStore) []core.Position {
	out := make([]core.Position, len(s.Segments))
	for i, h := range s.Segments {
		out[i] = store.Position(h)
	}
	return out
}

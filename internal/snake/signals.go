package snake

// SignalKind identifies a per-tick notification.
type SignalKind int

const (
	SignalGrowth SignalKind = iota + 1
	SignalGameOver
)

// Cause explains why a round ended.
type Cause string

const (
	CauseBoundary Cause = "boundary"
	CauseSelf     Cause = "self"
)

// Signal is a fire-and-forget notification raised during a tick.
// Cause is only set for SignalGameOver.
type Signal struct {
	Kind  SignalKind
	Cause Cause
}

// SignalQueue holds the signals raised during the current tick.
// Consumers drain their kind once per tick; whatever is left is discarded
// when the tick ends.
type SignalQueue struct {
	pending []Signal
}

// Push enqueues a signal.
func (q *SignalQueue) Push(s Signal) {
	q.pending = append(q.pending, s)
}

// Len returns the number of pending signals.
func (q *SignalQueue) Len() int {
	return len(q.pending)
}

// Drain removes and returns every pending signal of the given kind,
// preserving the order of the rest.
func (q *SignalQueue) Drain(kind SignalKind) []Signal {
	var out []Signal
	kept := q.pending[:0]
	for _, s := range q.pending {
		if s.Kind == kind {
			out = append(out, s)
		} else {
			kept = append(kept, s)
		}
	}
	q.pending = kept
	return out
}

// Reset discards every pending signal.
func (q *SignalQueue) Reset() {
	q.pending = q.pending[:0]
}

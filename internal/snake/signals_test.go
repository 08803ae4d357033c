package snake

import "testing"

func TestSignalQueueDrain(t *testing.T) {
	var q SignalQueue
	q.Push(Signal{Kind: SignalGameOver, Cause: CauseBoundary})
	q.Push(Signal{Kind: SignalGrowth})
	q.Push(Signal{Kind: SignalGameOver, Cause: CauseSelf})
	q.Push(Signal{Kind: SignalGrowth})

	growth := q.Drain(SignalGrowth)
	if len(growth) != 2 {
		t.Errorf("drained %d growth signals, expected 2", len(growth))
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2 game-over signals left", q.Len())
	}

	overs := q.Drain(SignalGameOver)
	if len(overs) != 2 || overs[0].Cause != CauseBoundary || overs[1].Cause != CauseSelf {
		t.Errorf("game-over signals = %+v, expected boundary then self", overs)
	}

	// Each signal is consumed at most once
	if again := q.Drain(SignalGameOver); len(again) != 0 {
		t.Errorf("second drain returned %d signals", len(again))
	}
}

func TestSignalQueueReset(t *testing.T) {
	var q SignalQueue
	q.Push(Signal{Kind: SignalGrowth})
	q.Reset()

	if q.Len() != 0 {
		t.Errorf("Len() = %d after Reset, expected 0", q.Len())
	}
}

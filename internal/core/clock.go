package core

import (
	"context"
	"time"
)

// RunTicker invokes onMove every move interval and onFood every food interval
// until ctx is done. Both callbacks run on the calling goroutine, so they
// never execute concurrently with each other.
func RunTicker(ctx context.Context, move, food time.Duration, onMove, onFood func()) error {
	moveTicker := time.NewTicker(move)
	defer moveTicker.Stop()
	foodTicker := time.NewTicker(food)
	defer foodTicker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-moveTicker.C:
			onMove()
		case <-foodTicker.C:
			onFood()
		}
	}
}

// VirtualClock drives the two simulation cadences from simulated time.
// It is used for headless runs and tests where wall-clock waiting is unwanted.
type VirtualClock struct {
	move     time.Duration
	food     time.Duration
	now      time.Duration
	nextMove time.Duration
	nextFood time.Duration
}

// NewVirtualClock creates a clock at t=0 whose first ticks are due one
// period in, like a time.Ticker.
func NewVirtualClock(move, food time.Duration) *VirtualClock {
	return &VirtualClock{
		move:     move,
		food:     food,
		nextMove: move,
		nextFood: food,
	}
}

// Now returns the simulated time elapsed since the clock was created.
func (c *VirtualClock) Now() time.Duration {
	return c.now
}

// Advance moves simulated time forward by d, firing every tick that falls
// due in chronological order. When both are due at the same instant the
// movement tick fires first.
func (c *VirtualClock) Advance(d time.Duration, onMove, onFood func()) {
	target := c.now + d
	for {
		next := min(c.nextMove, c.nextFood)
		if next > target {
			break
		}
		c.now = next
		if c.nextMove == next {
			c.nextMove += c.move
			onMove()
		}
		if c.nextFood == next {
			c.nextFood += c.food
			onFood()
		}
	}
	c.now = target
}

// AdvanceMoves advances the clock until n movement ticks have fired.
func (c *VirtualClock) AdvanceMoves(n int, onMove, onFood func()) {
	for range n {
		c.Advance(c.nextMove-c.now, onMove, onFood)
	}
}

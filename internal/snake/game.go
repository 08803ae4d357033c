// Package snake implements the turn-based snake simulation: heading
// changes, the per-tick step engine, food spawning and round resets.
// It holds no rendering or timing logic; the platform layer drives
// MoveTick and FoodTick on their own cadences.
package snake

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Game owns the complete simulation state for one arena.
type Game struct {
	cfg     core.RuntimeConfig
	store   ObjectStore
	rng     *rand.Rand
	logger  *log.Logger
	onRound RoundListener

	state    State
	signals  SignalQueue
	snapshot []core.Position // Reused pre-move positions

	round      int
	ticks      uint64 // Movement ticks in the current round
	totalTicks uint64
	foodEaten  int // Food eaten in the current round
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for round and food events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRoundListener registers a callback for finished rounds.
func WithRoundListener(fn RoundListener) Option {
	return func(g *Game) {
		g.onRound = fn
	}
}

// New creates a game backed by store and starts round 1.
func New(store ObjectStore, cfg core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{
		cfg:    cfg,
		store:  store,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: log.New(io.Discard),
		round:  1,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset()
	return g
}

// Turn requests a new heading for the next move. Reversals are ignored.
func (g *Game) Turn(d core.Direction) bool {
	return g.state.Turn(d)
}

// ApplyInput resolves a sampled input frame to a heading request, if any,
// and applies it. It returns the resolved request.
func (g *Game) ApplyInput(frame core.InputFrame) (core.Direction, bool) {
	d, ok := frame.Direction()
	if ok {
		g.Turn(d)
	}
	return d, ok
}

// Config returns the runtime configuration the game was created with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// Direction returns the held heading.
func (g *Game) Direction() core.Direction {
	return g.state.Direction
}

// Len returns the current segment count.
func (g *Game) Len() int {
	return g.state.Len()
}

// Round returns the 1-based number of the round in progress.
func (g *Game) Round() int {
	return g.round
}

// Segments returns every segment position, head first.
func (g *Game) Segments() []core.Position {
	return g.state.Positions(g.store)
}

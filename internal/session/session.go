// Package session ties one running game to its optional replay recorder
// and session journal. Every front end (terminal, SSH, headless) drives
// the simulation through a Session.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/replay"
	"github.com/vovakirdan/gridsnake/internal/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
	"github.com/vovakirdan/gridsnake/internal/world"
)

// Options configures a Session.
type Options struct {
	Source string         // Journal source label: "play", "sim" or "ssh"
	Store  *storage.Store // Nil disables journaling and recording
	Logger *log.Logger
}

// Session is a running game plus its bookkeeping.
type Session struct {
	game   *snake.Game
	rec    *replay.Recorder
	store  *storage.Store
	logger *log.Logger
	id     int64
	rounds []snake.RoundSummary
}

// New starts a fresh game for cfg. With a store it journals the session,
// each finished round and, on Close, the replay tape.
func New(cfg core.RuntimeConfig, opts Options) (*Session, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Session{store: opts.Store, logger: logger}

	if s.store != nil {
		id, err := s.store.CreateSession(storage.SessionRecord{
			Source:       opts.Source,
			Seed:         cfg.Seed,
			Arena:        cfg.Arena,
			Start:        cfg.Start,
			MoveInterval: cfg.MoveInterval,
			FoodInterval: cfg.FoodInterval,
		})
		if err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
		s.id = id
		s.logger = logger.With("session", id)
	}

	s.game = snake.New(world.New(), cfg,
		snake.WithLogger(s.logger),
		snake.WithRoundListener(s.onRound),
	)
	if s.store != nil {
		s.rec = replay.NewRecorder(s.game)
	}
	return s, nil
}

func (s *Session) onRound(summary snake.RoundSummary) {
	s.rounds = append(s.rounds, summary)
	if s.store == nil {
		return
	}
	if _, err := s.store.SaveRound(s.id, storage.RoundFromSummary(summary)); err != nil {
		s.logger.Warn("could not journal round", "round", summary.Round, "error", err)
	}
}

// ApplyInput applies a sampled input frame.
func (s *Session) ApplyInput(frame core.InputFrame) (core.Direction, bool) {
	if s.rec != nil {
		return s.rec.ApplyInput(frame)
	}
	return s.game.ApplyInput(frame)
}

// Turn requests a heading change.
func (s *Session) Turn(d core.Direction) bool {
	if s.rec != nil {
		return s.rec.Turn(d)
	}
	return s.game.Turn(d)
}

// MoveTick runs one movement tick.
func (s *Session) MoveTick() snake.TickResult {
	if s.rec != nil {
		return s.rec.MoveTick()
	}
	return s.game.MoveTick()
}

// FoodTick runs one food tick.
func (s *Session) FoodTick() core.Position {
	if s.rec != nil {
		return s.rec.FoodTick()
	}
	return s.game.FoodTick()
}

// Game returns the simulated game.
func (s *Session) Game() *snake.Game {
	return s.game
}

// ID returns the journal ID, or 0 when not journaling.
func (s *Session) ID() int64 {
	return s.id
}

// Rounds returns the summaries of every round finished so far.
func (s *Session) Rounds() []snake.RoundSummary {
	return s.rounds
}

// Close stores the replay tape. It does not close the underlying store.
func (s *Session) Close() error {
	if s.rec == nil {
		return nil
	}
	data, err := replay.Encode(s.rec.Tape())
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	if err := s.store.SaveTape(s.id, data); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	s.logger.Debug("tape saved", "events", s.rec.Len(), "bytes", len(data))
	return nil
}

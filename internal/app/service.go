package app

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/noughts/internal/domain"
	"github.com/jaminalder/noughts/internal/engine"
)

// Errors exposed by the session layer.
var (
	ErrIllegalMove   = errors.New("cell occupied")
	ErrGameOver      = errors.New("game over")
	ErrNothingToUndo = errors.New("nothing to undo")
)

// GameState is a snapshot of the game in progress.
type GameState struct {
	ID       string
	Position domain.Position
	Auto     domain.Side
	History  []domain.Move
	Created  time.Time
	Updated  time.Time
}

// Outcome of the snapshot position.
func (gs GameState) Outcome() domain.Outcome { return gs.Position.Outcome() }

// Session owns the single game in progress. The engine only ever sees copies
// of its position.
type Session struct {
	mu      sync.Mutex
	id      string
	pos     domain.Position
	history []domain.Move
	auto    domain.Side
	created time.Time
	updated time.Time
	log     *slog.Logger
}

// NewSession starts a session with a fresh game and auto-play off.
func NewSession(logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{log: logger}
	s.resetLocked()
	return s
}

// NewGame discards the current game and starts another with auto-play off.
func (s *Session) NewGame() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.id
	s.resetLocked()
	s.log.Info("new game", "game", s.id, "previous", prev)
	return s.snapshotLocked()
}

// State returns a copy of the current game.
func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Outcome reports how the current game stands.
func (s *Session) Outcome() domain.Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos.Outcome()
}

// Play applies a human move given by label. Nothing changes on error.
func (s *Session) Play(label string) (domain.Move, error) {
	m, err := domain.ParseMove(label)
	if err != nil {
		return domain.Move{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos.Outcome().Over() {
		return domain.Move{}, ErrGameOver
	}
	if !s.pos.IsLegal(m) {
		return domain.Move{}, fmt.Errorf("%w: %s", ErrIllegalMove, m)
	}
	s.applyLocked(m, "human")
	return m, nil
}

// Think searches for and plays the computer's move for the side to move.
func (s *Session) Think() (domain.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pos.Outcome().Over() {
		return domain.Move{}, ErrGameOver
	}
	start := time.Now()
	m := engine.BestMove(s.pos)
	s.log.Debug("search done", "game", s.id, "side", s.pos.ToMove, "move", m.String(), "took", time.Since(start))
	s.applyLocked(m, "computer")
	return m, nil
}

// SetAuto makes the computer play side; NoSide turns auto-play off.
func (s *Session) SetAuto(side domain.Side) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.auto = side
	s.updated = time.Now()
}

// ComputerToMove reports whether the computer should move now.
func (s *Session) ComputerToMove() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auto != domain.NoSide && s.auto == s.pos.ToMove && !s.pos.Outcome().Over()
}

// Undo takes back the last move played.
func (s *Session) Undo() (domain.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.history) == 0 {
		return domain.Move{}, ErrNothingToUndo
	}
	m := s.history[len(s.history)-1]
	s.history = s.history[:len(s.history)-1]
	s.pos.Undo(m)
	s.updated = time.Now()
	s.log.Debug("undo", "game", s.id, "move", m.String())
	return m, nil
}

func (s *Session) applyLocked(m domain.Move, by string) {
	s.pos.Apply(m)
	s.history = append(s.history, m)
	s.updated = time.Now()
	if o := s.pos.Outcome(); o.Over() {
		s.log.Info("game over", "game", s.id, "result", o.String(), "moves", len(s.history), "last", by)
	}
}

func (s *Session) resetLocked() {
	now := time.Now()
	s.id = uuid.NewString()
	s.pos = domain.New()
	s.history = nil
	s.auto = domain.NoSide
	s.created = now
	s.updated = now
}

func (s *Session) snapshotLocked() GameState {
	hist := make([]domain.Move, len(s.history))
	copy(hist, s.history)
	return GameState{
		ID:       s.id,
		Position: s.pos,
		Auto:     s.auto,
		History:  hist,
		Created:  s.created,
		Updated:  s.updated,
	}
}

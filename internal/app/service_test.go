package app

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jaminalder/noughts/internal/domain"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	return NewSession(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func playAll(t *testing.T, s *Session, labels ...string) {
	t.Helper()
	for i, l := range labels {
		if _, err := s.Play(l); err != nil {
			t.Fatalf("move %d (%s) failed: %v", i, l, err)
		}
	}
}

func TestNewSessionInitialState(t *testing.T) {
	s := newTestSession(t)
	gs := s.State()
	if gs.ID == "" {
		t.Fatalf("expected non-empty game ID")
	}
	if gs.Position != domain.New() {
		t.Fatalf("expected empty position, got %+v", gs.Position)
	}
	if gs.Auto != domain.NoSide {
		t.Fatalf("expected auto off, got %v", gs.Auto)
	}
	if gs.Created.IsZero() || gs.Updated.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
}

func TestPlayAppliesMove(t *testing.T) {
	s := newTestSession(t)
	m, err := s.Play("B2")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if m.Index != 4 {
		t.Fatalf("expected B2 (4), got %d", m.Index)
	}
	gs := s.State()
	if gs.Position.PieceAt(4) != domain.Noughts || gs.Position.ToMove != domain.Crosses {
		t.Fatalf("unexpected position after move: %+v", gs.Position)
	}
	if len(gs.History) != 1 || gs.History[0] != m {
		t.Fatalf("unexpected history %v", gs.History)
	}
}

func TestPlayRejectsUnknownAndOccupied(t *testing.T) {
	s := newTestSession(t)
	playAll(t, s, "A1")
	before := s.State()

	if _, err := s.Play("Z9"); !errors.Is(err, domain.ErrUnknownMove) {
		t.Fatalf("expected ErrUnknownMove, got %v", err)
	}
	if _, err := s.Play("A1"); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove, got %v", err)
	}
	after := s.State()
	if after.Position != before.Position || len(after.History) != len(before.History) {
		t.Fatalf("rejected moves changed state: %+v -> %+v", before.Position, after.Position)
	}
}

func TestPlayAfterGameOver(t *testing.T) {
	s := newTestSession(t)
	playAll(t, s, "A1", "A2", "B1", "B2", "C1")
	if s.Outcome() != domain.NoughtsWon {
		t.Fatalf("expected noughts win, got %v", s.Outcome())
	}
	if _, err := s.Play("C3"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
	if _, err := s.Think(); !errors.Is(err, ErrGameOver) {
		t.Fatalf("expected ErrGameOver from Think, got %v", err)
	}
}

func TestThinkPlaysBestMove(t *testing.T) {
	s := newTestSession(t)
	playAll(t, s, "A1", "A2", "B1", "B3")
	m, err := s.Think()
	if err != nil {
		t.Fatalf("think failed: %v", err)
	}
	if m.String() != "C1" {
		t.Fatalf("expected winning C1, got %s", m)
	}
	if s.Outcome() != domain.NoughtsWon {
		t.Fatalf("expected noughts win after C1, got %v", s.Outcome())
	}
}

func TestComputerToMove(t *testing.T) {
	s := newTestSession(t)
	if s.ComputerToMove() {
		t.Fatalf("auto is off, computer should not move")
	}
	s.SetAuto(domain.Crosses)
	if s.ComputerToMove() {
		t.Fatalf("noughts to move, computer plays crosses")
	}
	playAll(t, s, "B2")
	if !s.ComputerToMove() {
		t.Fatalf("expected computer to move for crosses")
	}
	s.SetAuto(domain.NoSide)
	if s.ComputerToMove() {
		t.Fatalf("auto off, computer should not move")
	}
}

func TestComputerStopsWhenGameEnds(t *testing.T) {
	s := newTestSession(t)
	playAll(t, s, "A1", "A2", "B1", "B2", "C1")
	s.SetAuto(domain.Crosses)
	if s.ComputerToMove() {
		t.Fatalf("game is over, computer should not move")
	}
}

func TestUndo(t *testing.T) {
	s := newTestSession(t)
	if _, err := s.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("expected ErrNothingToUndo, got %v", err)
	}
	playAll(t, s, "A1", "B2")
	m, err := s.Undo()
	if err != nil || m.String() != "B2" {
		t.Fatalf("expected to undo B2, got %v, %v", m, err)
	}
	gs := s.State()
	if gs.Position.PieceAt(4) != domain.NoSide || gs.Position.ToMove != domain.Crosses {
		t.Fatalf("unexpected position after undo: %+v", gs.Position)
	}
	if _, err := s.Undo(); err != nil {
		t.Fatalf("second undo failed: %v", err)
	}
	if s.State().Position != domain.New() {
		t.Fatalf("expected empty board after undoing everything")
	}
}

func TestNewGameResets(t *testing.T) {
	s := newTestSession(t)
	first := s.State().ID
	playAll(t, s, "A1")
	s.SetAuto(domain.Noughts)
	gs := s.NewGame()
	if gs.ID == first {
		t.Fatalf("expected a new game ID")
	}
	if gs.Position != domain.New() || gs.Auto != domain.NoSide || len(gs.History) != 0 {
		t.Fatalf("expected reset state, got %+v", gs)
	}
}

func TestComputerVersusComputerDraws(t *testing.T) {
	s := newTestSession(t)
	for i := 0; !s.Outcome().Over(); i++ {
		if i > 9 {
			t.Fatalf("game did not end after nine moves")
		}
		if _, err := s.Think(); err != nil {
			t.Fatalf("think failed: %v", err)
		}
	}
	if s.Outcome() != domain.Drawn {
		t.Fatalf("expected draw, got %v", s.Outcome())
	}
}

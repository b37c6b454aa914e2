package web

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jaminalder/noughts/internal/app"
	"github.com/jaminalder/noughts/internal/console"
	"github.com/jaminalder/noughts/internal/domain"
	"github.com/jaminalder/noughts/internal/engine"
)

type handlers struct {
	log *slog.Logger
}

type analysisResponse struct {
	Moves   []string `json:"moves"`
	Side    string   `json:"side"`
	Outcome string   `json:"outcome"`
	Score   int      `json:"score"`
	Best    string   `json:"best,omitempty"`
	Line    []string `json:"line,omitempty"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok\n")
}

// replay plays the comma-separated moves query from the empty board through
// a throwaway session so the usual validation applies.
func (h *handlers) replay(r *http.Request) (app.GameState, error) {
	sess := app.NewSession(h.log)
	for _, l := range splitMoves(r.URL.Query().Get("moves")) {
		if _, err := sess.Play(l); err != nil {
			return app.GameState{}, err
		}
	}
	return sess.State(), nil
}

func splitMoves(q string) []string {
	var out []string
	for _, part := range strings.Split(q, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (h *handlers) analysis(w http.ResponseWriter, r *http.Request) {
	gs, err := h.replay(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	p := gs.Position
	resp := analysisResponse{
		Moves:   labels(gs.History),
		Side:    p.ToMove.String(),
		Outcome: p.Outcome().String(),
		Score:   int(engine.Score(p)),
	}
	if !p.Outcome().Over() {
		resp.Best = engine.BestMove(p).String()
		resp.Line = labels(engine.PrincipalVariation(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *handlers) board(w http.ResponseWriter, r *http.Request) {
	gs, err := h.replay(r)
	if err != nil {
		h.badRequest(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, console.NewRenderer(io.Discard, false).Board(gs.Position)+"\n")
}

func (h *handlers) badRequest(w http.ResponseWriter, err error) {
	var msg string
	switch {
	case errors.Is(err, domain.ErrUnknownMove):
		msg = "Unknown move"
	case errors.Is(err, app.ErrIllegalMove):
		msg = "Cell is occupied"
	case errors.Is(err, app.ErrGameOver):
		msg = "Game is over"
	default:
		msg = "Invalid move"
	}
	h.log.Debug("rejected analysis", "err", err)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Detail: err.Error()})
}

func labels(moves []domain.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

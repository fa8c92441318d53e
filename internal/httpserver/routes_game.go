// internal/httpserver/routes_game.go
//
// HTTP routes for playing a round:
//   - POST /game/new   → start a new round, replacing the active one
//   - GET  /game       → current state of the active round
//   - POST /game/guess → submit one letter
//
// Validation problems (bad letter, repeat, game over) are part of the
// guess outcome and answered with 200; only transport problems
// (bad JSON, unknown or replaced game) use error statuses.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/store"
)

// handleNewGame creates a new session and makes it the active one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	opts := []game.Option{game.WithPicker(s.picker)}
	if s.history != nil {
		opts = append(opts, game.WithRecorder(s.history))
	}
	g, err := game.New(s.words, opts...)
	if err != nil {
		log.Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "invalid_configuration")
		return
	}
	s.sessions.Replace(g)
	log.Info().Str("gameId", g.ID()).Int("length", g.Length()).Msg("game started")

	writeJSON(w, http.StatusOK, g.Snapshot())
}

// handleState returns the active session snapshot.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	var st game.State
	if err := s.sessions.View(func(g *game.Session) { st = g.Snapshot() }); err != nil {
		writeError(w, http.StatusNotFound, "no_game")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Letter string `json:"letter"`
}
type guessRes struct {
	Outcome      game.OutcomeKind `json:"outcome"`
	Letter       string           `json:"letter,omitempty"`
	Correct      bool             `json:"correct"`
	Message      string           `json:"message,omitempty"`
	StorageError string           `json:"storageError,omitempty"`
	State        game.State       `json:"state"`
}

// handleGuess applies one guess to the active session.
// A failure to archive a finished game is logged and reported alongside
// the outcome; the result of the round stands.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	// The archive write must not be abandoned because the client went away.
	ctx := context.WithoutCancel(r.Context())

	var res guessRes
	err := s.sessions.With(req.GameID, func(g *game.Session) {
		out := g.Guess(ctx, req.Letter)
		res = guessRes{
			Outcome: out.Kind,
			Letter:  out.Letter,
			Correct: out.Correct,
			Message: out.Message(),
			State:   g.Snapshot(),
		}
		if out.StorageErr != nil {
			log.Warn().Err(out.StorageErr).Str("gameId", g.ID()).Msg("archive finished game")
			res.StorageError = "storage_unavailable"
		}
		if out.Kind == game.OutcomeWon || out.Kind == game.OutcomeLost {
			log.Info().Str("gameId", g.ID()).Str("outcome", string(out.Kind)).
				Int("attemptsLeft", out.RemainingAttempts).Msg("game finished")
		}
	})
	switch {
	case errors.Is(err, store.ErrNoSession):
		writeError(w, http.StatusNotFound, "no_game")
		return
	case errors.Is(err, store.ErrStaleSession):
		writeError(w, http.StatusConflict, "game_replaced")
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	writeJSON(w, http.StatusOK, res)
}

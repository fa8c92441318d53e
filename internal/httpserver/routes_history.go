package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/history"
)

// historyRes is returned by GET /history.
type historyRes struct {
	Games []history.Record `json:"games"`
}

// handleHistory lists finished games, most recent first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	records, ok := s.listHistory(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, historyRes{Games: records})
}

// handleStats summarizes finished games.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, ok := s.listHistory(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, history.Summarize(records))
}

func (s *Server) listHistory(w http.ResponseWriter, r *http.Request) ([]history.Record, bool) {
	if s.history == nil {
		return []history.Record{}, true
	}
	records, err := s.history.ListAll(r.Context())
	if err != nil {
		log.Error().Err(err).Str("path", s.history.Path()).Msg("list history")
		writeError(w, http.StatusInternalServerError, "storage_unavailable")
		return nil, false
	}
	return records, true
}

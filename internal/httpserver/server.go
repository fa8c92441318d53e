// internal/httpserver/server.go
//
// HTTP server wiring for the Hangman backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, GET /game, POST /game/guess.
//   - History endpoints: GET /history, GET /history/stats.
//
// Notes:
//   - The server holds no game rules; it forwards input to the active
//     game.Session and renders its state.
//   - Exactly one session is active. Guesses are serialized through
//     store.Sessions so each completes before the next is applied.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
	"github.com/robalobadob/hangman/internal/store"
)

// Deps are the collaborators the server needs.
type Deps struct {
	Sessions     *store.Sessions
	History      *history.Store
	Words        []string
	Picker       game.Picker   // nil → crypto random
	ClientOrigin string        // CORS origin; empty → CLIENT_ORIGIN or localhost:5173
	Timeout      time.Duration // per-request bound; zero → 10s
}

// Server bundles router, active session holder, and history store.
type Server struct {
	r        *chi.Mux
	sessions *store.Sessions
	history  *history.Store
	words    []string
	picker   game.Picker
}

// New constructs a Server, installs middleware, and registers routes.
func New(d Deps) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		sessions: d.Sessions,
		history:  d.History,
		words:    d.Words,
		picker:   d.Picker,
	}
	if s.sessions == nil {
		s.sessions = store.NewSessions()
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)          // add X-Request-ID
	s.r.Use(chimw.RealIP)             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)            // one line per request
	s.r.Use(chimw.Recoverer)          // recover from panics
	s.r.Use(chimw.Timeout(timeout))   // bound handler time
	s.r.Use(jsonContentType)          // default JSON responses
	s.r.Use(cors(originOrEnv(d.ClientOrigin)))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"hangman-go","endpoints":["/health","POST /game/new","GET /game","POST /game/guess","GET /history","GET /history/stats"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Get("/", s.handleState)
		r.Post("/guess", s.handleGuess)
	})
	s.r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleHistory)
		r.Get("/stats", s.handleStats)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// originOrEnv picks the CORS origin: explicit, then CLIENT_ORIGIN, then the dev default.
func originOrEnv(origin string) string {
	if origin != "" {
		return origin
	}
	if v := os.Getenv("CLIENT_ORIGIN"); v != "" {
		return v
	}
	return "http://localhost:5173"
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

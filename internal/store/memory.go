// internal/store/memory.go
//
// In-memory holder for the single active game session of the process.
//
// Characteristics:
//   - Holds at most one *game.Session; starting a round replaces it.
//   - Every access runs under one mutex, so guesses are applied one at a
//     time and each completes before the next is looked at.
//   - State is lost when the process restarts; finished games live in
//     the history store.

package store

import (
	"errors"
	"sync"

	"github.com/robalobadob/hangman/internal/game"
)

var (
	// ErrNoSession is returned before the first round has been started.
	ErrNoSession = errors.New("no active game")
	// ErrStaleSession is returned when the caller refers to a session
	// that has since been replaced.
	ErrStaleSession = errors.New("game has been replaced")
)

// Sessions guards the current session.
type Sessions struct {
	mu      sync.Mutex    // guards current and everything done to it
	current *game.Session // nil until the first round
}

// NewSessions constructs an empty holder.
func NewSessions() *Sessions { return &Sessions{} }

// Replace installs g as the active session, discarding the previous one.
func (s *Sessions) Replace(g *game.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = g
}

// View runs fn with the active session under the lock.
func (s *Sessions) View(fn func(g *game.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoSession
	}
	fn(s.current)
	return nil
}

// With runs fn against the active session if its ID is id.
// An empty id means "whatever is active".
func (s *Sessions) With(id string, fn func(g *game.Session)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ErrNoSession
	}
	if id != "" && s.current.ID() != id {
		return ErrStaleSession
	}
	fn(s.current)
	return nil
}

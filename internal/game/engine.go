// internal/game/engine.go
//
// Core game engine for a single Hangman round.
// Responsibilities:
//   - Create new sessions from a candidate word list (6 attempts).
//   - Validate and apply letter guesses.
//   - Track state transitions: in_progress → won/lost.
//   - Hand the finished game to the Recorder, once, on the terminal transition.
//
// Notes:
//   - A session is never reset; a new round is a new *Session.
//   - Word selection goes through a Picker so tests can fix the word.
package game

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// Session holds the state of one round.
type Session struct {
	id        string
	word      string
	guessed   map[rune]struct{}
	remaining int
	status    Status

	picker   Picker
	recorder Recorder
}

// Option configures a Session at creation.
type Option func(*Session)

// WithPicker overrides random word selection.
func WithPicker(p Picker) Option {
	return func(s *Session) {
		if p != nil {
			s.picker = p
		}
	}
}

// WithRecorder archives the game when it reaches a terminal state.
// Without a recorder the caller is responsible for persisting results.
func WithRecorder(r Recorder) Option {
	return func(s *Session) { s.recorder = r }
}

// New starts a round with a word chosen from candidates.
// Every candidate must be a non-empty alphabetic word; the chosen one is
// uppercased.
func New(candidates []string, opts ...Option) (*Session, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: candidate word list is empty", ErrInvalidConfiguration)
	}
	words := make([]string, len(candidates))
	for i, c := range candidates {
		w, err := normalizeWord(c)
		if err != nil {
			return nil, err
		}
		words[i] = w
	}

	s := &Session{
		id:        uuid.NewString(),
		guessed:   make(map[rune]struct{}),
		remaining: MaxAttempts,
		status:    StatusInProgress,
		picker:    RandomPicker,
	}
	for _, opt := range opts {
		opt(s)
	}

	i := s.picker(len(words))
	if i < 0 || i >= len(words) {
		return nil, fmt.Errorf("%w: picker returned %d for %d candidates", ErrInvalidConfiguration, i, len(words))
	}
	s.word = words[i]
	return s, nil
}

// Guess applies one letter guess and reports its outcome.
//
// Validation rules (checked before any state change):
//   - Game must not be finished.
//   - Input must normalize to a single letter A–Z.
//   - Letter must not have been guessed already.
//
// A wrong letter costs one attempt. When the guess ends the game the
// Recorder, if any, is called before Guess returns.
func (s *Session) Guess(ctx context.Context, input string) Outcome {
	if s.status.Terminal() {
		return s.reject(OutcomeGameAlreadyOver, "", ErrGameAlreadyOver)
	}

	r, err := ParseLetter(input)
	if err != nil {
		return s.reject(OutcomeInvalidInput, "", err)
	}
	letter := string(r)
	if _, dup := s.guessed[r]; dup {
		return s.reject(OutcomeDuplicateGuess, letter, fmt.Errorf("%w: %s", ErrDuplicateGuess, letter))
	}

	s.guessed[r] = struct{}{}
	correct := strings.ContainsRune(s.word, r)
	if !correct {
		s.remaining--
	}
	s.status = s.evaluate()

	out := Outcome{
		Kind:              OutcomeContinuing,
		Letter:            letter,
		Correct:           correct,
		RemainingAttempts: s.remaining,
	}
	if !s.status.Terminal() {
		return out
	}

	out.Kind = OutcomeLost
	if s.status == StatusWon {
		out.Kind = OutcomeWon
	}
	out.Word = s.word
	if s.recorder != nil {
		if err := s.recorder.Append(ctx, s.word, s.SortedGuessedLetters(), s.remaining); err != nil {
			out.StorageErr = err
		}
	}
	return out
}

// evaluate derives the status from the word, guesses and attempts.
func (s *Session) evaluate() Status {
	if s.covered() {
		return StatusWon
	}
	if s.remaining <= 0 {
		return StatusLost
	}
	return StatusInProgress
}

// covered reports whether every letter of the word has been guessed.
func (s *Session) covered() bool {
	for _, r := range s.word {
		if _, ok := s.guessed[r]; !ok {
			return false
		}
	}
	return true
}

func (s *Session) reject(kind OutcomeKind, letter string, err error) Outcome {
	return Outcome{Kind: kind, Letter: letter, RemainingAttempts: s.remaining, Err: err}
}

// ID identifies the session.
func (s *Session) ID() string { return s.id }

// Status is the current status.
func (s *Session) Status() Status { return s.status }

// RemainingAttempts is the number of wrong guesses still allowed.
func (s *Session) RemainingAttempts() int { return s.remaining }

// Length is the number of letters in the secret word.
func (s *Session) Length() int { return len(s.word) }

// Word returns the secret word once the game is over, "" before that.
func (s *Session) Word() string {
	if s.status.Terminal() {
		return s.word
	}
	return ""
}

// SortedGuessedLetters returns the guessed letters A→Z.
func (s *Session) SortedGuessedLetters() []string {
	out := make([]string, 0, len(s.guessed))
	for r := range s.guessed {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}

// Mask returns one entry per letter of the word: the letter if guessed,
// "_" otherwise.
func (s *Session) Mask() []string {
	out := make([]string, 0, len(s.word))
	for _, r := range s.word {
		if _, ok := s.guessed[r]; ok {
			out = append(out, string(r))
		} else {
			out = append(out, "_")
		}
	}
	return out
}

// RenderedWord is Mask joined with single spaces: "C _ _".
func (s *Session) RenderedWord() string { return strings.Join(s.Mask(), " ") }

// Snapshot captures the session for display.
func (s *Session) Snapshot() State {
	return State{
		GameID:            s.id,
		Masked:            s.RenderedWord(),
		Length:            len(s.word),
		GuessedLetters:    s.SortedGuessedLetters(),
		RemainingAttempts: s.remaining,
		MaxAttempts:       MaxAttempts,
		Status:            s.status,
		Word:              s.Word(),
	}
}

// internal/game/types.go
//
// Core type definitions for the Hangman game engine.
// Defines:
//   - Status: coarse state of a session (in_progress/won/lost).
//   - OutcomeKind/Outcome: result of a single letter guess.
//   - State: read-only snapshot handed to the presentation layer.

package game

import (
	"context"
	"fmt"
)

// MaxAttempts is the number of wrong guesses a player may make.
const MaxAttempts = 6

// Status is the coarse state of a session.
// Won and Lost are terminal: once reached they never change.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusLost }

// OutcomeKind classifies the result of a guess.
type OutcomeKind string

const (
	OutcomeContinuing      OutcomeKind = "continuing"
	OutcomeWon             OutcomeKind = "won"
	OutcomeLost            OutcomeKind = "lost"
	OutcomeInvalidInput    OutcomeKind = "invalid_input"
	OutcomeDuplicateGuess  OutcomeKind = "duplicate_guess"
	OutcomeGameAlreadyOver OutcomeKind = "game_already_over"
)

// Outcome is what a guess produced.
//
// Validation problems are reported through Kind and Err, never as a
// separate error return. StorageErr is set when the finished game could
// not be archived; the outcome itself still stands.
type Outcome struct {
	Kind              OutcomeKind
	Letter            string // normalized letter; empty for invalid input
	Correct           bool   // letter occurs in the word (accepted guesses only)
	Word              string // revealed word, set for Won and Lost
	RemainingAttempts int
	Err               error
	StorageErr        error
}

// Accepted reports whether the guess changed the session.
func (o Outcome) Accepted() bool {
	switch o.Kind {
	case OutcomeContinuing, OutcomeWon, OutcomeLost:
		return true
	}
	return false
}

// Message is a short player-facing description of the outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeWon:
		return "You win! The word was " + o.Word + "."
	case OutcomeLost:
		return "Game over! The word was " + o.Word + "."
	case OutcomeInvalidInput:
		return "Please enter a single alphabetical letter."
	case OutcomeDuplicateGuess:
		return fmt.Sprintf("You already guessed '%s'.", o.Letter)
	case OutcomeGameAlreadyOver:
		return "Game is over. Please start a new game."
	}
	return ""
}

// Picker selects an index in [0, n) for word selection.
type Picker func(n int) int

// Recorder receives each finished game exactly once.
// history.Store satisfies it.
type Recorder interface {
	Append(ctx context.Context, word string, guessedLetters []string, attemptsLeft int) error
}

// State is a snapshot of a session for display.
type State struct {
	GameID            string   `json:"gameId"`
	Masked            string   `json:"masked"` // "C _ _"
	Length            int      `json:"length"`
	GuessedLetters    []string `json:"guessedLetters"`
	RemainingAttempts int      `json:"remainingAttempts"`
	MaxAttempts       int      `json:"maxAttempts"`
	Status            Status   `json:"status"`
	Word              string   `json:"word,omitempty"` // only once the game is over
}

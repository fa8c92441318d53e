package game

import "errors"

var (
	// ErrInvalidConfiguration means a session could not be created from
	// the candidate words supplied.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateGuess       = errors.New("letter already guessed")
	ErrGameAlreadyOver      = errors.New("game finished")
)

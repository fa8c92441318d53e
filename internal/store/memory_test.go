package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
)

func newSession(t *testing.T, word string) *game.Session {
	t.Helper()
	g, err := game.New([]string{word})
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	return g
}

func TestEmptyHolder(t *testing.T) {
	s := NewSessions()
	if err := s.View(func(*game.Session) { t.Fatal("fn called") }); !errors.Is(err, ErrNoSession) {
		t.Fatalf("View err = %v", err)
	}
	if err := s.With("", func(*game.Session) { t.Fatal("fn called") }); !errors.Is(err, ErrNoSession) {
		t.Fatalf("With err = %v", err)
	}
}

func TestReplaceDiscardsPrevious(t *testing.T) {
	s := NewSessions()
	first := newSession(t, "CAT")
	second := newSession(t, "DOG")
	s.Replace(first)
	s.Replace(second)

	if err := s.With(first.ID(), func(*game.Session) { t.Fatal("fn called") }); !errors.Is(err, ErrStaleSession) {
		t.Fatalf("With(old id) err = %v", err)
	}

	var got string
	if err := s.With(second.ID(), func(g *game.Session) { got = g.ID() }); err != nil {
		t.Fatalf("With(current id): %v", err)
	}
	if got != second.ID() {
		t.Fatalf("got session %q, want %q", got, second.ID())
	}
}

func TestConcurrentGuessesAreSerialized(t *testing.T) {
	s := NewSessions()
	g := newSession(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	s.Replace(g)

	var wg sync.WaitGroup
	for r := 'A'; r <= 'Z'; r++ {
		wg.Add(1)
		go func(letter string) {
			defer wg.Done()
			_ = s.With(g.ID(), func(g *game.Session) { g.Guess(context.Background(), letter) })
		}(string(r))
	}
	wg.Wait()

	if err := s.View(func(g *game.Session) {
		if g.Status() != game.StatusWon || len(g.SortedGuessedLetters()) != 26 {
			t.Errorf("status = %s guessed = %d", g.Status(), len(g.SortedGuessedLetters()))
		}
	}); err != nil {
		t.Fatalf("View: %v", err)
	}
}

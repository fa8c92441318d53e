package game_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/robalobadob/hangman/internal/game"
	"github.com/robalobadob/hangman/internal/history"
)

func TestLostGameIsArchivedAsMostRecent(t *testing.T) {
	ctx := context.Background()
	store, err := history.New(filepath.Join(t.TempDir(), "hangman_history.db"))
	if err != nil {
		t.Fatalf("history.New: %v", err)
	}

	// An earlier game so the lost one has to sort first.
	if err := store.Append(ctx, "CAT", []string{"C", "A", "T"}, 6); err != nil {
		t.Fatalf("seed append: %v", err)
	}

	s, err := game.New([]string{"dog"}, game.WithRecorder(store))
	if err != nil {
		t.Fatalf("game.New: %v", err)
	}
	for _, g := range []string{"D", "G", "X", "Y", "Z", "W", "V", "U"} {
		s.Guess(ctx, g)
	}
	// D and G hit, then six misses end the game with O still hidden.
	if s.Status() != game.StatusLost {
		t.Fatalf("status = %s, rendered %q", s.Status(), s.RenderedWord())
	}

	records, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	got := records[0]
	if got.Word != "DOG" || got.AttemptsLeft != 0 || got.GuessedLetters != "D,G,U,V,W,X,Y,Z" {
		t.Fatalf("latest record = %+v", got)
	}
}

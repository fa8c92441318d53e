// Package history is the durable, append-only log of finished games.
//
// Records live in a single SQLite table (word, guessed_letters,
// attempts_left) keyed by the implicit rowid, so the file stays readable
// by any tool that reads the game_history table.
package history

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrStorageUnavailable is returned when the history file cannot be
// opened, created, read or written.
var ErrStorageUnavailable = errors.New("history storage unavailable")

// Record is one finished game.
type Record struct {
	ID             int64  `json:"id"`
	Word           string `json:"word"`
	GuessedLetters string `json:"guessedLetters"` // sorted, comma-separated
	AttemptsLeft   int    `json:"attemptsLeft"`
}

// Letters returns GuessedLetters split back into a slice.
func (r Record) Letters() []string { return ParseLetters(r.GuessedLetters) }

// Store appends and lists history records in the file at Path.
type Store struct {
	path string
}

// New returns a Store for the SQLite file at path.
// The file is not touched until the first Append.
func New(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history: storage path is required")
	}
	return &Store{path: path}, nil
}

// Path is the location of the history file.
func (s *Store) Path() string { return s.path }

// Append persists one finished game. The row is committed before Append
// returns; the table is created on first use.
func (s *Store) Append(ctx context.Context, word string, guessedLetters []string, attemptsLeft int) error {
	db, err := openDB(ctx, s.path)
	if err != nil {
		return unavailable("open", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, createTable); err != nil {
		return unavailable("create table", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO game_history (word, guessed_letters, attempts_left) VALUES (?, ?, ?)`,
		strings.ToUpper(word), FormatLetters(guessedLetters), attemptsLeft,
	); err != nil {
		return unavailable("insert", err)
	}
	if err := tx.Commit(); err != nil {
		return unavailable("commit", err)
	}
	return nil
}

// ListAll returns every record, most recent first.
// A store that has never been written to yields an empty slice.
func (s *Store) ListAll(ctx context.Context) ([]Record, error) {
	ok, err := exists(s.path)
	if err != nil {
		return nil, unavailable("stat", err)
	}
	if !ok {
		return []Record{}, nil
	}

	db, err := openDB(ctx, s.path)
	if err != nil {
		return nil, unavailable("open", err)
	}
	defer db.Close()

	if ok, err := hasTable(ctx, db); err != nil {
		return nil, unavailable("inspect schema", err)
	} else if !ok {
		return []Record{}, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT rowid, COALESCE(word, ''), COALESCE(guessed_letters, ''), COALESCE(attempts_left, 0)
		FROM game_history
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, unavailable("query", err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Word, &r.GuessedLetters, &r.AttemptsLeft); err != nil {
			return nil, unavailable("scan", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("query", err)
	}
	return out, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStorageUnavailable, op, err)
}

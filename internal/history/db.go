// internal/history/db.go
//
// SQLite helpers for the history file.
// Responsibilities:
//   - Opening the history database with safe defaults (busy timeout, FULL sync).
//   - Creating the game_history table on first write.
//   - Telling a missing file/table apart from a broken one on read.
//
// Every caller opens a handle for one operation and closes it before
// returning; nothing here is long-lived.

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

const createTable = `CREATE TABLE IF NOT EXISTS game_history (
	word TEXT,
	guessed_letters TEXT,
	attempts_left INTEGER
)`

// openDB opens (and creates if missing) the SQLite file at path.
//
// - Ensures the parent directory exists for nested paths (./data/history.db).
// - busy_timeout lets concurrent processes queue on the file lock.
// - synchronous=FULL makes a committed append survive a crash.
func openDB(ctx context.Context, path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_sync=FULL")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return db, nil
}

// exists reports whether the history file is present.
// Anything other than "not found" is returned as an error.
func exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}

// hasTable reports whether game_history has been created yet.
func hasTable(ctx context.Context, db *sql.DB) (bool, error) {
	var cnt int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='game_history'`,
	).Scan(&cnt)
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// internal/words/words.go
//
// Provides the candidate word list for new games.
//
// Responsibilities:
//   - Load candidates from a file when one is configured, or fall back to
//     the embedded default list.
//   - Normalize entries: trimmed, uppercased, A–Z only, de-duplicated.
//
// File format:
//   One word per line. Blank lines and lines starting with # are skipped.
//   Entries containing anything other than letters are dropped.

package words

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/robalobadob/hangman/assets"
)

// ErrEmpty is returned when no usable word survives normalization.
var ErrEmpty = errors.New("words: candidate list is empty")

// Load returns the candidate list from path, or the embedded default
// list when path is empty.
func Load(path string) ([]string, error) {
	var (
		lines []string
		err   error
	)
	if path = strings.TrimSpace(path); path != "" {
		lines, err = readWordFile(path)
	} else {
		lines, err = assets.WordsList()
	}
	if err != nil {
		return nil, err
	}

	out := Normalize(lines)
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}

// Default returns the embedded candidate list.
func Default() ([]string, error) { return Load("") }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()
	return assets.ReadLines(f)
}

// Normalize uppercases and trims each entry, keeps only A–Z words and
// drops duplicates while preserving first-seen order.
func Normalize(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

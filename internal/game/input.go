package game

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseLetter normalizes raw player input to a single uppercase letter.
// Surrounding whitespace is ignored; anything other than exactly one
// letter A–Z is rejected with ErrInvalidInput.
func ParseLetter(input string) (rune, error) {
	s := strings.ToUpper(strings.TrimSpace(input))
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidInput)
	}
	if n := utf8.RuneCountInString(s); n != 1 {
		return 0, fmt.Errorf("%w: expected one letter, got %d characters", ErrInvalidInput, n)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if !isUpperAlpha(r) {
		return 0, fmt.Errorf("%w: %q is not a letter", ErrInvalidInput, r)
	}
	return r, nil
}

// normalizeWord uppercases a candidate word and checks it is A–Z only.
func normalizeWord(w string) (string, error) {
	w = strings.ToUpper(strings.TrimSpace(w))
	if w == "" {
		return "", fmt.Errorf("%w: empty candidate word", ErrInvalidConfiguration)
	}
	for _, r := range w {
		if !isUpperAlpha(r) {
			return "", fmt.Errorf("%w: candidate %q is not alphabetic", ErrInvalidConfiguration, w)
		}
	}
	return w, nil
}

func isUpperAlpha(r rune) bool { return r >= 'A' && r <= 'Z' }

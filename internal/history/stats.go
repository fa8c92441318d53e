package history

import "strings"

// Summary aggregates a list of records.
type Summary struct {
	GamesPlayed int `json:"gamesPlayed"`
	Wins        int `json:"wins"`
	Losses      int `json:"losses"`
	Streak      int `json:"streak"` // consecutive wins, counted from the most recent game
}

// Won reports whether every letter of the word appears in the guessed set.
func (r Record) Won() bool {
	if r.Word == "" {
		return false
	}
	guessed := make(map[rune]struct{})
	for _, l := range r.Letters() {
		for _, c := range l {
			guessed[c] = struct{}{}
		}
	}
	for _, c := range strings.ToUpper(r.Word) {
		if _, ok := guessed[c]; !ok {
			return false
		}
	}
	return true
}

// Summarize counts wins, losses and the current streak.
// records must be ordered most recent first, as ListAll returns them.
func Summarize(records []Record) Summary {
	s := Summary{GamesPlayed: len(records)}
	streakOpen := true
	for _, r := range records {
		if r.Won() {
			s.Wins++
			if streakOpen {
				s.Streak++
			}
			continue
		}
		s.Losses++
		streakOpen = false
	}
	return s
}

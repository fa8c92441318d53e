package history

import (
	"sort"
	"strings"
)

// FormatLetters uppercases, de-duplicates and sorts letters, then joins
// them with commas: {"o","D","G","D"} -> "D,G,O".
func FormatLetters(letters []string) string {
	seen := make(map[string]struct{}, len(letters))
	out := make([]string, 0, len(letters))
	for _, l := range letters {
		l = strings.ToUpper(strings.TrimSpace(l))
		if l == "" {
			continue
		}
		if _, dup := seen[l]; dup {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	sort.Strings(out)
	return strings.Join(out, ",")
}

// ParseLetters splits a stored letter list. Empty input gives an empty slice.
func ParseLetters(s string) []string {
	out := []string{}
	for _, l := range strings.Split(s, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

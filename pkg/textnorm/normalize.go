package textnorm

import "strings"

// Key derives the comparison key for a subject name or lesson title.
// Keys are never displayed; they exist only for case-insensitive matching.
func Key(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Titles trims a list of raw lesson titles, drops entries that are empty
// after trimming, and removes case-insensitive duplicates. The first
// occurrence wins, keeping its original casing and position.
// The result is stable: running Titles on its own output returns it unchanged.
func Titles(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	result := make([]string, 0, len(raw))

	for _, title := range raw {
		trimmed := strings.TrimSpace(title)
		if trimmed == "" {
			continue
		}

		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		result = append(result, trimmed)
	}

	return result
}

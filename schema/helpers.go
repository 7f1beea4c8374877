package schema

import "strings"

// LastName returns the last whitespace-delimited token of a player's full
// name, which is what fits inside a narrow chart bar. Falls back to the full
// string when the name has no separable parts.
func LastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return full
	}
	return parts[len(parts)-1]
}

// IsLeagueAverage reports whether a player-name field is the synthetic
// league-wide aggregate row, regardless of casing.
func IsLeagueAverage(player string) bool {
	return strings.EqualFold(strings.TrimSpace(player), LeagueAverageName)
}

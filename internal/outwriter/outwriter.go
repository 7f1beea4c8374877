// Package outwriter has output and writer logic for season rankings.
package outwriter

import (
	"os"

	"github.com/huangsam/gridiron/internal/contract"
	"golang.org/x/term"
)

// getMaxNameWidth calculates the maximum width for player names in table
// output based on terminal width and table configuration.
func getMaxNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for Rank + Season + Value + Tier columns with borders
	// and padding.
	available := termWidth - 45
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

// truncateName truncates a player name to a maximum width with an ellipsis
// suffix.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Rank tier label constants.
const (
	EliteValue   = "Elite"   // Rank 1 in its season
	ProBowlValue = "Pro"     // Ranks 2-3
	StarterValue = "Starter" // Everything below
)

// Color variables for console output.
var (
	EliteColor   = color.New(color.FgRed, color.Bold) // eliteColor marks the season leader.
	ProBowlColor = color.New(color.FgMagenta)         // proBowlColor marks the chasing pack.
	StarterColor = color.New(color.FgCyan)            // starterColor is informational.
)

// GetPlainLabel returns a plain text tier label based on a player's rank
// within their season. This is the core logic used for CSV, JSON, and table
// printing.
func GetPlainLabel(rank int) string {
	switch {
	case rank <= 1:
		return EliteValue
	case rank <= 3:
		return ProBowlValue
	default:
		return StarterValue
	}
}

// GetColorLabel returns a colored tier label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(rank int) string {
	text := GetPlainLabel(rank)

	switch text {
	case EliteValue:
		return EliteColor.Sprint(text)
	case ProBowlValue:
		return ProBowlColor.Sprint(text)
	default: // "Starter"
		return StarterColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetArchiveDBFilePath returns the path to the SQLite DB file for the
// ratings archive.
func GetArchiveDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gridiron_archive.db"
	}
	return filepath.Join(homeDir, ".gridiron_archive.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

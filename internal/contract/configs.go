package contract

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/huangsam/gridiron/schema"
)

// Default values for configuration. These reproduce the original fixed
// constants of the chart pipeline, so a bare `gridiron charts` run behaves
// exactly like the script it replaces.
const (
	DefaultDataDir    = "raw_data"
	DefaultFiguresDir = "figures"
	DefaultStartYear  = 2015
	DefaultEndYear    = 2025
	DefaultTopN       = 5
	DefaultPrecision  = 2

	// DefaultWindows deliberately overlap on the boundary year; the shared
	// season appears on both charts.
	DefaultWindows = "2015-2020,2020-2025"
)

// Config holds the runtime configuration for a pipeline run.
// This struct remains the "final, validated" config.
type Config struct {
	DataDir    string          // Directory holding "<year> <category>.csv" files
	FiguresDir string          // Directory charts are written to (created if absent)
	StartYear  int             // First season loaded, inclusive
	EndYear    int             // Last season loaded, inclusive
	Windows    []schema.Window // Chart windows; each yields one chart per category
	TopN       int             // Bars per season group

	Category   schema.StatCategory // Category for the rank command
	Precision  int                 // Decimal precision for numeric columns
	Output     schema.OutputMode   // Ranking output format
	OutputFile string              // Optional path to write ranking output to
	Width      int                 // Terminal width override (0 = auto-detect)
	UseColors  bool                // Enable colored tier labels in table output

	ArchiveBackend   schema.DatabaseBackend
	ArchiveDBConnect string // Please use env var as this is plaintext
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	DataDirStr string

	FiguresDir       string `mapstructure:"figures-dir"`
	StartYear        int    `mapstructure:"start-year"`
	EndYear          int    `mapstructure:"end-year"`
	Windows          string `mapstructure:"windows"`
	TopN             int    `mapstructure:"top-n"`
	Category         string `mapstructure:"category"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Width            int    `mapstructure:"width"`
	Color            string `mapstructure:"color"`
	ArchiveBackend   string `mapstructure:"archive-backend"`
	ArchiveDBConnect string `mapstructure:"archive-db-connect"`
}

// ProcessAndValidate turns raw input into a validated Config.
// It is the single funnel between viper and the rest of the program.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	cfg.DataDir = input.DataDirStr
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	cfg.FiguresDir = input.FiguresDir
	if cfg.FiguresDir == "" {
		cfg.FiguresDir = DefaultFiguresDir
	}

	cfg.StartYear = input.StartYear
	cfg.EndYear = input.EndYear
	if cfg.StartYear <= 0 || cfg.EndYear <= 0 {
		return fmt.Errorf("invalid year range: %d-%d", cfg.StartYear, cfg.EndYear)
	}
	if cfg.StartYear > cfg.EndYear {
		return fmt.Errorf("start year %d is after end year %d", cfg.StartYear, cfg.EndYear)
	}

	windows, err := ParseWindows(input.Windows)
	if err != nil {
		return err
	}
	for _, w := range windows {
		if w.Start < cfg.StartYear || w.End > cfg.EndYear {
			return fmt.Errorf("window %d-%d is outside the loaded year range %d-%d",
				w.Start, w.End, cfg.StartYear, cfg.EndYear)
		}
	}
	cfg.Windows = windows

	cfg.TopN = input.TopN
	if cfg.TopN <= 0 {
		return fmt.Errorf("top-n must be positive, got %d", cfg.TopN)
	}

	category := schema.StatCategory(input.Category)
	if _, ok := schema.ValidStatCategories[category]; !ok {
		return fmt.Errorf("invalid category %q (expected passing or rushing)", input.Category)
	}
	cfg.Category = category

	output := schema.OutputMode(input.Output)
	if _, ok := schema.ValidOutputModes[output]; !ok {
		return fmt.Errorf("invalid output mode %q (expected text, csv, json or parquet)", input.Output)
	}
	cfg.Output = output
	cfg.OutputFile = input.OutputFile

	cfg.Precision = input.Precision
	if cfg.Precision < 0 || cfg.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6, got %d", cfg.Precision)
	}
	cfg.Width = input.Width

	useColors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid color setting: %w", err)
	}
	cfg.UseColors = useColors

	backend := schema.DatabaseBackend(input.ArchiveBackend)
	if backend == "" {
		backend = schema.NoneBackend
	}
	if _, ok := schema.ValidArchiveBackends[backend]; !ok {
		return fmt.Errorf("invalid archive backend %q", input.ArchiveBackend)
	}
	if err := ValidateDatabaseConnectionString(backend, input.ArchiveDBConnect); err != nil {
		return err
	}
	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = input.ArchiveDBConnect

	return nil
}

// ParseWindows parses a comma-separated list of inclusive year ranges such as
// "2015-2020,2020-2025". Windows are returned sorted by start year; overlap
// between windows is allowed and, for the defaults, intentional.
func ParseWindows(s string) ([]schema.Window, error) {
	if strings.TrimSpace(s) == "" {
		return nil, fmt.Errorf("at least one chart window is required")
	}

	var windows []schema.Window
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid window %q (expected START-END)", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid window start in %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid window end in %q: %w", part, err)
		}
		if start > end {
			return nil, fmt.Errorf("window %q starts after it ends", part)
		}
		windows = append(windows, schema.Window{Start: start, End: end})
	}
	if len(windows) == 0 {
		return nil, fmt.Errorf("at least one chart window is required")
	}

	sort.Slice(windows, func(i, j int) bool {
		if windows[i].Start != windows[j].Start {
			return windows[i].Start < windows[j].Start
		}
		return windows[i].End < windows[j].End
	})
	return windows, nil
}

// ValidateDatabaseConnectionString performs basic sanity checks on a backend
// and its connection string before any driver is touched.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("backend %s requires a connection string", backend)
		}
	case schema.SQLiteBackend, schema.NoneBackend:
		// SQLite falls back to a default file path; none needs nothing.
	default:
		return fmt.Errorf("unsupported backend: %s", backend)
	}
	return nil
}

// Clone returns a deep copy of the Config struct. MCP handlers mutate
// per-request copies, never the shared base config.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Windows != nil {
		clone.Windows = make([]schema.Window, len(c.Windows))
		copy(clone.Windows, c.Windows)
	}
	return &clone
}

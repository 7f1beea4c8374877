// Package core has core logic for loading, rating, ranking and chart
// orchestration.
package core

import (
	"fmt"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/loader"
	"github.com/huangsam/gridiron/internal/outwriter"
	"github.com/huangsam/gridiron/schema"
)

// ExecuteCharts runs the full pipeline and writes one grouped bar chart per
// (category, window) pair. It serves as the main entry point for the
// 'charts' command. The archiver may be nil when no backend is configured.
func ExecuteCharts(cfg *contract.Config, archiver contract.RatingsArchiver) error {
	start := time.Now()
	if err := runChartPipeline(cfg, archiver); err != nil {
		return err
	}
	fmt.Printf("All charts generated in %v.\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Saved to: %s\n", cfg.FiguresDir)
	return nil
}

// ExecuteRank computes the top-N ranking for the configured category across
// the full year range and prints it in the configured output format. It
// serves as the main entry point for the 'rank' command.
func ExecuteRank(cfg *contract.Config) error {
	start := time.Now()
	sel, err := RankedSelection(cfg, cfg.Category, schema.Window{Start: cfg.StartYear, End: cfg.EndYear})
	if err != nil {
		return err
	}
	return outwriter.WriteRankings(sel, cfg, time.Since(start))
}

// RankedSelection loads one category over a window and returns its top-N
// selection per season. Shared by the rank command and the MCP handlers.
func RankedSelection(cfg *contract.Config, category schema.StatCategory, w schema.Window) ([]schema.SeasonValue, error) {
	values, dropped, err := loadValues(cfg.DataDir, category, w.Start, w.End)
	if err != nil {
		return nil, err
	}
	if dropped > 0 {
		fmt.Printf("Dropped %d invalid %s rows\n", dropped, category)
	}
	return TopBySeason(values, cfg.TopN), nil
}

// loadValues loads a category over an inclusive year range and reduces it to
// the target metric: raw QBR for passing, the composite rating for rushing.
func loadValues(dir string, category schema.StatCategory, startYear, endYear int) ([]schema.SeasonValue, int, error) {
	if category == schema.PassingCategory {
		rows, dropped, err := loader.LoadPassingRange(dir, startYear, endYear)
		if err != nil {
			return nil, 0, err
		}
		return PassingValues(rows), dropped, nil
	}
	rows, dropped, err := loader.LoadRushingRange(dir, startYear, endYear)
	if err != nil {
		return nil, 0, err
	}
	return RatingValues(Rate(rows)), dropped, nil
}

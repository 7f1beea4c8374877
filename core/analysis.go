package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/huangsam/gridiron/internal/chart"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/loader"
	"github.com/huangsam/gridiron/schema"
)

// runChartPipeline loads both categories across the full year range, rates
// the rushing table, and renders one chart per (category, window) pair. The
// first unrecoverable load error aborts before any chart is written.
func runChartPipeline(cfg *contract.Config, archiver contract.RatingsArchiver) error {
	passing, passingDropped, err := loader.LoadPassingRange(cfg.DataDir, cfg.StartYear, cfg.EndYear)
	if err != nil {
		return err
	}
	rushing, rushingDropped, err := loader.LoadRushingRange(cfg.DataDir, cfg.StartYear, cfg.EndYear)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d passing rows (%d dropped), %d rushing rows (%d dropped)\n",
		len(passing), passingDropped, len(rushing), rushingDropped)

	rated := Rate(rushing)

	if err := os.MkdirAll(cfg.FiguresDir, 0o755); err != nil {
		return fmt.Errorf("cannot create figures directory %s: %w", cfg.FiguresDir, err)
	}

	categories := []struct {
		category schema.StatCategory
		values   []schema.SeasonValue
	}{
		{schema.PassingCategory, PassingValues(passing)},
		{schema.RushingCategory, RatingValues(rated)},
	}
	for _, w := range cfg.Windows {
		for _, c := range categories {
			if err := renderWindow(cfg, c.category, c.values, w); err != nil {
				return err
			}
		}
	}

	if archiver != nil {
		saved, err := archiver.SaveRatings(rated)
		if err != nil {
			contract.LogWarn("Failed to archive season ratings", err)
		} else {
			fmt.Printf("Archived %d rated rows\n", saved)
		}
	}
	return nil
}

// renderWindow filters one category to a window and renders its chart.
func renderWindow(cfg *contract.Config, category schema.StatCategory, values []schema.SeasonValue, w schema.Window) error {
	sel := TopBySeason(FilterWindow(values, w), cfg.TopN)
	out := filepath.Join(cfg.FiguresDir, fmt.Sprintf("top%d_%s_%d_%d.png", cfg.TopN, category.ShortName(), w.Start, w.End))
	title := fmt.Sprintf("Top %d %s by %s (%d-%d)", cfg.TopN, category.PositionName(), category.ValueLabel(), w.Start, w.End)
	if err := chart.Render(sel, cfg.TopN, category.ValueLabel(), title, out); err != nil {
		return fmt.Errorf("cannot render %s chart for %d-%d: %w", category, w.Start, w.End, err)
	}
	fmt.Printf("Wrote %s\n", out)
	return nil
}

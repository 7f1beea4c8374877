package cmd

import (
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd prints per-season rankings without rendering charts.
var rankCmd = &cobra.Command{
	Use:   "rank [data-dir]",
	Short: "Print top players per season as a table, CSV, JSON, or Parquet",
	Long: `Rank players per season for a single stat category and print the result.

Output formats:
- text (default): aligned table with tier labels
- csv: machine-readable rows on stdout or --output-file
- json: ranked records with season, rank, player, and value
- parquet: columnar file for analytics tools (requires --output-file)

Examples:
  # Top 5 running backs per season
  gridiron rank

  # Top 10 quarterbacks over a narrower range
  gridiron rank --category passing --top-n 10 --start-year 2018 --end-year 2022

  # Export for DuckDB or pandas
  gridiron rank --output parquet --output-file rankings.parquet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(cfg); err != nil {
			contract.LogFatal("Ranking failed", err)
		}
	},
}

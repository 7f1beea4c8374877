package cmd

import (
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/archive"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/spf13/cobra"
)

// chartsCmd runs the full chart pipeline.
var chartsCmd = &cobra.Command{
	Use:   "charts [data-dir]",
	Short: "Render grouped bar charts of top players per season",
	Long: `Load yearly passing and rushing tables and render one grouped bar chart
per category and season window.

Quarterbacks are ranked by QBR as published. Running backs are ranked by a
composite rating built from season-relative z-scores of success rate, yards
per attempt, total yards, and touchdowns.

Each chart groups seasons on the x-axis with one bar per ranked player, the
player's last name printed along each bar. Windows may overlap; the shared
boundary season appears on both charts.

Examples:
  # Charts from the default raw_data directory
  gridiron charts

  # Charts from a custom directory and window set
  gridiron charts ./stats --windows "2018-2021,2021-2024"

  # Archive computed ratings while charting
  gridiron charts --archive-backend sqlite`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		var archiver contract.RatingsArchiver
		if cfg.ArchiveBackend != schema.NoneBackend {
			store, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
			if err != nil {
				contract.LogFatal("Failed to open ratings archive", err)
			}
			defer func() { _ = store.Close() }()
			archiver = store
		}

		if err := core.ExecuteCharts(cfg, archiver); err != nil {
			contract.LogFatal("Chart pipeline failed", err)
		}
	},
}

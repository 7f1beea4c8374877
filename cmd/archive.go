package cmd

import (
	"fmt"

	"github.com/huangsam/gridiron/internal/archive"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// archiveSetup loads minimal configuration needed for archive operations.
// This is used by commands that need archive access without full shared setup.
func archiveSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get archive-related config values
	backendStr := viper.GetString("archive-backend")
	connStr := viper.GetString("archive-db-connect")

	// Handle empty backend as SQLite so status/clear work out of the box
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.SQLiteBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	cfg.ArchiveBackend = backend
	cfg.ArchiveDBConnect = connStr

	return nil
}

// archiveSetupWrapper wraps archiveSetup to provide PreRunE for archive commands.
func archiveSetupWrapper(_ *cobra.Command, _ []string) error {
	return archiveSetup()
}

// openArchiveStore opens the configured archive store for a subcommand.
func openArchiveStore() *archive.Store {
	store, err := archive.NewStore(cfg.ArchiveBackend, cfg.ArchiveDBConnect)
	if err != nil {
		contract.LogFatal("Failed to open ratings archive", err)
	}
	return store
}

// archiveCmd focused on ratings archive management.
//
// Note: Archive subcommands use minimal initialization (archiveSetup) instead of
// the full sharedSetup used by pipeline commands. This avoids data directory
// validation and window parsing for simple archive operations.
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Manage the historical ratings archive",
	Long: `Manage the database that stores computed season ratings across runs.

When enabled, every chart run saves the full rated rushing table, storing:
- Raw season stats (success rate, yards per attempt, yards, touchdowns)
- Each z-score component and the composite rating
- A save timestamp for longitudinal comparison

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show archive statistics
  clear   - Remove all archived ratings
  migrate - Run database schema migrations

Examples:
  # Check archive contents
  gridiron archive status

  # Reset before a fresh backfill
  gridiron archive clear`,
}

// archiveStatusCmd shows archive status.
var archiveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display archive statistics and connection details",
	Long: `Show detailed information about the ratings archive.

Displays:
- Backend type
- Total number of archived ratings
- Number of distinct seasons covered
- Timestamp of the most recent save

Examples:
  # Check archive status
  gridiron archive status`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchiveStore()
		defer func() { _ = store.Close() }()

		status, err := store.GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get archive status", err)
		}
		archive.PrintStatus(status)
	},
}

// archiveClearCmd clears the archive.
var archiveClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all archived season ratings",
	Long: `Delete every stored rating from the configured backend.

WARNING: This action cannot be undone. Consider exporting rankings to
Parquet first via 'gridiron rank --output parquet'.

Examples:
  # Clear SQLite archive (default)
  gridiron archive clear

  # Clear MySQL archive (set connection string via env variable)
  GRIDIRON_ARCHIVE_BACKEND=mysql GRIDIRON_ARCHIVE_DB_CONNECT="..." gridiron archive clear`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		store := openArchiveStore()
		defer func() { _ = store.Close() }()

		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear archive", err)
		}
		fmt.Println("Archive cleared successfully.")
	},
}

// archiveMigrateCmd runs database migrations for the ratings archive.
var archiveMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the ratings archive.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gridiron archive migrate

  # Migrate to specific version
  gridiron archive migrate --target-version 1

  # Rollback to initial state
  gridiron archive migrate --target-version 0`,
	PreRunE: archiveSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := archive.Migrate(cfg.ArchiveBackend, cfg.ArchiveDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}

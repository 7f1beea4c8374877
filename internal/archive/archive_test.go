package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRatedRows() []schema.RatedRow {
	return []schema.RatedRow{
		{
			RushingRow: schema.RushingRow{
				Player: "Derrick Henry", Season: 2020,
				SuccessPct: 55.1, YardsPerAttempt: 5.4, Yards: 2027, Touchdowns: 17,
			},
			ZSuccess: 1.2, ZYPA: 1.4, ZYards: 2.1, ZTD: 2.3, Rating: 1.75,
		},
		{
			RushingRow: schema.RushingRow{
				Player: "Dalvin Cook", Season: 2020,
				SuccessPct: 53.0, YardsPerAttempt: 5.0, Yards: 1557, Touchdowns: 16,
			},
			ZSuccess: 0.9, ZYPA: 0.8, ZYards: 1.5, ZTD: 2.0, Rating: 1.3,
		},
	}
}

func TestStore_NoneBackend(t *testing.T) {
	store, err := NewStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// Saving should be a silent no-op
	saved, err := store.SaveRatings(sampleRatedRows())
	assert.NoError(t, err)
	assert.Equal(t, 0, saved)

	status, err := store.GetStatus()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRows)

	assert.NoError(t, store.Clear())
	assert.NoError(t, store.Close())
}

func TestStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	saved, err := store.SaveRatings(sampleRatedRows())
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, schema.SQLiteBackend, status.Backend)
	assert.Equal(t, int64(2), status.TotalRows)
	assert.Equal(t, int64(1), status.Seasons)
	assert.False(t, status.LastSaved.IsZero())
}

func TestStore_SaveAcrossSeasons(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	rows := sampleRatedRows()
	rows[1].Season = 2021
	saved, err := store.SaveRatings(rows)
	require.NoError(t, err)
	assert.Equal(t, 2, saved)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), status.Seasons)
}

func TestStore_Clear(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	_, err = store.SaveRatings(sampleRatedRows())
	require.NoError(t, err)

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(0), status.TotalRows)
}

func TestStore_EmptySave(t *testing.T) {
	store, err := NewStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	saved, err := store.SaveRatings(nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, saved)
}

func TestStore_UnsupportedBackend(t *testing.T) {
	_, err := NewStore(schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported backend")
}

func TestMigrate_NoneBackend(t *testing.T) {
	err := Migrate(schema.NoneBackend, "", -1)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for NoneBackend")
}

func TestMigrate_SQLite(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test_migration.db")

	// Run migration to latest version (should go to version 1)
	err := Migrate(schema.SQLiteBackend, dbPath, -1)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)

	// Run migration again (should be a no-op)
	err = Migrate(schema.SQLiteBackend, dbPath, -1)
	assert.NoError(t, err)

	// Rollback everything
	err = Migrate(schema.SQLiteBackend, dbPath, 0)
	assert.NoError(t, err)

	// And back up to a specific version
	err = Migrate(schema.SQLiteBackend, dbPath, 1)
	assert.NoError(t, err)
}

package parquet

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteRankings tests the columnar round trip.
func TestWriteRankings(t *testing.T) {
	records := []RankingRecord{
		{Category: "rushing", Season: 2019, Rank: 1, Player: "C D", Value: 1.25},
		{Category: "rushing", Season: 2019, Rank: 2, Player: "A B", Value: -1.25},
		{Category: "passing", Season: 2020, Rank: 1, Player: "Josh Allen", Value: 81.7},
	}

	t.Run("round trip preserves records", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "rankings.parquet")
		require.NoError(t, WriteRankings(records, out))

		got, err := ReadRankings(out)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("empty slice writes a valid file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "empty.parquet")
		require.NoError(t, WriteRankings(nil, out))

		got, err := ReadRankings(out)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("unwritable path errors", func(t *testing.T) {
		err := WriteRankings(records, filepath.Join(t.TempDir(), "missing", "x.parquet"))
		assert.Error(t, err)
	})
}

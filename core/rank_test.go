package core

import (
	"testing"

	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopBySeason tests per-season ranking and truncation.
func TestTopBySeason(t *testing.T) {
	rows := []schema.SeasonValue{
		{Player: "Low 19", Season: 2019, Value: 10},
		{Player: "High 19", Season: 2019, Value: 90},
		{Player: "Mid 19", Season: 2019, Value: 50},
		{Player: "Only 20", Season: 2020, Value: 70},
	}

	t.Run("rank and limit per season", func(t *testing.T) {
		top := TopBySeason(rows, 2)
		require.Len(t, top, 3)
		assert.Equal(t, "High 19", top[0].Player)
		assert.Equal(t, "Mid 19", top[1].Player)
		assert.Equal(t, "Only 20", top[2].Player)
	})

	t.Run("short season yields fewer rows, no padding", func(t *testing.T) {
		top := TopBySeason(rows, 5)
		count := 0
		for _, r := range top {
			if r.Season == 2020 {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		tied := []schema.SeasonValue{
			{Player: "First", Season: 2019, Value: 50},
			{Player: "Second", Season: 2019, Value: 50},
			{Player: "Third", Season: 2019, Value: 50},
		}
		top := TopBySeason(tied, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "First", top[0].Player)
		assert.Equal(t, "Second", top[1].Player)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := TopBySeason(rows, 2)
		twice := TopBySeason(once, 2)
		assert.Equal(t, once, twice)
	})

	t.Run("seasons ordered ascending", func(t *testing.T) {
		reversed := []schema.SeasonValue{
			{Player: "B 20", Season: 2020, Value: 1},
			{Player: "A 19", Season: 2019, Value: 1},
		}
		top := TopBySeason(reversed, 5)
		require.Len(t, top, 2)
		assert.Equal(t, 2019, top[0].Season)
		assert.Equal(t, 2020, top[1].Season)
	})
}

// TestFilterWindow tests inclusive season filtering.
func TestFilterWindow(t *testing.T) {
	rows := []schema.SeasonValue{
		{Player: "P14", Season: 2014, Value: 1},
		{Player: "P15", Season: 2015, Value: 1},
		{Player: "P20", Season: 2020, Value: 1},
		{Player: "P21", Season: 2021, Value: 1},
	}
	kept := FilterWindow(rows, schema.Window{Start: 2015, End: 2020})
	require.Len(t, kept, 2)
	assert.Equal(t, 2015, kept[0].Season)
	assert.Equal(t, 2020, kept[1].Season)
}

// TestSeasons tests distinct sorted season extraction.
func TestSeasons(t *testing.T) {
	rows := []schema.SeasonValue{
		{Season: 2020}, {Season: 2018}, {Season: 2020}, {Season: 2019},
	}
	assert.Equal(t, []int{2018, 2019, 2020}, Seasons(rows))
	assert.Empty(t, Seasons(nil))
}

// TestValueAdapters tests reduction to the target metric.
func TestValueAdapters(t *testing.T) {
	t.Run("passing uses qbr", func(t *testing.T) {
		values := PassingValues([]schema.PassingRow{{Player: "QB", Season: 2019, QBR: 77.5}})
		require.Len(t, values, 1)
		assert.Equal(t, schema.SeasonValue{Player: "QB", Season: 2019, Value: 77.5}, values[0])
	})

	t.Run("rushing uses composite rating", func(t *testing.T) {
		rated := []schema.RatedRow{{
			RushingRow: schema.RushingRow{Player: "RB", Season: 2019},
			Rating:     1.25,
		}}
		values := RatingValues(rated)
		require.Len(t, values, 1)
		assert.Equal(t, schema.SeasonValue{Player: "RB", Season: 2019, Value: 1.25}, values[0])
	})
}

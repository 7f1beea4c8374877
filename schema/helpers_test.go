package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLastName tests surname extraction for bar annotations.
func TestLastName(t *testing.T) {
	t.Run("two part name", func(t *testing.T) {
		assert.Equal(t, "Henry", LastName("Derrick Henry"))
	})

	t.Run("suffix is kept as the token", func(t *testing.T) {
		assert.Equal(t, "Jr.", LastName("Odell Beckham Jr."))
	})

	t.Run("single token", func(t *testing.T) {
		assert.Equal(t, "Henry", LastName("Henry"))
	})

	t.Run("empty name", func(t *testing.T) {
		assert.Equal(t, "", LastName(""))
	})
}

// TestIsLeagueAverage tests the case-insensitive aggregate row match.
func TestIsLeagueAverage(t *testing.T) {
	for _, name := range []string{"League Average", "LEAGUE AVERAGE", "league average", " league average "} {
		assert.True(t, IsLeagueAverage(name), name)
	}
	assert.False(t, IsLeagueAverage("League Averages"))
	assert.False(t, IsLeagueAverage("Derrick Henry"))
}

// TestWindowContains tests inclusive window membership.
func TestWindowContains(t *testing.T) {
	w := Window{Start: 2015, End: 2020}
	assert.True(t, w.Contains(2015))
	assert.True(t, w.Contains(2020))
	assert.False(t, w.Contains(2014))
	assert.False(t, w.Contains(2021))
}

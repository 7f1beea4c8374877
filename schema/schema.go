// Package schema has configs, models and shared constants for all parts of gridiron.
package schema

// PassingRow represents one quarterback's statistical line for one season.
type PassingRow struct {
	Player string  // Full player name as it appears in the source table
	Season int     // Season year the row belongs to
	QBR    float64 // Single-number quarterback performance rating
}

// RushingRow represents one running back's statistical line for one season.
// All four numeric fields are required; rows missing any of them are dropped
// at load time rather than defaulted.
type RushingRow struct {
	Player          string  // Full player name as it appears in the source table
	Season          int     // Season year the row belongs to
	SuccessPct      float64 // Rushing success rate percentage (Succ%)
	YardsPerAttempt float64 // Yards per rushing attempt (Y/A)
	Yards           float64 // Total rushing yards (Yds)
	Touchdowns      float64 // Total rushing touchdowns (TD)
}

// RatedRow is a RushingRow augmented with per-season z-scores and the
// composite running back rating (RBR). Each z-score is computed within the
// row's own season partition, so ratings are comparable across eras.
type RatedRow struct {
	RushingRow
	ZSuccess float64 // Season z-score of SuccessPct
	ZYPA     float64 // Season z-score of YardsPerAttempt
	ZYards   float64 // Season z-score of Yards
	ZTD      float64 // Season z-score of Touchdowns
	Rating   float64 // Unweighted mean of the four z-scores
}

// SeasonValue is the shape consumed by the selector and the chart renderer:
// one player, one season, one target metric value.
type SeasonValue struct {
	Player string  `json:"player"`
	Season int     `json:"season"`
	Value  float64 `json:"value"`
}

// Window is an inclusive range of season years used to filter which seasons
// appear on one chart. Adjacent windows may deliberately share boundary years.
type Window struct {
	Start int
	End   int
}

// Contains reports whether the season falls inside the window, inclusive.
func (w Window) Contains(season int) bool {
	return season >= w.Start && season <= w.End
}

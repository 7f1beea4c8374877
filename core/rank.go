package core

import (
	"sort"

	"github.com/huangsam/gridiron/schema"
)

// TopBySeason sorts rows descending by value within each season and keeps
// the first n of each. The sort is stable, so ties preserve input order, and
// a season with fewer than n qualifying rows yields a shorter group. The
// result is ordered by season ascending, then by rank.
func TopBySeason(rows []schema.SeasonValue, n int) []schema.SeasonValue {
	bySeason := make(map[int][]schema.SeasonValue)
	for _, r := range rows {
		bySeason[r.Season] = append(bySeason[r.Season], r)
	}

	var top []schema.SeasonValue
	for _, season := range Seasons(rows) {
		group := bySeason[season]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Value > group[j].Value
		})
		if len(group) > n {
			group = group[:n]
		}
		top = append(top, group...)
	}
	return top
}

// FilterWindow keeps the rows whose season falls inside the window,
// inclusive on both ends.
func FilterWindow(rows []schema.SeasonValue, w schema.Window) []schema.SeasonValue {
	var kept []schema.SeasonValue
	for _, r := range rows {
		if w.Contains(r.Season) {
			kept = append(kept, r)
		}
	}
	return kept
}

// Seasons returns the sorted distinct season years present in rows.
func Seasons(rows []schema.SeasonValue) []int {
	seen := make(map[int]struct{})
	var seasons []int
	for _, r := range rows {
		if _, ok := seen[r.Season]; !ok {
			seen[r.Season] = struct{}{}
			seasons = append(seasons, r.Season)
		}
	}
	sort.Ints(seasons)
	return seasons
}

// PassingValues reduces passing rows to their target metric, QBR.
func PassingValues(rows []schema.PassingRow) []schema.SeasonValue {
	values := make([]schema.SeasonValue, len(rows))
	for i, r := range rows {
		values[i] = schema.SeasonValue{Player: r.Player, Season: r.Season, Value: r.QBR}
	}
	return values
}

// RatingValues reduces rated rushing rows to their target metric, the
// composite rating.
func RatingValues(rows []schema.RatedRow) []schema.SeasonValue {
	values := make([]schema.SeasonValue, len(rows))
	for i, r := range rows {
		values[i] = schema.SeasonValue{Player: r.Player, Season: r.Season, Value: r.Rating}
	}
	return values
}

package loader

import (
	"fmt"

	"github.com/huangsam/gridiron/schema"
)

// rushingColumns are the numeric fields required by the rating engine. A row
// lacking a valid value in any of them is dropped entirely.
var rushingColumns = []string{
	schema.SuccessColumn,
	schema.YPAColumn,
	schema.YardsColumn,
	schema.TDColumn,
}

// LoadRushingYear loads one season's rushing table. The upstream export
// sometimes prepends a banner line above the real header, so when the Player
// column is absent on the first line the parse is retried exactly once with
// the header on the second line. If the identifying column is still missing
// after the retry, or any required numeric column is absent outright, the
// load fails.
func LoadRushingYear(dir string, year int) ([]schema.RushingRow, int, error) {
	path := sourcePath(dir, schema.RushingCategory, year)
	records, err := readRecords(path, schema.RushingCategory, year)
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	index := columnIndex(records[0])
	body := records[1:]
	if _, ok := index[schema.PlayerColumn]; !ok {
		if len(records) < 2 {
			return nil, 0, fmt.Errorf("rushing file %s missing required column: %s", path, schema.PlayerColumn)
		}
		index = columnIndex(records[1])
		body = records[2:]
		if _, ok := index[schema.PlayerColumn]; !ok {
			return nil, 0, fmt.Errorf("rushing file %s missing required column: %s", path, schema.PlayerColumn)
		}
	}

	playerIdx := index[schema.PlayerColumn]
	numericIdx := make([]int, len(rushingColumns))
	for i, col := range rushingColumns {
		idx, ok := index[col]
		if !ok {
			return nil, 0, fmt.Errorf("rushing file %s missing required column: %s", path, col)
		}
		numericIdx[i] = idx
	}

	var rows []schema.RushingRow
	dropped := 0
	for _, record := range body {
		player, ok := fieldAt(record, playerIdx)
		if !ok || player == "" {
			dropped++
			continue
		}
		if schema.IsLeagueAverage(player) {
			continue
		}

		values := make([]float64, len(numericIdx))
		valid := true
		for i, idx := range numericIdx {
			v, ok := parseFloatAt(record, idx)
			if !ok {
				valid = false
				break
			}
			values[i] = v
		}
		if !valid {
			dropped++
			continue
		}

		rows = append(rows, schema.RushingRow{
			Player:          player,
			Season:          year,
			SuccessPct:      values[0],
			YardsPerAttempt: values[1],
			Yards:           values[2],
			Touchdowns:      values[3],
		})
	}
	return rows, dropped, nil
}

// LoadRushingRange concatenates rushing tables across an inclusive year
// range. The first missing or malformed file aborts the load.
func LoadRushingRange(dir string, startYear, endYear int) ([]schema.RushingRow, int, error) {
	var all []schema.RushingRow
	dropped := 0
	for year := startYear; year <= endYear; year++ {
		rows, d, err := LoadRushingYear(dir, year)
		if err != nil {
			return nil, 0, err
		}
		all = append(all, rows...)
		dropped += d
	}
	return all, dropped, nil
}

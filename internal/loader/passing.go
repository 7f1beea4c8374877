package loader

import (
	"fmt"

	"github.com/huangsam/gridiron/schema"
)

// LoadPassingYear loads one season's passing table. Rows whose QBR field is
// absent or non-numeric are dropped entirely, never defaulted; the second
// return value counts them. The synthetic league-average row is stripped.
func LoadPassingYear(dir string, year int) ([]schema.PassingRow, int, error) {
	path := sourcePath(dir, schema.PassingCategory, year)
	records, err := readRecords(path, schema.PassingCategory, year)
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, nil
	}

	index := columnIndex(records[0])
	playerIdx, ok := index[schema.PlayerColumn]
	if !ok {
		return nil, 0, fmt.Errorf("passing file %s missing required column: %s", path, schema.PlayerColumn)
	}
	// A file without a QBR column yields zero usable rows, not an error.
	qbrIdx, hasQBR := index[schema.QBRColumn]
	if !hasQBR {
		qbrIdx = -1
	}

	var rows []schema.PassingRow
	dropped := 0
	for _, record := range records[1:] {
		player, ok := fieldAt(record, playerIdx)
		if !ok || player == "" {
			dropped++
			continue
		}
		if schema.IsLeagueAverage(player) {
			continue
		}
		qbr, ok := parseFloatAt(record, qbrIdx)
		if !ok {
			dropped++
			continue
		}
		rows = append(rows, schema.PassingRow{Player: player, Season: year, QBR: qbr})
	}
	return rows, dropped, nil
}

// LoadPassingRange concatenates passing tables across an inclusive year
// range. The first missing or malformed file aborts the load.
func LoadPassingRange(dir string, startYear, endYear int) ([]schema.PassingRow, int, error) {
	var all []schema.PassingRow
	dropped := 0
	for year := startYear; year <= endYear; year++ {
		rows, d, err := LoadPassingYear(dir, year)
		if err != nil {
			return nil, 0, err
		}
		all = append(all, rows...)
		dropped += d
	}
	return all, dropped, nil
}

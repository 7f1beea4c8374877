// Package loader reads per-year, per-category stat tables from the raw data
// directory and normalizes them into typed season rows.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/gridiron/schema"
)

// sourcePath returns the conventional file location for one (category, year)
// pair, e.g. "raw_data/2019 rushing.csv".
func sourcePath(dir string, category schema.StatCategory, year int) string {
	return filepath.Join(dir, fmt.Sprintf("%d %s.csv", year, category))
}

// readRecords reads every record of a CSV file. Field counts are not
// enforced because upstream exports prepend banner lines and repeat header
// rows mid-table.
func readRecords(path string, category schema.StatCategory, year int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing %s file for season %d: %s", category, year, path)
		}
		return nil, fmt.Errorf("cannot open %s file for season %d: %w", category, year, err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s file for season %d: %w", category, year, err)
	}
	return records, nil
}

// columnIndex builds a name-to-position map from a header record.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	return index
}

// fieldAt returns the trimmed cell at idx, or false when the row is too
// short to contain it.
func fieldAt(row []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[idx]), true
}

// parseFloatAt parses the cell at idx as a float. Repeated header rows and
// footnote markers fail here and drop the row.
func parseFloatAt(row []string, idx int) (float64, bool) {
	cell, ok := fieldAt(row, idx)
	if !ok || cell == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

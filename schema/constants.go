package schema

// Custom string types for type safety.
type (
	// StatCategory represents one of the ingested stat tables.
	StatCategory string

	// OutputMode represents the format of ranking output.
	OutputMode string

	// DatabaseBackend represents the database backend for the ratings archive.
	DatabaseBackend string
)

// All stat categories supported.
const (
	PassingCategory StatCategory = "passing"
	RushingCategory StatCategory = "rushing" // default
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All archive backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none" // default
)

// Source column names. These are fixed, case-sensitive headers emitted by the
// upstream stat exports.
const (
	PlayerColumn  = "Player"
	QBRColumn     = "QBR"
	SuccessColumn = "Succ%"
	YPAColumn     = "Y/A"
	YardsColumn   = "Yds"
	TDColumn      = "TD"
)

// LeagueAverageName is the synthetic aggregate pseudo-row present in both
// table kinds. It is stripped with a case-insensitive exact match.
const LeagueAverageName = "league average"

// ValueLabel returns the metric label charted for a category: QBR for
// passing, the composite RBR for rushing.
func (c StatCategory) ValueLabel() string {
	if c == PassingCategory {
		return "QBR"
	}
	return "RBR"
}

// PositionName returns the charted position group for a category.
func (c StatCategory) PositionName() string {
	if c == PassingCategory {
		return "Quarterbacks"
	}
	return "Running Backs"
}

// ShortName returns the positional abbreviation used in output file names.
func (c StatCategory) ShortName() string {
	if c == PassingCategory {
		return "qb"
	}
	return "rb"
}

// ValidStatCategories lists all valid stat categories.
var ValidStatCategories = map[StatCategory]struct{}{
	PassingCategory: {},
	RushingCategory: {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidArchiveBackends lists all valid archive backends.
var ValidArchiveBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

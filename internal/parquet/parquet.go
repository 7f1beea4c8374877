// Package parquet provides data structures and functions for exporting
// season rankings to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"
)

// RankingRecord represents one ranked player-season in columnar form,
// suitable for downstream analytics tools (DuckDB, pandas, Spark).
type RankingRecord struct {
	// Category is the stat category the ranking was computed over
	Category string `parquet:"category,snappy"`

	// Season is the season year the rank applies to
	Season int32 `parquet:"season,snappy"`

	// Rank is the player's position within the season, starting at 1
	Rank int32 `parquet:"rank,snappy"`

	// Player is the full player name from the source table
	Player string `parquet:"player,snappy"`

	// Value is the target metric: raw QBR for passing, composite rating
	// for rushing
	Value float64 `parquet:"value,snappy"`
}

// WriteRankings writes a slice of RankingRecord structs to a Parquet file.
func WriteRankings(records []RankingRecord, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the RankingRecord struct tags
	writer := parquet.NewGenericWriter[RankingRecord](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(records); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ReadRankings reads RankingRecord structs back from a Parquet file. Used by
// tests and by consumers that post-process exports.
func ReadRankings(inputPath string) ([]RankingRecord, error) {
	file, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer func() { _ = file.Close() }()

	reader := parquet.NewGenericReader[RankingRecord](file)
	defer func() { _ = reader.Close() }()

	records := make([]RankingRecord, reader.NumRows())
	n, err := reader.Read(records)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read parquet file: %w", err)
	}
	return records[:n], nil
}

package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/parquet"
	"github.com/huangsam/gridiron/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankings outputs a top-N selection, dispatching based on the output
// format configured.
func WriteRankings(sel []schema.SeasonValue, cfg *contract.Config, duration time.Duration) error {
	rows := resolveRanks(sel)
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeRankingJSONResults(rows, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeRankingCSVResults(rows, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		if err := parquet.WriteRankings(toParquetRecords(rows, cfg.Category), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankingTable(rows, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// toParquetRecords adapts ranked rows into the parquet export shape.
func toParquetRecords(rows []rankedRow, category schema.StatCategory) []parquet.RankingRecord {
	records := make([]parquet.RankingRecord, len(rows))
	for i, r := range rows {
		records[i] = parquet.RankingRecord{
			Category: string(category),
			Season:   int32(r.Season),
			Rank:     int32(r.Rank),
			Player:   r.Player,
			Value:    r.Value,
		}
	}
	return records
}

// writeRankingTable generates and writes the human-readable table.
func writeRankingTable(rows []rankedRow, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	table.Header([]string{"Season", "Rank", "Player", cfg.Category.ValueLabel(), "Tier"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	label := contract.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	var data [][]string
	maxName := getMaxNameWidth(cfg)
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Season),
			strconv.Itoa(r.Rank),
			truncateName(r.Player, maxName),
			fmtFloat(r.Value),
			label(r.Rank),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	seasons := make(map[int]struct{})
	for _, r := range rows {
		seasons[r.Season] = struct{}{}
	}
	if _, err := fmt.Fprintf(writer, "Showing %d ranked rows across %d seasons by %s\n",
		len(rows), len(seasons), cfg.Category.ValueLabel()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeRankingCSVResults handles opening the file and calling the CSV writer.
func writeRankingCSVResults(rows []rankedRow, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"season", "rank", "player", "value", "tier", "category"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, r := range rows {
				rec := []string{
					strconv.Itoa(r.Season),
					strconv.Itoa(r.Rank),
					r.Player,
					fmtFloat(r.Value),
					contract.GetPlainLabel(r.Rank),
					string(cfg.Category),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// writeRankingJSONResults handles opening the file and calling the JSON writer.
func writeRankingJSONResults(rows []rankedRow, cfg *contract.Config) error {
	type jsonRanking struct {
		Rank int    `json:"rank"`
		Tier string `json:"tier"`
		schema.SeasonValue
	}

	output := make([]jsonRanking, len(rows))
	for i, r := range rows {
		output[i] = jsonRanking{
			Rank:        r.Rank,
			Tier:        contract.GetPlainLabel(r.Rank),
			SeasonValue: r.SeasonValue,
		}
	}

	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, output)
	}, "Wrote JSON")
}

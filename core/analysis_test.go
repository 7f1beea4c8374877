package core

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSeasonFiles writes passing and rushing fixtures for a span of years.
// The 2020 rushing file carries a banner line to exercise the header
// fallback end to end.
func writeSeasonFiles(t *testing.T, dir string, years []int) {
	t.Helper()
	for _, year := range years {
		passing := "Player,QBR\n" +
			"League Average,50.0\n" +
			fmt.Sprintf("Lead Passer,%d.5\n", 60+year-2019) +
			"Backup Passer,55.1\n"
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, fmt.Sprintf("%d passing.csv", year)), []byte(passing), 0o644))

		rushing := "Player,Succ%,Y/A,Yds,TD\n" +
			"A B,50,4.0,1000,8\n" +
			"C D,60,5.0,1200,10\n"
		if year == 2020 {
			rushing = "Rushing Table Export\n" + rushing
		}
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, fmt.Sprintf("%d rushing.csv", year)), []byte(rushing), 0o644))
	}
}

// testConfig returns a validated config over a temp data dir.
func testConfig(t *testing.T, years []int, windows string) *contract.Config {
	t.Helper()
	dataDir := t.TempDir()
	writeSeasonFiles(t, dataDir, years)

	cfg := &contract.Config{}
	input := &contract.ConfigRawInput{
		DataDirStr: dataDir,
		FiguresDir: filepath.Join(t.TempDir(), "figures"),
		StartYear:  years[0],
		EndYear:    years[len(years)-1],
		Windows:    windows,
		TopN:       5,
		Category:   string(schema.RushingCategory),
		Precision:  2,
		Output:     string(schema.TextOut),
		Color:      "no",
	}
	require.NoError(t, contract.ProcessAndValidate(cfg, input))
	return cfg
}

// archiveSpy records rows handed to the archiver.
type archiveSpy struct {
	saved int
}

func (a *archiveSpy) SaveRatings(rows []schema.RatedRow) (int, error) {
	a.saved += len(rows)
	return len(rows), nil
}

func (a *archiveSpy) Close() error { return nil }

// TestExecuteCharts tests the orchestrated pipeline end to end.
func TestExecuteCharts(t *testing.T) {
	t.Run("renders one chart per category and window", func(t *testing.T) {
		cfg := testConfig(t, []int{2019, 2020, 2021}, "2019-2020,2020-2021")
		require.NoError(t, ExecuteCharts(cfg, nil))

		for _, name := range []string{
			"top5_qb_2019_2020.png",
			"top5_rb_2019_2020.png",
			"top5_qb_2020_2021.png",
			"top5_rb_2020_2021.png",
		} {
			info, err := os.Stat(filepath.Join(cfg.FiguresDir, name))
			require.NoError(t, err, name)
			assert.Positive(t, info.Size(), name)
		}
	})

	t.Run("archives rated rows when configured", func(t *testing.T) {
		cfg := testConfig(t, []int{2019, 2020}, "2019-2020")
		spy := &archiveSpy{}
		require.NoError(t, ExecuteCharts(cfg, spy))
		// Two rushing rows per season over two seasons.
		assert.Equal(t, 4, spy.saved)
	})

	t.Run("missing season aborts before any chart", func(t *testing.T) {
		cfg := testConfig(t, []int{2019, 2020}, "2019-2020")
		cfg.EndYear = 2022 // 2021 and 2022 files do not exist
		require.Error(t, ExecuteCharts(cfg, nil))

		entries, err := os.ReadDir(cfg.FiguresDir)
		if err == nil {
			assert.Empty(t, entries)
		}
	})
}

// TestRankedSelection tests the shared rank entry point per category.
func TestRankedSelection(t *testing.T) {
	cfg := testConfig(t, []int{2019}, "2019-2019")

	t.Run("rushing ranks by composite", func(t *testing.T) {
		sel, err := RankedSelection(cfg, schema.RushingCategory, schema.Window{Start: 2019, End: 2019})
		require.NoError(t, err)
		require.Len(t, sel, 2)
		assert.Equal(t, "C D", sel[0].Player)
	})

	t.Run("passing ranks by qbr and strips league average", func(t *testing.T) {
		sel, err := RankedSelection(cfg, schema.PassingCategory, schema.Window{Start: 2019, End: 2019})
		require.NoError(t, err)
		require.Len(t, sel, 2)
		assert.Equal(t, "Lead Passer", sel[0].Player)
		for _, r := range sel {
			assert.False(t, schema.IsLeagueAverage(r.Player))
		}
	})
}

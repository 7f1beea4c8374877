// Package chart renders grouped bar charts of per-season rankings. Seasons
// sit at unit intervals on the X axis; each rank occupies a fixed offset
// inside its season group and every bar carries the player's surname.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/huangsam/gridiron/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Layout constants. The bar width fraction leaves a gap between adjacent
// season groups even with five bars per group.
const (
	barWidth      = 0.14
	yHeadroom     = 1.12 // Y axis extended past the max so rotated labels clear the frame
	labelFontSize = 7
	chartWidth    = 18 * vg.Inch
	chartHeight   = 6 * vg.Inch
)

// barOffset returns the offset of a rank's bar from its season center, in
// season units.
func barOffset(rank, topN int) float64 {
	return float64(rank-topN/2) * barWidth
}

// rankBars draws one rank's bars across all seasons as data-unit rectangles.
// The built-in bar chart offsets groups in display units, which cannot
// express the season-unit offset the layout is defined in.
type rankBars struct {
	xys   plotter.XYs
	color color.Color
}

// Plot implements the plot.Plotter interface.
func (b *rankBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, pt := range b.xys {
		poly := []vg.Point{
			{X: trX(pt.X - barWidth/2), Y: trY(0)},
			{X: trX(pt.X - barWidth/2), Y: trY(pt.Y)},
			{X: trX(pt.X + barWidth/2), Y: trY(pt.Y)},
			{X: trX(pt.X + barWidth/2), Y: trY(0)},
		}
		c.FillPolygon(b.color, c.ClipPolygonXY(poly))
	}
}

// DataRange implements the plot.DataRanger interface.
func (b *rankBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, math.Inf(-1)
	for _, pt := range b.xys {
		xmin = math.Min(xmin, pt.X-barWidth/2)
		xmax = math.Max(xmax, pt.X+barWidth/2)
		ymin = math.Min(ymin, pt.Y)
		ymax = math.Max(ymax, pt.Y)
	}
	return xmin, xmax, ymin, ymax
}

// Render lays out a grouped bar chart for a top-N selection and writes a
// raster image to outPath, overwriting any existing file. The selection must
// be ordered the way the selector emits it: season ascending, then rank.
func Render(sel []schema.SeasonValue, topN int, valueLabel, title, outPath string) error {
	if len(sel) == 0 {
		return errors.New("no rows to chart")
	}

	seasons, bySeason := groupBySeason(sel)
	maxValue := math.Inf(-1)
	for _, r := range sel {
		maxValue = math.Max(maxValue, r.Value)
	}

	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = valueLabel

	for rank := 0; rank < topN; rank++ {
		var xys plotter.XYs
		var names []string
		for i, season := range seasons {
			group := bySeason[season]
			if rank >= len(group) {
				// Short season: no bar for this slot.
				continue
			}
			xys = append(xys, plotter.XY{X: float64(i) + barOffset(rank, topN), Y: group[rank].Value})
			names = append(names, schema.LastName(group[rank].Player))
		}
		if len(xys) == 0 {
			continue
		}

		p.Add(&rankBars{xys: xys, color: plotutil.Color(rank)})

		labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
		if err != nil {
			return fmt.Errorf("cannot build bar labels: %w", err)
		}
		for i := range labels.TextStyle {
			labels.TextStyle[i].Rotation = math.Pi / 2
			labels.TextStyle[i].Font.Size = vg.Points(labelFontSize)
			labels.TextStyle[i].XAlign = text.XLeft
			labels.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(labels)
	}

	labelNames := make([]string, len(seasons))
	for i, season := range seasons {
		labelNames[i] = strconv.Itoa(season)
	}
	p.NominalX(labelNames...)

	p.Y.Min = 0
	if maxValue > 0 {
		p.Y.Max = maxValue * yHeadroom
	}

	if err := p.Save(chartWidth, chartHeight, outPath); err != nil {
		return fmt.Errorf("cannot save chart to %s: %w", outPath, err)
	}
	return nil
}

// groupBySeason splits an ordered selection into per-season rank lists,
// preserving rank order inside each season.
func groupBySeason(sel []schema.SeasonValue) ([]int, map[int][]schema.SeasonValue) {
	bySeason := make(map[int][]schema.SeasonValue)
	var seasons []int
	for _, r := range sel {
		if _, ok := bySeason[r.Season]; !ok {
			seasons = append(seasons, r.Season)
		}
		bySeason[r.Season] = append(bySeason[r.Season], r)
	}
	return seasons, bySeason
}

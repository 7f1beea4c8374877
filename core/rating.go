package core

import (
	"github.com/huangsam/gridiron/schema"
	"gonum.org/v1/gonum/stat"
)

// zEpsilon guards the z-score denominator against a zero-variance season
// partition. A single-row season degenerates to a composite of zero rather
// than an error.
const zEpsilon = 1e-9

// ratingComponent pairs a raw field accessor with the destination of its
// season z-score.
type ratingComponent struct {
	value func(*schema.RushingRow) float64
	score func(*schema.RatedRow) *float64
}

var ratingComponents = []ratingComponent{
	{func(r *schema.RushingRow) float64 { return r.SuccessPct }, func(r *schema.RatedRow) *float64 { return &r.ZSuccess }},
	{func(r *schema.RushingRow) float64 { return r.YardsPerAttempt }, func(r *schema.RatedRow) *float64 { return &r.ZYPA }},
	{func(r *schema.RushingRow) float64 { return r.Yards }, func(r *schema.RatedRow) *float64 { return &r.ZYards }},
	{func(r *schema.RushingRow) float64 { return r.Touchdowns }, func(r *schema.RatedRow) *float64 { return &r.ZTD }},
}

// Rate computes the composite running back rating for every row: each of the
// four component fields is z-scored within the row's season partition using
// the population standard deviation, and the composite is their unweighted
// mean. Input order is preserved and no season leaks into another.
func Rate(rows []schema.RushingRow) []schema.RatedRow {
	rated := make([]schema.RatedRow, len(rows))
	bySeason := make(map[int][]int)
	for i := range rows {
		rated[i].RushingRow = rows[i]
		bySeason[rows[i].Season] = append(bySeason[rows[i].Season], i)
	}

	for _, idxs := range bySeason {
		for _, comp := range ratingComponents {
			values := make([]float64, len(idxs))
			for j, i := range idxs {
				values[j] = comp.value(&rated[i].RushingRow)
			}
			mean := stat.Mean(values, nil)
			sigma := stat.PopStdDev(values, nil)
			for j, i := range idxs {
				*comp.score(&rated[i]) = (values[j] - mean) / (sigma + zEpsilon)
			}
		}
	}

	for i := range rated {
		r := &rated[i]
		r.Rating = (r.ZSuccess + r.ZYPA + r.ZYards + r.ZTD) / float64(len(ratingComponents))
	}
	return rated
}

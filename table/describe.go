package table

import (
	"encoding/json"
	"math"
	"sort"

	"github.com/turbot/owid-covid-dashboard/schema"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnStats holds the descriptive statistics of a numeric column
// values are NaN where they are undefined, e.g. the std of a single value
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe computes descriptive statistics for every numeric column, ignoring absent values
func (t *Table) Describe() []ColumnStats {
	var res []ColumnStats
	for i, c := range t.Columns {
		if c.Type != schema.TypeDouble {
			continue
		}
		var values []float64
		for _, row := range t.Rows {
			if f, ok := row[i].AsNumber(); ok {
				values = append(values, f)
			}
		}
		res = append(res, describeValues(c.ColumnName, values))
	}
	return res
}

func describeValues(column string, values []float64) ColumnStats {
	s := ColumnStats{Column: column, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.Mean = stat.Mean(sorted, nil)
	// sample standard deviation - undefined for a single value
	s.Std = math.NaN()
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	s.Min = floats.Min(sorted)
	s.Max = floats.Max(sorted)
	s.Q25 = linearQuantile(0.25, sorted)
	s.Median = linearQuantile(0.5, sorted)
	s.Q75 = linearQuantile(0.75, sorted)
	return s
}

// linearQuantile interpolates between the two closest ranks of the sorted values
func linearQuantile(p float64, sorted []float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

func (s ColumnStats) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"column": s.Column,
		"count":  s.Count,
		"mean":   jsonFloat(s.Mean),
		"std":    jsonFloat(s.Std),
		"min":    jsonFloat(s.Min),
		"25%":    jsonFloat(s.Q25),
		"50%":    jsonFloat(s.Median),
		"75%":    jsonFloat(s.Q75),
		"max":    jsonFloat(s.Max),
	})
}

// jsonFloat maps NaN and infinities, which json cannot encode, to null
func jsonFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

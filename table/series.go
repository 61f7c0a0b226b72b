package table

import (
	"time"
)

type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series returns the (date, value) pairs of the given columns for charting.
// Rows where either cell is absent are skipped.
func (t *Table) Series(dateColumn, valueColumn string) ([]Point, error) {
	dateIdx, err := t.mustIndex(dateColumn)
	if err != nil {
		return nil, err
	}
	valueIdx, err := t.mustIndex(valueColumn)
	if err != nil {
		return nil, err
	}

	var res []Point
	for _, row := range t.Rows {
		d, ok := row[dateIdx].AsDate()
		if !ok {
			continue
		}
		v, ok := row[valueIdx].AsNumber()
		if !ok {
			continue
		}
		res = append(res, Point{Date: d, Value: v})
	}
	return res, nil
}

// SeriesSummary summarises a series for text output
type SeriesSummary struct {
	Points int       `json:"points"`
	First  time.Time `json:"first,omitempty"`
	Last   time.Time `json:"last,omitempty"`
	Latest float64   `json:"latest"`
	Peak   Point     `json:"peak"`
}

func Summarise(points []Point) SeriesSummary {
	var s SeriesSummary
	s.Points = len(points)
	if len(points) == 0 {
		return s
	}
	s.First = points[0].Date
	s.Last = points[len(points)-1].Date
	s.Latest = points[len(points)-1].Value
	s.Peak = points[0]
	for _, p := range points[1:] {
		if p.Value > s.Peak.Value {
			s.Peak = p
		}
	}
	return s
}

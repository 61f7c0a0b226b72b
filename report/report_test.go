package report

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/turbot/owid-covid-dashboard/artifact_source"
	"github.com/turbot/owid-covid-dashboard/pipeline"
	"github.com/turbot/owid-covid-dashboard/schema"
	"github.com/turbot/owid-covid-dashboard/table"
)

func TestRender(t *testing.T) {
	location := "Spain"
	day := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	preview := table.New([]*schema.ColumnSchema{
		{ColumnName: "location", Type: schema.TypeVarchar},
		{ColumnName: "total_cases", Type: schema.TypeDouble},
	})
	preview.Rows = []table.Row{
		{table.String("Spain"), table.Number(84)},
		{table.String("Spain"), table.Null()},
	}

	tests := []struct {
		name  string
		state *pipeline.State
		want  []string
	}{
		{
			name: "halted",
			state: &pipeline.State{
				Phase:    pipeline.PhaseHalted,
				HaltedIn: pipeline.PhaseFetching,
				Err:      &artifact_source.FetchError{Url: "https://example.com", StatusCode: 500, Err: errors.New("Internal Server Error")},
			},
			want: []string{Title, "Error (Fetching)", "unexpected status 500"},
		},
		{
			name:  "locations",
			state: &pipeline.State{Phase: pipeline.PhaseValidated, Locations: []string{"Spain", "France"}},
			want:  []string{"2 locations available", "  Spain\n", "  France\n"},
		},
		{
			name:  "empty selection",
			state: &pipeline.State{Phase: pipeline.PhaseEmptySelection, Selected: &location},
			want:  []string{"Warning: no data available for Spain"},
		},
		{
			name: "filtered",
			state: &pipeline.State{
				Phase:    pipeline.PhaseFiltered,
				Selected: &location,
				Preview:  preview,
				Series: []pipeline.ChartSeries{{
					Title:   "Total cases in Spain",
					Summary: table.SeriesSummary{Points: 1, First: day, Last: day, Latest: 84, Peak: table.Point{Date: day, Value: 84}},
				}},
				Stats: []table.ColumnStats{{Column: "total_cases", Count: 1, Mean: 84, Std: math.NaN(), Min: 84, Q25: 84, Median: 84, Q75: 84, Max: 84}},
			},
			want: []string{"COVID-19 data for Spain", "Total cases in Spain", "2020-03-01", "Descriptive statistics for Spain", "NaN", "25%"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Render(&buf, tt.state)
			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

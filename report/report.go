package report

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/turbot/owid-covid-dashboard/pipeline"
	"github.com/turbot/owid-covid-dashboard/table"
)

const (
	Title       = "COVID-19 interactive dashboard"
	Description = "Statistics and charts of the Our World in Data COVID-19 dataset."
)

// Render writes the terminal report of a pipeline state
func Render(w io.Writer, s *pipeline.State) {
	fmt.Fprintf(w, "%s\n%s\n\n", Title, Description)

	switch s.Phase {
	case pipeline.PhaseHalted:
		fmt.Fprintf(w, "Error (%s): %s\n", s.HaltedIn, s.Err)
	case pipeline.PhaseValidated:
		RenderLocations(w, s.Locations)
	case pipeline.PhaseEmptySelection:
		fmt.Fprintf(w, "Warning: no data available for %s\n", selected(s))
	case pipeline.PhaseFiltered:
		fmt.Fprintf(w, "COVID-19 data for %s\n", selected(s))
		RenderTable(w, s.Preview)
		fmt.Fprintln(w)
		RenderSeries(w, s.Series)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Descriptive statistics for %s\n", selected(s))
		RenderStats(w, s.Stats)
	}
}

func selected(s *pipeline.State) string {
	if s.Selected == nil {
		return ""
	}
	return *s.Selected
}

// RenderLocations writes the selectable locations, one per line
func RenderLocations(w io.Writer, locations []string) {
	fmt.Fprintf(w, "%d locations available:\n", len(locations))
	for _, l := range locations {
		fmt.Fprintf(w, "  %s\n", l)
	}
}

// RenderTable writes the table with absent values shown empty
func RenderTable(w io.Writer, t *table.Table) {
	tw := newWriter(w)
	tw.SetHeader(t.ColumnNames())
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		tw.Append(cells)
	}
	tw.Render()
}

// RenderSeries writes one summary line per chart
func RenderSeries(w io.Writer, series []pipeline.ChartSeries) {
	tw := newWriter(w)
	tw.SetHeader([]string{"series", "points", "first", "last", "latest", "peak", "peak date"})
	for _, s := range series {
		row := []string{s.Title, strconv.Itoa(s.Summary.Points), "", "", "", "", ""}
		if s.Summary.Points > 0 {
			row[2] = s.Summary.First.Format(table.DateLayout)
			row[3] = s.Summary.Last.Format(table.DateLayout)
			row[4] = formatFloat(s.Summary.Latest)
			row[5] = formatFloat(s.Summary.Peak.Value)
			row[6] = s.Summary.Peak.Date.Format(table.DateLayout)
		}
		tw.Append(row)
	}
	tw.Render()
}

// RenderStats writes the descriptive statistics with one column per numeric column, as pandas describe does
func RenderStats(w io.Writer, stats []table.ColumnStats) {
	header := []string{""}
	for _, s := range stats {
		header = append(header, s.Column)
	}

	rows := []struct {
		label string
		value func(table.ColumnStats) float64
	}{
		{"count", func(s table.ColumnStats) float64 { return float64(s.Count) }},
		{"mean", func(s table.ColumnStats) float64 { return s.Mean }},
		{"std", func(s table.ColumnStats) float64 { return s.Std }},
		{"min", func(s table.ColumnStats) float64 { return s.Min }},
		{"25%", func(s table.ColumnStats) float64 { return s.Q25 }},
		{"50%", func(s table.ColumnStats) float64 { return s.Median }},
		{"75%", func(s table.ColumnStats) float64 { return s.Q75 }},
		{"max", func(s table.ColumnStats) float64 { return s.Max }},
	}

	tw := newWriter(w)
	tw.SetHeader(header)
	for _, r := range rows {
		cells := []string{r.label}
		for _, s := range stats {
			cells = append(cells, formatFloat(r.value(s)))
		}
		tw.Append(cells)
	}
	tw.Render()
}

func newWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	return tw
}

func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

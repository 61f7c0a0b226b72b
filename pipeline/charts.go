package pipeline

import (
	"fmt"

	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/table"
)

// Chart describes one line chart of a location's time series
type Chart struct {
	Column string `json:"column"`
	Title  string `json:"title"`
	Label  string `json:"label"`
}

// Charts are the series drawn for every selected location, in display order
var Charts = []Chart{
	{Column: constants.ColumnTotalCases, Title: "Total cases in %s", Label: "Total cases"},
	{Column: constants.ColumnNewCases, Title: "Daily new cases in %s", Label: "New cases"},
	{Column: constants.ColumnTotalDeaths, Title: "Total deaths in %s", Label: "Total deaths"},
	{Column: constants.ColumnNewDeaths, Title: "Daily new deaths in %s", Label: "New deaths"},
}

func (c Chart) TitleFor(location string) string {
	return fmt.Sprintf(c.Title, location)
}

// ChartSeries is the data of one chart for the selected location
type ChartSeries struct {
	Column  string              `json:"column"`
	Title   string              `json:"title"`
	Label   string              `json:"label"`
	Points  []table.Point       `json:"points"`
	Summary table.SeriesSummary `json:"summary"`
}

func buildSeries(t *table.Table, location string) ([]ChartSeries, error) {
	res := make([]ChartSeries, len(Charts))
	for i, c := range Charts {
		points, err := t.Series(constants.ColumnDate, c.Column)
		if err != nil {
			return nil, err
		}
		res[i] = ChartSeries{
			Column:  c.Column,
			Title:   c.TitleFor(location),
			Label:   c.Label,
			Points:  points,
			Summary: table.Summarise(points),
		}
	}
	return res, nil
}

package dashboard

import (
	"github.com/turbot/owid-covid-dashboard/pipeline"
	"github.com/turbot/owid-covid-dashboard/table"
)

type locationsResponse struct {
	ExecutionId string   `json:"execution_id"`
	Url         string   `json:"url"`
	Locations   []string `json:"locations"`
}

type tableResponse struct {
	Columns []string    `json:"columns"`
	Rows    []table.Row `json:"rows"`
}

type selectionResponse struct {
	Location string                 `json:"location"`
	Rows     int                    `json:"rows"`
	Preview  tableResponse          `json:"preview"`
	Series   []pipeline.ChartSeries `json:"series"`
	Stats    []table.ColumnStats    `json:"stats"`
}

func newSelectionResponse(s *pipeline.State) selectionResponse {
	return selectionResponse{
		Location: *s.Selected,
		Rows:     s.Filtered.Len(),
		Preview: tableResponse{
			Columns: s.Preview.ColumnNames(),
			Rows:    s.Preview.Rows,
		},
		Series: s.Series,
		Stats:  s.Stats,
	}
}

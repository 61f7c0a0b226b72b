package pipeline

import (
	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

// State is the result of one pipeline run
type State struct {
	ExecutionId string
	Phase       Phase
	// HaltedIn is the phase which failed, set when Phase is PhaseHalted
	HaltedIn Phase
	Err      error

	Artifact *types.DownloadedArtifactInfo
	// Locations populate the selection control; nil unless the dataset was validated
	Locations []string
	Selected  *string

	// the following are only set when Phase is PhaseFiltered
	Filtered *table.Table
	Preview  *table.Table
	Series   []ChartSeries
	Stats    []table.ColumnStats

	Timing types.TimingMap
}

func (s *State) Halted() bool {
	return s.Phase == PhaseHalted
}

// EmptySelection reports whether the selected location matched no rows
func (s *State) EmptySelection() bool {
	return s.Phase == PhaseEmptySelection
}

package events

import (
	"github.com/turbot/owid-covid-dashboard/types"
)

// Completed is raised at the end of every run, whether it succeeded or halted
type Completed struct {
	Base
	ExecutionId string
	// Phase is the phase the run ended in
	Phase  string
	Err    error
	Timing types.TimingMap
}

func NewCompletedEvent(executionId string, phase string, timing types.TimingMap, err error) *Completed {
	return &Completed{
		ExecutionId: executionId,
		Phase:       phase,
		Timing:      timing,
		Err:         err,
	}
}

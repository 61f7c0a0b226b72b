package pipeline

import (
	"context"
	"sync"

	"github.com/qmuntal/stateless"
	"github.com/turbot/go-kit/helpers"
	"github.com/turbot/owid-covid-dashboard/constants"
	"github.com/turbot/owid-covid-dashboard/context_values"
	"github.com/turbot/owid-covid-dashboard/events"
	"github.com/turbot/owid-covid-dashboard/table"
	"github.com/turbot/owid-covid-dashboard/types"
)

// Dataset is a prepared dataset which selections are made against
type Dataset struct {
	ExecutionId string
	Artifact    *types.DownloadedArtifactInfo
	// Table is the projected table with the date column coerced, nil if the dataset halted
	Table     *table.Table
	Locations []string
	Err       error
	HaltedIn  Phase
	Timing    types.TimingMap

	pipeline *Pipeline
	machine  *stateless.StateMachine
	// the phase Prepare ended in
	phase Phase
	mut   sync.Mutex
}

func newDataset(p *Pipeline, executionId string) *Dataset {
	return &Dataset{
		ExecutionId: executionId,
		Timing:      make(types.TimingMap),
		pipeline:    p,
		machine:     newMachine(),
		phase:       PhaseStart,
	}
}

// Phase returns the phase Prepare ended in: PhaseValidated or PhaseHalted
func (d *Dataset) Phase() Phase {
	return d.phase
}

// State returns the state of the prepared dataset, before any selection
func (d *Dataset) State() *State {
	return &State{
		ExecutionId: d.ExecutionId,
		Phase:       d.phase,
		HaltedIn:    d.HaltedIn,
		Err:         d.Err,
		Artifact:    d.Artifact,
		Locations:   d.Locations,
		Timing:      d.Timing,
	}
}

// Select filters the dataset to the given location.
// No matching rows is not an error: the state is returned in PhaseEmptySelection.
func (d *Dataset) Select(ctx context.Context, location string) (s *State) {
	d.mut.Lock()
	defer d.mut.Unlock()

	ctx = context_values.WithExecutionId(ctx, d.ExecutionId)

	s = d.State()
	s.Selected = &location
	// each selection gets its own timing so the dataset timing is unchanged
	s.Timing = make(types.TimingMap, len(d.Timing)+1)
	for k, v := range d.Timing {
		s.Timing[k] = v
	}

	if d.Err != nil {
		return s
	}

	defer func() {
		if r := recover(); r != nil {
			s = d.haltSelection(ctx, s, helpers.ToError(r))
		}
	}()

	if err := d.fire(ctx, triggerChoose); err != nil {
		return d.haltSelection(ctx, s, err)
	}

	endFilter := s.Timing.Track(constants.TimingFilter)
	filtered, err := d.Table.FilterByLocation(constants.ColumnLocation, location)
	if err == nil && !filtered.Empty() {
		s.Series, err = buildSeries(filtered, location)
	}
	endFilter()
	if err != nil {
		return d.haltSelection(ctx, s, err)
	}

	d.pipeline.notify(ctx, events.NewLocationFilteredEvent(d.ExecutionId, location, filtered.Len()))

	if filtered.Empty() {
		// a new choice is still permitted from EmptySelection
		if err := d.fire(ctx, triggerEmpty); err != nil {
			return d.haltSelection(ctx, s, err)
		}
		s.Phase = PhaseEmptySelection
		s.Filtered = filtered
		return s
	}

	if err := d.fire(ctx, triggerFiltered); err != nil {
		return d.haltSelection(ctx, s, err)
	}
	s.Phase = PhaseFiltered
	s.Filtered = filtered
	s.Preview = filtered.Head(constants.PreviewRowCount)
	s.Stats = filtered.Describe()
	return s
}

func (d *Dataset) fire(ctx context.Context, t trigger) error {
	return fire(ctx, d.machine, t)
}

// halt moves the dataset to PhaseHalted, recording the phase which failed
func (d *Dataset) halt(ctx context.Context, err error) {
	failed := currentPhase(ctx, d.machine)
	d.Err = err
	d.HaltedIn = failed
	d.Table = nil
	d.Locations = nil
	if failed != PhaseHalted {
		_ = fire(ctx, d.machine, triggerFail)
	}
	d.phase = PhaseHalted
	d.pipeline.notify(ctx, events.NewErrorEvent(d.ExecutionId, string(failed), err))
}

func (d *Dataset) haltSelection(ctx context.Context, s *State, err error) *State {
	d.halt(ctx, err)
	s.Phase, s.HaltedIn, s.Err = d.phase, d.HaltedIn, d.Err
	s.Locations = nil
	s.Series = nil
	return s
}

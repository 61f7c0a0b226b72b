package pipeline

import (
	"context"
	"fmt"

	"github.com/qmuntal/stateless"
)

type Phase string

const (
	PhaseStart          Phase = "Start"
	PhaseFetching       Phase = "Fetching"
	PhaseLoaded         Phase = "Loaded"
	PhaseValidated      Phase = "Validated"
	PhaseLocationChosen Phase = "LocationChosen"
	PhaseFiltered       Phase = "Filtered"
	PhaseEmptySelection Phase = "EmptySelection"
	PhaseHalted         Phase = "Halted"
)

type trigger string

const (
	triggerFetch    trigger = "fetch"
	triggerLoad     trigger = "load"
	triggerValidate trigger = "validate"
	triggerChoose   trigger = "choose"
	triggerFiltered trigger = "filtered"
	triggerEmpty    trigger = "empty"
	triggerFail     trigger = "fail"
)

// newMachine builds the phase state machine of a single dataset.
// Halted is terminal. Filtered and EmptySelection accept a new location choice.
func newMachine() *stateless.StateMachine {
	machine := stateless.NewStateMachine(PhaseStart)

	machine.Configure(PhaseStart).
		Permit(triggerFetch, PhaseFetching)

	machine.Configure(PhaseFetching).
		Permit(triggerLoad, PhaseLoaded).
		Permit(triggerFail, PhaseHalted)

	machine.Configure(PhaseLoaded).
		Permit(triggerValidate, PhaseValidated).
		Permit(triggerFail, PhaseHalted)

	machine.Configure(PhaseValidated).
		Permit(triggerChoose, PhaseLocationChosen).
		Permit(triggerFail, PhaseHalted)

	machine.Configure(PhaseLocationChosen).
		Permit(triggerFiltered, PhaseFiltered).
		Permit(triggerEmpty, PhaseEmptySelection).
		Permit(triggerFail, PhaseHalted)

	machine.Configure(PhaseFiltered).
		Permit(triggerChoose, PhaseLocationChosen)

	machine.Configure(PhaseEmptySelection).
		Permit(triggerChoose, PhaseLocationChosen)

	return machine
}

func currentPhase(ctx context.Context, machine *stateless.StateMachine) Phase {
	s, err := machine.State(ctx)
	if err != nil {
		return PhaseHalted
	}
	return s.(Phase)
}

func fire(ctx context.Context, machine *stateless.StateMachine, t trigger) error {
	if err := machine.FireCtx(ctx, t); err != nil {
		return fmt.Errorf("invalid pipeline transition '%s' from %s: %w", t, currentPhase(ctx, machine), err)
	}
	return nil
}

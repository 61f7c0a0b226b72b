package events

type Error struct {
	Base
	ExecutionId string
	// Phase is the pipeline phase which failed
	Phase string
	Err   error
}

func NewErrorEvent(executionId string, phase string, err error) *Error {
	return &Error{
		ExecutionId: executionId,
		Phase:       phase,
		Err:         err,
	}
}

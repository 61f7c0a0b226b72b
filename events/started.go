package events

type Started struct {
	Base
	ExecutionId string
	Url         string
}

func NewStartedEvent(executionId string, url string) *Started {
	return &Started{
		ExecutionId: executionId,
		Url:         url,
	}
}

package events

// Event is raised by the pipeline as a run progresses
type Event interface {
	IsEvent()
}

type Base struct {
}

func (b *Base) IsEvent() {}

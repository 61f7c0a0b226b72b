package events

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_Update(t *testing.T) {
	s := NewStatusEvent()
	for _, e := range []Event{
		NewStartedEvent("id", "https://example.com/data.csv"),
		NewTableLoadedEvent("id", "datos_covid.csv", 4, 7),
		NewLocationFilteredEvent("id", "A", 2),
		NewLocationFilteredEvent("id", "C", 0),
		NewErrorEvent("id", "Fetching", errors.New("boom")),
	} {
		s.Update(e)
	}

	got := s.Snapshot()
	assert.Equal(t, 1, got.Runs)
	assert.Equal(t, 1, got.TablesLoaded)
	assert.Equal(t, 4, got.RowsLoaded)
	assert.Equal(t, 2, got.SelectionsFiltered)
	assert.Equal(t, 1, got.EmptySelections)
	assert.Equal(t, 1, got.Errors)
	assert.Equal(t, 0, got.ArtifactsDownloaded)
}

package events

import "sync"

// StatusCounts are the counters held by a Status
type StatusCounts struct {
	Runs                int `json:"runs"`
	ArtifactsDownloaded int `json:"artifacts_downloaded"`
	TablesLoaded        int `json:"tables_loaded"`
	RowsLoaded          int `json:"rows_loaded"`
	SelectionsFiltered  int `json:"selections_filtered"`
	EmptySelections     int `json:"empty_selections"`
	Errors              int `json:"errors"`
}

// Status aggregates counters over the events of the runs it has seen
type Status struct {
	Base
	mut    sync.Mutex
	counts StatusCounts
}

func NewStatusEvent() *Status {
	return &Status{}
}

func (r *Status) Update(event Event) {
	r.mut.Lock()
	defer r.mut.Unlock()

	switch e := event.(type) {
	case *Started:
		r.counts.Runs++
	case *ArtifactDownloaded:
		r.counts.ArtifactsDownloaded++
	case *TableLoaded:
		r.counts.TablesLoaded++
		r.counts.RowsLoaded += e.RowCount
	case *LocationFiltered:
		r.counts.SelectionsFiltered++
		if e.Empty() {
			r.counts.EmptySelections++
		}
	case *Error:
		r.counts.Errors++
	}
}

// Snapshot returns a copy of the counters
func (r *Status) Snapshot() StatusCounts {
	r.mut.Lock()
	defer r.mut.Unlock()
	return r.counts
}

package types

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/exp/maps"
)

type Timing struct {
	Start time.Time
	End   time.Time
}

func (t *Timing) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// TimingMap is keyed by phase label
type TimingMap map[string]Timing

// Track records the start of a phase and returns a func which records its end
func (m TimingMap) Track(label string) func() {
	start := time.Now()
	return func() {
		m[label] = Timing{Start: start, End: time.Now()}
	}
}

func (m TimingMap) String() string {
	var sb strings.Builder
	sb.WriteString("Timing:\n")
	// get max label length
	maxLabelLen := 0
	for k := range m {
		if len(k) > maxLabelLen {
			maxLabelLen = len(k)
		}
	}

	// order by start time so phases print in execution order
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return m[keys[i]].Start.Before(m[keys[j]].Start)
	})
	for _, k := range keys {
		v := m[k]
		sb.WriteString(k)
		sb.WriteString(":")
		// pad label to max length
		for i := len(k); i < maxLabelLen; i++ {
			sb.WriteString(" ")
		}
		sb.WriteString(v.Duration().String())
		sb.WriteString("\n")
	}
	return sb.String()
}

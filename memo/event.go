package memo

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

type TimeSpan = timespan.TimeSpan

const epsilon = time.Millisecond

func now() TimeSpan {
	n := time.Now()
	return timespan.BetweenTimes(n.Add(-1*epsilon), n.Add(epsilon))
}

// RecomputeEvent describes one factory run: the first population of a cell
// or a recompute after a dependency change.
type RecomputeEvent struct {
	// CellID identifies the emitting cell across events.
	CellID string
	// Digest fingerprints the dependency list that triggered the run.
	Digest uint64
	// First is true on the Empty→Populated transition only.
	First bool
	TimeSpan
}

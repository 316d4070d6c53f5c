package advanced

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/internal/dbg"
)

type circleState uint8

const (
	// Might still be invalidated by a point that hasn't been inserted yet.
	circleOpen circleState = iota
	// Lies entirely to the left of the sweep, so no remaining point can reach it.
	circleCompleted
	// Contained an inserted point, and was replaced by new triangles.
	circleDiscarded
)

func (s circleState) String() string {
	switch s {
	case circleOpen:
		return "open"
	case circleCompleted:
		return "completed"
	case circleDiscarded:
		return "discarded"
	}
	return "unknown"
}

// Stable reference to a record in a circleArena. Handles stay valid for the
// life of the arena, since records are never moved or removed.
type circleHandle int

type circleRecord struct {
	circumcircle
	state circleState
}

// Every circumcircle created during one triangulation. Records only ever
// change state. Membership in the open set is owned by the sweep as a list of
// handles; the completed set is kept here, in the order records completed.
type circleArena struct {
	records   []circleRecord
	completed []circleHandle
}

func newCircleArena(capacity int) *circleArena {
	return &circleArena{
		records: make([]circleRecord, 0, capacity),
	}
}

func (a *circleArena) add(c circumcircle) circleHandle {
	a.records = append(a.records, circleRecord{circumcircle: c, state: circleOpen})
	return circleHandle(len(a.records) - 1)
}

func (a *circleArena) get(h circleHandle) *circleRecord {
	if h < 0 || int(h) >= len(a.records) {
		fatalf("circle handle %d out of range [0, %d)", h, len(a.records))
	}
	return &a.records[h]
}

func (a *circleArena) complete(h circleHandle) {
	a.transition(h, circleCompleted)
	a.completed = append(a.completed, h)
}

func (a *circleArena) discard(h circleHandle) {
	a.transition(h, circleDiscarded)
}

// Only open records can change state.
func (a *circleArena) transition(h circleHandle, to circleState) {
	record := a.get(h)
	if record.state != circleOpen {
		fatalf("cannot mark %s circle %s as %s", record.state, record.String(), to)
	}
	record.state = to
}

func (a *circleArena) countState(state circleState) int {
	count := 0
	for _, r := range a.records {
		if r.state == state {
			count++
		}
	}
	return count
}

type circleKey struct {
	arena  *circleArena
	handle circleHandle
}

// Readable name for a record, colored by its state, for following a single
// triangle through a trace.
func (a *circleArena) dbgName(h circleHandle) string {
	name := dbg.Name(circleKey{a, h})
	switch a.get(h).state {
	case circleOpen:
		return aurora.Green(name).String()
	case circleCompleted:
		return aurora.Cyan(name).String()
	default:
		return aurora.Red(name).String()
	}
}

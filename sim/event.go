package sim

import "fmt"

// EventKind classifies an entry in the simulation event log.
type EventKind string

const (
	EventArrived  EventKind = "arrived"
	EventSelected EventKind = "selected"
	EventFinished EventKind = "finished"
	EventIdle     EventKind = "idle"
)

// Event is one line of the event log, tagged with its simulated time.
// Process is empty for idle events; Burst is the remaining burst at selection.
type Event struct {
	Time    int64     `json:"time"`
	Kind    EventKind `json:"kind"`
	Process string    `json:"process,omitempty"`
	Burst   int64     `json:"burst,omitempty"`
}

// String renders the event the way the report prints it.
func (e Event) String() string {
	switch e.Kind {
	case EventSelected:
		return fmt.Sprintf("Time %3d : %s selected (burst %3d)", e.Time, e.Process, e.Burst)
	case EventIdle:
		return fmt.Sprintf("Time %3d : Idle", e.Time)
	default:
		return fmt.Sprintf("Time %3d : %s %s", e.Time, e.Process, e.Kind)
	}
}

// Package trace provides decision-trace recording for scheduler analysis.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DispatchRecord captures a scheduler dispatching a process.
type DispatchRecord struct {
	Clock   int64  `json:"clock"`
	Process string `json:"process"`
	Burst   int64  `json:"burst"` // remaining burst at dispatch
}

// PreemptionRecord captures a Running process returned to Ready before finishing.
type PreemptionRecord struct {
	Clock     int64  `json:"clock"`
	Process   string `json:"process"`
	Remaining int64  `json:"remaining"`
}

// TickRecord is a snapshot of CPU ownership for the unit that begins at Clock.
// Running normally holds zero or one name; more than one means a policy broke exclusivity.
type TickRecord struct {
	Clock     int64            `json:"clock"`
	Running   []string         `json:"running"`
	Ready     []string         `json:"ready"`
	Remaining map[string]int64 `json:"remaining"` // arrived, unfinished processes only
	Arrival   map[string]int64 `json:"arrival"`
}

// Segment is one contiguous stretch of CPU ownership. Process is "" for idle stretches.
type Segment struct {
	Process string `json:"process"`
	Start   int64  `json:"start"`
	Stop    int64  `json:"stop"`
}

package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	Dispatches           int
	Preemptions          int
	IdleTicks            int
	UniqueProcesses      int
	PreemptionsByProcess map[string]int // process name → times preempted
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		PreemptionsByProcess: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.Dispatches = len(st.Dispatches)
	summary.Preemptions = len(st.Preemptions)
	summary.IdleTicks = len(st.Idles)

	seen := make(map[string]bool)
	for _, d := range st.Dispatches {
		seen[d.Process] = true
	}
	for _, p := range st.Preemptions {
		summary.PreemptionsByProcess[p.Process]++
	}
	summary.UniqueProcesses = len(seen)

	return summary
}

// GanttSegments folds tick snapshots into contiguous ownership segments.
// A tick with no Running process contributes to an idle segment.
// Ticks are expected in clock order without gaps.
func GanttSegments(ticks []TickRecord) []Segment {
	segments := make([]Segment, 0)
	for _, tr := range ticks {
		owner := ""
		if len(tr.Running) > 0 {
			owner = tr.Running[0]
		}
		n := len(segments)
		if n > 0 && segments[n-1].Process == owner && segments[n-1].Stop == tr.Clock {
			segments[n-1].Stop = tr.Clock + 1
			continue
		}
		segments = append(segments, Segment{Process: owner, Start: tr.Clock, Stop: tr.Clock + 1})
	}
	return segments
}

package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_NilTrace_ZeroValues(t *testing.T) {
	summary := Summarize(nil)
	assert.Zero(t, summary.Dispatches)
	assert.Zero(t, summary.Preemptions)
	assert.NotNil(t, summary.PreemptionsByProcess)
}

func TestSummarize_PopulatedTrace_CorrectCounts(t *testing.T) {
	// GIVEN a trace with dispatches, preemptions and idle ticks
	st := NewSimulationTrace(TraceConfig{Level: TraceLevelDecisions})
	st.RecordDispatch(DispatchRecord{Clock: 0, Process: "A", Burst: 6})
	st.RecordDispatch(DispatchRecord{Clock: 2, Process: "B", Burst: 2})
	st.RecordDispatch(DispatchRecord{Clock: 4, Process: "A", Burst: 4})
	st.RecordPreemption(PreemptionRecord{Clock: 2, Process: "A", Remaining: 4})
	st.RecordIdle(8)
	st.RecordIdle(9)

	// WHEN summarized
	summary := Summarize(st)

	// THEN counts match
	assert.Equal(t, 3, summary.Dispatches)
	assert.Equal(t, 1, summary.Preemptions)
	assert.Equal(t, 2, summary.IdleTicks)
	assert.Equal(t, 2, summary.UniqueProcesses)
	assert.Equal(t, map[string]int{"A": 1}, summary.PreemptionsByProcess)
}

func TestGanttSegments_MergesContiguousOwnership(t *testing.T) {
	// GIVEN A for two ticks, an idle tick, then B
	ticks := []TickRecord{
		{Clock: 0, Running: []string{"A"}},
		{Clock: 1, Running: []string{"A"}},
		{Clock: 2},
		{Clock: 3, Running: []string{"B"}},
	}

	// WHEN folded into segments
	got := GanttSegments(ticks)

	// THEN each stretch becomes one segment with an exclusive stop
	want := []Segment{
		{Process: "A", Start: 0, Stop: 2},
		{Process: "", Start: 2, Stop: 3},
		{Process: "B", Start: 3, Stop: 4},
	}
	assert.Equal(t, want, got)
}

func TestGanttSegments_Empty(t *testing.T) {
	assert.Empty(t, GanttSegments(nil))
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics_AveragesOverFinishedOnly(t *testing.T) {
	// GIVEN the FCFS two-process run plus a process that never finishes
	w := newWorkload(SchedulerFCFS, 0, 8,
		NewProcess("P1", 0, 5), NewProcess("P2", 1, 3), NewProcess("P3", 2, 4))

	// WHEN simulated
	m := mustSimulate(t, w).Metrics

	// THEN averages cover P1 and P2 and utilization counts every executed unit
	assert.Equal(t, 2, m.Completed)
	assert.InDelta(t, 2.0, m.AvgWait, 1e-9)       // (0 + 4) / 2
	assert.InDelta(t, 6.0, m.AvgTurnaround, 1e-9) // (5 + 7) / 2
	assert.InDelta(t, 2.0, m.AvgResponse, 1e-9)
	assert.Equal(t, int64(8), m.BusyTicks)
	assert.InDelta(t, 1.0, m.Utilization, 1e-9)
	assert.InDelta(t, 0.25, m.Throughput, 1e-9)

	p3 := m.Processes[2]
	assert.False(t, p3.Finished)
	assert.Zero(t, p3.Executed)
	assert.Zero(t, p3.FinishTime)
}

func TestNewMetrics_NothingFinished_ZeroAverages(t *testing.T) {
	m := NewMetrics([]*Process{NewProcess("P1", 0, 3)}, 0)
	assert.Zero(t, m.Completed)
	assert.Zero(t, m.AvgWait)
	assert.Zero(t, m.Utilization)
	assert.Zero(t, m.Throughput)
	assert.Len(t, m.Processes, 1)
}

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcess_Tick_Ready_AccumulatesWaitAndResponse(t *testing.T) {
	// GIVEN a ready process that was never dispatched
	p := NewProcess("P1", 0, 3)
	p.Deselect()

	// WHEN two units elapse
	p.Tick(1)
	p.Tick(2)

	// THEN wait, turnaround and response all grow; no work is done
	assert.Equal(t, int64(2), p.WaitTime)
	assert.Equal(t, int64(2), p.TurnaroundTime)
	assert.Equal(t, int64(2), p.ResponseTime)
	assert.Equal(t, int64(3), p.Remaining)
}

func TestProcess_Tick_Running_ConsumesBurstAndFinishes(t *testing.T) {
	// GIVEN a dispatched process with burst 2
	p := NewProcess("P1", 0, 2)
	p.Select(0)

	// WHEN two units elapse
	p.Tick(1)
	assert.Equal(t, StateRunning, p.State)
	p.Tick(2)

	// THEN it finishes at tick 2 with turnaround 2 and no wait
	assert.Equal(t, StateFinished, p.State)
	assert.True(t, p.Finished())
	require.NotNil(t, p.FinishTime)
	assert.Equal(t, int64(2), *p.FinishTime)
	assert.True(t, p.FinishedAt(2))
	assert.Equal(t, int64(2), p.TurnaroundTime)
	assert.Zero(t, p.WaitTime)
	assert.Equal(t, int64(2), p.Executed())
}

func TestProcess_Tick_ReadyAfterDispatch_StopsResponse(t *testing.T) {
	// GIVEN a process that ran once and was then preempted
	p := NewProcess("P1", 0, 3)
	p.Deselect()
	p.Tick(1) // response 1
	p.Select(1)
	p.Tick(2)
	p.Deselect()

	// WHEN it waits again
	p.Tick(3)

	// THEN wait grows but response stays at the first-dispatch delay
	assert.Equal(t, int64(2), p.WaitTime)
	assert.Equal(t, int64(1), p.ResponseTime)
}

func TestProcess_Tick_UnarrivedOrFinished_NoChange(t *testing.T) {
	unarrived := NewProcess("P1", 5, 3)
	unarrived.Tick(1)
	assert.Equal(t, *NewProcess("P1", 5, 3), *unarrived)

	done := NewProcess("P2", 0, 1)
	done.Select(0)
	done.Tick(1)
	before := *done
	done.Tick(2)
	assert.Equal(t, before.TurnaroundTime, done.TurnaroundTime)
	assert.Equal(t, before.WaitTime, done.WaitTime)
}

func TestProcess_SelectDeselect_FinishedIsTerminal(t *testing.T) {
	// GIVEN a finished process
	p := NewProcess("P1", 0, 1)
	p.Select(0)
	p.Tick(1)

	// WHEN it is selected or deselected
	p.Select(1)
	p.Deselect()

	// THEN it stays finished and LastSelected keeps the real dispatch
	assert.Equal(t, StateFinished, p.State)
	assert.True(t, p.SelectedAt(0))
	assert.False(t, p.SelectedAt(1))
}

func TestProcess_Select_AlreadyRunning_RefreshesTimestamp(t *testing.T) {
	p := NewProcess("P1", 0, 5)
	p.Select(0)
	p.Select(3)
	assert.True(t, p.SelectedAt(3))
	assert.Equal(t, StateRunning, p.State)
}

func TestProcess_Clone_IsIndependent(t *testing.T) {
	p := NewProcess("P1", 0, 4)
	p.Select(2)
	c := p.Clone()
	c.Select(3)
	c.Tick(4)

	assert.True(t, p.SelectedAt(2), "original timestamp must not follow the clone")
	assert.Equal(t, int64(4), p.Remaining)
	assert.Equal(t, int64(3), c.Remaining)
}

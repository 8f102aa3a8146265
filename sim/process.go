// Defines the Process struct that models one simulated workload unit.
// Tracks arrival, remaining burst, dispatch state and the wait/turnaround/response counters.

package sim

import (
	"fmt"
)

// ProcessState represents the dispatch state of a process.
// The zero value means the process has not arrived yet.
type ProcessState string

const (
	StateUnarrived ProcessState = ""
	StateReady     ProcessState = "ready"
	StateRunning   ProcessState = "running"
	StateFinished  ProcessState = "finished"
)

// Process models a single process's lifecycle in the simulation:
// Unarrived → Ready ⇄ Running → Finished.
// Finished is terminal.
type Process struct {
	Name string // Unique identifier within a run

	ArrivalTime int64 // Tick at which the process becomes Ready
	BurstTime   int64 // Original CPU burst length
	Remaining   int64 // Burst still to execute, 0..BurstTime

	State ProcessState

	WaitTime       int64 // Ticks spent Ready
	TurnaroundTime int64 // Ticks between arrival and finish
	ResponseTime   int64 // Ticks between arrival and first dispatch

	LastSelected *int64 // Tick of the most recent dispatch; drives "selected" events
	FinishTime   *int64 // Tick at which Remaining reached 0
}

// NewProcess creates a Process that has not arrived yet.
func NewProcess(name string, arrival, burst int64) *Process {
	return &Process{
		Name:        name,
		ArrivalTime: arrival,
		BurstTime:   burst,
		Remaining:   burst,
		State:       StateUnarrived,
	}
}

// Tick advances the process by one unit ending at now.
// Unarrived and Finished processes are left untouched.
func (p *Process) Tick(now int64) {
	switch p.State {
	case StateReady:
		p.WaitTime++
		p.TurnaroundTime++
		// response time stops once the process has been dispatched at least once
		if p.Remaining == p.BurstTime {
			p.ResponseTime++
		}
	case StateRunning:
		p.TurnaroundTime++
		p.Remaining--
		if p.Remaining == 0 {
			p.State = StateFinished
			finish := now
			p.FinishTime = &finish
		}
	}
}

// Select dispatches the process. The timestamp is recorded on every call,
// even when the process is already Running.
func (p *Process) Select(now int64) {
	if p.State == StateFinished {
		return
	}
	p.State = StateRunning
	selected := now
	p.LastSelected = &selected
}

// Deselect returns the process to Ready unless it already finished.
func (p *Process) Deselect() {
	if p.State == StateFinished {
		return
	}
	p.State = StateReady
}

// Arrived reports whether the process has arrived by the given tick.
func (p *Process) Arrived(now int64) bool {
	return p.ArrivalTime <= now
}

// Finished reports whether the whole burst has executed.
func (p *Process) Finished() bool {
	return p.Remaining == 0
}

// Running reports whether the process currently occupies the CPU.
func (p *Process) Running() bool {
	return p.State == StateRunning
}

// Executed returns the number of burst units already run.
func (p *Process) Executed() int64 {
	return p.BurstTime - p.Remaining
}

// SelectedAt reports whether the process was last dispatched at tick now.
func (p *Process) SelectedAt(now int64) bool {
	return p.LastSelected != nil && *p.LastSelected == now
}

// FinishedAt reports whether the process finished at tick now.
func (p *Process) FinishedAt(now int64) bool {
	return p.Finished() && p.FinishTime != nil && *p.FinishTime == now
}

// Clone returns a deep copy so a workload can be simulated repeatedly.
func (p *Process) Clone() *Process {
	c := *p
	if p.LastSelected != nil {
		v := *p.LastSelected
		c.LastSelected = &v
	}
	if p.FinishTime != nil {
		v := *p.FinishTime
		c.FinishTime = &v
	}
	return &c
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (Name: %s, State: %s, Remaining: %d, ArrivalTime: %d)", p.Name, p.State, p.Remaining, p.ArrivalTime)
}

package sim

import (
	"fmt"
	"sort"
)

// Scheduler decides which process occupies the CPU.
// The Simulator lends one Process at a time to each callback:
//   - OnArrive: once per process, at its arrival tick, after it was set Ready.
//   - PreTick: for every arrived, unfinished process before the tick that begins at now.
//   - OnTick: for every arrived, unfinished process after the unit ending at now was applied.
//   - OnFinish: once, at the tick a process's remaining burst reached 0.
//
// Implementations only change process state through Process.Select and Process.Deselect,
// and must keep at most one process Running.
type Scheduler interface {
	OnArrive(p *Process, now int64)
	PreTick(p *Process, now int64)
	OnTick(p *Process, now int64)
	OnFinish(p *Process, now int64)

	// SelectedProcessName returns the dispatched process, or false if the CPU is idle.
	SelectedProcessName() (string, bool)
	// DescriptiveName is the label printed in the report header.
	DescriptiveName() string
}

// Quantumed is implemented by time-sliced schedulers whose quantum belongs in the report header.
type Quantumed interface {
	Quantum() int64
}

// Scheduler selectors accepted by NewScheduler.
const (
	SchedulerFCFS    = "fcfs"
	SchedulerSJF     = "sjf"
	SchedulerRealSJF = "realSJF"
	SchedulerRR      = "rr"
)

var validSchedulers = map[string]bool{
	SchedulerFCFS:    true,
	SchedulerSJF:     true,
	SchedulerRealSJF: true,
	SchedulerRR:      true,
}

// IsValidScheduler returns true if name is a recognized scheduler selector.
func IsValidScheduler(name string) bool {
	return validSchedulers[name]
}

// ValidSchedulerNames returns the recognized selectors in sorted order.
func ValidSchedulerNames() []string {
	names := make([]string, 0, len(validSchedulers))
	for name := range validSchedulers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewScheduler creates a Scheduler by selector.
// quantum is only read for "rr" and must be positive there.
func NewScheduler(name string, quantum int64) (Scheduler, error) {
	switch name {
	case SchedulerFCFS:
		return NewFCFSScheduler(), nil
	case SchedulerSJF:
		return NewSJFScheduler(), nil
	case SchedulerRealSJF:
		return NewRealSJFScheduler(), nil
	case SchedulerRR:
		if quantum <= 0 {
			return nil, fmt.Errorf("round-robin quantum must be positive, got %d", quantum)
		}
		return NewRoundRobinScheduler(quantum), nil
	default:
		return nil, fmt.Errorf("unknown scheduler %q; valid: %v", name, ValidSchedulerNames())
	}
}

// jobKey orders live jobs: primary ascending, then arrival, then insertion order.
// Go maps iterate in random order, so the insertion sequence keeps ties deterministic.
type jobKey struct {
	primary int64
	arrival int64
	seq     int
}

func (k jobKey) less(o jobKey) bool {
	if k.primary != o.primary {
		return k.primary < o.primary
	}
	if k.arrival != o.arrival {
		return k.arrival < o.arrival
	}
	return k.seq < o.seq
}

// jobList maps live process names to a policy-specific sort key.
// Minimum lookups are linear scans; workloads are small.
type jobList struct {
	jobs    map[string]jobKey
	nextSeq int
}

func newJobList() jobList {
	return jobList{jobs: make(map[string]jobKey)}
}

// put inserts or refreshes a job. A refreshed job keeps its insertion sequence.
func (jl *jobList) put(name string, primary, arrival int64) {
	k, ok := jl.jobs[name]
	if !ok {
		k.seq = jl.nextSeq
		jl.nextSeq++
	}
	k.primary = primary
	k.arrival = arrival
	jl.jobs[name] = k
}

func (jl *jobList) remove(name string) {
	delete(jl.jobs, name)
}

func (jl *jobList) key(name string) (jobKey, bool) {
	k, ok := jl.jobs[name]
	return k, ok
}

func (jl *jobList) len() int {
	return len(jl.jobs)
}

// min returns the name with the smallest key, or "" when the list is empty.
func (jl *jobList) min() string {
	best := ""
	var bestKey jobKey
	for name, k := range jl.jobs {
		if best == "" || k.less(bestKey) {
			best, bestKey = name, k
		}
	}
	return best
}

// holdCurrent is the PreTick shared by the keyed policies: the current job runs,
// every other live process waits. Nothing changes while no job is current.
func holdCurrent(current string, p *Process, now int64) {
	if current == "" {
		return
	}
	if p.Name == current {
		if !p.Running() {
			p.Select(now)
		}
		return
	}
	p.Deselect()
}

package sim

import (
	"fmt"
)

// Workload is the static description of one run: how many processes the header
// declares, how long to run, which scheduler to use, and the processes in declaration order.
// The Simulator clones Processes, so a Workload can be run any number of times.
type Workload struct {
	NumProcesses int
	RunFor       int64
	Algorithm    string
	Quantum      int64 // only meaningful for "rr"
	Processes    []*Process
}

// Validate checks that the workload can be simulated.
func (w *Workload) Validate() error {
	if w.RunFor < 0 {
		return fmt.Errorf("runfor must be non-negative, got %d", w.RunFor)
	}
	if !IsValidScheduler(w.Algorithm) {
		return fmt.Errorf("unknown scheduler %q; valid: %v", w.Algorithm, ValidSchedulerNames())
	}
	if w.Algorithm == SchedulerRR && w.Quantum <= 0 {
		return fmt.Errorf("round-robin quantum must be positive, got %d", w.Quantum)
	}
	seen := make(map[string]bool, len(w.Processes))
	for i, p := range w.Processes {
		if p == nil {
			return fmt.Errorf("processes[%d]: nil process", i)
		}
		if p.Name == "" {
			return fmt.Errorf("processes[%d]: name must not be empty", i)
		}
		if seen[p.Name] {
			return fmt.Errorf("processes[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("process %q: arrival must be non-negative, got %d", p.Name, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("process %q: burst must be positive, got %d", p.Name, p.BurstTime)
		}
	}
	return nil
}

// Clone returns a copy with fresh, unstarted processes.
func (w *Workload) Clone() *Workload {
	c := *w
	c.Processes = make([]*Process, len(w.Processes))
	for i, p := range w.Processes {
		c.Processes[i] = NewProcess(p.Name, p.ArrivalTime, p.BurstTime)
	}
	return &c
}

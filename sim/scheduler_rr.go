package sim

// RoundRobinScheduler time-slices the CPU between ready processes in FIFO order.
// A process runs for at most quantum consecutive ticks before it is re-queued at the tail;
// arrivals join the tail.
type RoundRobinScheduler struct {
	quantum     int64
	quantumLeft int64

	ready    ReadyQueue
	selected string // "" when the CPU is idle
}

// NewRoundRobinScheduler creates an idle RoundRobinScheduler. quantum must be positive.
func NewRoundRobinScheduler(quantum int64) *RoundRobinScheduler {
	return &RoundRobinScheduler{
		quantum:     quantum,
		quantumLeft: quantum,
	}
}

func (rr *RoundRobinScheduler) DescriptiveName() string {
	return "Round-Robin"
}

// Quantum returns the configured time slice.
func (rr *RoundRobinScheduler) Quantum() int64 {
	return rr.quantum
}

func (rr *RoundRobinScheduler) OnArrive(p *Process, _ int64) {
	rr.ready.Enqueue(p.Name)
}

func (rr *RoundRobinScheduler) OnTick(p *Process, _ int64) {
	if rr.selected != p.Name {
		return
	}
	rr.quantumLeft--
	if rr.quantumLeft == 0 {
		p.Deselect()
		rr.selected = ""
		rr.ready.Enqueue(p.Name)
	}
}

func (rr *RoundRobinScheduler) PreTick(p *Process, now int64) {
	if rr.selected != "" {
		return
	}
	if front, ok := rr.ready.Peek(); ok && front == p.Name {
		rr.selected, _ = rr.ready.Dequeue()
		p.Select(now)
		rr.quantumLeft = rr.quantum
	}
}

func (rr *RoundRobinScheduler) OnFinish(_ *Process, _ int64) {
	rr.selected = ""
}

func (rr *RoundRobinScheduler) SelectedProcessName() (string, bool) {
	return rr.selected, rr.selected != ""
}

// Waiting returns the ready queue, front first.
func (rr *RoundRobinScheduler) Waiting() []string {
	return rr.ready.Names()
}

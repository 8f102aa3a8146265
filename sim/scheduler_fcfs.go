package sim

// FCFSScheduler runs the earliest arrival to completion.
// Once selected a process is never preempted.
type FCFSScheduler struct {
	jobs  jobList // live name → arrival time
	first string  // "" when no job is live
}

// NewFCFSScheduler creates an idle FCFSScheduler.
func NewFCFSScheduler() *FCFSScheduler {
	return &FCFSScheduler{jobs: newJobList()}
}

func (f *FCFSScheduler) DescriptiveName() string {
	return "First-Come First-Served"
}

func (f *FCFSScheduler) OnArrive(p *Process, now int64) {
	f.jobs.put(p.Name, p.ArrivalTime, p.ArrivalTime)

	if f.first != "" {
		if k, ok := f.jobs.key(f.first); ok && k.primary <= p.ArrivalTime {
			return
		}
	}
	f.first = p.Name
	p.Select(now)
}

func (f *FCFSScheduler) PreTick(p *Process, now int64) {
	holdCurrent(f.first, p, now)
}

func (f *FCFSScheduler) OnTick(_ *Process, _ int64) {}

func (f *FCFSScheduler) OnFinish(p *Process, _ int64) {
	f.jobs.remove(p.Name)
	f.first = f.jobs.min()
}

func (f *FCFSScheduler) SelectedProcessName() (string, bool) {
	return f.first, f.first != ""
}

package sim

// SJFScheduler is preemptive Shortest Job First (shortest remaining time).
// The live process with the least remaining burst runs; ties go to the earlier arrival.
// An arrival with a strictly shorter burst preempts immediately.
type SJFScheduler struct {
	jobs     jobList // live name → (remaining burst, arrival), refreshed every tick
	shortest string
}

// NewSJFScheduler creates an idle SJFScheduler.
func NewSJFScheduler() *SJFScheduler {
	return &SJFScheduler{jobs: newJobList()}
}

func (s *SJFScheduler) DescriptiveName() string {
	return "preemptive Shortest Job First"
}

func (s *SJFScheduler) OnArrive(p *Process, now int64) {
	s.jobs.put(p.Name, p.Remaining, p.ArrivalTime)

	if s.shortest != "" {
		if k, ok := s.jobs.key(s.shortest); ok && k.primary <= p.Remaining {
			return
		}
	}
	s.shortest = p.Name
	p.Select(now)
}

func (s *SJFScheduler) PreTick(p *Process, now int64) {
	holdCurrent(s.shortest, p, now)
}

func (s *SJFScheduler) OnTick(p *Process, _ int64) {
	s.jobs.put(p.Name, p.Remaining, p.ArrivalTime)
}

func (s *SJFScheduler) OnFinish(p *Process, _ int64) {
	s.jobs.remove(p.Name)
	s.shortest = s.jobs.min()
}

func (s *SJFScheduler) SelectedProcessName() (string, bool) {
	return s.shortest, s.shortest != ""
}

// RealSJFScheduler is non-preemptive Shortest Job First.
// A job arriving into an empty job list is dispatched at once, whatever its burst.
// When the running job finishes, the live job with the smallest original burst
// is chosen and runs to completion.
type RealSJFScheduler struct {
	jobs     jobList // live name → original burst
	shortest string
}

// NewRealSJFScheduler creates an idle RealSJFScheduler.
func NewRealSJFScheduler() *RealSJFScheduler {
	return &RealSJFScheduler{jobs: newJobList()}
}

func (r *RealSJFScheduler) DescriptiveName() string {
	return "real Shortest Job First (non-preemptive)"
}

func (r *RealSJFScheduler) OnArrive(p *Process, now int64) {
	r.jobs.put(p.Name, p.BurstTime, p.ArrivalTime)

	if r.jobs.len() == 1 {
		r.shortest = p.Name
		p.Select(now)
	}
}

func (r *RealSJFScheduler) PreTick(p *Process, now int64) {
	holdCurrent(r.shortest, p, now)
}

func (r *RealSJFScheduler) OnTick(_ *Process, _ int64) {}

func (r *RealSJFScheduler) OnFinish(p *Process, _ int64) {
	if _, ok := r.jobs.key(p.Name); !ok {
		return
	}
	r.jobs.remove(p.Name)
	r.shortest = r.jobs.min()
}

func (r *RealSJFScheduler) SelectedProcessName() (string, bool) {
	return r.shortest, r.shortest != ""
}

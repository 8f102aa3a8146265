// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cpusched/schedsim/sim/trace"
)

// Simulator is the core object that holds simulation time, the process list,
// the scheduler and the event log. It is single-use: build one per Run.
type Simulator struct {
	Clock   int64
	Horizon int64 // run length in ticks
	// Processes in declaration order; the Simulator owns them for the whole run
	Processes []*Process
	Scheduler Scheduler
	// Events is the ordered log produced by Run
	Events []Event
	// Trace is nil unless enabled with WithTrace
	Trace *trace.SimulationTrace

	numProcesses int
	quantum      int64
	prevRunning  []string
	ran          bool
}

// Option configures optional Simulator behavior.
type Option func(*Simulator)

// WithTrace enables decision tracing at the given level.
func WithTrace(cfg trace.TraceConfig) Option {
	return func(s *Simulator) {
		if cfg.Enabled() {
			s.Trace = trace.NewSimulationTrace(cfg)
		}
	}
}

// NewSimulator validates the workload and builds the scheduler it selects.
// The workload's processes are cloned; the workload itself is never mutated.
func NewSimulator(w *Workload, opts ...Option) (*Simulator, error) {
	if w == nil {
		return nil, fmt.Errorf("workload must not be nil")
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}
	scheduler, err := NewScheduler(w.Algorithm, w.Quantum)
	if err != nil {
		return nil, err
	}
	s := &Simulator{
		Clock:        0,
		Horizon:      w.RunFor,
		Processes:    w.Clone().Processes,
		Scheduler:    scheduler,
		Events:       make([]Event, 0),
		numProcesses: w.NumProcesses,
	}
	if q, ok := scheduler.(Quantumed); ok {
		s.quantum = q.Quantum()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run executes the simulation and returns its Result.
//
// Each tick t in [0, Horizon) runs, in order: tick arrived processes, OnTick,
// finishes, arrivals, PreTick, then selection/idle logging. A closing boundary at
// t = Horizon applies the last unit of work (tick, OnTick, finishes) without
// dispatching, so a process whose final unit ends at Horizon is reported finished.
func (sim *Simulator) Run() *Result {
	if sim.ran {
		panic("Simulator.Run called twice; build a new Simulator per run")
	}
	sim.ran = true
	logrus.Infof("Starting simulation: %d processes, horizon=%d, scheduler=%s",
		len(sim.Processes), sim.Horizon, sim.Scheduler.DescriptiveName())

	for t := int64(0); t < sim.Horizon; t++ {
		sim.Clock = t
		sim.tickProcesses(t)
		sim.handleOnTick(t)
		sim.handleFinishes(t)
		sim.handleArrivals(t)
		sim.handlePreTick(t)
		sim.handleSelectionOutput(t)
		sim.recordTick(t)
	}

	sim.Clock = sim.Horizon
	sim.tickProcesses(sim.Horizon)
	sim.handleOnTick(sim.Horizon)
	sim.handleFinishes(sim.Horizon)

	logrus.Infof("[tick %07d] Simulation ended", sim.Clock)
	return sim.result()
}

func (sim *Simulator) tickProcesses(now int64) {
	for _, p := range sim.Processes {
		if p.Arrived(now - 1) {
			p.Tick(now)
		}
	}
}

func (sim *Simulator) handleOnTick(now int64) {
	for _, p := range sim.Processes {
		if !p.Finished() && p.Arrived(now-1) {
			sim.Scheduler.OnTick(p, now)
		}
	}
}

func (sim *Simulator) handleFinishes(now int64) {
	for _, p := range sim.Processes {
		if !p.FinishedAt(now) {
			continue
		}
		logrus.Debugf("[tick %07d] %s finished", now, p.Name)
		sim.Events = append(sim.Events, Event{Time: now, Kind: EventFinished, Process: p.Name})
		sim.Scheduler.OnFinish(p, now)
	}
}

func (sim *Simulator) handleArrivals(now int64) {
	for _, p := range sim.Processes {
		if p.ArrivalTime != now {
			continue
		}
		// arriving processes start Ready; the policy may dispatch them right away
		p.Deselect()
		logrus.Debugf("[tick %07d] %s arrived", now, p.Name)
		sim.Events = append(sim.Events, Event{Time: now, Kind: EventArrived, Process: p.Name})
		sim.Scheduler.OnArrive(p, now)
	}
}

func (sim *Simulator) handlePreTick(now int64) {
	for _, p := range sim.Processes {
		if !p.Finished() && p.Arrived(now) {
			sim.Scheduler.PreTick(p, now)
		}
	}
}

func (sim *Simulator) handleSelectionOutput(now int64) {
	for _, p := range sim.Processes {
		if !p.SelectedAt(now) {
			continue
		}
		logrus.Debugf("[tick %07d] %s selected (burst %d)", now, p.Name, p.Remaining)
		sim.Events = append(sim.Events, Event{Time: now, Kind: EventSelected, Process: p.Name, Burst: p.Remaining})
		// a process displaced later in the same tick is logged but never ran
		if sim.Trace != nil && p.Running() {
			sim.Trace.RecordDispatch(trace.DispatchRecord{Clock: now, Process: p.Name, Burst: p.Remaining})
		}
	}

	if _, ok := sim.Scheduler.SelectedProcessName(); !ok {
		logrus.Debugf("[tick %07d] idle", now)
		sim.Events = append(sim.Events, Event{Time: now, Kind: EventIdle})
		if sim.Trace != nil {
			sim.Trace.RecordIdle(now)
		}
	}
}

// recordTick detects preemptions against the previous tick and snapshots CPU ownership.
func (sim *Simulator) recordTick(now int64) {
	running := make([]string, 0, 1)
	for _, p := range sim.Processes {
		if p.Running() {
			running = append(running, p.Name)
		}
	}
	if len(running) > 1 {
		logrus.Warnf("[tick %07d] %d processes running: %v", now, len(running), running)
	}
	if sim.Trace == nil {
		sim.prevRunning = running
		return
	}

	for _, name := range sim.prevRunning {
		p := sim.process(name)
		if p != nil && p.State == StateReady {
			sim.Trace.RecordPreemption(trace.PreemptionRecord{Clock: now, Process: name, Remaining: p.Remaining})
		}
	}
	sim.prevRunning = running

	if sim.Trace.Config.Level != trace.TraceLevelTicks {
		return
	}
	tr := trace.TickRecord{
		Clock:     now,
		Running:   running,
		Ready:     make([]string, 0),
		Remaining: make(map[string]int64),
		Arrival:   make(map[string]int64),
	}
	for _, p := range sim.Processes {
		if !p.Arrived(now) || p.Finished() {
			continue
		}
		tr.Remaining[p.Name] = p.Remaining
		tr.Arrival[p.Name] = p.ArrivalTime
		if p.State == StateReady {
			tr.Ready = append(tr.Ready, p.Name)
		}
	}
	sim.Trace.RecordTick(tr)
}

func (sim *Simulator) process(name string) *Process {
	for _, p := range sim.Processes {
		if p.Name == name {
			return p
		}
	}
	return nil
}

func (sim *Simulator) result() *Result {
	return &Result{
		NumProcesses:  sim.numProcesses,
		SchedulerName: sim.Scheduler.DescriptiveName(),
		Quantum:       sim.quantum,
		RunFor:        sim.Horizon,
		Events:        sim.Events,
		Processes:     sim.Processes,
		Metrics:       NewMetrics(sim.Processes, sim.Horizon),
		Trace:         sim.Trace,
	}
}

// Simulate is a convenience wrapper: build a Simulator for w and run it.
func Simulate(w *Workload, opts ...Option) (*Result, error) {
	s, err := NewSimulator(w, opts...)
	if err != nil {
		return nil, err
	}
	return s.Run(), nil
}

// Package sim provides the core tick-driven CPU scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (unarrived → ready ⇄ running → finished) and counters
//   - scheduler.go: the Scheduler callback contract and the NewScheduler factory
//   - simulator.go: the per-tick loop and the closing boundary at the end of the run
//
// # Architecture
//
// The sim package owns the domain types; supporting packages live beside it:
//   - sim/workload/: text and YAML workload parsing, validation and conversion
//   - sim/trace/: decision trace recording (dispatches, preemptions, tick snapshots)
//   - sim/server/: HTTP API that runs submitted workloads
//
// # Policies
//
// Four interchangeable Scheduler implementations:
//   - FCFSScheduler ("fcfs"): earliest arrival runs to completion
//   - SJFScheduler ("sjf"): shortest remaining time, preempts on strictly shorter arrivals
//   - RealSJFScheduler ("realSJF"): non-preemptive, shortest original burst when the CPU frees
//   - RoundRobinScheduler ("rr"): FIFO time slices of a fixed quantum
//
// A run produces a Result holding the ordered Event log and final Process records.
// Nothing is printed during simulation; Result.Lines renders the report at the boundary.
package sim

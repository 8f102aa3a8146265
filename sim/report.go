package sim

import (
	"fmt"
	"io"
	"strings"

	"github.com/cpusched/schedsim/sim/trace"
)

// Result is everything a run produces: the ordered event log, the final
// process records and the derived metrics. Rendering happens only at the boundary.
type Result struct {
	NumProcesses  int
	SchedulerName string
	Quantum       int64 // 0 for schedulers without a time slice
	RunFor        int64
	Events        []Event
	Processes     []*Process
	Metrics       *Metrics
	Trace         *trace.SimulationTrace // nil when tracing is disabled
}

// Lines renders the textual report, one entry per output line.
func (r *Result) Lines() []string {
	lines := make([]string, 0, len(r.Events)+len(r.Processes)+8)
	lines = append(lines, fmt.Sprintf("%3d processes", r.NumProcesses))
	lines = append(lines, fmt.Sprintf("Using %s", r.SchedulerName))
	if r.Quantum > 0 {
		lines = append(lines, fmt.Sprintf("Quantum %3d", r.Quantum))
	}
	lines = append(lines, "")

	for _, e := range r.Events {
		lines = append(lines, e.String())
	}

	lines = append(lines, fmt.Sprintf("Finished at time %d", r.RunFor))
	lines = append(lines, "")

	for _, p := range r.Processes {
		if p.Finished() {
			lines = append(lines, fmt.Sprintf("%s wait %3d turnaround %3d response %3d",
				p.Name, p.WaitTime, p.TurnaroundTime, p.ResponseTime))
		} else {
			lines = append(lines, fmt.Sprintf("%s did not finish", p.Name))
		}
	}
	return lines
}

// String returns the report as newline-terminated text.
func (r *Result) String() string {
	var sb strings.Builder
	for _, line := range r.Lines() {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the report to w. It implements io.WriterTo.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String())
	return int64(n), err
}

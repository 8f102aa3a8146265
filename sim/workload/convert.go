package workload

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpusched/schedsim/sim"
)

// WriteText writes w in the line-oriented text format accepted by Parse.
func WriteText(out io.Writer, w *sim.Workload) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "processcount %d\n", w.NumProcesses)
	fmt.Fprintf(&sb, "runfor %d\n", w.RunFor)
	fmt.Fprintf(&sb, "use %s\n", w.Algorithm)
	if w.Algorithm == sim.SchedulerRR {
		fmt.Fprintf(&sb, "quantum %d\n", w.Quantum)
	}
	for _, p := range w.Processes {
		fmt.Fprintf(&sb, "process name %s arrival %d burst %d\n", p.Name, p.ArrivalTime, p.BurstTime)
	}
	sb.WriteString("end\n")
	if _, err := io.WriteString(out, sb.String()); err != nil {
		return fmt.Errorf("writing text workload: %w", err)
	}
	return nil
}

// WriteYAML writes w as a YAML WorkloadSpec.
func WriteYAML(out io.Writer, w *sim.Workload) error {
	data, err := yaml.Marshal(FromWorkload(w))
	if err != nil {
		return fmt.Errorf("marshaling workload spec: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("writing workload spec: %w", err)
	}
	return nil
}

// Write encodes w in the given format.
func Write(out io.Writer, w *sim.Workload, format Format) error {
	switch format {
	case FormatYAML:
		return WriteYAML(out, w)
	case FormatText, "":
		return WriteText(out, w)
	default:
		return fmt.Errorf("unknown workload format %q; valid: text, yaml", format)
	}
}

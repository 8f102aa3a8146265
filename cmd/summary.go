package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	sim "github.com/cpusched/schedsim/sim"
	"github.com/cpusched/schedsim/sim/trace"
)

// renderSummary prints the per-process metrics table with run-wide averages in the footer.
func renderSummary(w io.Writer, m *sim.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival", "Burst", "Executed", "Wait", "Turnaround", "Response", "Finish"})
	rows := make([][]string, 0, len(m.Processes))
	for _, p := range m.Processes {
		finish := "-"
		if p.Finished {
			finish = fmt.Sprint(p.FinishTime)
		}
		rows = append(rows, []string{
			p.Name,
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Executed),
			fmt.Sprint(p.Wait),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Response),
			finish,
		})
	}
	table.AppendBulk(rows)
	table.SetFooter([]string{
		fmt.Sprintf("%d/%d done", m.Completed, len(m.Processes)), "", "",
		fmt.Sprintf("Util %.2f", m.Utilization),
		fmt.Sprintf("Avg %.2f", m.AvgWait),
		fmt.Sprintf("Avg %.2f", m.AvgTurnaround),
		fmt.Sprintf("Avg %.2f", m.AvgResponse),
		fmt.Sprintf("%.3f/t", m.Throughput),
	})
	table.Render()
}

// renderGantt prints CPU ownership segments as a one-line chart with tick marks below.
func renderGantt(w io.Writer, segments []trace.Segment) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(segments) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	var bar, marks strings.Builder
	bar.WriteString("|")
	for _, seg := range segments {
		label := seg.Process
		if label == "" {
			label = "idle"
		}
		width := max(len(label)+2, 2*int(seg.Stop-seg.Start))
		pad := width - len(label)
		bar.WriteString(strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2) + "|")

		start := fmt.Sprint(seg.Start)
		marks.WriteString(start + strings.Repeat(" ", max(width+1-len(start), 1)))
	}
	marks.WriteString(fmt.Sprint(segments[len(segments)-1].Stop))
	_, _ = fmt.Fprintln(w, bar.String())
	_, _ = fmt.Fprintln(w, marks.String())
}

// renderTraceSummary prints decision counts collected by the trace.
func renderTraceSummary(w io.Writer, st *trace.SimulationTrace) {
	s := trace.Summarize(st)
	_, _ = fmt.Fprintf(w, "Dispatches: %d  Preemptions: %d  Idle ticks: %d\n", s.Dispatches, s.Preemptions, s.IdleTicks)
	if len(s.PreemptionsByProcess) == 0 {
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Preempted"})
	for _, p := range st.Preemptions {
		if n, ok := s.PreemptionsByProcess[p.Process]; ok {
			table.Append([]string{p.Process, fmt.Sprint(n)})
			delete(s.PreemptionsByProcess, p.Process)
		}
	}
	table.Render()
}

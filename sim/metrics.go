// Tracks per-process and run-wide scheduling metrics such as:
// wait, turnaround and response times, throughput and CPU utilization.

package sim

// ProcessMetrics is the final accounting for one process.
type ProcessMetrics struct {
	Name       string `json:"name"`
	Arrival    int64  `json:"arrival"`
	Burst      int64  `json:"burst"`
	Executed   int64  `json:"executed"`
	Wait       int64  `json:"wait"`
	Turnaround int64  `json:"turnaround"`
	Response   int64  `json:"response"`
	Finished   bool   `json:"finished"`
	FinishTime int64  `json:"finish_time,omitempty"`
}

// Metrics aggregates statistics about a run for final reporting.
// Averages cover finished processes only and are zero when none finished.
type Metrics struct {
	Processes     []ProcessMetrics `json:"processes"`
	Completed     int              `json:"completed"`
	RunFor        int64            `json:"run_for"`
	BusyTicks     int64            `json:"busy_ticks"`
	AvgWait       float64          `json:"avg_wait"`
	AvgTurnaround float64          `json:"avg_turnaround"`
	AvgResponse   float64          `json:"avg_response"`
	Throughput    float64          `json:"throughput"`  // finished processes per tick
	Utilization   float64          `json:"utilization"` // busy ticks / run length
}

// NewMetrics derives Metrics from the final process records of a run.
func NewMetrics(processes []*Process, runFor int64) *Metrics {
	m := &Metrics{
		Processes: make([]ProcessMetrics, 0, len(processes)),
		RunFor:    runFor,
	}
	var waitSum, turnaroundSum, responseSum int64
	for _, p := range processes {
		pm := ProcessMetrics{
			Name:       p.Name,
			Arrival:    p.ArrivalTime,
			Burst:      p.BurstTime,
			Executed:   p.Executed(),
			Wait:       p.WaitTime,
			Turnaround: p.TurnaroundTime,
			Response:   p.ResponseTime,
			Finished:   p.Finished(),
		}
		if p.FinishTime != nil {
			pm.FinishTime = *p.FinishTime
		}
		m.Processes = append(m.Processes, pm)
		m.BusyTicks += pm.Executed

		if pm.Finished {
			m.Completed++
			waitSum += pm.Wait
			turnaroundSum += pm.Turnaround
			responseSum += pm.Response
		}
	}

	if m.Completed > 0 {
		n := float64(m.Completed)
		m.AvgWait = float64(waitSum) / n
		m.AvgTurnaround = float64(turnaroundSum) / n
		m.AvgResponse = float64(responseSum) / n
	}
	if runFor > 0 {
		m.Throughput = float64(m.Completed) / float64(runFor)
		m.Utilization = float64(m.BusyTicks) / float64(runFor)
	}
	return m
}

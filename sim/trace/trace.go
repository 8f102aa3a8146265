package trace

// TraceLevel controls the verbosity of decision tracing.
type TraceLevel string

const (
	// TraceLevelNone disables tracing (zero overhead).
	TraceLevelNone TraceLevel = "none"
	// TraceLevelDecisions captures dispatches, preemptions and idle ticks.
	TraceLevelDecisions TraceLevel = "decisions"
	// TraceLevelTicks additionally snapshots every tick.
	TraceLevelTicks TraceLevel = "ticks"
)

// validTraceLevels maps accepted trace level strings.
var validTraceLevels = map[TraceLevel]bool{
	TraceLevelNone:      true,
	TraceLevelDecisions: true,
	TraceLevelTicks:     true,
	"":                  true, // empty defaults to none
}

// IsValidTraceLevel returns true if the given level string is a recognized trace level.
func IsValidTraceLevel(level string) bool {
	return validTraceLevels[TraceLevel(level)]
}

// TraceConfig controls trace collection behavior.
type TraceConfig struct {
	Level TraceLevel
}

// Enabled reports whether any records are collected.
func (c TraceConfig) Enabled() bool {
	return c.Level == TraceLevelDecisions || c.Level == TraceLevelTicks
}

// SimulationTrace collects decision records during a simulation run.
type SimulationTrace struct {
	Config      TraceConfig        `json:"-"`
	Dispatches  []DispatchRecord   `json:"dispatches"`
	Preemptions []PreemptionRecord `json:"preemptions"`
	Idles       []int64            `json:"idles"`
	Ticks       []TickRecord       `json:"ticks,omitempty"`
}

// NewSimulationTrace creates a SimulationTrace ready for recording.
func NewSimulationTrace(config TraceConfig) *SimulationTrace {
	return &SimulationTrace{
		Config:      config,
		Dispatches:  make([]DispatchRecord, 0),
		Preemptions: make([]PreemptionRecord, 0),
		Idles:       make([]int64, 0),
	}
}

// RecordDispatch appends a dispatch record.
func (st *SimulationTrace) RecordDispatch(record DispatchRecord) {
	st.Dispatches = append(st.Dispatches, record)
}

// RecordPreemption appends a preemption record.
func (st *SimulationTrace) RecordPreemption(record PreemptionRecord) {
	st.Preemptions = append(st.Preemptions, record)
}

// RecordIdle notes that the CPU had no selected process for the unit beginning at clock.
func (st *SimulationTrace) RecordIdle(clock int64) {
	st.Idles = append(st.Idles, clock)
}

// RecordTick appends a tick snapshot. No-op below TraceLevelTicks.
func (st *SimulationTrace) RecordTick(record TickRecord) {
	if st.Config.Level != TraceLevelTicks {
		return
	}
	st.Ticks = append(st.Ticks, record)
}

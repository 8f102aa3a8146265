package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/schedsim/sim/trace"
	"github.com/cpusched/schedsim/sim/workload"
)

const sjfWorkload = `processcount 2
runfor 8
use sjf
process name P1 arrival 0 burst 6
process name P2 arrival 2 burst 2
end
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunSimulation_WritesReportNextToInput(t *testing.T) {
	// GIVEN a text workload named w.in
	dir := t.TempDir()
	input := writeFile(t, dir, "w.in", sjfWorkload)

	// WHEN run with defaults
	var stdout bytes.Buffer
	require.NoError(t, runSimulation(input, DefaultConfig(), &stdout))

	// THEN the report lands in w.out and nothing else is printed
	data, err := os.ReadFile(filepath.Join(dir, "w.out"))
	require.NoError(t, err)
	report := string(data)
	assert.True(t, strings.HasPrefix(report, "  2 processes\nUsing preemptive Shortest Job First\n\n"))
	assert.Contains(t, report, "Time   2 : P2 selected (burst   2)\n")
	assert.True(t, strings.HasSuffix(report, "P2 wait   0 turnaround   2 response   0\n"))
	assert.Empty(t, stdout.String())
}

func TestRunSimulation_StdoutWithExtras(t *testing.T) {
	// GIVEN output to stdout with the summary, Gantt chart and decision trace requested
	dir := t.TempDir()
	input := writeFile(t, dir, "w.in", sjfWorkload)
	cfg := DefaultConfig()
	cfg.Output = "-"
	cfg.Summary = true
	cfg.Gantt = true
	cfg.Trace = string(trace.TraceLevelDecisions)

	// WHEN run
	var stdout bytes.Buffer
	require.NoError(t, runSimulation(input, cfg, &stdout))

	// THEN the report and every extra appear in order
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "  2 processes\n"))
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, out, "Gantt schedule")
	assert.Contains(t, out, "Dispatches: 3  Preemptions: 1  Idle ticks: 0")
	assert.Less(t, strings.Index(out, "Finished at time 8"), strings.Index(out, "Schedule table"))
	_, err := os.Stat(filepath.Join(dir, "w.out"))
	assert.True(t, os.IsNotExist(err), "stdout output must not create a file")
}

func TestRunSimulation_MalformedWorkload_NoOutput(t *testing.T) {
	// GIVEN a workload missing its end marker
	dir := t.TempDir()
	input := writeFile(t, dir, "bad.in", strings.TrimSuffix(sjfWorkload, "end\n"))

	// WHEN run
	err := runSimulation(input, DefaultConfig(), &bytes.Buffer{})

	// THEN it fails with the parse category and no report is written
	require.ErrorIs(t, err, workload.ErrMissingEnd)
	_, statErr := os.Stat(filepath.Join(dir, "bad.out"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestRunSimulation_InvalidTraceLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Trace = "verbose"
	err := runSimulation("unused.in", cfg, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown trace level")
}

func TestRunSimulation_YAMLInput(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "w.yaml", "run_for: 6\nscheduler: rr\nquantum: 2\nprocesses:\n  - {name: P1, arrival: 0, burst: 3}\n  - {name: P2, arrival: 0, burst: 3}\n")
	cfg := DefaultConfig()
	cfg.Output = filepath.Join(dir, "report.txt")

	require.NoError(t, runSimulation(input, cfg, &bytes.Buffer{}))

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Quantum   2\n\n")
	assert.Contains(t, string(data), "Time   6 : P2 finished\n")
}

func TestDefaultOutputPath(t *testing.T) {
	assert.Equal(t, "dir/w.out", defaultOutputPath("dir/w.in"))
	assert.Equal(t, "w.yaml.out", defaultOutputPath("w.yaml"))
	assert.Equal(t, "w.out", defaultOutputPath("w"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	// GIVEN a config overriding some fields
	path := writeFile(t, dir, "cfg.yaml", "log_level: debug\nsummary: true\n")
	cfg, err := LoadConfig(path)

	// THEN overrides apply and the rest keep their defaults
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Summary)
	assert.Equal(t, "none", cfg.Trace)
	assert.Equal(t, ":8080", cfg.Listen)

	// GIVEN a config with a typo
	bad := writeFile(t, dir, "bad.yaml", "sumary: true\n")
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestConvertWorkload_TextToYAMLToText(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "w.in", sjfWorkload)

	// WHEN converted to YAML on stdout
	var yml bytes.Buffer
	require.NoError(t, convertWorkload(input, workload.FormatYAML, "", &yml))
	assert.Contains(t, yml.String(), "scheduler: sjf")

	// AND the YAML converted back to a text file
	yamlPath := writeFile(t, dir, "w.yaml", yml.String())
	textPath := filepath.Join(dir, "back.in")
	require.NoError(t, convertWorkload(yamlPath, workload.FormatText, textPath, &bytes.Buffer{}))

	// THEN the text matches the canonical form of the original
	data, err := os.ReadFile(textPath)
	require.NoError(t, err)
	assert.Equal(t, sjfWorkload, string(data))

	assert.Error(t, convertWorkload(input, workload.Format("json"), "", &bytes.Buffer{}))
}

func TestRunSimulation_TraceOnly_PrintsTraceSummary(t *testing.T) {
	// GIVEN only --trace decisions, report to stdout
	dir := t.TempDir()
	input := writeFile(t, dir, "w.in", sjfWorkload)
	cfg := DefaultConfig()
	cfg.Output = "-"
	cfg.Trace = string(trace.TraceLevelDecisions)

	// WHEN run
	var stdout bytes.Buffer
	require.NoError(t, runSimulation(input, cfg, &stdout))

	// THEN the trace summary follows the report and no other extras appear
	out := stdout.String()
	assert.Contains(t, out, "Dispatches: 3  Preemptions: 1  Idle ticks: 0")
	assert.NotContains(t, out, "Gantt schedule")
	assert.NotContains(t, out, "Schedule table")

	// AND with tracing off nothing but the report is printed
	cfg.Trace = string(trace.TraceLevelNone)
	stdout.Reset()
	require.NoError(t, runSimulation(input, cfg, &stdout))
	assert.NotContains(t, stdout.String(), "Dispatches:")
}

package workload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpusched/schedsim/sim"
)

func sampleWorkload() *sim.Workload {
	return &sim.Workload{
		NumProcesses: 2,
		RunFor:       6,
		Algorithm:    sim.SchedulerRR,
		Quantum:      2,
		Processes:    []*sim.Process{sim.NewProcess("P1", 0, 3), sim.NewProcess("P2", 1, 3)},
	}
}

func TestWriteText_CanonicalForm(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sampleWorkload()))
	want := "processcount 2\nrunfor 6\nuse rr\nquantum 2\n" +
		"process name P1 arrival 0 burst 3\nprocess name P2 arrival 1 burst 3\nend\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_TextToYAMLAndBack_SameWorkload(t *testing.T) {
	// GIVEN a workload written as YAML
	var yml bytes.Buffer
	require.NoError(t, Write(&yml, sampleWorkload(), FormatYAML))

	// WHEN decoded and rewritten as text
	w, err := Decode(&yml, FormatYAML)
	require.NoError(t, err)
	var text bytes.Buffer
	require.NoError(t, Write(&text, w, FormatText))

	// THEN parsing the text gives back the original workload
	back, err := Parse(&text)
	require.NoError(t, err)
	assert.Equal(t, sampleWorkload(), back)
}

func TestWrite_QuantumOmittedForNonRR(t *testing.T) {
	w := sampleWorkload()
	w.Algorithm = sim.SchedulerFCFS
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, w, FormatYAML))
	assert.NotContains(t, buf.String(), "quantum")

	assert.Error(t, Write(&buf, w, Format("csv")))
}

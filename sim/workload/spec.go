package workload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpusched/schedsim/sim"
)

// WorkloadSpec is the YAML form of a workload.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	ProcessCount int           `yaml:"process_count,omitempty"` // 0 = number of processes listed
	RunFor       int64         `yaml:"run_for"`
	Scheduler    string        `yaml:"scheduler"`
	Quantum      int64         `yaml:"quantum,omitempty"` // required for rr
	Processes    []ProcessSpec `yaml:"processes"`
}

// ProcessSpec declares one process.
type ProcessSpec struct {
	Name    string `yaml:"name"`
	Arrival int64  `yaml:"arrival"`
	Burst   int64  `yaml:"burst"`
}

// Format identifies a workload encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatForPath picks the encoding from a file extension: .yaml/.yml is YAML, anything else text.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// LoadWorkloadSpec loads a YAML workload spec from a file.
// Unknown keys are rejected so typos do not silently change a run.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	spec, err := ParseWorkloadSpec(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// ParseWorkloadSpec decodes YAML bytes with strict field checking.
func ParseWorkloadSpec(data []byte) (*WorkloadSpec, error) {
	var spec WorkloadSpec
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that the spec describes a runnable workload.
func (s *WorkloadSpec) Validate() error {
	if err := s.ToWorkload().Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidWorkload, err)
	}
	return nil
}

// ToWorkload converts the spec into an unstarted sim.Workload.
func (s *WorkloadSpec) ToWorkload() *sim.Workload {
	w := &sim.Workload{
		NumProcesses: s.ProcessCount,
		RunFor:       s.RunFor,
		Algorithm:    s.Scheduler,
		Quantum:      s.Quantum,
		Processes:    make([]*sim.Process, 0, len(s.Processes)),
	}
	if w.NumProcesses == 0 {
		w.NumProcesses = len(s.Processes)
	}
	for _, p := range s.Processes {
		w.Processes = append(w.Processes, sim.NewProcess(p.Name, p.Arrival, p.Burst))
	}
	return w
}

// FromWorkload builds the YAML form of a workload.
func FromWorkload(w *sim.Workload) *WorkloadSpec {
	s := &WorkloadSpec{
		ProcessCount: w.NumProcesses,
		RunFor:       w.RunFor,
		Scheduler:    w.Algorithm,
		Processes:    make([]ProcessSpec, 0, len(w.Processes)),
	}
	if w.Algorithm == sim.SchedulerRR {
		s.Quantum = w.Quantum
	}
	for _, p := range w.Processes {
		s.Processes = append(s.Processes, ProcessSpec{Name: p.Name, Arrival: p.ArrivalTime, Burst: p.BurstTime})
	}
	return s
}

// Decode reads a workload in the given format and validates it.
func Decode(r io.Reader, format Format) (*sim.Workload, error) {
	switch format {
	case FormatYAML:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading workload spec: %w", err)
		}
		spec, err := ParseWorkloadSpec(data)
		if err != nil {
			return nil, err
		}
		if err := spec.Validate(); err != nil {
			return nil, err
		}
		return spec.ToWorkload(), nil
	case FormatText, "":
		return Parse(r)
	default:
		return nil, fmt.Errorf("unknown workload format %q; valid: text, yaml", format)
	}
}

// Load reads a workload file, choosing the format from its extension.
func Load(path string) (*sim.Workload, error) {
	if FormatForPath(path) == FormatText {
		return ParseFile(path)
	}
	spec, err := LoadWorkloadSpec(path)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec.ToWorkload(), nil
}

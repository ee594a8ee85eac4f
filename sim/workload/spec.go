package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlq-sim/mlq-sim/sim"
)

// WorkloadSpec is the YAML form of a simulation scenario: the two round-robin
// quanta plus the process table. Loaded via LoadSpec(path).
type WorkloadSpec struct {
	Version   string        `yaml:"version"`
	Quantum1  int64         `yaml:"quantum1,omitempty"` // 0 = default (3)
	Quantum2  int64         `yaml:"quantum2,omitempty"` // 0 = default (5)
	Processes []ProcessSpec `yaml:"processes"`
}

// ProcessSpec defines a single process in a WorkloadSpec.
type ProcessSpec struct {
	ID       string `yaml:"id"`
	Burst    int64  `yaml:"burst"`
	Arrival  int64  `yaml:"arrival"`
	Queue    int    `yaml:"queue"`
	Priority int    `yaml:"priority"`
}

// LoadSpec reads and validates a WorkloadSpec YAML file.
func LoadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec: %w", err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks the spec against the input record contract. Unlike the
// text loader, which skips malformed lines, a spec is rejected as a whole:
// it is a hand-authored file, so silent dropping would hide mistakes.
func (s *WorkloadSpec) Validate() error {
	if s.Quantum1 < 0 || s.Quantum2 < 0 {
		return fmt.Errorf("quanta must be non-negative (0 selects the default)")
	}
	if len(s.Processes) == 0 {
		return fmt.Errorf("workload spec has no processes")
	}
	seen := make(map[string]bool, len(s.Processes))
	for i, ps := range s.Processes {
		p := sim.NewProcess(ps.ID, ps.Burst, ps.Arrival, ps.Queue, ps.Priority)
		if err := ValidateProcess(p); err != nil {
			return fmt.Errorf("process %d: %w", i, err)
		}
		if seen[ps.ID] {
			return fmt.Errorf("duplicate process identifier %q", ps.ID)
		}
		seen[ps.ID] = true
	}
	return nil
}

// SchedulerConfig returns the quanta from the spec, falling back to the
// defaults for zero values.
func (s *WorkloadSpec) SchedulerConfig() sim.SchedulerConfig {
	cfg := sim.DefaultSchedulerConfig()
	if s.Quantum1 > 0 {
		cfg.Quantum1 = s.Quantum1
	}
	if s.Quantum2 > 0 {
		cfg.Quantum2 = s.Quantum2
	}
	return cfg
}

// BuildProcesses converts the spec's process table into core Process values,
// sorted ascending by arrival time with ties in spec order.
func (s *WorkloadSpec) BuildProcesses() []*sim.Process {
	procs := make([]*sim.Process, 0, len(s.Processes))
	for _, ps := range s.Processes {
		procs = append(procs, sim.NewProcess(ps.ID, ps.Burst, ps.Arrival, ps.Queue, ps.Priority))
	}
	SortByArrival(procs)
	return procs
}

// ConvertProcessFile reads a ';'-delimited process table and lifts it into a
// WorkloadSpec with the default quanta, for `mlqsim convert`.
func ConvertProcessFile(path string) (*WorkloadSpec, error) {
	procs, err := LoadProcessFile(path)
	if err != nil {
		return nil, err
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("%s: no valid process records", path)
	}
	spec := &WorkloadSpec{
		Version:   "1",
		Processes: make([]ProcessSpec, 0, len(procs)),
	}
	for _, p := range procs {
		spec.Processes = append(spec.Processes, ProcessSpec{
			ID:       p.ID,
			Burst:    p.BurstTime,
			Arrival:  p.ArrivalTime,
			Queue:    p.Queue,
			Priority: p.Priority,
		})
	}
	return spec, nil
}

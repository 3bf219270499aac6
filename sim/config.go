package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SweepConfig holds the parameters of one page-size sweep.
type SweepConfig struct {
	Processes   int   `yaml:"processes"`    // number of simulated processes per page size (must be > 0)
	RAMSize     int   `yaml:"ram_size"`     // total RAM size in abstract units (must be > 0)
	ProcessSize int   `yaml:"process_size"` // size of each simulated process (must be > 0)
	Seed        int64 `yaml:"seed,omitempty"`
	Workers     int   `yaml:"workers,omitempty"` // max concurrent process runs; <= 0 means runtime.NumCPU()
}

// Validate checks that the sweep parameters are well-formed positive integers.
func (c SweepConfig) Validate() error {
	if c.Processes <= 0 {
		return fmt.Errorf("processes must be positive, got %d", c.Processes)
	}
	if c.RAMSize <= 0 {
		return fmt.Errorf("ram_size must be positive, got %d", c.RAMSize)
	}
	if c.ProcessSize <= 0 {
		return fmt.Errorf("process_size must be positive, got %d", c.ProcessSize)
	}
	return nil
}

// ScenarioSpec is a batch of named sweep configurations, loaded from YAML.
// A top-level seed applies to every scenario that does not set its own.
type ScenarioSpec struct {
	Seed      int64      `yaml:"seed,omitempty"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is one named entry of a ScenarioSpec.
type Scenario struct {
	Name        string `yaml:"name"`
	SweepConfig `yaml:",inline"`
}

// LoadScenarioSpec reads and validates a scenario file. The top-level seed is
// pushed down into scenarios that left theirs unset.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if len(spec.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	for i := range spec.Scenarios {
		sc := &spec.Scenarios[i]
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario_%d", i)
		}
		if sc.Seed == 0 {
			sc.Seed = spec.Seed
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
		}
	}
	return &spec, nil
}

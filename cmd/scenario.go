package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/disksim/disksim/sim"
)

// Scenario is a YAML description of a run. Every field is optional;
// unset fields leave the corresponding default or flag value in place.
type Scenario struct {
	InitialHead    *int              `yaml:"initial_head"`
	WindowSize     *int              `yaml:"window_size"`
	BufferCapacity *int              `yaml:"buffer_capacity"`
	Chunked        *bool             `yaml:"chunked"`
	Policies       []string          `yaml:"policies"`
	Workload       *ScenarioWorkload `yaml:"workload"`
}

// ScenarioWorkload configures synthetic request generation for the rand
// subcommand.
type ScenarioWorkload struct {
	Pattern string  `yaml:"pattern"`
	Count   int     `yaml:"count"`
	Center  float64 `yaml:"center"`
	Spread  float64 `yaml:"spread"`
	Value   int     `yaml:"value"`
}

// LoadScenario reads and parses a scenario file. Unknown keys are an
// error so that typos do not silently fall back to defaults.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sc Scenario
	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// apply copies the scenario's set fields onto cfg.
func (sc *Scenario) apply(cfg *sim.Config) {
	if sc.InitialHead != nil {
		cfg.InitialHead = *sc.InitialHead
	}
	if sc.WindowSize != nil {
		cfg.WindowSize = *sc.WindowSize
	}
	if sc.BufferCapacity != nil {
		cfg.BufferCapacity = *sc.BufferCapacity
	}
	if sc.Chunked != nil {
		cfg.Chunked = *sc.Chunked
	}
	if len(sc.Policies) > 0 {
		cfg.Policies = sc.Policies
	}
}

package sim

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// TicksPerSecond fixes the resolution of the logical clock.
// All rates are configured in per-second terms and converted internally.
const TicksPerSecond = 1e6

// Config holds the immutable parameters of a single simulation run.
// Rates are per second; Quantum and Horizon are in seconds.
// Built once at startup, read-only for the lifetime of the run.
type Config struct {
	Lambda  float64 `yaml:"lambda"`  // process arrival rate (processes/sec)
	Mu      float64 `yaml:"mu"`      // service rate (processes/sec)
	Xi      float64 `yaml:"xi"`      // catastrophe rate (failures/sec), 0 disables faults
	Beta    float64 `yaml:"beta"`    // repair rate (repairs/sec)
	Quantum float64 `yaml:"quantum"` // round-robin time slice (sec)
	Horizon float64 `yaml:"horizon"` // total simulated time (sec)
	Policy  string  `yaml:"policy"`  // fcfs, sjf, round-robin, preemptive-priority
	Seed    int64   `yaml:"seed"`
}

// Validate checks the configuration before the event loop is allowed to start.
func (c *Config) Validate() error {
	if c.Lambda <= 0 {
		return fmt.Errorf("invalid config: lambda must be > 0, got %v", c.Lambda)
	}
	if c.Mu <= 0 {
		return fmt.Errorf("invalid config: mu must be > 0, got %v", c.Mu)
	}
	if c.Xi < 0 {
		return fmt.Errorf("invalid config: xi must be >= 0, got %v", c.Xi)
	}
	if c.Xi > 0 && c.Beta <= 0 {
		return fmt.Errorf("invalid config: beta must be > 0 when xi > 0, got %v", c.Beta)
	}
	if c.Horizon <= 0 {
		return fmt.Errorf("invalid config: horizon must be > 0, got %v", c.Horizon)
	}
	if !IsValidPolicy(c.Policy) {
		return fmt.Errorf("invalid config: unknown policy %q", c.Policy)
	}
	if c.Policy == PolicyRoundRobin && c.Quantum <= 0 {
		return fmt.Errorf("invalid config: quantum must be > 0 for round-robin, got %v", c.Quantum)
	}
	return nil
}

// HorizonTicks returns the simulation horizon on the tick clock.
func (c *Config) HorizonTicks() int64 {
	return int64(math.Round(c.Horizon * TicksPerSecond))
}

// QuantumTicks returns the round-robin slice on the tick clock, floored at 1.
func (c *Config) QuantumTicks() int64 {
	q := int64(math.Round(c.Quantum * TicksPerSecond))
	if q < 1 {
		q = 1
	}
	return q
}

// ArrivalRatePerTick returns lambda converted to the tick clock.
func (c *Config) ArrivalRatePerTick() float64 { return c.Lambda / TicksPerSecond }

// ServiceRatePerTick returns mu converted to the tick clock.
func (c *Config) ServiceRatePerTick() float64 { return c.Mu / TicksPerSecond }

// FailureRatePerTick returns xi converted to the tick clock.
func (c *Config) FailureRatePerTick() float64 { return c.Xi / TicksPerSecond }

// RepairRatePerTick returns beta converted to the tick clock.
func (c *Config) RepairRatePerTick() float64 { return c.Beta / TicksPerSecond }

// Scenario is a named Config inside a scenario file.
type Scenario struct {
	Name   string `yaml:"name"`
	Config Config `yaml:",inline"`
}

// ScenarioFile is the top-level YAML document for predefined runs.
type ScenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarioFile reads and parses a YAML scenario file.
func LoadScenarioFile(path string) (*ScenarioFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var sf ScenarioFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	return &sf, nil
}

// FindScenario returns the scenario with the given name.
func (sf *ScenarioFile) FindScenario(name string) (*Scenario, error) {
	for i := range sf.Scenarios {
		if sf.Scenarios[i].Name == name {
			return &sf.Scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found", name)
}

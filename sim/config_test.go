package sim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Lambda:  0.8,
		Mu:      1.0,
		Xi:      0.05,
		Beta:    0.2,
		Quantum: 0.3,
		Horizon: 100,
		Policy:  PolicyFCFS,
		Seed:    42,
	}
}

func TestConfigValidate_Accepts(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	// xi = 0 disables faults entirely; beta is then irrelevant.
	cfg := validConfig()
	cfg.Xi = 0
	cfg.Beta = 0
	assert.NoError(t, cfg.Validate())

	// quantum is only checked for round-robin.
	cfg = validConfig()
	cfg.Quantum = 0
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero lambda", func(c *Config) { c.Lambda = 0 }},
		{"negative lambda", func(c *Config) { c.Lambda = -1 }},
		{"zero mu", func(c *Config) { c.Mu = 0 }},
		{"negative xi", func(c *Config) { c.Xi = -0.1 }},
		{"zero beta with faults", func(c *Config) { c.Beta = 0 }},
		{"zero horizon", func(c *Config) { c.Horizon = 0 }},
		{"unknown policy", func(c *Config) { c.Policy = "lottery" }},
		{"zero quantum for rr", func(c *Config) { c.Policy = PolicyRoundRobin; c.Quantum = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigTickConversions(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, int64(100*TicksPerSecond), cfg.HorizonTicks())
	assert.Equal(t, int64(300000), cfg.QuantumTicks())
	assert.InDelta(t, 0.8/TicksPerSecond, cfg.ArrivalRatePerTick(), 1e-15)
	assert.InDelta(t, 1.0/TicksPerSecond, cfg.ServiceRatePerTick(), 1e-15)

	// Sub-tick quantum floors at 1.
	cfg.Quantum = 1e-9
	assert.Equal(t, int64(1), cfg.QuantumTicks())
}

func TestLoadScenarioFile(t *testing.T) {
	content := `scenarios:
  - name: baseline
    lambda: 0.5
    mu: 1.0
    xi: 0.05
    beta: 0.2
    quantum: 2
    horizon: 100
    policy: fcfs
    seed: 42
  - name: no-faults
    lambda: 0.5
    mu: 1.0
    xi: 0
    beta: 0
    horizon: 100
    policy: sjf
    seed: 42
`
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	sf, err := LoadScenarioFile(path)
	require.NoError(t, err)
	require.Len(t, sf.Scenarios, 2)

	sc, err := sf.FindScenario("baseline")
	require.NoError(t, err)
	assert.Equal(t, 0.5, sc.Config.Lambda)
	assert.Equal(t, PolicyFCFS, sc.Config.Policy)
	assert.NoError(t, sc.Config.Validate())

	sc, err = sf.FindScenario("no-faults")
	require.NoError(t, err)
	assert.Equal(t, float64(0), sc.Config.Xi)
	assert.NoError(t, sc.Config.Validate())

	_, err = sf.FindScenario("missing")
	assert.Error(t, err)
}

func TestLoadScenarioFile_Errors(t *testing.T) {
	_, err := LoadScenarioFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("scenarios: {not: [valid"), 0o644))
	_, err = LoadScenarioFile(path)
	assert.Error(t, err)
}

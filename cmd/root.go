package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/catastrophe-sim/catastrophe-sim/sim"
)

var (
	// CLI flags for simulation parameters
	lambda       float64 // Mean arrival rate of processes (processes/sec)
	mu           float64 // Mean service rate of the CPU (processes/sec)
	xi           float64 // Mean rate of catastrophic events (catastrophes/sec)
	beta         float64 // Mean rate of system restoration (repairs/sec)
	quantum      float64 // Time quantum for the round-robin policy (sec)
	horizon      float64 // Total simulation time (sec)
	policy       string  // Scheduling policy name
	seed         int64   // Seed for random stream generation
	logLevel     string  // Log verbosity level
	scenarioFile string  // Optional YAML scenario file
	scenarioName string  // Scenario to select from the file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "catastrophe-sim",
	Short: "Discrete-event simulator for CPU scheduling under catastrophic failures",
}

// buildConfig assembles the run configuration from flags, or from a scenario
// file when one is given (flags for rates are ignored in that case).
func buildConfig() (*sim.Config, error) {
	if scenarioFile != "" {
		sf, err := sim.LoadScenarioFile(scenarioFile)
		if err != nil {
			return nil, err
		}
		sc, err := sf.FindScenario(scenarioName)
		if err != nil {
			return nil, err
		}
		return &sc.Config, nil
	}
	return &sim.Config{
		Lambda:  lambda,
		Mu:      mu,
		Xi:      xi,
		Beta:    beta,
		Quantum: quantum,
		Horizon: horizon,
		Policy:  policy,
		Seed:    seed,
	}, nil
}

// runCmd executes a single simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one simulation and print its metrics",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := buildConfig()
		if err != nil {
			logrus.Fatalf("configuration error: %v", err)
		}

		s, err := sim.NewSimulator(cfg)
		if err != nil {
			logrus.Fatalf("configuration error: %v", err)
		}

		logrus.Infof("starting %s simulation: lambda=%v mu=%v xi=%v beta=%v horizon=%vs seed=%d",
			cfg.Policy, cfg.Lambda, cfg.Mu, cfg.Xi, cfg.Beta, cfg.Horizon, cfg.Seed)

		s.GenerateWorkload()
		report := s.Run()
		report.Print()

		logrus.Info("Simulation complete.")
	},
}

// compareCmd runs every policy over the identical process and fault streams
// (same seed) and prints a side-by-side table.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all policies on the same generated streams and compare",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		base, err := buildConfig()
		if err != nil {
			logrus.Fatalf("configuration error: %v", err)
		}

		fmt.Printf("%-22s %12s %12s %12s %10s\n",
			"policy", "completed", "avg wait", "availability", "mttr")
		for _, name := range sim.PolicyNames {
			cfg := *base
			cfg.Policy = name

			s, err := sim.NewSimulator(&cfg)
			if err != nil {
				logrus.Fatalf("configuration error: %v", err)
			}
			s.GenerateWorkload()
			report := s.Run()

			fmt.Printf("%-22s %12d %12s %12.4f %10s\n",
				report.Policy, report.Completed,
				fmtCell(report.AvgWaitingTime), report.Availability,
				fmtCell(report.MTTR))
		}
	},
}

// fmtCell renders a seconds value for the comparison table.
func fmtCell(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", v)
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	for _, c := range []*cobra.Command{runCmd, compareCmd} {
		c.Flags().Float64Var(&lambda, "lambda", 0.8, "Mean arrival rate of processes (processes/sec)")
		c.Flags().Float64Var(&mu, "mu", 1.0, "Mean service rate of the CPU (processes/sec)")
		c.Flags().Float64Var(&xi, "xi", 0.05, "Mean rate of catastrophic events (catastrophes/sec), 0 disables faults")
		c.Flags().Float64Var(&beta, "beta", 0.2, "Mean rate of system restoration (repairs/sec)")
		c.Flags().Float64Var(&quantum, "quantum", 0.3, "Round-robin time quantum (sec)")
		c.Flags().Float64Var(&horizon, "horizon", 10000, "Total simulation time (sec)")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for random stream generation")
		c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
		c.Flags().StringVar(&scenarioFile, "scenario-file", "", "YAML scenario file (overrides rate flags)")
		c.Flags().StringVar(&scenarioName, "scenario", "", "Scenario name inside --scenario-file")
	}
	runCmd.Flags().StringVar(&policy, "policy", sim.PolicyFCFS,
		"Scheduling policy (fcfs, sjf, round-robin, preemptive-priority)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}

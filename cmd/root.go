package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pagereplace-sim/pagereplace-sim/sim"
	"github.com/pagereplace-sim/pagereplace-sim/sim/report"
)

var (
	// CLI flags for the page-size sweep
	processes   int    // Number of simulated processes per page size
	ramSize     int    // Total RAM size (abstract units)
	processSize int    // Size of each simulated process (abstract units)
	seed        int64  // Seed for reference-string generation
	workers     int    // Max concurrent process simulations (0 = NumCPU)
	logLevel    string // Log verbosity level

	// CLI flags for the scenario batch runner
	scenarioFile string // Path to a YAML scenario file
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "pagereplace-sim",
	Short: "Page-replacement policy analyzer (OPT, FIFO, LRU, MRU)",
}

// runCmd executes one sweep using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one page-size sweep and print the hit-rate table",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg := sim.SweepConfig{
			Processes:   processes,
			RAMSize:     ramSize,
			ProcessSize: processSize,
			Seed:        seed,
			Workers:     workers,
		}

		logrus.Infof("Starting sweep with processes=%d ramSize=%d processSize=%d seed=%d",
			cfg.Processes, cfg.RAMSize, cfg.ProcessSize, cfg.Seed)
		startTime := time.Now()

		matrix, err := sim.RunSweep(cfg)
		if err != nil {
			logrus.Fatalf("Invalid sweep configuration: %v", err)
		}
		report.Render(os.Stdout, matrix)

		logrus.Infof("Sweep complete in %v.", time.Since(startTime))
	},
}

// setupLogging parses the --log flag into a logrus level.
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
	runCmd.Flags().IntVar(&processes, "processes", 4, "Number of simulated processes per page size")
	runCmd.Flags().IntVar(&ramSize, "ram-size", 16, "Total RAM size")
	runCmd.Flags().IntVar(&processSize, "process-size", 32, "Size of each simulated process")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for reference-string generation")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Max concurrent process simulations (0 = number of CPUs)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	scenarioCmd.Flags().StringVar(&scenarioFile, "file", "", "Path to a YAML scenario file (required)")
	scenarioCmd.Flags().IntVar(&workers, "workers", 0, "Max concurrent process simulations (0 = number of CPUs)")
	scenarioCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scenarioCmd)
}

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/pagereplace-sim/pagereplace-sim/sim"
	"github.com/pagereplace-sim/pagereplace-sim/sim/report"
)

// scenarioCmd runs a batch of sweeps described by a YAML scenario file and
// prints one hit-rate table per scenario, in file order.
var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Run a batch of sweeps from a YAML scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		if scenarioFile == "" {
			logrus.Fatalf("No scenario file provided (--file). Exiting.")
		}
		spec, err := sim.LoadScenarioSpec(scenarioFile)
		if err != nil {
			logrus.Fatalf("Unable to load scenario file: %v", err)
		}

		for _, sc := range spec.Scenarios {
			cfg := sc.SweepConfig
			cfg.Workers = workers

			runID := xid.New().String()
			log := logrus.WithFields(logrus.Fields{"run": runID, "scenario": sc.Name})
			log.Infof("Starting sweep with processes=%d ramSize=%d processSize=%d seed=%d",
				cfg.Processes, cfg.RAMSize, cfg.ProcessSize, cfg.Seed)
			startTime := time.Now()

			matrix, err := sim.RunSweep(cfg)
			if err != nil {
				log.Fatalf("Invalid sweep configuration: %v", err)
			}

			fmt.Printf("=== Scenario %s (run %s) ===\n", sc.Name, runID)
			report.Render(os.Stdout, matrix)
			log.Infof("Sweep complete in %v.", time.Since(startTime))
		}
	},
}

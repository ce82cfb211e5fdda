package cmd

import (
	"fmt"
	"os"

	"firecast/internal/engine"
	"firecast/internal/model"
	"firecast/internal/montecarlo"
	"firecast/internal/report"
	"firecast/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagOutput     string
	flagSkipMC     bool
	flagExportRuns int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a plain-text simulation report",
	Long:  "Run the full simulation, write a report to a file (or stdout with -o -), and record the run in the history database.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "firecast-report.txt", "Report path, or - for stdout")
	exportCmd.Flags().BoolVar(&flagSkipMC, "skip-montecarlo", false, "Skip the Monte Carlo section")
	exportCmd.Flags().IntVar(&flagExportRuns, "runs", montecarlo.DefaultRuns, "Monte Carlo trials")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := loadPlan()
	if err != nil {
		return err
	}

	p := engine.Project(in)

	var mc model.MonteCarloResult
	if !flagSkipMC {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Running %d Monte Carlo trials...\n", flagExportRuns)
		}
		mc = montecarlo.Simulate(in, montecarlo.Options{Runs: flagExportRuns})
	}

	if flagOutput == "-" {
		if err := report.Write(os.Stdout, in, p, mc); err != nil {
			return err
		}
	} else {
		if err := report.Export(flagOutput, in, p, mc); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Report written to %s\n", flagOutput)
		}
	}

	// Record the run. History is best-effort; the report already
	// succeeded.
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		if !flagQuiet {
			fmt.Fprintf(os.Stderr, "  Could not open history: %v\n", err)
		}
		return nil
	}
	defer h.Close()

	if _, err := h.SaveRun(store.NewRun(in, p, mc)); err != nil && !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Could not record run: %v\n", err)
	}
	return nil
}

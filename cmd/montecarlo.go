package cmd

import (
	"fmt"

	"firecast/internal/cli"
	"firecast/internal/engine"
	"firecast/internal/montecarlo"

	"github.com/spf13/cobra"
)

var (
	flagRuns    int
	flagSeed    uint64
	flagWorkers int
)

var montecarloCmd = &cobra.Command{
	Use:     "montecarlo",
	Aliases: []string{"mc"},
	Short:   "Stress-test the plan with randomized market conditions",
	RunE:    runMonteCarlo,
}

func init() {
	montecarloCmd.Flags().IntVar(&flagRuns, "runs", montecarlo.DefaultRuns, "Number of simulation trials")
	montecarloCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = time-based)")
	montecarloCmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (0 = GOMAXPROCS)")
	rootCmd.AddCommand(montecarloCmd)
}

func runMonteCarlo(cmd *cobra.Command, args []string) error {
	in, err := loadPlan()
	if err != nil {
		return err
	}

	base := engine.Project(in)
	mc := montecarlo.Simulate(in, montecarlo.Options{
		Runs:    flagRuns,
		Seed:    flagSeed,
		Workers: flagWorkers,
	})

	fmt.Println(cli.RenderTitle("firecast monte carlo"))

	t := cli.Table{
		Title:   fmt.Sprintf("Results over %s trials", cli.FormatNumber(int64(mc.Runs))),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Success rate", cli.FormatFraction(mc.SuccessRate)},
			{"Median final net worth", cli.FormatMoney(mc.MedianNetWorth)},
			{"10th percentile", cli.FormatMoney(mc.Percentile10NetWorth)},
			{"Deterministic baseline", cli.FormatMoney(base.FinalNetWorth())},
		},
	}
	fmt.Println(cli.RenderTable(t))

	fmt.Println("  Success rate")
	fmt.Println("  " + cli.RenderHorizontalBar(mc.SuccessRate, 1, 40))
	return nil
}

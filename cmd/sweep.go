package cmd

import (
	"fmt"

	"firecast/internal/cli"
	"firecast/internal/scenario"

	"github.com/spf13/cobra"
)

var flagBand int

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the saving rate across a band of deltas",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().IntVar(&flagBand, "band", 5, "Sweep saving rate from -band to +band percentage points")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if flagBand < 0 {
		return fmt.Errorf("band must be non-negative, got %d", flagBand)
	}

	in, err := loadPlan()
	if err != nil {
		return err
	}

	deltas := make([]int, 0, 2*flagBand+1)
	for d := -flagBand; d <= flagBand; d++ {
		deltas = append(deltas, d)
	}

	rows := scenario.SavingRateSweep(in, deltas)

	fmt.Println(cli.RenderTitle("firecast saving rate sweep"))

	t := cli.Table{
		Title:   "Saving Rate Sweep",
		Headers: []string{"Delta", "Saving Rate", "Retirement Age", "Final Net Worth"},
	}
	for _, r := range rows {
		label := fmt.Sprintf("%+d pp", r.Delta)
		if r.Delta == 0 {
			label = "base"
		}
		t.Rows = append(t.Rows, []string{
			label,
			cli.FormatRate(r.SavingRate),
			fmt.Sprintf("%d", r.RetirementAge),
			cli.FormatMoney(r.FinalNetWorth),
		})
	}
	fmt.Println(cli.RenderTable(t))
	return nil
}

package cmd

import (
	"fmt"

	"firecast/internal/cli"
	"firecast/internal/store"

	"github.com/spf13/cobra"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded simulation runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&flagLimit, "limit", "n", 20, "Maximum runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	h, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening history: %w", err)
	}
	defer h.Close()

	runs, err := h.ListRuns(flagLimit)
	if err != nil {
		return fmt.Errorf("listing runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("  No recorded runs. `firecast export` records one.")
		return nil
	}

	fmt.Println(cli.RenderTitle("firecast run history"))

	t := cli.Table{
		Headers: []string{"When", "Ages", "Save %", "Ret. Age", "Final Net Worth", "MC Success"},
	}
	for _, r := range runs {
		success := "-"
		if r.MCRuns > 0 {
			success = cli.FormatFraction(r.SuccessRate)
		}
		t.Rows = append(t.Rows, []string{
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", r.StartingAge, r.FinalAge),
			cli.FormatRate(r.SavingRate),
			fmt.Sprintf("%d", r.RetirementAge),
			cli.FormatMoney(r.FinalNetWorth),
			success,
		})
	}
	fmt.Println(cli.RenderTable(t))
	return nil
}

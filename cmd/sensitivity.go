package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"firecast/internal/cli"
	"firecast/internal/engine"
	"firecast/internal/scenario"

	"github.com/spf13/cobra"
)

var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity <variable> <delta>",
	Short: "Rerun the projection with one input shifted",
	Long: "Shift a single plan variable by delta and compare the outcome against the base projection.\n\nVariables:\n  " +
		strings.Join(scenario.Variables, "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runSensitivity,
}

func init() {
	rootCmd.AddCommand(sensitivityCmd)
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	variable := args[0]
	delta, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", args[1], err)
	}

	in, err := loadPlan()
	if err != nil {
		return err
	}

	base := engine.Project(in)
	shifted, err := scenario.Sensitivity(in, variable, delta)
	if err != nil {
		return err
	}

	fmt.Println(cli.RenderTitle("firecast sensitivity"))

	t := cli.Table{
		Title:   fmt.Sprintf("%s %+g", variable, delta),
		Headers: []string{"Metric", "Base", "Shifted"},
		Rows: [][]string{
			{"Retirement age", fmt.Sprintf("%d", base.RetirementAge), fmt.Sprintf("%d", shifted.RetirementAge)},
			{"Final net worth", cli.FormatMoney(base.FinalNetWorth()), cli.FormatMoney(shifted.FinalNetWorth())},
			{"Avg withdrawal rate", cli.FormatRate(base.AvgWithdrawalRate), cli.FormatRate(shifted.AvgWithdrawalRate)},
		},
	}
	fmt.Println(cli.RenderTable(t))

	fmt.Printf("  Retirement age shift: %s\n", cli.FormatYearsDelta(shifted.RetirementAge-base.RetirementAge))
	return nil
}

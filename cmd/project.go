package cmd

import (
	"fmt"
	"math"

	"firecast/internal/cli"
	"firecast/internal/engine"
	"firecast/internal/model"

	"github.com/spf13/cobra"
)

var flagSeries bool

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run the deterministic projection",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().BoolVar(&flagSeries, "series", false, "Print the full year-by-year series")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	in, err := loadPlan()
	if err != nil {
		return err
	}

	p := engine.Project(in)

	fmt.Println(cli.RenderTitle("firecast projection"))
	fmt.Println(renderKeyMetrics(in, p))

	if len(p.NetWorth) > 1 {
		fmt.Println("  Net worth, age", in.StartingAge, "to", in.FinalAge)
		fmt.Println("  " + cli.RenderSparkline(cli.Downsample(p.NetWorth, 60)))
		fmt.Println()
	}

	if flagSeries {
		fmt.Println(renderSeries(in, p))
	}
	return nil
}

func renderKeyMetrics(in model.PlanInputs, p model.Projection) string {
	status := "on track"
	if !p.Succeeded() {
		status = "falls short"
	}

	horizon := in.FinalAge - in.StartingAge
	inflationFactor := math.Pow(1+in.Inflation/100, float64(horizon))

	t := cli.Table{
		Title:   "Key Metrics",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Retirement age", fmt.Sprintf("%d", p.RetirementAge)},
			{"Years to retirement", fmt.Sprintf("%d", p.YearsToRetirement)},
			{"Final net worth", cli.FormatMoney(p.FinalNetWorth())},
			{"Final net worth (real)", cli.FormatMoney(p.FinalNetWorth() / inflationFactor)},
			{"Avg withdrawal rate", fmt.Sprintf("%.2f%%", p.AvgWithdrawalRate)},
			{"Inflation impact", fmt.Sprintf("$1.00 today = $%.2f at %d", inflationFactor, in.FinalAge)},
			{"Plan status", status},
		},
	}
	return cli.RenderTable(t)
}

func renderSeries(in model.PlanInputs, p model.Projection) string {
	realNW := engine.RealSeries(p, p.NetWorth, in.Inflation)

	t := cli.Table{
		Title:   "Yearly Series",
		Headers: []string{"Age", "Salary", "Income", "Expenses", "Net Worth", "Net Worth (real)"},
	}
	for i, age := range p.Ages {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("%d", age),
			cli.FormatMoneyShort(p.Salary[i]),
			cli.FormatMoneyShort(p.Income[i]),
			cli.FormatMoneyShort(p.Expenses[i]),
			cli.FormatMoney(p.NetWorth[i]),
			cli.FormatMoney(realNW[i]),
		})
	}
	return cli.RenderTable(t)
}

// Package report writes plain-text simulation reports: key assumptions,
// projected outcomes, Monte Carlo results, and disclaimer notes.
package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"firecast/internal/cli"
	"firecast/internal/model"
	"firecast/internal/schedule"
)

// Write renders the full report to w.
func Write(w io.Writer, in model.PlanInputs, p model.Projection, mc model.MonteCarloResult) error {
	var b strings.Builder

	b.WriteString("firecast simulation report\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	writeAssumptions(&b, in)
	writeOutcomes(&b, in, p)
	writeMonteCarlo(&b, mc)
	writeNotes(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

// Export writes the report to a file.
func Export(path string, in model.PlanInputs, p model.Projection, mc model.MonteCarloResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer f.Close()

	if err := Write(f, in, p, mc); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

func writeAssumptions(b *strings.Builder, in model.PlanInputs) {
	b.WriteString("INPUT ASSUMPTIONS\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")

	line := func(label, value string) {
		fmt.Fprintf(b, "  %-28s %s\n", label+":", value)
	}

	line("Starting age", fmt.Sprintf("%d", in.StartingAge))
	line("Final age", fmt.Sprintf("%d", in.FinalAge))
	line("Starting fund", cli.FormatMoney(in.StartingFund))
	line("Starting salary", cli.FormatMoney(in.StartingSalary))
	if in.NormalizedSalaryCap > 0 {
		line("Salary cap (real)", cli.FormatMoney(in.NormalizedSalaryCap))
	}
	line("Saving rate", cli.FormatRate(in.SavingRate))
	line("Savings growth", cli.FormatRate(in.SavingsGrowth))
	line("Retirement growth", cli.FormatRate(in.RetirementGrowth))
	line("Withdrawal rate", cli.FormatRate(in.ComfortableWithdrawalRate))
	line("Raise rate", cli.FormatRate(in.RaiseRate))
	line("Emergency fund", cli.FormatRate(in.EmergencyFund))
	if len(in.SalaryUpgrades) > 0 {
		line("Salary upgrades", schedule.FormatSalaryUpgrades(in.SalaryUpgrades))
	}
	if len(in.VariableSavingRates) > 0 {
		line("Scheduled saving rates", schedule.FormatSavingsRates(in.VariableSavingRates))
	}
	line("Retirement spend", cli.FormatMoney(in.RetirementSpend))
	if in.ExtraExpense > 0 {
		line("Extra 5-year expense", cli.FormatMoney(in.ExtraExpense))
	}
	line("Retirement tax", cli.FormatRate(in.RetirementTax))
	line("Inflation", cli.FormatRate(in.Inflation))
	switch in.RetirementMode {
	case model.ModeMinimumAge:
		line("Mode", fmt.Sprintf("minimum retirement age (%d)", in.MinRetirementAge))
	default:
		line("Mode", fmt.Sprintf("extra years of work (%d)", in.ExtraYearsOfWork))
	}
	b.WriteString("\n")
}

func writeOutcomes(b *strings.Builder, in model.PlanInputs, p model.Projection) {
	b.WriteString("PROJECTED OUTCOMES\n")
	b.WriteString(strings.Repeat("-", 20) + "\n")

	horizon := in.FinalAge - in.StartingAge
	inflationFactor := math.Pow(1+in.Inflation/100, float64(horizon))

	fmt.Fprintf(b, "  %-28s %d\n", "Retirement age:", p.RetirementAge)
	fmt.Fprintf(b, "  %-28s %d\n", "Years to retirement:", p.YearsToRetirement)
	fmt.Fprintf(b, "  %-28s %.2f%%\n", "Avg withdrawal rate:", p.AvgWithdrawalRate)
	fmt.Fprintf(b, "  %-28s %s\n", "Final net worth:", cli.FormatMoney(p.FinalNetWorth()))
	fmt.Fprintf(b, "  %-28s %s\n", "Final net worth (real):", cli.FormatMoney(p.FinalNetWorth()/inflationFactor))
	fmt.Fprintf(b, "  %-28s $1.00 today = $%.2f at age %d\n", "Inflation impact:", inflationFactor, in.FinalAge)
	b.WriteString("\n")
}

func writeMonteCarlo(b *strings.Builder, mc model.MonteCarloResult) {
	b.WriteString("MONTE CARLO SIMULATION\n")
	b.WriteString(strings.Repeat("-", 25) + "\n")

	if mc.Runs == 0 {
		b.WriteString("  (not run)\n\n")
		return
	}

	fmt.Fprintf(b, "  %-28s %d\n", "Trials:", mc.Runs)
	fmt.Fprintf(b, "  %-28s %s\n", "Success rate:", cli.FormatFraction(mc.SuccessRate))
	fmt.Fprintf(b, "  %-28s %s\n", "Median net worth at death:", cli.FormatMoney(mc.MedianNetWorth))
	fmt.Fprintf(b, "  %-28s %s\n", "10th percentile net worth:", cli.FormatMoney(mc.Percentile10NetWorth))
	b.WriteString("\n")
}

func writeNotes(b *strings.Builder) {
	b.WriteString("NOTES\n")
	b.WriteString(strings.Repeat("-", 6) + "\n")
	b.WriteString("- This simulation assumes no social security or pension income\n")
	b.WriteString("- Input amounts are in current dollars; projected series are nominal\n")
	b.WriteString("- Monte Carlo trials randomize growth rates and inflation around the configured means\n")
}

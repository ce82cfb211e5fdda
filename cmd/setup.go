package cmd

import (
	"fmt"
	"strconv"

	"firecast/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive plan setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	// Start from the existing plan so rerunning keeps prior answers.
	plan, err := config.Load(flagPlan)
	if err != nil {
		plan = config.Default()
	}

	var (
		startingAge    = strconv.Itoa(plan.Profile.StartingAge)
		finalAge       = strconv.Itoa(plan.Profile.FinalAge)
		startingFund   = formatFloat(plan.Profile.StartingFund)
		startingSalary = formatFloat(plan.Profile.StartingSalary)
		savingRate     = formatFloat(plan.Savings.SavingRate)
		savingsGrowth  = formatFloat(plan.Savings.SavingsGrowth)
		retireGrowth   = formatFloat(plan.Savings.RetirementGrowth)
		retireSpend    = formatFloat(plan.Retirement.RetirementSpend)
		withdrawalRate = formatFloat(plan.Savings.ComfortableWithdrawalRate)
		raiseRate      = formatFloat(plan.Income.RaiseRate)
		emergencyFund  = formatFloat(plan.Income.EmergencyFund)
		retirementTax  = formatFloat(plan.Retirement.RetirementTax)
		mode           = plan.Retirement.Mode
		extraYears     = strconv.Itoa(plan.Retirement.ExtraYearsOfWork)
		minRetireAge   = strconv.Itoa(plan.Retirement.MinRetirementAge)
		inflation      = formatFloat(plan.Assumptions.Inflation)
		theme          = plan.Appearance.Theme
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Current age").
				Value(&startingAge).
				Validate(validInt(18, 100)),
			huh.NewInput().
				Title("Plan to age").
				Description("Assumed age of death for the projection").
				Value(&finalAge).
				Validate(validInt(18, 120)),
			huh.NewInput().
				Title("Current savings ($)").
				Value(&startingFund).
				Validate(validFloat(0, 1e12)),
			huh.NewInput().
				Title("Gross annual salary ($)").
				Value(&startingSalary).
				Validate(validFloat(0, 1e9)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Saving rate (% of salary)").
				Value(&savingRate).
				Validate(validFloat(0, 100)),
			huh.NewInput().
				Title("Savings growth while working (%/yr)").
				Value(&savingsGrowth).
				Validate(validFloat(-10, 20)),
			huh.NewInput().
				Title("Savings growth in retirement (%/yr)").
				Value(&retireGrowth).
				Validate(validFloat(-10, 20)),
			huh.NewInput().
				Title("Annual retirement spend ($, today's dollars)").
				Value(&retireSpend).
				Validate(validFloat(0, 1e9)),
			huh.NewInput().
				Title("Expected inflation (%/yr)").
				Value(&inflation).
				Validate(validFloat(0, 10)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Comfortable withdrawal rate (% of portfolio)").
				Value(&withdrawalRate).
				Validate(validFloat(2, 10)),
			huh.NewInput().
				Title("Annual raise (%/yr)").
				Value(&raiseRate).
				Validate(validFloat(0, 50)),
			huh.NewInput().
				Title("Emergency spending (% of income)").
				Value(&emergencyFund).
				Validate(validFloat(0, 50)),
			huh.NewInput().
				Title("Retirement tax rate (%)").
				Value(&retirementTax).
				Validate(validFloat(0, 50)),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Retirement timing").
				Options(
					huh.NewOption("Work extra years past financial readiness", "extra-years"),
					huh.NewOption("Retire at a fixed minimum age", "min-age"),
				).
				Value(&mode),
			huh.NewInput().
				Title("Extra years of work").
				Description("Used in extra-years mode").
				Value(&extraYears).
				Validate(validInt(0, 50)),
			huh.NewInput().
				Title("Minimum retirement age").
				Description("Used in min-age mode").
				Value(&minRetireAge).
				Validate(validInt(0, 120)),
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	plan.Profile.StartingAge, _ = strconv.Atoi(startingAge)
	plan.Profile.FinalAge, _ = strconv.Atoi(finalAge)
	plan.Profile.StartingFund, _ = strconv.ParseFloat(startingFund, 64)
	plan.Profile.StartingSalary, _ = strconv.ParseFloat(startingSalary, 64)
	plan.Savings.SavingRate, _ = strconv.ParseFloat(savingRate, 64)
	plan.Savings.SavingsGrowth, _ = strconv.ParseFloat(savingsGrowth, 64)
	plan.Savings.RetirementGrowth, _ = strconv.ParseFloat(retireGrowth, 64)
	plan.Retirement.RetirementSpend, _ = strconv.ParseFloat(retireSpend, 64)
	plan.Savings.ComfortableWithdrawalRate, _ = strconv.ParseFloat(withdrawalRate, 64)
	plan.Income.RaiseRate, _ = strconv.ParseFloat(raiseRate, 64)
	plan.Income.EmergencyFund, _ = strconv.ParseFloat(emergencyFund, 64)
	plan.Retirement.RetirementTax, _ = strconv.ParseFloat(retirementTax, 64)
	plan.Retirement.Mode = mode
	plan.Retirement.ExtraYearsOfWork, _ = strconv.Atoi(extraYears)
	plan.Retirement.MinRetirementAge, _ = strconv.Atoi(minRetireAge)
	plan.Assumptions.Inflation, _ = strconv.ParseFloat(inflation, 64)
	plan.Appearance.Theme = theme

	if err := config.Validate(plan.Inputs()); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}
	if err := config.Save(flagPlan, plan); err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", flagPlan)
	fmt.Println("  Run `firecast setup` anytime to reconfigure, or edit the file directly")
	fmt.Println("  for salary upgrades, variable saving rates, the salary cap,")
	fmt.Println("  and the extra 5-year retirement expense.")
	fmt.Println()
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func validInt(min, max int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("enter a whole number")
		}
		if n < min || n > max {
			return fmt.Errorf("must be between %d and %d", min, max)
		}
		return nil
	}
}

func validFloat(min, max float64) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if v < min || v > max {
			return fmt.Errorf("must be between %g and %g", min, max)
		}
		return nil
	}
}

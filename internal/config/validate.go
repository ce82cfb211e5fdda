package config

import (
	"fmt"

	"firecast/internal/model"
)

// Validate checks plan inputs for logical consistency before any
// simulation runs. It returns a human-readable error naming the
// offending field, or nil.
func Validate(in model.PlanInputs) error {
	if in.StartingAge >= in.FinalAge {
		return fmt.Errorf("starting age (%d) must be less than final age (%d)", in.StartingAge, in.FinalAge)
	}
	if in.StartingFund < 0 {
		return fmt.Errorf("starting fund cannot be negative")
	}
	if in.StartingSalary <= 0 {
		return fmt.Errorf("starting salary must be positive")
	}
	if in.NormalizedSalaryCap < 0 {
		return fmt.Errorf("normalized salary cap cannot be negative")
	}

	if in.SavingRate < 0 || in.SavingRate > 100 {
		return fmt.Errorf("saving rate must be between 0 and 100%%")
	}
	if in.SavingsGrowth < -10 || in.SavingsGrowth > 20 {
		return fmt.Errorf("savings growth rate out of plausible range (-10%% to 20%%)")
	}
	if in.RetirementGrowth < -10 || in.RetirementGrowth > 20 {
		return fmt.Errorf("retirement growth rate out of plausible range (-10%% to 20%%)")
	}
	if in.ComfortableWithdrawalRate < 2 || in.ComfortableWithdrawalRate > 10 {
		return fmt.Errorf("comfortable withdrawal rate must be between 2 and 10%%")
	}

	if in.RaiseRate < 0 {
		return fmt.Errorf("raise rate must be non-negative")
	}
	if in.EmergencyFund < 0 || in.EmergencyFund > 50 {
		return fmt.Errorf("emergency fund expenditure must be between 0 and 50%% of income")
	}

	for _, u := range in.SalaryUpgrades {
		if u.Age < in.StartingAge || u.Age > in.FinalAge {
			return fmt.Errorf("salary upgrade age %d must be between starting age and final age", u.Age)
		}
		if u.Kind != model.UpgradeRaise && u.Kind != model.UpgradeAbsolute {
			return fmt.Errorf("salary upgrade kind %q must be %q or %q", u.Kind, model.UpgradeRaise, model.UpgradeAbsolute)
		}
		if u.Value <= 0 {
			return fmt.Errorf("salary upgrade value must be positive")
		}
	}
	for _, r := range in.VariableSavingRates {
		if r.Rate < 0 || r.Rate > 100 {
			return fmt.Errorf("scheduled saving rate at age %d must be between 0 and 100%%", r.Age)
		}
	}

	if in.RetirementSpend <= 0 {
		return fmt.Errorf("retirement spend must be positive")
	}
	if in.ExtraExpense < 0 {
		return fmt.Errorf("extra expense cannot be negative")
	}
	if in.RetirementTax < 0 || in.RetirementTax > 50 {
		return fmt.Errorf("retirement tax rate must be between 0 and 50%%")
	}
	if in.Inflation < 0 || in.Inflation > 10 {
		return fmt.Errorf("inflation rate must be between 0 and 10%%")
	}

	switch in.RetirementMode {
	case model.ModeExtraYears:
		if in.ExtraYearsOfWork < 0 {
			return fmt.Errorf("extra years of work must be non-negative")
		}
	case model.ModeMinimumAge:
		if in.MinRetirementAge < in.StartingAge {
			return fmt.Errorf("minimum retirement age (%d) must be at least the starting age (%d)", in.MinRetirementAge, in.StartingAge)
		}
	default:
		return fmt.Errorf("retirement mode %q must be %q or %q", in.RetirementMode, model.ModeExtraYears, model.ModeMinimumAge)
	}

	return nil
}

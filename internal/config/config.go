// Package config loads and saves the firecast plan file and validates
// plan inputs before any simulation runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"firecast/internal/model"
	"firecast/internal/schedule"
)

// Plan is the on-disk TOML shape of a retirement plan. Schedules are
// stored in their text grammar ("age,kind,value;..." and "age,rate;...")
// and parsed into structured events when converting to PlanInputs.
type Plan struct {
	Profile     ProfileSection     `toml:"profile"`
	Savings     SavingsSection     `toml:"savings"`
	Income      IncomeSection      `toml:"income"`
	Retirement  RetirementSection  `toml:"retirement"`
	Assumptions AssumptionsSection `toml:"assumptions"`
	Appearance  AppearanceSection  `toml:"appearance"`
}

// ProfileSection holds the basic ages and starting balances.
type ProfileSection struct {
	StartingAge         int     `toml:"starting_age"`
	FinalAge            int     `toml:"final_age"`
	StartingFund        float64 `toml:"starting_fund"`
	StartingSalary      float64 `toml:"starting_salary"`
	NormalizedSalaryCap float64 `toml:"normalized_salary_cap,omitempty"`
}

// SavingsSection holds saving and growth assumptions.
type SavingsSection struct {
	SavingRate                float64 `toml:"saving_rate"`
	SavingsGrowth             float64 `toml:"savings_growth"`
	RetirementGrowth          float64 `toml:"retirement_growth"`
	ComfortableWithdrawalRate float64 `toml:"comfortable_withdrawal_rate"`
	VariableSavingRates       string  `toml:"variable_saving_rates,omitempty"`
}

// IncomeSection holds salary progression settings.
type IncomeSection struct {
	RaiseRate      float64 `toml:"raise_rate"`
	EmergencyFund  float64 `toml:"emergency_fund"`
	SalaryUpgrades string  `toml:"salary_upgrades,omitempty"`
}

// RetirementSection holds retirement timing and spending settings.
type RetirementSection struct {
	Mode             string  `toml:"mode"`
	ExtraYearsOfWork int     `toml:"extra_years_of_work,omitempty"`
	MinRetirementAge int     `toml:"min_retirement_age,omitempty"`
	RetirementSpend  float64 `toml:"retirement_spend"`
	ExtraExpense     float64 `toml:"extra_expense,omitempty"`
	RetirementTax    float64 `toml:"retirement_tax"`
}

// AssumptionsSection holds economy-wide assumptions.
type AssumptionsSection struct {
	Inflation float64 `toml:"inflation"`
}

// AppearanceSection holds TUI theme settings.
type AppearanceSection struct {
	Theme string `toml:"theme,omitempty"`
}

// Default returns a plan with the stock assumptions: a 30-year-old
// saving a quarter of a $100k salary.
func Default() Plan {
	return Plan{
		Profile: ProfileSection{
			StartingAge:    30,
			FinalAge:       90,
			StartingFund:   50000,
			StartingSalary: 100000,
		},
		Savings: SavingsSection{
			SavingRate:                25,
			SavingsGrowth:             7,
			RetirementGrowth:          5,
			ComfortableWithdrawalRate: 4,
		},
		Income: IncomeSection{
			RaiseRate:     3,
			EmergencyFund: 2.5,
		},
		Retirement: RetirementSection{
			Mode:            string(model.ModeExtraYears),
			RetirementSpend: 60000,
			ExtraExpense:    5000,
			RetirementTax:   9,
		},
		Assumptions: AssumptionsSection{
			Inflation: 2,
		},
		Appearance: AppearanceSection{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecast")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "firecast")
}

// DefaultPath returns the default plan file path.
func DefaultPath() string {
	return filepath.Join(Dir(), "plan.toml")
}

// Exists reports whether a plan file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads a plan file, returning the defaults if it doesn't exist.
func Load(path string) (Plan, error) {
	plan := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return plan, nil
		}
		return plan, fmt.Errorf("reading plan: %w", err)
	}

	if err := toml.Unmarshal(data, &plan); err != nil {
		return plan, fmt.Errorf("parsing plan: %w", err)
	}
	return plan, nil
}

// Save writes the plan to disk, creating the directory as needed.
func Save(path string, plan Plan) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating plan dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating plan file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	if err := enc.Encode(plan); err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	return nil
}

// Inputs converts the plan file into engine inputs, parsing the
// schedule strings.
func (p Plan) Inputs() model.PlanInputs {
	return model.PlanInputs{
		StartingAge:         p.Profile.StartingAge,
		FinalAge:            p.Profile.FinalAge,
		StartingFund:        p.Profile.StartingFund,
		StartingSalary:      p.Profile.StartingSalary,
		NormalizedSalaryCap: p.Profile.NormalizedSalaryCap,

		SavingRate:                p.Savings.SavingRate,
		SavingsGrowth:             p.Savings.SavingsGrowth,
		RetirementGrowth:          p.Savings.RetirementGrowth,
		ComfortableWithdrawalRate: p.Savings.ComfortableWithdrawalRate,
		VariableSavingRates:       schedule.ParseSavingsRates(p.Savings.VariableSavingRates),

		RaiseRate:      p.Income.RaiseRate,
		EmergencyFund:  p.Income.EmergencyFund,
		SalaryUpgrades: schedule.ParseSalaryUpgrades(p.Income.SalaryUpgrades),

		RetirementMode:   model.RetirementMode(p.Retirement.Mode),
		ExtraYearsOfWork: p.Retirement.ExtraYearsOfWork,
		MinRetirementAge: p.Retirement.MinRetirementAge,
		RetirementSpend:  p.Retirement.RetirementSpend,
		ExtraExpense:     p.Retirement.ExtraExpense,
		RetirementTax:    p.Retirement.RetirementTax,

		Inflation: p.Assumptions.Inflation,
	}
}

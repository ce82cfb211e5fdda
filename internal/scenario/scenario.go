// Package scenario reruns the projection engine under systematically
// perturbed inputs: single-variable sensitivity tests and a banded
// saving-rate sweep.
package scenario

import (
	"fmt"

	"firecast/internal/engine"
	"firecast/internal/model"
)

// Variables lists the plan fields accepted by Sensitivity.
var Variables = []string{
	"inflation",
	"savings_growth",
	"retirement_growth",
	"saving_rate",
	"raise_rate",
	"emergency_fund",
	"comfortable_withdrawal_rate",
	"retirement_tax",
	"retirement_spend",
	"extra_expense",
	"starting_fund",
	"starting_salary",
}

// Sensitivity projects the plan with the named variable shifted by
// delta, leaving every other input untouched. The caller compares the
// result against its own base projection.
func Sensitivity(in model.PlanInputs, variable string, delta float64) (model.Projection, error) {
	mod := in
	switch variable {
	case "inflation":
		mod.Inflation += delta
	case "savings_growth":
		mod.SavingsGrowth += delta
	case "retirement_growth":
		mod.RetirementGrowth += delta
	case "saving_rate":
		mod.SavingRate += delta
	case "raise_rate":
		mod.RaiseRate += delta
	case "emergency_fund":
		mod.EmergencyFund += delta
	case "comfortable_withdrawal_rate":
		mod.ComfortableWithdrawalRate += delta
	case "retirement_tax":
		mod.RetirementTax += delta
	case "retirement_spend":
		mod.RetirementSpend += delta
	case "extra_expense":
		mod.ExtraExpense += delta
	case "starting_fund":
		mod.StartingFund += delta
	case "starting_salary":
		mod.StartingSalary += delta
	default:
		return model.Projection{}, fmt.Errorf("unknown sensitivity variable %q", variable)
	}
	return engine.Project(mod), nil
}

// DefaultSweepDeltas is the banded sweep used by the CLI: whole-percent
// shifts from -5 to +5.
func DefaultSweepDeltas() []int {
	deltas := make([]int, 0, 11)
	for d := -5; d <= 5; d++ {
		deltas = append(deltas, d)
	}
	return deltas
}

// SavingRateSweep projects the plan once per delta, shifting the
// default saving rate and every scheduled rate by the same amount,
// each clamped to [0, 100].
func SavingRateSweep(in model.PlanInputs, deltas []int) []model.SweepRow {
	rows := make([]model.SweepRow, 0, len(deltas))
	for _, d := range deltas {
		mod := in
		mod.SavingRate = clampRate(in.SavingRate + float64(d))
		if len(in.VariableSavingRates) > 0 {
			adjusted := make([]model.ScheduledRate, len(in.VariableSavingRates))
			for i, r := range in.VariableSavingRates {
				adjusted[i] = model.ScheduledRate{Age: r.Age, Rate: clampRate(r.Rate + float64(d))}
			}
			mod.VariableSavingRates = adjusted
		}

		p := engine.Project(mod)
		rows = append(rows, model.SweepRow{
			Delta:         d,
			SavingRate:    mod.SavingRate,
			RetirementAge: p.RetirementAge,
			FinalNetWorth: p.FinalNetWorth(),
		})
	}
	return rows
}

func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 100 {
		return 100
	}
	return r
}

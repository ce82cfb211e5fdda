// Package model defines domain types for firecast plans and projections.
package model

// RetirementMode selects how the retirement age is determined.
type RetirementMode string

const (
	// ModeExtraYears retires a fixed number of years after the plan is
	// financially ready.
	ModeExtraYears RetirementMode = "extra-years"
	// ModeMinimumAge retires at financial readiness, but never before a
	// configured minimum age.
	ModeMinimumAge RetirementMode = "min-age"
)

// UpgradeKind distinguishes the two salary upgrade event types.
type UpgradeKind string

const (
	// UpgradeRaise multiplies the current salary by (1 + value/100).
	UpgradeRaise UpgradeKind = "raise"
	// UpgradeAbsolute resets the current salary to value dollars.
	UpgradeAbsolute UpgradeKind = "absolute"
)

// SalaryUpgrade is a scheduled one-time change to salary progression.
type SalaryUpgrade struct {
	Age   int
	Kind  UpgradeKind
	Value float64
}

// ScheduledRate is a saving rate that takes effect at a given age and
// stays in effect until a later scheduled age overrides it.
type ScheduledRate struct {
	Age  int
	Rate float64
}

// PlanInputs holds every assumption for one simulation run. All rate
// fields are in percent units (7.0 means 7%); the engine divides by 100
// before compounding. A PlanInputs value is never mutated after
// construction; layers that vary assumptions work on copies.
type PlanInputs struct {
	StartingAge int
	FinalAge    int

	StartingFund   float64
	StartingSalary float64

	// NormalizedSalaryCap caps pre-retirement salary in starting-age
	// dollars. Zero disables the cap.
	NormalizedSalaryCap float64

	// SavingRate is the default percent of salary saved each year when
	// no scheduled rate applies.
	SavingRate          float64
	SavingsGrowth       float64
	RetirementGrowth    float64
	RaiseRate           float64
	EmergencyFund       float64
	SalaryUpgrades      []SalaryUpgrade
	VariableSavingRates []ScheduledRate

	// RetirementSpend is the target annual retirement spending in
	// starting-age dollars.
	RetirementSpend float64
	// ExtraExpense is a one-time 5-year-equivalent amount spread evenly
	// over every retirement year.
	ExtraExpense  float64
	RetirementTax float64

	Inflation                 float64
	ComfortableWithdrawalRate float64

	RetirementMode   RetirementMode
	ExtraYearsOfWork int
	MinRetirementAge int
}

// Years returns the projection horizon length in years (inclusive of
// both endpoints).
func (in PlanInputs) Years() int {
	return in.FinalAge - in.StartingAge + 1
}

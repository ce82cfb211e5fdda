package engine

import (
	"math"
	"testing"

	"firecast/internal/model"
)

// basePlan is the reference scenario used across engine tests: retires
// well before the final age under default assumptions.
func basePlan() model.PlanInputs {
	return model.PlanInputs{
		StartingAge:               30,
		FinalAge:                  90,
		StartingFund:              50000,
		StartingSalary:            100000,
		SavingRate:                25,
		SavingsGrowth:             7,
		RetirementGrowth:          5,
		ComfortableWithdrawalRate: 4,
		RaiseRate:                 3,
		EmergencyFund:             0,
		RetirementSpend:           60000,
		ExtraExpense:              0,
		RetirementTax:             0,
		Inflation:                 2,
		RetirementMode:            model.ModeExtraYears,
	}
}

func TestProject_SeriesLengths(t *testing.T) {
	p := Project(basePlan())

	want := 90 - 30 + 1
	if len(p.Ages) != want {
		t.Fatalf("len(Ages) = %d, want %d", len(p.Ages), want)
	}
	for name, n := range map[string]int{
		"Salary":   len(p.Salary),
		"Income":   len(p.Income),
		"Expenses": len(p.Expenses),
		"NetWorth": len(p.NetWorth),
	} {
		if n != want {
			t.Errorf("len(%s) = %d, want %d", name, n, want)
		}
	}
	if p.Ages[0] != 30 || p.Ages[len(p.Ages)-1] != 90 {
		t.Errorf("Ages span %d..%d, want 30..90", p.Ages[0], p.Ages[len(p.Ages)-1])
	}
}

func TestProject_RetirementAgeBounds(t *testing.T) {
	plans := []model.PlanInputs{
		basePlan(),
		func() model.PlanInputs {
			in := basePlan()
			in.SavingRate = 0
			in.SavingsGrowth = 0
			return in
		}(),
		func() model.PlanInputs {
			in := basePlan()
			in.RetirementMode = model.ModeMinimumAge
			in.MinRetirementAge = 200 // past final age, must clamp
			return in
		}(),
		func() model.PlanInputs {
			in := basePlan()
			in.ExtraYearsOfWork = 500
			return in
		}(),
	}

	for i, in := range plans {
		p := Project(in)
		if p.RetirementAge < in.StartingAge || p.RetirementAge > in.FinalAge {
			t.Errorf("plan %d: RetirementAge = %d outside [%d, %d]",
				i, p.RetirementAge, in.StartingAge, in.FinalAge)
		}
		if p.YearsToRetirement != p.RetirementAge-in.StartingAge {
			t.Errorf("plan %d: YearsToRetirement = %d, want %d",
				i, p.YearsToRetirement, p.RetirementAge-in.StartingAge)
		}
	}
}

func TestProject_ReadyBeforeFinalAge(t *testing.T) {
	// With zero extra years, the retirement age is exactly the
	// financial readiness age, strictly inside the horizon.
	p := Project(basePlan())

	if p.RetirementAge <= 30 || p.RetirementAge >= 90 {
		t.Fatalf("RetirementAge = %d, want strictly between 30 and 90", p.RetirementAge)
	}

	// Adding extra working years shifts retirement out by the same
	// amount (readiness itself is unchanged).
	in := basePlan()
	in.ExtraYearsOfWork = 3
	shifted := Project(in)
	if shifted.RetirementAge != p.RetirementAge+3 {
		t.Errorf("with 3 extra years RetirementAge = %d, want %d",
			shifted.RetirementAge, p.RetirementAge+3)
	}
}

func TestProject_MinimumRetirementAge(t *testing.T) {
	in := basePlan()
	in.RetirementMode = model.ModeMinimumAge
	in.MinRetirementAge = 70

	p := Project(in)
	if p.RetirementAge < 70 {
		t.Errorf("RetirementAge = %d, want >= 70", p.RetirementAge)
	}

	// A minimum below the readiness age changes nothing.
	ready := Project(basePlan()).RetirementAge
	in.MinRetirementAge = 31
	p = Project(in)
	if p.RetirementAge != ready {
		t.Errorf("RetirementAge = %d, want readiness age %d", p.RetirementAge, ready)
	}
}

func TestProject_NeverReady(t *testing.T) {
	in := basePlan()
	in.SavingRate = 0
	in.SavingsGrowth = 0
	in.StartingFund = 0

	p := Project(in)
	if p.RetirementAge != in.FinalAge {
		t.Errorf("RetirementAge = %d, want final age %d", p.RetirementAge, in.FinalAge)
	}
	if p.AvgWithdrawalRate != 0 {
		t.Errorf("AvgWithdrawalRate = %v, want 0 when retiring at final age", p.AvgWithdrawalRate)
	}
}

func TestProject_FirstYearIncludesContribution(t *testing.T) {
	in := basePlan()
	p := Project(in)

	// NetWorth[0] is one compounding+savings step past the starting
	// fund, not the raw fund.
	want := 50000*1.07 + 100000*0.25
	if math.Abs(p.NetWorth[0]-want) > 1e-9 {
		t.Errorf("NetWorth[0] = %v, want %v", p.NetWorth[0], want)
	}
	if p.Expenses[0] != 100000-25000 {
		t.Errorf("Expenses[0] = %v, want 75000", p.Expenses[0])
	}
}

func TestProject_SalaryWalk(t *testing.T) {
	in := basePlan()
	in.SalaryUpgrades = []model.SalaryUpgrade{
		{Age: 32, Kind: model.UpgradeRaise, Value: 10},
		{Age: 35, Kind: model.UpgradeAbsolute, Value: 150000},
	}

	p := Project(in)

	if p.Salary[0] != 100000 {
		t.Errorf("Salary[0] = %v, want starting salary verbatim", p.Salary[0])
	}
	// Default raise in year 1.
	if math.Abs(p.Salary[1]-103000) > 1e-9 {
		t.Errorf("Salary[1] = %v, want 103000", p.Salary[1])
	}
	// Upgrade replaces the default raise at age 32.
	wantAt32 := 103000.0 * 1.10
	if math.Abs(p.Salary[2]-wantAt32) > 1e-9 {
		t.Errorf("Salary[2] = %v, want %v (10%% upgrade, no base raise)", p.Salary[2], wantAt32)
	}
	// Absolute reset at age 35.
	if math.Abs(p.Salary[5]-150000) > 1e-9 {
		t.Errorf("Salary[5] = %v, want 150000", p.Salary[5])
	}
}

func TestProject_DuplicateUpgradeAgeLastWins(t *testing.T) {
	in := basePlan()
	in.SalaryUpgrades = []model.SalaryUpgrade{
		{Age: 31, Kind: model.UpgradeAbsolute, Value: 110000},
		{Age: 31, Kind: model.UpgradeAbsolute, Value: 120000},
	}

	p := Project(in)
	if p.Salary[1] != 120000 {
		t.Errorf("Salary[1] = %v, want 120000 (last upgrade at age wins)", p.Salary[1])
	}
}

func TestProject_SalaryCap(t *testing.T) {
	in := basePlan()
	in.NormalizedSalaryCap = 100000 // cap at the starting salary, in real dollars
	in.RaiseRate = 10

	p := Project(in)
	for i := 1; i < 10; i++ {
		nominalCap := 100000 * math.Pow(1.02, float64(i))
		if p.Salary[i] > nominalCap+1e-9 {
			t.Errorf("Salary[%d] = %v exceeds inflation-adjusted cap %v", i, p.Salary[i], nominalCap)
		}
	}
}

func TestProject_VariableSavingRates(t *testing.T) {
	in := basePlan()
	in.VariableSavingRates = []model.ScheduledRate{{Age: 31, Rate: 50}}

	p := Project(in)
	// Year 1 saves at the scheduled 50% of the prior year's salary.
	if math.Abs(p.Expenses[1]-100000*0.5) > 1e-9 {
		t.Errorf("Expenses[1] = %v, want 50000 (50%% scheduled rate)", p.Expenses[1])
	}
	// Year 0 still uses the default rate; no scheduled age <= 30.
	if math.Abs(p.Expenses[0]-75000) > 1e-9 {
		t.Errorf("Expenses[0] = %v, want 75000 (default rate)", p.Expenses[0])
	}
}

func TestProject_SingleYearHorizon(t *testing.T) {
	in := basePlan()
	in.FinalAge = 31

	p := Project(in) // must not panic or index out of range
	if p.RetirementAge != 30 && p.RetirementAge != 31 {
		t.Errorf("RetirementAge = %d, want 30 or 31", p.RetirementAge)
	}
	if len(p.Ages) != 2 {
		t.Errorf("len(Ages) = %d, want 2", len(p.Ages))
	}

	in.FinalAge = 30 // zero-length horizon
	p = Project(in)
	if len(p.Ages) != 1 {
		t.Errorf("len(Ages) = %d, want 1", len(p.Ages))
	}
	if p.AvgWithdrawalRate != 0 {
		t.Errorf("AvgWithdrawalRate = %v, want 0", p.AvgWithdrawalRate)
	}
}

func TestProject_UntaxedWithdrawalEqualsIncome(t *testing.T) {
	// With no tax, extra expense, or emergency fund, each retirement
	// year's expense equals its income exactly.
	in := basePlan()
	p := Project(in)

	retIdx := p.RetirementAge - in.StartingAge
	for i := retIdx; i < len(p.Ages); i++ {
		if i == 0 {
			continue
		}
		if p.Expenses[i] != p.Income[i] {
			t.Errorf("year %d: Expenses = %v, Income = %v, want equal", i, p.Expenses[i], p.Income[i])
		}
	}
}

func TestProject_RetirementTaxInflatesIncome(t *testing.T) {
	in := basePlan()
	in.RetirementTax = 20

	p := Project(in)
	retIdx := p.RetirementAge - in.StartingAge
	if retIdx >= len(p.Ages)-1 {
		t.Fatal("plan unexpectedly never retires")
	}

	i := retIdx + 1
	want := p.Expenses[i] / 0.8
	if math.Abs(p.Income[i]-want) > 1e-9 {
		t.Errorf("Income[%d] = %v, want %v (expenses grossed up by 20%% tax)", i, p.Income[i], want)
	}
}

func TestProject_WithdrawalCappedBySpend(t *testing.T) {
	// A huge portfolio means the comfortable withdrawal would exceed
	// the spending target; the spend cap must bind.
	in := basePlan()
	in.StartingFund = 50_000_000

	p := Project(in)
	retIdx := p.RetirementAge - in.StartingAge
	if retIdx < 1 {
		retIdx = 1
	}
	for i := retIdx; i < len(p.Ages); i++ {
		spendCap := in.RetirementSpend * math.Pow(1.02, float64(p.Ages[i]-in.StartingAge))
		if p.Expenses[i] > spendCap+1e-6 {
			t.Errorf("year %d: Expenses = %v exceeds spend cap %v", i, p.Expenses[i], spendCap)
		}
	}
}

func TestProject_ExtraExpenseSpread(t *testing.T) {
	base := Project(basePlan())

	in := basePlan()
	in.ExtraExpense = 50000
	p := Project(in)

	retIdx := p.RetirementAge - in.StartingAge
	i := retIdx + 1
	sinceRet := p.Ages[i] - p.RetirementAge
	wantDelta := 50000.0 / 5 * math.Pow(1.02, float64(sinceRet))
	gotDelta := p.Expenses[i] - base.Expenses[i]
	if math.Abs(gotDelta-wantDelta) > 1e-6 {
		t.Errorf("extra expense delta in year %d = %v, want %v", i, gotDelta, wantDelta)
	}
}

func TestProject_InputsNotMutated(t *testing.T) {
	in := basePlan()
	in.SalaryUpgrades = []model.SalaryUpgrade{{Age: 40, Kind: model.UpgradeRaise, Value: 5}}
	in.VariableSavingRates = []model.ScheduledRate{{Age: 45, Rate: 30}}

	Project(in)

	if in.SalaryUpgrades[0].Value != 5 || in.VariableSavingRates[0].Rate != 30 {
		t.Error("Project mutated the input schedules")
	}
}

func TestRealSeries(t *testing.T) {
	in := basePlan()
	p := Project(in)

	real := RealSeries(p, p.Expenses, in.Inflation)
	if len(real) != len(p.Expenses) {
		t.Fatalf("len = %d, want %d", len(real), len(p.Expenses))
	}
	if real[0] != p.Expenses[0] {
		t.Errorf("real[0] = %v, want nominal %v (no deflation in year 0)", real[0], p.Expenses[0])
	}

	// A working-year value deflates by cumulative inflation.
	i := 5
	wantFactor := math.Pow(1.02, 5)
	if math.Abs(real[i]-p.Expenses[i]/wantFactor) > 1e-9 {
		t.Errorf("real[%d] = %v, want %v", i, real[i], p.Expenses[i]/wantFactor)
	}

	// Retirement years deflate from the retirement age, so the first
	// retirement year is nominal again.
	retIdx := p.RetirementAge - in.StartingAge
	if math.Abs(real[retIdx]-p.Expenses[retIdx]) > 1e-9 {
		t.Errorf("real[%d] = %v, want nominal %v at retirement", retIdx, real[retIdx], p.Expenses[retIdx])
	}
}

func BenchmarkProject(b *testing.B) {
	in := basePlan()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Project(in)
	}
}

package scenario

import (
	"testing"

	"firecast/internal/engine"
	"firecast/internal/model"
)

func testPlan() model.PlanInputs {
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
		RetirementSpend:           60000,
		Inflation:                 2,
		RetirementMode:            model.ModeExtraYears,
	}
}

func TestSensitivity_ShiftsVariable(t *testing.T) {
	base := engine.Project(testPlan())

	// A higher saving rate can only retire the plan sooner or at the
	// same age, never later.
	p, err := Sensitivity(testPlan(), "saving_rate", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RetirementAge > base.RetirementAge {
		t.Errorf("saving_rate +10: RetirementAge = %d, want <= base %d",
			p.RetirementAge, base.RetirementAge)
	}

	// A higher spend target delays retirement (or leaves it unchanged).
	p, err = Sensitivity(testPlan(), "retirement_spend", 40000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.RetirementAge < base.RetirementAge {
		t.Errorf("retirement_spend +40000: RetirementAge = %d, want >= base %d",
			p.RetirementAge, base.RetirementAge)
	}
}

func TestSensitivity_ZeroDeltaMatchesBase(t *testing.T) {
	base := engine.Project(testPlan())
	for _, v := range Variables {
		p, err := Sensitivity(testPlan(), v, 0)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", v, err)
		}
		if p.RetirementAge != base.RetirementAge {
			t.Errorf("%s with zero delta: RetirementAge = %d, want %d",
				v, p.RetirementAge, base.RetirementAge)
		}
		if p.FinalNetWorth() != base.FinalNetWorth() {
			t.Errorf("%s with zero delta: FinalNetWorth = %v, want %v",
				v, p.FinalNetWorth(), base.FinalNetWorth())
		}
	}
}

func TestSensitivity_UnknownVariable(t *testing.T) {
	_, err := Sensitivity(testPlan(), "shoe_size", 1)
	if err == nil {
		t.Fatal("expected error for unknown variable")
	}
}

func TestSensitivity_DoesNotMutateBase(t *testing.T) {
	in := testPlan()
	if _, err := Sensitivity(in, "inflation", 3); err != nil {
		t.Fatal(err)
	}
	if in.Inflation != 2 {
		t.Errorf("base inflation changed to %v", in.Inflation)
	}
}

func TestSavingRateSweep(t *testing.T) {
	in := testPlan()
	rows := SavingRateSweep(in, DefaultSweepDeltas())

	if len(rows) != 11 {
		t.Fatalf("len(rows) = %d, want 11", len(rows))
	}
	for i, row := range rows {
		wantDelta := -5 + i
		if row.Delta != wantDelta {
			t.Errorf("row %d: Delta = %d, want %d", i, row.Delta, wantDelta)
		}
		if row.SavingRate != in.SavingRate+float64(wantDelta) {
			t.Errorf("row %d: SavingRate = %v, want %v", i, row.SavingRate, in.SavingRate+float64(wantDelta))
		}
		if row.RetirementAge < in.StartingAge || row.RetirementAge > in.FinalAge {
			t.Errorf("row %d: RetirementAge = %d out of bounds", i, row.RetirementAge)
		}
	}

	// Retirement age is monotonically non-increasing as the saving
	// rate climbs.
	for i := 1; i < len(rows); i++ {
		if rows[i].RetirementAge > rows[i-1].RetirementAge {
			t.Errorf("retirement age rose from %d to %d as saving rate increased",
				rows[i-1].RetirementAge, rows[i].RetirementAge)
		}
	}
}

func TestSavingRateSweep_Clamping(t *testing.T) {
	in := testPlan()
	in.SavingRate = 3
	in.VariableSavingRates = []model.ScheduledRate{{Age: 40, Rate: 98}}

	rows := SavingRateSweep(in, []int{-5, 5})
	if rows[0].SavingRate != 0 {
		t.Errorf("SavingRate = %v, want clamped to 0", rows[0].SavingRate)
	}
	if rows[1].SavingRate != 8 {
		t.Errorf("SavingRate = %v, want 8", rows[1].SavingRate)
	}

	// Scheduled rates clamp independently; the original schedule is
	// untouched.
	if in.VariableSavingRates[0].Rate != 98 {
		t.Errorf("input schedule mutated: rate = %v", in.VariableSavingRates[0].Rate)
	}
}

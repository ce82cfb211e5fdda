package montecarlo

import (
	"math"
	"reflect"
	"testing"

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

func TestSimulate_Aggregates(t *testing.T) {
	res := Simulate(testPlan(), Options{Runs: 400, Seed: 1})

	if res.Runs != 400 {
		t.Errorf("Runs = %d, want 400", res.Runs)
	}
	if len(res.AllNetWorths) != 400 {
		t.Errorf("len(AllNetWorths) = %d, want 400", len(res.AllNetWorths))
	}
	if res.SuccessRate < 0 || res.SuccessRate > 1 {
		t.Errorf("SuccessRate = %v, want within [0, 1]", res.SuccessRate)
	}
	if res.Percentile10NetWorth > res.MedianNetWorth {
		t.Errorf("p10 %v > median %v", res.Percentile10NetWorth, res.MedianNetWorth)
	}
}

func TestSimulate_SeedReproducible(t *testing.T) {
	a := Simulate(testPlan(), Options{Runs: 100, Seed: 42})
	b := Simulate(testPlan(), Options{Runs: 100, Seed: 42})

	if !reflect.DeepEqual(a.AllNetWorths, b.AllNetWorths) {
		t.Error("same seed produced different trial outcomes")
	}
	if a.SuccessRate != b.SuccessRate {
		t.Errorf("SuccessRate %v != %v for same seed", a.SuccessRate, b.SuccessRate)
	}

	// Worker count must not affect results for a fixed seed.
	serial := Simulate(testPlan(), Options{Runs: 100, Seed: 42, Workers: 1})
	if !reflect.DeepEqual(a.AllNetWorths, serial.AllNetWorths) {
		t.Error("worker count changed seeded results")
	}
}

func TestSimulate_DifferentSeedsDiffer(t *testing.T) {
	a := Simulate(testPlan(), Options{Runs: 50, Seed: 1})
	b := Simulate(testPlan(), Options{Runs: 50, Seed: 2})

	if reflect.DeepEqual(a.AllNetWorths, b.AllNetWorths) {
		t.Error("different seeds produced identical outcomes")
	}
}

func TestSimulate_DefaultRuns(t *testing.T) {
	res := Simulate(testPlan(), Options{Seed: 1})
	if res.Runs != DefaultRuns {
		t.Errorf("Runs = %d, want default %d", res.Runs, DefaultRuns)
	}
}

func TestSimulate_ZeroRatesAreDeterministic(t *testing.T) {
	// All-zero rates have zero variance, so every trial is the
	// deterministic projection.
	in := testPlan()
	in.SavingsGrowth = 0
	in.RetirementGrowth = 0
	in.Inflation = 0

	res := Simulate(in, Options{Runs: 20, Seed: 7})
	first := res.AllNetWorths[0]
	for i, v := range res.AllNetWorths {
		if v != first {
			t.Fatalf("trial %d = %v, want %v (no variance with zero rates)", i, v, first)
		}
	}
}

func TestPercentile(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 10},
		{100, 40},
		{50, 25},   // interpolated between 20 and 30
		{10, 13},   // rank 0.3 -> 10 + 0.3*10
		{25, 17.5}, // rank 0.75
	}
	for _, tt := range tests {
		if got := Percentile(values, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Percentile(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got := Percentile(nil, 50); got != 0 {
		t.Errorf("Percentile(nil) = %v, want 0", got)
	}
	if got := Percentile([]float64{7}, 50); got != 7 {
		t.Errorf("Percentile(single) = %v, want 7", got)
	}
}

func TestPercentile_DoesNotMutate(t *testing.T) {
	values := []float64{30, 10, 20}
	Percentile(values, 50)
	if values[0] != 30 || values[1] != 10 || values[2] != 20 {
		t.Error("Percentile sorted the caller's slice")
	}
}

func BenchmarkSimulate(b *testing.B) {
	in := testPlan()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Simulate(in, Options{Runs: 100, Seed: 1})
	}
}

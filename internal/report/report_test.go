package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"firecast/internal/engine"
	"firecast/internal/model"
	"firecast/internal/montecarlo"
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
		SalaryUpgrades:            []model.SalaryUpgrade{{Age: 35, Kind: model.UpgradeRaise, Value: 10}},
	}
}

func TestWrite_Sections(t *testing.T) {
	in := testPlan()
	p := engine.Project(in)
	mc := montecarlo.Simulate(in, montecarlo.Options{Runs: 50, Seed: 1})

	var b strings.Builder
	if err := Write(&b, in, p, mc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()

	for _, want := range []string{
		"INPUT ASSUMPTIONS",
		"PROJECTED OUTCOMES",
		"MONTE CARLO SIMULATION",
		"NOTES",
		"Retirement age:",
		"Success rate:",
		"35,raise,10",
		"no social security",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestWrite_SkipsUnsetOptionals(t *testing.T) {
	in := testPlan()
	in.SalaryUpgrades = nil
	p := engine.Project(in)

	var b strings.Builder
	if err := Write(&b, in, p, model.MonteCarloResult{}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := b.String()

	if strings.Contains(out, "Salary upgrades") {
		t.Error("report lists salary upgrades when none are configured")
	}
	if !strings.Contains(out, "(not run)") {
		t.Error("report should mark Monte Carlo as not run")
	}
}

func TestExport(t *testing.T) {
	in := testPlan()
	p := engine.Project(in)
	path := filepath.Join(t.TempDir(), "report.txt")

	if err := Export(path, in, p, model.MonteCarloResult{}); err != nil {
		t.Fatalf("Export: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading exported report: %v", err)
	}
	if !strings.Contains(string(data), "firecast simulation report") {
		t.Error("exported file missing header")
	}
}

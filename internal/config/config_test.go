package config

import (
	"os"
	"path/filepath"
	"testing"

	"firecast/internal/model"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	plan, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan.Profile.StartingAge != 30 || plan.Savings.SavingRate != 25 {
		t.Errorf("missing file did not yield defaults: %+v", plan.Profile)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")

	plan := Default()
	plan.Profile.StartingAge = 25
	plan.Profile.FinalAge = 85
	plan.Income.SalaryUpgrades = "30,raise,10;35,absolute,150000"
	plan.Savings.VariableSavingRates = "40,20"
	plan.Retirement.Mode = string(model.ModeMinimumAge)
	plan.Retirement.MinRetirementAge = 55

	if err := Save(path, plan); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != plan {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, plan)
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed plan file")
	}
}

func TestInputs_ParsesSchedules(t *testing.T) {
	plan := Default()
	plan.Income.SalaryUpgrades = "30,raise,10;bad;35,absolute,150000"
	plan.Savings.VariableSavingRates = "40,20.5"

	in := plan.Inputs()
	if len(in.SalaryUpgrades) != 2 {
		t.Fatalf("len(SalaryUpgrades) = %d, want 2 (malformed segment dropped)", len(in.SalaryUpgrades))
	}
	if in.SalaryUpgrades[1].Kind != model.UpgradeAbsolute {
		t.Errorf("Kind = %q, want absolute", in.SalaryUpgrades[1].Kind)
	}
	if len(in.VariableSavingRates) != 1 || in.VariableSavingRates[0].Rate != 20.5 {
		t.Errorf("VariableSavingRates = %v, want [{40 20.5}]", in.VariableSavingRates)
	}
}

func TestValidate(t *testing.T) {
	valid := Default().Inputs()
	if err := Validate(valid); err != nil {
		t.Fatalf("default plan should validate, got: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*model.PlanInputs)
	}{
		{"ages inverted", func(in *model.PlanInputs) { in.FinalAge = in.StartingAge }},
		{"negative fund", func(in *model.PlanInputs) { in.StartingFund = -1 }},
		{"zero salary", func(in *model.PlanInputs) { in.StartingSalary = 0 }},
		{"saving rate above 100", func(in *model.PlanInputs) { in.SavingRate = 101 }},
		{"savings growth implausible", func(in *model.PlanInputs) { in.SavingsGrowth = 25 }},
		{"retirement growth implausible", func(in *model.PlanInputs) { in.RetirementGrowth = -11 }},
		{"withdrawal rate too low", func(in *model.PlanInputs) { in.ComfortableWithdrawalRate = 1 }},
		{"negative raise", func(in *model.PlanInputs) { in.RaiseRate = -1 }},
		{"emergency fund above 50", func(in *model.PlanInputs) { in.EmergencyFund = 51 }},
		{"upgrade age out of range", func(in *model.PlanInputs) {
			in.SalaryUpgrades = []model.SalaryUpgrade{{Age: 20, Kind: model.UpgradeRaise, Value: 5}}
		}},
		{"upgrade value non-positive", func(in *model.PlanInputs) {
			in.SalaryUpgrades = []model.SalaryUpgrade{{Age: 40, Kind: model.UpgradeRaise, Value: 0}}
		}},
		{"scheduled rate out of range", func(in *model.PlanInputs) {
			in.VariableSavingRates = []model.ScheduledRate{{Age: 40, Rate: 150}}
		}},
		{"zero retirement spend", func(in *model.PlanInputs) { in.RetirementSpend = 0 }},
		{"tax above 50", func(in *model.PlanInputs) { in.RetirementTax = 60 }},
		{"inflation above 10", func(in *model.PlanInputs) { in.Inflation = 12 }},
		{"negative extra years", func(in *model.PlanInputs) { in.ExtraYearsOfWork = -1 }},
		{"min age below start", func(in *model.PlanInputs) {
			in.RetirementMode = model.ModeMinimumAge
			in.MinRetirementAge = 20
		}},
		{"unknown mode", func(in *model.PlanInputs) { in.RetirementMode = "asap" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Default().Inputs()
			tt.mutate(&in)
			if err := Validate(in); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

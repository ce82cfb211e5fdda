// Package engine runs the deterministic year-by-year retirement
// projection: salary progression, accumulation, the retirement-age
// decision, and the withdrawal phase.
package engine

import (
	"math"

	"firecast/internal/model"
	"firecast/internal/schedule"
)

// Project simulates a plan from starting age to final age and returns
// the full time series plus the decided retirement age.
//
// The projection runs in two phases. Phase A applies working-year
// economics through the whole horizon to find the first age at which
// the comfortable withdrawal against net worth covers the
// inflation-adjusted retirement spend. The retirement mode turns that
// readiness age into the actual retirement age. Phase B then replays
// the walk, switching to withdrawal economics once the retirement age
// is reached.
func Project(in model.PlanInputs) model.Projection {
	years := in.Years()
	if years < 1 {
		return model.Projection{RetirementAge: in.StartingAge}
	}

	p := model.Projection{
		Ages:     make([]int, years),
		Salary:   make([]float64, years),
		Income:   make([]float64, years),
		Expenses: make([]float64, years),
		NetWorth: make([]float64, years),
	}
	for i := range p.Ages {
		p.Ages[i] = in.StartingAge + i
	}

	projectSalary(in, &p)

	// Phase A: working-year economics through final age.
	workingYear(in, &p, 0)
	readyAge, ready := readiness(in, p.NetWorth[0], in.StartingAge, -1, false)
	for i := 1; i < years; i++ {
		workingYear(in, &p, i)
		readyAge, ready = readiness(in, p.NetWorth[i], p.Ages[i], readyAge, ready)
	}

	p.RetirementAge = decideRetirementAge(in, readyAge, ready)
	p.YearsToRetirement = p.RetirementAge - in.StartingAge

	// Phase B: working years before the retirement age are identical to
	// Phase A, so only the retirement span needs replaying.
	firstRet := p.RetirementAge - in.StartingAge
	if firstRet < 1 {
		firstRet = 1 // year 0 is always the initial working-year step
	}
	if firstRet < years {
		retirementSpan(in, &p, firstRet)
	}

	p.AvgWithdrawalRate = avgWithdrawalRate(in, p)
	return p
}

// projectSalary fills the salary series. Year 0 carries the starting
// salary verbatim; later years apply either the scheduled upgrade for
// that age or the default annual raise, then the inflation-adjusted
// salary cap when one is configured.
func projectSalary(in model.PlanInputs, p *model.Projection) {
	upgrades := make(map[int]model.SalaryUpgrade, len(in.SalaryUpgrades))
	for _, u := range in.SalaryUpgrades {
		upgrades[u.Age] = u // duplicate ages: last event wins
	}

	cur := in.StartingSalary
	p.Salary[0] = cur

	for i := 1; i < len(p.Ages); i++ {
		age := p.Ages[i]
		if u, ok := upgrades[age]; ok {
			switch u.Kind {
			case model.UpgradeRaise:
				cur *= 1 + u.Value/100
			case model.UpgradeAbsolute:
				cur = u.Value
			}
		} else {
			cur *= 1 + in.RaiseRate/100
		}

		if in.NormalizedSalaryCap > 0 {
			nominalCap := in.NormalizedSalaryCap * inflate(in.Inflation, age-in.StartingAge)
			if cur > nominalCap {
				cur = nominalCap
			}
		}

		p.Salary[i] = cur
	}
}

// workingYear applies the accumulation formula for year i. Year 0
// applies one compounding+savings step to the starting fund, so
// NetWorth[0] already includes first-year contributions.
func workingYear(in model.PlanInputs, p *model.Projection, i int) {
	prevWorth := in.StartingFund
	salaryBase := p.Salary[0]
	if i > 0 {
		prevWorth = p.NetWorth[i-1]
		salaryBase = p.Salary[i-1]
	}

	rate := schedule.RateAt(p.Ages[i], in.VariableSavingRates, in.SavingRate)
	savings := salaryBase * rate / 100
	emergency := salaryBase * in.EmergencyFund / 100

	p.NetWorth[i] = prevWorth*(1+in.SavingsGrowth/100) + savings - emergency
	p.Expenses[i] = salaryBase - savings
	p.Income[i] = p.Salary[i]
}

// readiness tracks the first age at which the comfortable withdrawal
// against net worth covers the retirement spend inflated to that age.
func readiness(in model.PlanInputs, netWorth float64, age, readyAge int, ready bool) (int, bool) {
	if ready {
		return readyAge, true
	}
	target := in.RetirementSpend * inflate(in.Inflation, age-in.StartingAge)
	if netWorth*in.ComfortableWithdrawalRate/100 >= target {
		return age, true
	}
	return readyAge, false
}

func decideRetirementAge(in model.PlanInputs, readyAge int, ready bool) int {
	base := in.FinalAge
	if ready {
		base = readyAge
	}

	var age int
	switch in.RetirementMode {
	case model.ModeMinimumAge:
		age = base
		if in.MinRetirementAge > age {
			age = in.MinRetirementAge
		}
	default: // extra years of work
		age = base + in.ExtraYearsOfWork
	}

	if age > in.FinalAge {
		age = in.FinalAge
	}
	if age < in.StartingAge {
		age = in.StartingAge
	}
	return age
}

// retirementSpan overwrites years firstRet..end with withdrawal
// economics. The initial withdrawal is sized from the portfolio the
// year before retirement and grows with inflation, capped each year by
// the inflation-adjusted retirement spend.
func retirementSpan(in model.PlanInputs, p *model.Projection, firstRet int) {
	portfolio := p.NetWorth[firstRet-1]
	baseWithdrawal := portfolio * in.ComfortableWithdrawalRate / 100

	// Retirement tax is validated to 0-50%; treat a degenerate >=100%
	// rate as untaxed rather than dividing by zero.
	taxDenom := 1 - in.RetirementTax/100
	if taxDenom <= 0 {
		taxDenom = 1
	}

	for i := firstRet; i < len(p.Ages); i++ {
		age := p.Ages[i]
		sinceRet := age - p.RetirementAge
		factor := inflate(in.Inflation, sinceRet)

		withdrawal := math.Min(
			baseWithdrawal*factor,
			in.RetirementSpend*inflate(in.Inflation, age-in.StartingAge),
		)
		extra := in.ExtraExpense / 5 * factor
		emergency := withdrawal * in.EmergencyFund / 100

		p.Expenses[i] = withdrawal + extra + emergency
		afterTax := p.Expenses[i] / taxDenom
		p.NetWorth[i] = p.NetWorth[i-1]*(1+in.RetirementGrowth/100) - afterTax
		p.Income[i] = afterTax
	}
}

// avgWithdrawalRate reports mean retirement-year expenses as a percent
// of the portfolio in the retirement year. Retiring at the final age
// leaves no retirement span, so the rate is zero.
func avgWithdrawalRate(in model.PlanInputs, p model.Projection) float64 {
	if p.RetirementAge >= in.FinalAge {
		return 0
	}

	retIdx := p.RetirementAge - in.StartingAge
	withdrawalYears := len(p.Ages) - p.YearsToRetirement
	if withdrawalYears <= 0 || retIdx < 0 || retIdx >= len(p.NetWorth) {
		return 0
	}

	atRetirement := p.NetWorth[retIdx]
	if atRetirement <= 0 {
		return 0
	}

	var total float64
	for i := retIdx; i < len(p.Expenses); i++ {
		total += p.Expenses[i]
	}
	return total / float64(withdrawalYears) / atRetirement * 100
}

// RealSeries deflates a nominal series to starting-age dollars. Working
// years deflate by cumulative inflation from the starting age;
// retirement years deflate by inflation since the retirement age,
// matching how withdrawals are sized.
func RealSeries(p model.Projection, nominal []float64, inflation float64) []float64 {
	deflated := make([]float64, len(nominal))
	if len(nominal) == 0 {
		return deflated
	}

	factor := 1.0
	deflated[0] = nominal[0]
	for i := 1; i < len(nominal); i++ {
		if p.Ages[i] < p.RetirementAge {
			factor *= 1 + inflation/100
		} else {
			factor = inflate(inflation, p.Ages[i]-p.RetirementAge)
		}
		if factor == 0 {
			factor = 1
		}
		deflated[i] = nominal[i] / factor
	}
	return deflated
}

func inflate(ratePercent float64, years int) float64 {
	return math.Pow(1+ratePercent/100, float64(years))
}

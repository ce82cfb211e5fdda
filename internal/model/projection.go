package model

// Projection is the output of one deterministic simulation run. The
// five series are parallel and indexed by year offset from StartingAge.
type Projection struct {
	Ages     []int
	Salary   []float64
	Income   []float64
	Expenses []float64
	NetWorth []float64

	RetirementAge     int
	YearsToRetirement int
	// AvgWithdrawalRate is the mean retirement-year expense as a percent
	// of the portfolio at retirement. Zero when there are no retirement
	// years or the portfolio at retirement is non-positive.
	AvgWithdrawalRate float64
}

// FinalNetWorth returns the terminal net worth, or 0 for an empty
// projection.
func (p Projection) FinalNetWorth() float64 {
	if len(p.NetWorth) == 0 {
		return 0
	}
	return p.NetWorth[len(p.NetWorth)-1]
}

// Succeeded reports whether net worth stayed non-negative for every
// projected year.
func (p Projection) Succeeded() bool {
	for _, nw := range p.NetWorth {
		if nw < 0 {
			return false
		}
	}
	return true
}

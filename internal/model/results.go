package model

// MonteCarloResult aggregates outcomes over N randomized trials.
type MonteCarloResult struct {
	Runs int
	// SuccessRate is the fraction of trials whose net worth never went
	// negative, in [0, 1].
	SuccessRate          float64
	MedianNetWorth       float64
	Percentile10NetWorth float64
	// AllNetWorths holds one terminal net worth per trial, indexed by
	// trial submission order.
	AllNetWorths []float64
}

// SweepRow is one line of the saving-rate banded sweep: the outcome of
// re-projecting the plan with the default and all scheduled saving
// rates shifted by Delta percentage points.
type SweepRow struct {
	Delta         int
	SavingRate    float64
	RetirementAge int
	FinalNetWorth float64
}

// Package store provides a SQLite-backed history of past simulation runs.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver

	"firecast/internal/model"
)

// History is the run-history database.
type History struct {
	db *sql.DB
}

// Run is one recorded simulation: the headline plan inputs and
// the outcomes worth comparing across runs.
type Run struct {
	ID        int64
	CreatedAt time.Time

	StartingAge      int
	FinalAge         int
	SavingRate       float64
	SavingsGrowth    float64
	RetirementGrowth float64
	Inflation        float64
	RetirementSpend  float64

	RetirementAge     int
	YearsToRetirement int
	AvgWithdrawalRate float64
	FinalNetWorth     float64

	MCRuns         int
	SuccessRate    float64
	MedianNetWorth float64
	P10NetWorth    float64
}

// NewRun builds a Run record from a simulation's pieces. The Monte
// Carlo result may be zero-valued when only the projection ran.
func NewRun(in model.PlanInputs, p model.Projection, mc model.MonteCarloResult) Run {
	return Run{
		CreatedAt:         time.Now().UTC(),
		StartingAge:       in.StartingAge,
		FinalAge:          in.FinalAge,
		SavingRate:        in.SavingRate,
		SavingsGrowth:     in.SavingsGrowth,
		RetirementGrowth:  in.RetirementGrowth,
		Inflation:         in.Inflation,
		RetirementSpend:   in.RetirementSpend,
		RetirementAge:     p.RetirementAge,
		YearsToRetirement: p.YearsToRetirement,
		AvgWithdrawalRate: p.AvgWithdrawalRate,
		FinalNetWorth:     p.FinalNetWorth(),
		MCRuns:            mc.Runs,
		SuccessRate:       mc.SuccessRate,
		MedianNetWorth:    mc.MedianNetWorth,
		P10NetWorth:       mc.Percentile10NetWorth,
	}
}

// DefaultPath returns the history database path under the user's data
// directory.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "firecast", "history.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "firecast", "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveRun records a simulation run and returns its id.
func (h *History) SaveRun(r Run) (int64, error) {
	res, err := h.db.Exec(`INSERT INTO runs
		(created_at, starting_age, final_age, saving_rate, savings_growth,
		 retirement_growth, inflation, retirement_spend, retirement_age,
		 years_to_retirement, avg_withdrawal_rate, final_net_worth,
		 mc_runs, success_rate, median_net_worth, p10_net_worth)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.StartingAge, r.FinalAge, r.SavingRate, r.SavingsGrowth,
		r.RetirementGrowth, r.Inflation, r.RetirementSpend, r.RetirementAge,
		r.YearsToRetirement, r.AvgWithdrawalRate, r.FinalNetWorth,
		r.MCRuns, r.SuccessRate, r.MedianNetWorth, r.P10NetWorth,
	)
	if err != nil {
		return 0, fmt.Errorf("saving run: %w", err)
	}
	return res.LastInsertId()
}

// ListRuns returns the most recent runs, newest first.
func (h *History) ListRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := h.db.Query(`SELECT
		id, created_at, starting_age, final_age, saving_rate, savings_growth,
		retirement_growth, inflation, retirement_spend, retirement_age,
		years_to_retirement, avg_withdrawal_rate, final_net_worth,
		mc_runs, success_rate, median_net_worth, p10_net_worth
		FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		var successRate, medianNW, p10NW sql.NullFloat64
		if err := rows.Scan(
			&r.ID, &createdAt, &r.StartingAge, &r.FinalAge, &r.SavingRate,
			&r.SavingsGrowth, &r.RetirementGrowth, &r.Inflation,
			&r.RetirementSpend, &r.RetirementAge, &r.YearsToRetirement,
			&r.AvgWithdrawalRate, &r.FinalNetWorth,
			&r.MCRuns, &successRate, &medianNW, &p10NW,
		); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		r.SuccessRate = successRate.Float64
		r.MedianNetWorth = medianNW.Float64
		r.P10NetWorth = p10NW.Float64
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

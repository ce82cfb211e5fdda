package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at           TEXT NOT NULL,
    starting_age         INTEGER NOT NULL,
    final_age            INTEGER NOT NULL,
    saving_rate          REAL NOT NULL,
    savings_growth       REAL NOT NULL,
    retirement_growth    REAL NOT NULL,
    inflation            REAL NOT NULL,
    retirement_spend     REAL NOT NULL,
    retirement_age       INTEGER NOT NULL,
    years_to_retirement  INTEGER NOT NULL,
    avg_withdrawal_rate  REAL NOT NULL,
    final_net_worth      REAL NOT NULL,
    mc_runs              INTEGER NOT NULL DEFAULT 0,
    success_rate         REAL,
    median_net_worth     REAL,
    p10_net_worth        REAL
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`

package repository

import (
	"context"
	"database/sql"
)

// ObservationRepo handles panel rows.
type ObservationRepo struct {
	db *sql.DB
}

func NewObservationRepo(db *sql.DB) *ObservationRepo { return &ObservationRepo{db: db} }

// InsertBatch writes a whole panel in one transaction. Partial panels are
// never left behind on error.
func (r *ObservationRepo) InsertBatch(ctx context.Context, obs []Observation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO observations(run_id, agent, period, action, state_index, state_value, wage)
	VALUES(?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, o := range obs {
		if _, err := stmt.ExecContext(ctx, o.RunID, o.Agent, o.Period, o.Action, o.StateIndex, o.StateValue, o.Wage); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

func (r *ObservationRepo) ListByRun(ctx context.Context, runID string) ([]Observation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT run_id, agent, period, action, state_index, state_value, wage
	FROM observations WHERE run_id = ? ORDER BY agent, period`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Observation
	for rows.Next() {
		var o Observation
		if err := rows.Scan(&o.RunID, &o.Agent, &o.Period, &o.Action, &o.StateIndex, &o.StateValue, &o.Wage); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// ActionCounts returns how often each action was chosen in one period of a run.
func (r *ObservationRepo) ActionCounts(ctx context.Context, runID string, period int) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT action, COUNT(*) FROM observations
	WHERE run_id = ? AND period = ? GROUP BY action`, runID, period)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, err
		}
		counts[action] = n
	}
	return counts, rows.Err()
}

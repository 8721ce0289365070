package repository

import (
	"context"
	"database/sql"
	"errors"
)

// RunRepo handles run rows.
type RunRepo struct {
	db *sql.DB
}

func NewRunRepo(db *sql.DB) *RunRepo { return &RunRepo{db: db} }

func (r *RunRepo) Insert(ctx context.Context, run Run) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO runs(id, seed, agents, horizon, grid_size, created_at)
	VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP);
	`, run.ID, run.Seed, run.Agents, run.Horizon, run.GridSize)
	return err
}

func (r *RunRepo) List(ctx context.Context) ([]Run, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, seed, agents, horizon, grid_size, created_at
	FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Seed, &run.Agents, &run.Horizon, &run.GridSize, &run.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	return out, rows.Err()
}

// Latest returns the most recent run, or nil when the store is empty.
func (r *RunRepo) Latest(ctx context.Context) (*Run, error) {
	var run Run
	err := r.db.QueryRowContext(ctx, `
	SELECT id, seed, agents, horizon, grid_size, created_at
	FROM runs ORDER BY created_at DESC, id LIMIT 1`).
		Scan(&run.ID, &run.Seed, &run.Agents, &run.Horizon, &run.GridSize, &run.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

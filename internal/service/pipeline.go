package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jasklabor/internal/database/repository"
	"github.com/jask/jasklabor/internal/dp"
	"github.com/jask/jasklabor/internal/sim"
)

// PipelineService solves the model, simulates a panel, and persists it as
// one run. The solve aborts before anything is written if the parameters are
// invalid.
type PipelineService struct {
	Runs         *repository.RunRepo
	Observations *repository.ObservationRepo
}

type PipelineResult struct {
	RunID    string
	Rows     int
	Solution *dp.Solution
}

func (s *PipelineService) Run(ctx context.Context, params dp.Params, agents int, seed int64) (PipelineResult, error) {
	sol, err := dp.Solve(params)
	if err != nil {
		return PipelineResult{}, fmt.Errorf("solve: %w", err)
	}

	panel, err := sim.Simulate(sol, agents, seed)
	if err != nil {
		return PipelineResult{}, fmt.Errorf("simulate: %w", err)
	}

	run := repository.Run{
		ID:       uuid.NewString(),
		Seed:     seed,
		Agents:   agents,
		Horizon:  params.Horizon,
		GridSize: params.GridSize,
	}
	if err := s.Runs.Insert(ctx, run); err != nil {
		return PipelineResult{}, fmt.Errorf("insert run: %w", err)
	}

	rows := make([]repository.Observation, len(panel))
	for i, obs := range panel {
		rows[i] = repository.Observation{
			RunID:      run.ID,
			Agent:      obs.Agent,
			Period:     obs.Period,
			Action:     obs.Action,
			StateIndex: obs.StateIndex,
			StateValue: obs.StateValue,
			Wage:       obs.Wage,
		}
	}
	if err := s.Observations.InsertBatch(ctx, rows); err != nil {
		return PipelineResult{}, fmt.Errorf("insert panel: %w", err)
	}

	return PipelineResult{RunID: run.ID, Rows: len(rows), Solution: sol}, nil
}

package service

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/jasklabor/internal/database"
	"github.com/jask/jasklabor/internal/database/repository"
	"github.com/jask/jasklabor/internal/dp"
)

func testParams() dp.Params {
	p := dp.DefaultParams()
	p.Horizon = 3
	p.GridSize = 6
	return p
}

func TestPipelineRun(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))
	t.Log("migrations applied")

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	runRepo := repository.NewRunRepo(db)
	obsRepo := repository.NewObservationRepo(db)
	svc := &PipelineService{Runs: runRepo, Observations: obsRepo}

	const agents, seed = 25, int64(7)
	res, err := svc.Run(ctx, testParams(), agents, seed)
	require.NoError(t, err)
	require.NotEmpty(t, res.RunID)
	require.Equal(t, agents*testParams().Horizon, res.Rows)
	require.NotNil(t, res.Solution)
	t.Log("pipeline complete")

	latest, err := runRepo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, res.RunID, latest.ID)
	require.Equal(t, seed, latest.Seed)
	require.Equal(t, agents, latest.Agents)

	obs, err := obsRepo.ListByRun(ctx, res.RunID)
	require.NoError(t, err)
	require.Len(t, obs, res.Rows)
	for _, o := range obs {
		if o.Action == "stay" {
			require.Nil(t, o.Wage)
		} else {
			require.NotNil(t, o.Wage)
			require.Greater(t, *o.Wage, 0.0)
		}
	}

	// Missing wages must be stored as NULL, never as a numeric placeholder.
	var nonStayNull int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM observations WHERE wage IS NULL AND action != 'stay'`).Scan(&nonStayNull))
	require.Zero(t, nonStayNull)

	counts, err := obsRepo.ActionCounts(ctx, res.RunID, 1)
	require.NoError(t, err)
	total := 0
	for _, n := range counts {
		total += n
	}
	require.Equal(t, agents, total)
}

func TestPipelineRejectsBadParams(t *testing.T) {
	t.Parallel()

	svc := &PipelineService{}
	bad := testParams()
	bad.Dispersion = -1
	_, err := svc.Run(context.Background(), bad, 10, 1)
	require.Error(t, err)
}

func TestExportCSV(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	runRepo := repository.NewRunRepo(db)
	obsRepo := repository.NewObservationRepo(db)
	pipeline := &PipelineService{Runs: runRepo, Observations: obsRepo}
	export := &ExportService{Observations: obsRepo}

	res, err := pipeline.Run(ctx, testParams(), 10, 99)
	require.NoError(t, err)

	var out strings.Builder
	rows, err := export.ExportCSV(ctx, res.RunID, &out)
	require.NoError(t, err)
	require.Equal(t, res.Rows, rows)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, rows+1)
	require.Equal(t, "agent,period,action,state_index,state_value,wage", lines[0])
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		require.Len(t, fields, 6)
		if fields[2] == "stay" {
			require.Empty(t, fields[5])
		} else {
			require.NotEmpty(t, fields[5])
		}
	}

	_, err = export.ExportCSV(ctx, "no-such-run", &out)
	require.Error(t, err)
}

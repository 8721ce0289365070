package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jasklabor/internal/config"
	"github.com/jask/jasklabor/internal/database"
	"github.com/jask/jasklabor/internal/database/repository"
	"github.com/jask/jasklabor/internal/service"
	"github.com/jask/jasklabor/internal/tui"
)

func main() {
	agents := flag.Int("agents", 0, "number of agents to simulate (overrides config)")
	seed := flag.Int64("seed", 0, "random seed (overrides config)")
	exportPath := flag.String("export", "", "write the panel as CSV to this path")
	noTUI := flag.Bool("no-tui", false, "run the pipeline without the panel browser")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *agents > 0 {
		cfg.Run.Agents = *agents
	}
	if *seed != 0 {
		cfg.Run.Seed = *seed
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := database.RunMigrations(cfg.Database.Path, cfg.Database.Migrations); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	runRepo := repository.NewRunRepo(db)
	obsRepo := repository.NewObservationRepo(db)
	pipeline := &service.PipelineService{Runs: runRepo, Observations: obsRepo}

	params := cfg.ModelParams()
	res, err := pipeline.Run(ctx, params, cfg.Run.Agents, cfg.Run.Seed)
	if err != nil {
		log.Fatalf("pipeline: %v", err)
	}
	log.Printf("run %s: %d observations (%d agents x %d periods, seed %d)",
		res.RunID, res.Rows, cfg.Run.Agents, params.Horizon, cfg.Run.Seed)

	if *exportPath != "" {
		f, err := os.Create(*exportPath)
		if err != nil {
			log.Fatalf("create export file: %v", err)
		}
		export := &service.ExportService{Observations: obsRepo}
		rows, err := export.ExportCSV(ctx, res.RunID, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		log.Printf("exported %d rows to %s", rows, *exportPath)
	}

	if *noTUI {
		return
	}

	run, err := runRepo.Latest(ctx)
	if err != nil || run == nil {
		log.Fatalf("load run: %v", err)
	}
	obs, err := obsRepo.ListByRun(ctx, run.ID)
	if err != nil {
		log.Fatalf("load panel: %v", err)
	}
	p := tea.NewProgram(tui.New(*run, obs), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("tui: %v", err)
	}
}

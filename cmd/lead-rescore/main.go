package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"leadrank_backend/internal/leads/repository"
	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/platform/config"
	"leadrank_backend/platform/db"
	"leadrank_backend/platform/logger"
)

// Administrative batch rescore over every lead in the store, regardless of
// owner. Individual write failures are reported but do not fail the run;
// only failing to fetch the batch exits non-zero.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting full lead rescore")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	lex := scoring.DefaultLexicons()
	if path := cfg.GetLexiconPath(); path != "" {
		lex, err = scoring.LoadLexicons(path)
		if err != nil {
			log.Error("failed to load lexicons", "path", path, "error", err)
			panic("failed to load lexicons: " + err.Error())
		}
	}

	repo := repository.New(pool)
	engine := scoring.NewEngine(lex)
	orchestrator := rescore.New(repo, engine, log, cfg.GetRescoreWorkers(), cfg.GetRescoreTimeout())

	result, err := orchestrator.RescoreAll(ctx)
	if err != nil {
		log.Error("rescore run failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("rescored %d of %d leads\n", result.UpdatedCount, result.TotalLeads)
	for _, failure := range result.Failures {
		fmt.Printf("  failed %s: %s\n", failure.LeadID, failure.Error)
	}
}

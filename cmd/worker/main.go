package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"leadrank_backend/internal/leads/repository"
	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/internal/scheduler"
	"leadrank_backend/platform/config"
	"leadrank_backend/platform/db"
	"leadrank_backend/platform/logger"
)

// Queue worker consuming rescore tasks enqueued by the API or a cron
// scheduler.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting rescore worker", "queue", cfg.AsynqQueueName)

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

	worker, err := scheduler.NewWorker(cfg, orchestrator, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	worker.Run(ctx)
	log.Info("worker stopped")
}

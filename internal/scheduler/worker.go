package scheduler

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/platform/config"
	"leadrank_backend/platform/logger"
)

type Worker struct {
	server       *asynq.Server
	mux          *asynq.ServeMux
	orchestrator *rescore.Orchestrator
	log          *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, orchestrator *rescore.Orchestrator, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server:       server,
		mux:          mux,
		orchestrator: orchestrator,
		log:          log,
	}

	mux.HandleFunc(TaskLeadsRescore, w.handleLeadsRescore)

	return w, nil
}

func (w *Worker) handleLeadsRescore(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadsRescorePayload(task)
	if err != nil {
		return err
	}

	if payload.OwnerID == "" {
		_, err := w.orchestrator.RescoreAll(ctx)
		return err
	}

	ownerID, err := uuid.Parse(payload.OwnerID)
	if err != nil {
		return err
	}

	_, err = w.orchestrator.RescoreOwner(ctx, ownerID)
	return err
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}

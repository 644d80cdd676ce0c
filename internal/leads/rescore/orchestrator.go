// Package rescore runs the scoring engine over batches of stored leads with
// bounded concurrency. It is shared by the HTTP trigger, the queue worker and
// the admin CLI.
package rescore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/platform/logger"
)

const (
	defaultWorkers = 8
	defaultTimeout = 2 * time.Minute
)

// LeadStore is the persistence surface the orchestrator needs. The pgx
// repository satisfies it.
type LeadStore interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error)
	ListAll(ctx context.Context) ([]domain.Lead, error)
	UpdateScores(ctx context.Context, leadID uuid.UUID, result scoring.Result) error
}

// Orchestrator fans a batch of leads out over a bounded worker pool,
// scoring each and persisting the result. Individual write failures are
// collected, not fatal; only failing to fetch the batch aborts a run.
type Orchestrator struct {
	store   LeadStore
	engine  *scoring.Engine
	log     *logger.Logger
	workers int
	timeout time.Duration
}

// New creates an orchestrator. Non-positive workers or timeout values fall
// back to conservative defaults.
func New(store LeadStore, engine *scoring.Engine, log *logger.Logger, workers int, timeout time.Duration) *Orchestrator {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Orchestrator{
		store:   store,
		engine:  engine,
		log:     log,
		workers: workers,
		timeout: timeout,
	}
}

// RescoreOwner rescores every lead belonging to one owner.
func (o *Orchestrator) RescoreOwner(ctx context.Context, ownerID uuid.UUID) (domain.RescoreRunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	leads, err := o.store.ListByOwner(ctx, ownerID)
	if err != nil {
		return domain.RescoreRunResult{}, fmt.Errorf("rescore: list leads for owner %s: %w", ownerID, err)
	}
	result, err := o.run(ctx, leads)
	o.log.RescoreRun("owner", result.TotalLeads, result.UpdatedCount, len(result.Failures))
	return result, err
}

// RescoreAll rescores every lead in the system regardless of owner.
func (o *Orchestrator) RescoreAll(ctx context.Context) (domain.RescoreRunResult, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	leads, err := o.store.ListAll(ctx)
	if err != nil {
		return domain.RescoreRunResult{}, fmt.Errorf("rescore: list all leads: %w", err)
	}
	result, err := o.run(ctx, leads)
	o.log.RescoreRun("all", result.TotalLeads, result.UpdatedCount, len(result.Failures))
	return result, err
}

func (o *Orchestrator) run(ctx context.Context, leads []domain.Lead) (domain.RescoreRunResult, error) {
	result := domain.RescoreRunResult{
		TotalLeads: len(leads),
		Failures:   []domain.RescoreFailure{},
	}
	if len(leads) == 0 {
		return result, nil
	}

	workers := o.workers
	if len(leads) < workers {
		workers = len(leads)
	}

	sem := semaphore.NewWeighted(int64(workers))
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		updated int
	)

	// In-flight writes are allowed to finish after cancellation so a lead is
	// never left with a half-observed score set.
	writeCtx := context.WithoutCancel(ctx)

	for _, lead := range leads {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}
		wg.Add(1)
		go func(lead domain.Lead) {
			defer wg.Done()
			defer sem.Release(1)

			scores := o.engine.Score(lead)
			if err := o.store.UpdateScores(writeCtx, lead.ID, scores); err != nil {
				o.log.DatabaseError("update_lead_scores", err)
				mu.Lock()
				result.Failures = append(result.Failures, domain.RescoreFailure{
					LeadID: lead.ID,
					Error:  err.Error(),
				})
				mu.Unlock()
				return
			}

			mu.Lock()
			updated++
			mu.Unlock()
		}(lead)
	}

	wg.Wait()
	result.UpdatedCount = updated

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// Package leads provides the lead scoring bounded context module.
// This file wires the context's dependencies and registers its routes.
package leads

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	apphttp "leadrank_backend/internal/http"
	"leadrank_backend/internal/leads/handler"
	"leadrank_backend/internal/leads/repository"
	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/internal/leads/service"
	"leadrank_backend/internal/scheduler"
	"leadrank_backend/platform/config"
	"leadrank_backend/platform/logger"
	"leadrank_backend/platform/validator"
)

// Module is the leads bounded context implementing http.Module.
type Module struct {
	handler      *handler.Handler
	service      *service.Service
	orchestrator *rescore.Orchestrator
	repo         *repository.Repository
}

// NewModule creates the leads module. enqueuer may be nil when no queue is
// configured.
func NewModule(pool *pgxpool.Pool, enqueuer scheduler.RescoreEnqueuer, val *validator.Validator, cfg config.ScoringConfig, log *logger.Logger) (*Module, error) {
	lex := scoring.DefaultLexicons()
	if path := cfg.GetLexiconPath(); path != "" {
		loaded, err := scoring.LoadLexicons(path)
		if err != nil {
			return nil, fmt.Errorf("load lexicons from %s: %w", path, err)
		}
		lex = loaded
	}

	repo := repository.New(pool)
	engine := scoring.NewEngine(lex)
	orchestrator := rescore.New(repo, engine, log, cfg.GetRescoreWorkers(), cfg.GetRescoreTimeout())
	svc := service.New(repo, engine, orchestrator)

	return &Module{
		handler:      handler.New(svc, enqueuer, val),
		service:      svc,
		orchestrator: orchestrator,
		repo:         repo,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts the leads routes on the authenticated group.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Protected.Group("/leads"))
}

// Orchestrator exposes the batch rescorer for the worker and CLI
// composition roots.
func (m *Module) Orchestrator() *rescore.Orchestrator {
	return m.orchestrator
}

// Package service implements the owner-scoped application operations over
// stored leads. Ownership checks happen here, not in handlers.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/ranking"
	"leadrank_backend/internal/leads/repository"
	"leadrank_backend/internal/leads/rescore"
	"leadrank_backend/internal/leads/scoring"
	"leadrank_backend/internal/leads/transport"
	"leadrank_backend/platform/apperr"
)

type Service struct {
	repo         repository.LeadsRepository
	engine       *scoring.Engine
	orchestrator *rescore.Orchestrator
}

func New(repo repository.LeadsRepository, engine *scoring.Engine, orchestrator *rescore.Orchestrator) *Service {
	return &Service{
		repo:         repo,
		engine:       engine,
		orchestrator: orchestrator,
	}
}

// ListRanked returns the owner's leads sorted into outreach priority order.
// A positive limit truncates the list after sorting.
func (s *Service) ListRanked(ctx context.Context, ownerID uuid.UUID, limit int) ([]transport.LeadResponse, error) {
	leads, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load leads", err)
	}

	ranking.Sort(leads)
	if limit > 0 && limit < len(leads) {
		leads = leads[:limit]
	}

	out := make([]transport.LeadResponse, 0, len(leads))
	for _, lead := range leads {
		out = append(out, transport.ToLeadResponse(lead))
	}
	return out, nil
}

// Rescore runs a synchronous batch rescore over the owner's leads. Partial
// failure is not an error; the summary carries the per-lead failures.
func (s *Service) Rescore(ctx context.Context, ownerID uuid.UUID) (transport.RescoreResponse, error) {
	result, err := s.orchestrator.RescoreOwner(ctx, ownerID)
	if err != nil {
		return transport.RescoreResponse{}, apperr.Wrap(apperr.KindInternal, "failed to rescore leads", err)
	}
	return toRescoreResponse(result), nil
}

// ScoreLead recomputes and persists the scores of one lead owned by the
// caller, returning the fresh values.
func (s *Service) ScoreLead(ctx context.Context, ownerID, leadID uuid.UUID) (transport.ScoreResponse, error) {
	lead, err := s.repo.GetByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return transport.ScoreResponse{}, apperr.NotFound("lead not found")
		}
		return transport.ScoreResponse{}, apperr.Wrap(apperr.KindInternal, "failed to load lead", err)
	}
	// Leads owned by someone else are indistinguishable from missing ones.
	if lead.OwnerID != ownerID {
		return transport.ScoreResponse{}, apperr.NotFound("lead not found")
	}

	result := s.engine.Score(lead)
	if err := s.repo.UpdateScores(ctx, leadID, result); err != nil {
		return transport.ScoreResponse{}, apperr.Wrap(apperr.KindInternal, "failed to persist scores", err)
	}

	return transport.ScoreResponse{
		LeadID:                leadID,
		MarketingScore:        result.MarketingScore,
		IntentScore:           result.IntentScore,
		BudgetPotential:       result.BudgetPotential,
		BudgetConfidence:      string(result.BudgetConfidence),
		SpendAuthorityScore:   result.SpendAuthorityScore,
		BusinessOrientation:   string(result.BusinessOrientation),
		OrientationConfidence: string(result.OrientationConfidence),
		ScoreVersion:          result.Version,
	}, nil
}

func toRescoreResponse(result domain.RescoreRunResult) transport.RescoreResponse {
	return transport.RescoreResponse{
		Success:      true,
		Message:      fmt.Sprintf("rescored %d of %d leads", result.UpdatedCount, result.TotalLeads),
		TotalLeads:   result.TotalLeads,
		UpdatedLeads: result.UpdatedCount,
		Failures:     result.Failures,
	}
}

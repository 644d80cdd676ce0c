package repository

import (
	"context"

	"github.com/google/uuid"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/scoring"
)

// LeadReader provides read access to stored leads.
type LeadReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error)
	ListAll(ctx context.Context) ([]domain.Lead, error)
}

// ScoreWriter persists engine output for a single lead.
type ScoreWriter interface {
	UpdateScores(ctx context.Context, leadID uuid.UUID, result scoring.Result) error
}

// LeadsRepository is the full persistence surface used by the service layer.
type LeadsRepository interface {
	LeadReader
	ScoreWriter
}

// Package repository persists leads in Postgres via pgx. Column names are
// snake_case; the mapping to the domain model is confined to this package.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadrank_backend/internal/leads/domain"
	"leadrank_backend/internal/leads/scoring"
)

var ErrNotFound = errors.New("lead not found")

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const leadColumns = `
	id, owner_id, name, email, company, title, source, status, value, tags,
	location, last_contacted_at, insights,
	marketing_score, intent_score, budget_potential, budget_confidence,
	spend_authority_score, business_orientation, orientation_confidence,
	created_at, updated_at`

// insightsDoc is the JSONB shape of domain.Insights.
type insightsDoc struct {
	Topics            []string `json:"topics,omitempty"`
	Interests         []string `json:"interests,omitempty"`
	Background        []string `json:"background,omitempty"`
	Notes             string   `json:"notes,omitempty"`
	CompanySize       *int     `json:"company_size,omitempty"`
	ContentEngagement *int     `json:"content_engagement,omitempty"`
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domain.Lead, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+leadColumns+` FROM leads WHERE id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, ErrNotFound
	}
	if err != nil {
		return domain.Lead{}, fmt.Errorf("get lead %s: %w", id, err)
	}
	return lead, nil
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+leadColumns+`
		FROM leads
		WHERE owner_id = $1
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list leads for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	return collectLeads(rows)
}

func (r *Repository) ListAll(ctx context.Context) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+leadColumns+` FROM leads`)
	if err != nil {
		return nil, fmt.Errorf("list all leads: %w", err)
	}
	defer rows.Close()

	return collectLeads(rows)
}

// UpdateScores overwrites the derived score columns for one lead. Attribute
// columns are untouched.
func (r *Repository) UpdateScores(ctx context.Context, leadID uuid.UUID, result scoring.Result) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads SET
			marketing_score = $2,
			intent_score = $3,
			budget_potential = $4,
			budget_confidence = $5,
			spend_authority_score = $6,
			business_orientation = $7,
			orientation_confidence = $8,
			score_version = $9,
			scores_updated_at = now(),
			updated_at = now()
		WHERE id = $1
	`,
		leadID,
		result.MarketingScore,
		result.IntentScore,
		result.BudgetPotential,
		string(result.BudgetConfidence),
		result.SpendAuthorityScore,
		string(result.BusinessOrientation),
		string(result.OrientationConfidence),
		result.Version,
	)
	if err != nil {
		return fmt.Errorf("update scores for lead %s: %w", leadID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectLeads(rows pgx.Rows) ([]domain.Lead, error) {
	leads := make([]domain.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return leads, nil
}

func scanLead(row pgx.Row) (domain.Lead, error) {
	var (
		lead                  domain.Lead
		source                string
		status                string
		budgetConfidence      string
		businessOrientation   string
		orientationConfidence string
		insightsRaw           []byte
	)

	err := row.Scan(
		&lead.ID, &lead.OwnerID, &lead.Name, &lead.Email, &lead.Company,
		&lead.Title, &source, &status, &lead.Value, &lead.Tags,
		&lead.Location, &lead.LastContactedAt, &insightsRaw,
		&lead.MarketingScore, &lead.IntentScore, &lead.BudgetPotential,
		&budgetConfidence, &lead.SpendAuthorityScore, &businessOrientation,
		&orientationConfidence, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return domain.Lead{}, err
	}

	lead.Source = domain.Source(source)
	lead.Status = domain.Status(status)
	lead.BudgetConfidence = domain.ValidConfidence(domain.Confidence(budgetConfidence))
	lead.BusinessOrientation = domain.ValidOrientation(domain.Orientation(businessOrientation))
	lead.OrientationConfidence = domain.ValidConfidence(domain.Confidence(orientationConfidence))

	if len(insightsRaw) > 0 {
		var doc insightsDoc
		if err := json.Unmarshal(insightsRaw, &doc); err != nil {
			return domain.Lead{}, fmt.Errorf("decode insights for lead %s: %w", lead.ID, err)
		}
		lead.Insights = &domain.Insights{
			Topics:            doc.Topics,
			Interests:         doc.Interests,
			Background:        doc.Background,
			Notes:             doc.Notes,
			CompanySize:       doc.CompanySize,
			ContentEngagement: doc.ContentEngagement,
		}
	}

	return lead, nil
}

// Package transport holds the request/response shapes for the leads HTTP API.
package transport

import (
	"time"

	"github.com/google/uuid"

	"leadrank_backend/internal/leads/domain"
)

// LeadResponse is the full lead representation, attributes plus derived
// scores, returned by the listing and scoring endpoints.
type LeadResponse struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Company         string     `json:"company,omitempty"`
	Title           string     `json:"title,omitempty"`
	Source          string     `json:"source"`
	Status          string     `json:"status"`
	Value           float64    `json:"value"`
	Tags            []string   `json:"tags,omitempty"`
	Location        string     `json:"location,omitempty"`
	LastContactedAt *time.Time `json:"lastContactedAt,omitempty"`

	MarketingScore        int    `json:"marketingScore"`
	IntentScore           int    `json:"intentScore"`
	BudgetPotential       int    `json:"budgetPotential"`
	BudgetConfidence      string `json:"budgetConfidence"`
	SpendAuthorityScore   int    `json:"spendAuthorityScore"`
	BusinessOrientation   string `json:"businessOrientation"`
	OrientationConfidence string `json:"orientationConfidence"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ListLeadsQuery holds the optional query parameters of the ranked listing.
type ListLeadsQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=500"`
}

// RescoreResponse summarizes a batch rescore run. Success stays true on
// partial failure; individual failures are listed.
type RescoreResponse struct {
	Success      bool                    `json:"success"`
	Message      string                  `json:"message"`
	TotalLeads   int                     `json:"totalLeads"`
	UpdatedLeads int                     `json:"updatedLeads"`
	Failures     []domain.RescoreFailure `json:"failures"`
}

// RescoreQueuedResponse acknowledges an enqueued async rescore run.
type RescoreQueuedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}

// ScoreResponse carries the freshly computed scores of a single lead.
type ScoreResponse struct {
	LeadID                uuid.UUID `json:"leadId"`
	MarketingScore        int       `json:"marketingScore"`
	IntentScore           int       `json:"intentScore"`
	BudgetPotential       int       `json:"budgetPotential"`
	BudgetConfidence      string    `json:"budgetConfidence"`
	SpendAuthorityScore   int       `json:"spendAuthorityScore"`
	BusinessOrientation   string    `json:"businessOrientation"`
	OrientationConfidence string    `json:"orientationConfidence"`
	ScoreVersion          string    `json:"scoreVersion"`
}

// ToLeadResponse maps a domain lead onto the wire shape.
func ToLeadResponse(lead domain.Lead) LeadResponse {
	return LeadResponse{
		ID:                    lead.ID,
		Name:                  lead.Name,
		Email:                 lead.Email,
		Company:               lead.Company,
		Title:                 lead.Title,
		Source:                string(lead.Source),
		Status:                string(lead.Status),
		Value:                 lead.Value,
		Tags:                  lead.Tags,
		Location:              lead.Location,
		LastContactedAt:       lead.LastContactedAt,
		MarketingScore:        lead.MarketingScore,
		IntentScore:           lead.IntentScore,
		BudgetPotential:       lead.BudgetPotential,
		BudgetConfidence:      string(lead.BudgetConfidence),
		SpendAuthorityScore:   lead.SpendAuthorityScore,
		BusinessOrientation:   string(lead.BusinessOrientation),
		OrientationConfidence: string(lead.OrientationConfidence),
		CreatedAt:             lead.CreatedAt,
		UpdatedAt:             lead.UpdatedAt,
	}
}

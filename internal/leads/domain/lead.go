// Package domain holds the lead model and the closed enumerations the
// scoring engine operates on. It has no dependencies on storage or transport.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies the acquisition channel of a lead.
type Source string

const (
	SourceWebsite      Source = "Website"
	SourceLinkedIn     Source = "LinkedIn"
	SourceReferral     Source = "Referral"
	SourceEvent        Source = "Event"
	SourceConference   Source = "Conference"
	SourceColdOutreach Source = "ColdOutreach"
	SourceOther        Source = "Other"
)

// Status identifies where a lead sits in the outreach funnel.
type Status string

const (
	StatusNew       Status = "New"
	StatusContacted Status = "Contacted"
	StatusResponded Status = "Responded"
	StatusQualified Status = "Qualified"
	StatusProposal  Status = "Proposal"
	StatusConverted Status = "Converted"
	StatusLost      Status = "Lost"
)

// Confidence is a coarse indicator of how much evidence backed an estimate.
type Confidence string

const (
	ConfidenceLow    Confidence = "Low"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceHigh   Confidence = "High"
)

// Orientation classifies who a lead's company appears to sell to.
type Orientation string

const (
	OrientationB2B     Orientation = "B2B"
	OrientationB2C     Orientation = "B2C"
	OrientationMixed   Orientation = "Mixed"
	OrientationUnknown Orientation = "Unknown"
)

// Insights carries free-text intelligence gathered about a lead.
type Insights struct {
	Topics            []string
	Interests         []string
	Background        []string
	Notes             string
	CompanySize       *int
	ContentEngagement *int // 0-100, from content tracking
}

// Lead is a prospective contact record subject to scoring.
// The score fields are derived, overwritten by the engine and never
// hand-edited.
type Lead struct {
	ID      uuid.UUID
	OwnerID uuid.UUID

	Name            string
	Email           string
	Company         string
	Title           string
	Source          Source
	Status          Status
	Value           float64
	Tags            []string
	Location        string
	LastContactedAt *time.Time
	Insights        *Insights

	MarketingScore        int
	IntentScore           int
	BudgetPotential       int
	BudgetConfidence      Confidence
	SpendAuthorityScore   int
	BusinessOrientation   Orientation
	OrientationConfidence Confidence

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RescoreFailure records a single lead that could not be updated during a
// batch run.
type RescoreFailure struct {
	LeadID uuid.UUID `json:"leadId"`
	Error  string    `json:"error"`
}

// RescoreRunResult summarizes a batch rescore run. It is returned to the
// caller and never persisted.
type RescoreRunResult struct {
	TotalLeads   int              `json:"totalLeads"`
	UpdatedCount int              `json:"updatedCount"`
	Failures     []RescoreFailure `json:"failures"`
}

// ValidConfidence normalizes a confidence value, defaulting unrecognized
// strings to the lowest-information member.
func ValidConfidence(value Confidence) Confidence {
	switch value {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
		return value
	default:
		return ConfidenceLow
	}
}

// ValidOrientation normalizes an orientation value, defaulting unrecognized
// strings to Unknown.
func ValidOrientation(value Orientation) Orientation {
	switch value {
	case OrientationB2B, OrientationB2C, OrientationMixed, OrientationUnknown:
		return value
	default:
		return OrientationUnknown
	}
}

package scoring

import "leadrank_backend/internal/leads/domain"

// Confidence credit per signal category actually present.
const (
	budgetSeniorityCredit = 3.0
	budgetValueCredit     = 3.0
	budgetCompanyCredit   = 1.0
)

// estimateBudget accumulates budget potential from role seniority, explicit
// deal value and company-name markers. A parallel confidence tally tracks
// which signal categories were actually present; potential is clamped
// independent of confidence.
func (e *Engine) estimateBudget(lead domain.Lead, f Features) (int, domain.Confidence) {
	potential := 0.0
	confidence := 0.0

	switch {
	case containsAny(f.Title, e.lex.LeadershipTitles):
		potential += 35
		confidence += budgetSeniorityCredit
	case containsAny(f.Title, e.lex.DirectorTitles):
		potential += 25
		confidence += budgetSeniorityCredit
	case containsAny(f.Title, e.lex.ManagerTitles):
		potential += 15
		confidence += budgetSeniorityCredit
	case containsAny(f.Title, e.lex.FinanceTitles):
		potential += 10
		confidence += budgetSeniorityCredit
	}

	if lead.Value > 0 {
		potential += budgetValueTier(lead.Value)
		confidence += budgetValueCredit
	}

	if containsToken(f.Company, e.lex.EnterpriseMarkers) {
		potential += 20
		confidence += budgetCompanyCredit
	} else if containsToken(f.Company, e.lex.StartupMarkers) {
		potential += 5
		confidence += budgetCompanyCredit
	}

	return clampRound(potential), budgetConfidenceBucket(confidence)
}

func budgetValueTier(value float64) float64 {
	switch {
	case value > 50000:
		return 30
	case value > 25000:
		return 25
	case value > 10000:
		return 20
	case value > 1000:
		return 10
	default:
		return 5
	}
}

func budgetConfidenceBucket(confidence float64) domain.Confidence {
	switch {
	case confidence >= 5:
		return domain.ConfidenceHigh
	case confidence >= 2.5:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

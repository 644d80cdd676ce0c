package scoring

import "leadrank_backend/internal/leads/domain"

// spendAuthority is primarily role-seniority driven: mutually exclusive
// tiers checked most-senior-first, with a secondary department check only
// when the tier score stays below 30 so the two passes never double-count.
func (e *Engine) spendAuthority(lead domain.Lead, f Features) int {
	score := e.seniorityTier(f.Title)

	if score < 30 {
		score += e.departmentBonus(f.Title)
	}

	score += e.companySizeBonus(f)
	score += authorityValueBonus(lead.Value)

	return clampRound(score)
}

func (e *Engine) seniorityTier(title string) float64 {
	switch {
	case containsAny(title, e.lex.ExecutiveTitles):
		return 50
	case containsAny(title, e.lex.SeniorFinanceTitles):
		return 45
	case containsAny(title, e.lex.CLevelTitles):
		return 40
	case containsAny(title, e.lex.LeadershipTitles) || containsAny(title, e.lex.DirectorTitles):
		return 30
	case containsAny(title, e.lex.ManagerTitles):
		return 15
	default:
		return 5
	}
}

func (e *Engine) departmentBonus(title string) float64 {
	switch {
	case containsAny(title, e.lex.PurchasingDepts):
		return 20
	case containsAny(title, e.lex.FinanceDepts):
		return 15
	case containsAny(title, e.lex.OperationsDepts):
		return 10
	default:
		return 0
	}
}

// companySizeBonus adds up to +15 from company-name markers. An
// owner/founder title forces the full bonus regardless of company text:
// whoever owns the company controls its spend.
func (e *Engine) companySizeBonus(f Features) float64 {
	if containsAny(f.Title, e.lex.OwnerFounderTitles) {
		return 15
	}
	if containsToken(f.Company, e.lex.EnterpriseMarkers) {
		return 15
	}
	if containsToken(f.Company, e.lex.StartupMarkers) {
		return 5
	}
	return 0
}

func authorityValueBonus(value float64) float64 {
	switch {
	case value > 50000:
		return 15
	case value > 10000:
		return 10
	case value > 1000:
		return 5
	default:
		return 0
	}
}

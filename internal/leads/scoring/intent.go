package scoring

import "leadrank_backend/internal/leads/domain"

// purchaseIntent estimates how actively a lead is buying. A Lost status
// contributes negatively mid-computation; the final result is still
// floor-clamped at 0.
func (e *Engine) purchaseIntent(lead domain.Lead, f Features) int {
	score := intentSourceScore(lead.Source)
	score += intentStatusScore(lead.Status)
	score += recencyBonus(f.DaysSinceContact)

	if containsAny(f.Title, e.lex.DecisionMakerTitles) {
		score += 10
	} else if containsAny(f.Title, e.lex.ManagerTitles) {
		score += 5
	}

	score += engagementBonus(lead.Insights)

	return clampRound(score)
}

func intentSourceScore(source domain.Source) float64 {
	switch source {
	case domain.SourceWebsite:
		return 30
	case domain.SourceReferral:
		return 25
	case domain.SourceLinkedIn:
		return 20
	case domain.SourceConference, domain.SourceEvent:
		return 15
	case domain.SourceColdOutreach:
		return 8
	default:
		return 5
	}
}

func intentStatusScore(status domain.Status) float64 {
	switch status {
	case domain.StatusQualified:
		return 35
	case domain.StatusProposal:
		return 30
	case domain.StatusResponded, domain.StatusContacted:
		return 20
	case domain.StatusNew:
		return 10
	case domain.StatusLost:
		return -10
	default:
		return 0
	}
}

func recencyBonus(daysSinceContact int) float64 {
	switch {
	case daysSinceContact < 7:
		return 15
	case daysSinceContact < 14:
		return 10
	case daysSinceContact < 30:
		return 5
	default:
		return 0
	}
}

// engagementBonus rewards tracked content engagement when present. Absent
// insights are a zero-weight signal, not a penalty.
func engagementBonus(insights *domain.Insights) float64 {
	if insights == nil || insights.ContentEngagement == nil {
		return 0
	}

	switch engagement := *insights.ContentEngagement; {
	case engagement > 75:
		return 10
	case engagement > 50:
		return 7
	case engagement > 25:
		return 5
	default:
		return 2
	}
}

package scoring

import (
	"strings"

	"leadrank_backend/internal/leads/domain"
)

// Maximum contribution of insight keyword density to the marketing score.
const maxInsightContribution = 20.0

// marketingRelevance is a weighted additive heuristic, capped per factor and
// clamped to 0-100 as the last step.
func (e *Engine) marketingRelevance(lead domain.Lead, f Features) int {
	score := 0.0

	// Title: marketing role base plus seniority bonus
	score += e.scoreMarketingTitle(f.Title)

	// Company: marketing/agency/media beats generic tech
	score += e.scoreMarketingCompany(f.Company)

	// Source quality
	score += marketingSourceScore(lead.Source)

	// Insight keyword density across topics/interests/notes
	score += e.scoreMarketingInsights(lead.Insights)

	// Tags
	score += e.scoreMarketingTags(lead.Tags)

	// Funnel status and contact recency
	score += marketingStatusScore(lead.Status)
	if f.DaysSinceContact < 30 {
		score += 3
	}

	return clampRound(score)
}

func (e *Engine) scoreMarketingTitle(title string) float64 {
	if containsAny(title, e.lex.MarketingTitles) {
		score := 25.0
		switch {
		case containsAny(title, e.lex.LeadershipTitles) || containsAny(title, e.lex.DirectorTitles):
			score += 15
		case containsAny(title, e.lex.ManagerTitles):
			score += 10
		default:
			score += 5
		}
		return score
	}

	// Adjacent roles still carry some relevance
	if containsAny(title, e.lex.SalesTitles) {
		return 5
	}

	return 0
}

func (e *Engine) scoreMarketingCompany(company string) float64 {
	if containsAny(company, e.lex.MarketingCompany) {
		return 15
	}
	if containsAny(company, e.lex.TechCompany) {
		return 5
	}
	return 0
}

func marketingSourceScore(source domain.Source) float64 {
	switch source {
	case domain.SourceWebsite:
		return 10
	case domain.SourceLinkedIn:
		return 8
	case domain.SourceEvent, domain.SourceConference:
		return 6
	case domain.SourceReferral:
		return 4
	default:
		return 2
	}
}

// scoreMarketingInsights gates each insight field independently, sums the
// credits, and caps the total.
func (e *Engine) scoreMarketingInsights(insights *domain.Insights) float64 {
	if insights == nil {
		return 0
	}

	score := 0.0
	if anyFieldContains(insights.Topics, e.lex.MarketingInsights) {
		score += 7
	}
	if anyFieldContains(insights.Interests, e.lex.MarketingInsights) {
		score += 7
	}
	if containsAny(strings.ToLower(insights.Notes), e.lex.MarketingInsights) {
		score += 6
	}

	return clampFloat(score, 0, maxInsightContribution)
}

func (e *Engine) scoreMarketingTags(tags []string) float64 {
	if anyFieldContains(tags, e.lex.MarketingTags) {
		return 10
	}
	return 0
}

func marketingStatusScore(status domain.Status) float64 {
	switch status {
	case domain.StatusResponded, domain.StatusQualified:
		return 5
	case domain.StatusContacted:
		return 2
	default:
		return 0
	}
}

// Package ranking defines the single total order over scored leads used by
// every list and calendar-placement view.
package ranking

import (
	"slices"
	"strings"

	"leadrank_backend/internal/leads/domain"
)

// Compare orders leads by descending priority: intent, then spend
// authority, then marketing relevance, then budget potential. Fully-tied
// leads fall back to an ascending lexicographic key so the order is a
// deterministic total order.
func Compare(a, b domain.Lead) int {
	if c := b.IntentScore - a.IntentScore; c != 0 {
		return c
	}
	if c := b.SpendAuthorityScore - a.SpendAuthorityScore; c != 0 {
		return c
	}
	if c := b.MarketingScore - a.MarketingScore; c != 0 {
		return c
	}
	if c := b.BudgetPotential - a.BudgetPotential; c != 0 {
		return c
	}
	return strings.Compare(tieBreakKey(a), tieBreakKey(b))
}

// Sort sorts leads in place into outreach priority order.
func Sort(leads []domain.Lead) {
	slices.SortFunc(leads, Compare)
}

func tieBreakKey(lead domain.Lead) string {
	if lead.Email != "" {
		return lead.Email
	}
	if lead.Name != "" {
		return lead.Name
	}
	return lead.ID.String()
}

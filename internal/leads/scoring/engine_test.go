package scoring

import (
	"testing"
	"time"

	"leadrank_backend/internal/leads/domain"
)

// newTestEngine pins the engine clock so recency factors are deterministic.
func newTestEngine() *Engine {
	e := NewEngine(nil)
	e.now = func() time.Time { return refTime }
	return e
}

func TestScoreRanges(t *testing.T) {
	engagement := 80
	leads := []domain.Lead{
		{},
		{Email: "a@gmail.com"},
		{
			Title:           "CEO",
			Company:         "Megacorp Global Holdings Inc",
			Email:           "ceo@megacorp.com",
			Source:          domain.SourceWebsite,
			Status:          domain.StatusQualified,
			Value:           250000,
			Tags:            []string{"marketing", "campaign"},
			LastContactedAt: daysAgo(1),
			Insights: &domain.Insights{
				Topics:            []string{"brand strategy", "seo"},
				Interests:         []string{"growth"},
				Notes:             "interested in campaign analytics",
				ContentEngagement: &engagement,
			},
		},
		{Title: "Intern", Status: domain.StatusLost, Source: domain.SourceColdOutreach},
	}

	e := newTestEngine()
	for i, lead := range leads {
		result := e.Score(lead)
		for name, score := range map[string]int{
			"marketing": result.MarketingScore,
			"intent":    result.IntentScore,
			"budget":    result.BudgetPotential,
			"authority": result.SpendAuthorityScore,
		} {
			if score < 0 || score > 100 {
				t.Errorf("lead %d: %s score %d out of range", i, name, score)
			}
		}
		if result.BudgetConfidence != domain.ValidConfidence(result.BudgetConfidence) {
			t.Errorf("lead %d: invalid budget confidence %q", i, result.BudgetConfidence)
		}
		if result.BusinessOrientation != domain.ValidOrientation(result.BusinessOrientation) {
			t.Errorf("lead %d: invalid orientation %q", i, result.BusinessOrientation)
		}
	}
}

func TestScoreIdempotent(t *testing.T) {
	lead := domain.Lead{
		Title:           "Marketing Director",
		Company:         "Brightwave Media",
		Email:           "dir@brightwave.com",
		Source:          domain.SourceReferral,
		Status:          domain.StatusResponded,
		Value:           15000,
		LastContactedAt: daysAgo(3),
	}

	e := newTestEngine()
	first := e.Score(lead)
	second := e.Score(lead)

	if first != second {
		t.Fatalf("rescoring an unchanged lead changed output:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestScoreSetsVersion(t *testing.T) {
	result := newTestEngine().Score(domain.Lead{})
	if result.Version != ScoreVersion {
		t.Fatalf("Version = %q, want %q", result.Version, ScoreVersion)
	}
}

func TestScoreSeniorTitleNeverLowersScores(t *testing.T) {
	base := domain.Lead{
		Company: "Acme Solutions",
		Email:   "lead@acme.com",
		Source:  domain.SourceWebsite,
		Status:  domain.StatusContacted,
		Value:   5000,
	}
	withTitle := base
	withTitle.Title = "CEO"

	e := newTestEngine()
	plain := e.Score(base)
	senior := e.Score(withTitle)

	if senior.IntentScore < plain.IntentScore {
		t.Errorf("intent dropped with CEO title: %d < %d", senior.IntentScore, plain.IntentScore)
	}
	if senior.SpendAuthorityScore < plain.SpendAuthorityScore {
		t.Errorf("authority dropped with CEO title: %d < %d", senior.SpendAuthorityScore, plain.SpendAuthorityScore)
	}
	if senior.BudgetPotential < plain.BudgetPotential {
		t.Errorf("budget dropped with CEO title: %d < %d", senior.BudgetPotential, plain.BudgetPotential)
	}
}

func TestScoreHighValueB2BLead(t *testing.T) {
	lead := domain.Lead{
		Title:   "VP of Marketing",
		Company: "Acme Inc",
		Email:   "vp@acme.com",
		Source:  domain.SourceWebsite,
		Status:  domain.StatusQualified,
		Value:   30000,
	}

	result := newTestEngine().Score(lead)

	if result.MarketingScore < 40 {
		t.Errorf("MarketingScore = %d, want >= 40", result.MarketingScore)
	}
	if result.IntentScore < 55 {
		t.Errorf("IntentScore = %d, want >= 55", result.IntentScore)
	}
	if result.SpendAuthorityScore < 30 {
		t.Errorf("SpendAuthorityScore = %d, want >= 30", result.SpendAuthorityScore)
	}
	if result.BudgetPotential != 80 {
		t.Errorf("BudgetPotential = %d, want 80", result.BudgetPotential)
	}
	if result.BudgetConfidence != domain.ConfidenceHigh {
		t.Errorf("BudgetConfidence = %s, want High", result.BudgetConfidence)
	}
	if result.BusinessOrientation != domain.OrientationB2B {
		t.Errorf("BusinessOrientation = %s, want B2B", result.BusinessOrientation)
	}
}

func TestScoreSparseLeadDegradesGracefully(t *testing.T) {
	lead := domain.Lead{Email: "a@gmail.com"}

	result := newTestEngine().Score(lead)

	if result.MarketingScore > 10 {
		t.Errorf("MarketingScore = %d, want near zero", result.MarketingScore)
	}
	if result.BudgetPotential != 0 {
		t.Errorf("BudgetPotential = %d, want 0", result.BudgetPotential)
	}
	if result.BudgetConfidence != domain.ConfidenceLow {
		t.Errorf("BudgetConfidence = %s, want Low", result.BudgetConfidence)
	}
	if result.SpendAuthorityScore != 5 {
		t.Errorf("SpendAuthorityScore = %d, want baseline 5", result.SpendAuthorityScore)
	}
	if result.BusinessOrientation != domain.OrientationB2C {
		t.Errorf("BusinessOrientation = %s, want B2C", result.BusinessOrientation)
	}
}

func TestScoreEmptyLead(t *testing.T) {
	result := newTestEngine().Score(domain.Lead{})

	if result.BusinessOrientation != domain.OrientationUnknown {
		t.Errorf("BusinessOrientation = %s, want Unknown", result.BusinessOrientation)
	}
	if result.OrientationConfidence != domain.ConfidenceLow {
		t.Errorf("OrientationConfidence = %s, want Low", result.OrientationConfidence)
	}
}

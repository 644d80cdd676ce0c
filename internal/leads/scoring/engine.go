// Package scoring is the canonical lead scoring engine. It computes five
// independent heuristic scores from a lead's attributes with no I/O; every
// call site (request handler, batch job, UI preview) imports this package
// rather than reimplementing the rules.
package scoring

import (
	"time"

	"leadrank_backend/internal/leads/domain"
)

// ScoreVersion tracks the scoring model for debugging and analysis.
// Bump this when changing scoring logic significantly.
const ScoreVersion = "2026-v1"

// Result holds the full set of derived scores for one lead.
type Result struct {
	MarketingScore        int
	IntentScore           int
	BudgetPotential       int
	BudgetConfidence      domain.Confidence
	SpendAuthorityScore   int
	BusinessOrientation   domain.Orientation
	OrientationConfidence domain.Confidence
	Version               string
}

// Engine evaluates leads against a set of keyword lexicons. It is
// stateless apart from the tables and safe for concurrent use.
type Engine struct {
	lex *Lexicons
	now func() time.Time
}

// NewEngine creates an engine over the given lexicons, falling back to the
// embedded defaults when nil.
func NewEngine(lex *Lexicons) *Engine {
	if lex == nil {
		lex = DefaultLexicons()
	}
	return &Engine{lex: lex, now: time.Now}
}

// Score recomputes all five scores from the lead's current attributes.
// The result is a pure function of the lead and the engine's clock reading,
// so rescoring an unchanged lead yields identical output.
func (e *Engine) Score(lead domain.Lead) Result {
	f := ExtractFeatures(lead, e.now())

	budget, budgetConf := e.estimateBudget(lead, f)
	orientation, orientationConf := e.classifyOrientation(f)

	return Result{
		MarketingScore:        e.marketingRelevance(lead, f),
		IntentScore:           e.purchaseIntent(lead, f),
		BudgetPotential:       budget,
		BudgetConfidence:      domain.ValidConfidence(budgetConf),
		SpendAuthorityScore:   e.spendAuthority(lead, f),
		BusinessOrientation:   domain.ValidOrientation(orientation),
		OrientationConfidence: domain.ValidConfidence(orientationConf),
		Version:               ScoreVersion,
	}
}

// MarketingRelevance scores how well a lead fits marketing-focused outreach.
func (e *Engine) MarketingRelevance(lead domain.Lead) int {
	return e.marketingRelevance(lead, ExtractFeatures(lead, e.now()))
}

// PurchaseIntent scores how likely a lead is to be actively buying.
func (e *Engine) PurchaseIntent(lead domain.Lead) int {
	return e.purchaseIntent(lead, ExtractFeatures(lead, e.now()))
}

// EstimateBudget scores a lead's budget potential with an evidence-based
// confidence bucket.
func (e *Engine) EstimateBudget(lead domain.Lead) (int, domain.Confidence) {
	return e.estimateBudget(lead, ExtractFeatures(lead, e.now()))
}

// SpendAuthority scores how much purchasing power the lead's role implies.
func (e *Engine) SpendAuthority(lead domain.Lead) int {
	return e.spendAuthority(lead, ExtractFeatures(lead, e.now()))
}

// ClassifyOrientation determines whether a lead's company sells to
// businesses, consumers, both, or cannot be determined.
func (e *Engine) ClassifyOrientation(lead domain.Lead) (domain.Orientation, domain.Confidence) {
	return e.classifyOrientation(ExtractFeatures(lead, e.now()))
}

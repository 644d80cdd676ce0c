package scoring

import (
	"testing"

	"leadrank_backend/internal/leads/domain"
)

func TestClassifyOrientation(t *testing.T) {
	tests := []struct {
		name           string
		lead           domain.Lead
		wantKind       domain.Orientation
		wantConfidence domain.Confidence
	}{
		{
			"personal email only",
			domain.Lead{Email: "jane@gmail.com"},
			domain.OrientationB2C,
			domain.ConfidenceMedium,
		},
		{
			"corporate email only",
			domain.Lead{Email: "jane@acme.com"},
			domain.OrientationB2B,
			domain.ConfidenceMedium,
		},
		{
			"stacked b2b evidence",
			domain.Lead{
				Email:   "jane@acme.com",
				Company: "Acme Solutions",
				Title:   "Enterprise Account Executive",
			},
			domain.OrientationB2B,
			domain.ConfidenceHigh,
		},
		{
			"b2c company without email",
			domain.Lead{Company: "Velvet Fashion Boutique"},
			domain.OrientationB2C,
			domain.ConfidenceLow,
		},
		{
			"personal email outweighs b2b keyword",
			domain.Lead{Email: "jane@gmail.com", Company: "Jane Consulting"},
			domain.OrientationB2C,
			domain.ConfidenceMedium,
		},
		{
			"balanced keywords without email",
			domain.Lead{Company: "Retail Solutions"},
			domain.OrientationMixed,
			domain.ConfidenceLow,
		},
		{
			"no evidence",
			domain.Lead{},
			domain.OrientationUnknown,
			domain.ConfidenceLow,
		},
	}

	e := newTestEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, confidence := e.ClassifyOrientation(tt.lead)
			if kind != tt.wantKind {
				t.Errorf("orientation = %s, want %s", kind, tt.wantKind)
			}
			if confidence != tt.wantConfidence {
				t.Errorf("confidence = %s, want %s", confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyOrientationMissingEmailCostsConfidence(t *testing.T) {
	e := newTestEngine()

	withEmail := domain.Lead{Email: "jane@acme.com", Company: "Acme Solutions", Title: "Enterprise Sales"}
	without := domain.Lead{Company: "Acme Solutions", Title: "Enterprise Sales"}

	kindA, confA := e.ClassifyOrientation(withEmail)
	kindB, confB := e.ClassifyOrientation(without)

	if kindA != domain.OrientationB2B || kindB != domain.OrientationB2B {
		t.Fatalf("both variants should classify B2B, got %s / %s", kindA, kindB)
	}
	if confA != domain.ConfidenceHigh {
		t.Errorf("with email confidence = %s, want High", confA)
	}
	if confB != domain.ConfidenceMedium && confB != domain.ConfidenceLow {
		t.Errorf("missing email should lower confidence, got %s", confB)
	}
}

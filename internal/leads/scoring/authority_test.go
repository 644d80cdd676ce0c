package scoring

import (
	"testing"

	"leadrank_backend/internal/leads/domain"
)

func TestSpendAuthoritySeniorityTiers(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		{"CEO", 50},
		{"CFO", 45},
		{"Chief Technology Officer", 40},
		{"VP of Sales", 30},
		{"Head of Design", 30},
		{"Marketing Manager", 15},
		{"Office Assistant", 5},
		{"", 5},
	}

	e := newTestEngine()
	for _, tt := range tests {
		got := e.SpendAuthority(domain.Lead{Title: tt.title})
		if got != tt.want {
			t.Errorf("title %q: score = %d, want %d", tt.title, got, tt.want)
		}
	}
}

func TestSpendAuthorityDepartmentBonusOnlyBelowSeniorTiers(t *testing.T) {
	e := newTestEngine()

	// Manager tier (15) qualifies for the department bonus.
	if got := e.SpendAuthority(domain.Lead{Title: "Procurement Manager"}); got != 35 {
		t.Errorf("procurement manager = %d, want 15+20", got)
	}
	if got := e.SpendAuthority(domain.Lead{Title: "Finance Manager"}); got != 30 {
		t.Errorf("finance manager = %d, want 15+15", got)
	}
	if got := e.SpendAuthority(domain.Lead{Title: "Operations Supervisor"}); got != 25 {
		t.Errorf("operations supervisor = %d, want 15+10", got)
	}

	// Senior tiers skip the department pass so nothing double-counts.
	if got := e.SpendAuthority(domain.Lead{Title: "VP of Procurement"}); got != 30 {
		t.Errorf("vp of procurement = %d, want tier 30 only", got)
	}
}

func TestSpendAuthorityCompanySize(t *testing.T) {
	e := newTestEngine()
	base := e.SpendAuthority(domain.Lead{Title: "Marketing Manager"})

	enterprise := e.SpendAuthority(domain.Lead{Title: "Marketing Manager", Company: "Acme Corp"})
	if enterprise-base != 15 {
		t.Errorf("enterprise bonus = %d, want 15", enterprise-base)
	}

	startup := e.SpendAuthority(domain.Lead{Title: "Marketing Manager", Company: "Nimbus Labs"})
	if startup-base != 5 {
		t.Errorf("startup bonus = %d, want 5", startup-base)
	}
}

func TestSpendAuthorityFounderOverridesCompanyMarkers(t *testing.T) {
	e := newTestEngine()

	// A founder gets the full company-size bonus even at a tiny startup.
	founder := e.SpendAuthority(domain.Lead{Title: "Founder", Company: "Nimbus Labs"})
	if founder != 65 {
		t.Fatalf("founder at startup = %d, want 50+15", founder)
	}
}

func TestSpendAuthorityValueTiers(t *testing.T) {
	tests := []struct {
		value float64
		want  int
	}{
		{60000, 15},
		{20000, 10},
		{5000, 5},
		{500, 0},
	}

	e := newTestEngine()
	base := e.SpendAuthority(domain.Lead{})
	for _, tt := range tests {
		got := e.SpendAuthority(domain.Lead{Value: tt.value})
		if got-base != tt.want {
			t.Errorf("value %v: bonus = %d, want %d", tt.value, got-base, tt.want)
		}
	}
}

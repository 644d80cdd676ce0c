package scoring

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed lexicons.yaml
var defaultLexiconYAML []byte

// Lexicons holds the static keyword tables the scorers match lead text
// against. Keeping them as data (rather than inline constants) lets the
// tables be tuned and tested without touching scorer logic.
type Lexicons struct {
	MarketingTitles      []string `yaml:"marketing_titles"`
	LeadershipTitles     []string `yaml:"leadership_titles"`
	DirectorTitles       []string `yaml:"director_titles"`
	ManagerTitles        []string `yaml:"manager_titles"`
	SalesTitles          []string `yaml:"sales_titles"`
	DecisionMakerTitles  []string `yaml:"decision_maker_titles"`
	OwnerFounderTitles   []string `yaml:"owner_founder_titles"`
	ExecutiveTitles      []string `yaml:"executive_titles"`
	SeniorFinanceTitles  []string `yaml:"senior_finance_titles"`
	CLevelTitles         []string `yaml:"clevel_titles"`
	FinanceTitles        []string `yaml:"finance_titles"`
	MarketingCompany     []string `yaml:"marketing_company_keywords"`
	TechCompany          []string `yaml:"tech_company_keywords"`
	MarketingInsights    []string `yaml:"marketing_insight_keywords"`
	MarketingTags        []string `yaml:"marketing_tags"`
	PersonalEmailDomains []string `yaml:"personal_email_domains"`
	EnterpriseMarkers    []string `yaml:"enterprise_markers"`
	StartupMarkers       []string `yaml:"startup_markers"`
	B2BCompany           []string `yaml:"b2b_company_keywords"`
	B2CCompany           []string `yaml:"b2c_company_keywords"`
	B2BTitles            []string `yaml:"b2b_title_keywords"`
	B2CTitles            []string `yaml:"b2c_title_keywords"`
	PurchasingDepts      []string `yaml:"purchasing_departments"`
	FinanceDepts         []string `yaml:"finance_departments"`
	OperationsDepts      []string `yaml:"operations_departments"`
}

var (
	defaultLexicons     *Lexicons
	defaultLexiconsOnce sync.Once
)

// DefaultLexicons returns the embedded keyword tables.
func DefaultLexicons() *Lexicons {
	defaultLexiconsOnce.Do(func() {
		lex := &Lexicons{}
		if err := yaml.Unmarshal(defaultLexiconYAML, lex); err != nil {
			// The embedded tables ship with the binary; a parse failure is a
			// build defect, not a runtime condition.
			panic("scoring: embedded lexicons are invalid: " + err.Error())
		}
		defaultLexicons = lex
	})
	return defaultLexicons
}

// LoadLexicons reads keyword tables from a YAML file. Empty lists fall back
// to the embedded defaults so an override file only needs the tables it
// changes.
func LoadLexicons(path string) (*Lexicons, error) {
	if path == "" {
		return DefaultLexicons(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicons: %w", err)
	}

	lex := &Lexicons{}
	if err := yaml.Unmarshal(data, lex); err != nil {
		return nil, fmt.Errorf("parse lexicons: %w", err)
	}

	lex.fillDefaults(DefaultLexicons())
	return lex, nil
}

func (l *Lexicons) fillDefaults(def *Lexicons) {
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}

	fill(&l.MarketingTitles, def.MarketingTitles)
	fill(&l.LeadershipTitles, def.LeadershipTitles)
	fill(&l.DirectorTitles, def.DirectorTitles)
	fill(&l.ManagerTitles, def.ManagerTitles)
	fill(&l.SalesTitles, def.SalesTitles)
	fill(&l.DecisionMakerTitles, def.DecisionMakerTitles)
	fill(&l.OwnerFounderTitles, def.OwnerFounderTitles)
	fill(&l.ExecutiveTitles, def.ExecutiveTitles)
	fill(&l.SeniorFinanceTitles, def.SeniorFinanceTitles)
	fill(&l.CLevelTitles, def.CLevelTitles)
	fill(&l.FinanceTitles, def.FinanceTitles)
	fill(&l.MarketingCompany, def.MarketingCompany)
	fill(&l.TechCompany, def.TechCompany)
	fill(&l.MarketingInsights, def.MarketingInsights)
	fill(&l.MarketingTags, def.MarketingTags)
	fill(&l.PersonalEmailDomains, def.PersonalEmailDomains)
	fill(&l.EnterpriseMarkers, def.EnterpriseMarkers)
	fill(&l.StartupMarkers, def.StartupMarkers)
	fill(&l.B2BCompany, def.B2BCompany)
	fill(&l.B2CCompany, def.B2CCompany)
	fill(&l.B2BTitles, def.B2BTitles)
	fill(&l.B2CTitles, def.B2CTitles)
	fill(&l.PurchasingDepts, def.PurchasingDepts)
	fill(&l.FinanceDepts, def.FinanceDepts)
	fill(&l.OperationsDepts, def.OperationsDepts)
}

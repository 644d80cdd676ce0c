package scoring

import "leadrank_backend/internal/leads/domain"

// Evidence weights for the orientation tallies.
const (
	orientationDomainWeight  = 3.0
	orientationKeywordWeight = 2.0
)

// classifyOrientation builds two independent running tallies from weighted
// evidence and picks the stronger side. A missing email reduces confidence
// but never blocks classification.
func (e *Engine) classifyOrientation(f Features) (domain.Orientation, domain.Confidence) {
	var b2b, b2c, confidence float64

	if f.EmailDomain == "" {
		confidence -= 1
	} else if equalsAny(f.EmailDomain, e.lex.PersonalEmailDomains) {
		b2c += orientationDomainWeight
		confidence += 2
	} else {
		b2b += orientationDomainWeight
		confidence += 2
	}

	if containsAny(f.Company, e.lex.B2BCompany) {
		b2b += orientationKeywordWeight
		confidence += 1
	}
	if containsAny(f.Company, e.lex.B2CCompany) {
		b2c += orientationKeywordWeight
		confidence += 1
	}

	if containsAny(f.Title, e.lex.B2BTitles) {
		b2b += orientationKeywordWeight
		confidence += 1
	}
	if containsAny(f.Title, e.lex.B2CTitles) {
		b2c += orientationKeywordWeight
		confidence += 1
	}

	orientation := domain.OrientationUnknown
	switch {
	case b2b > b2c:
		orientation = domain.OrientationB2B
	case b2c > b2b:
		orientation = domain.OrientationB2C
	case b2b > 0:
		orientation = domain.OrientationMixed
	}

	return orientation, orientationConfidenceBucket(confidence)
}

func orientationConfidenceBucket(confidence float64) domain.Confidence {
	switch {
	case confidence >= 4:
		return domain.ConfidenceHigh
	case confidence >= 2:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func equalsAny(s string, values []string) bool {
	for _, value := range values {
		if s == value {
			return true
		}
	}
	return false
}

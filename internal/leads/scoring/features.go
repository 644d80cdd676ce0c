package scoring

import (
	"math"
	"strings"
	"time"

	"leadrank_backend/internal/leads/domain"
)

// NeverContacted is the DaysSinceContact sentinel for leads that have no
// recorded contact. It compares greater than any real recency threshold.
const NeverContacted = math.MaxInt32

// Features holds the normalized primitives the scorers consume. Extraction
// is total: missing fields yield empty-string/sentinel defaults so the
// scorers degrade gracefully instead of erroring.
type Features struct {
	Title            string
	Company          string
	EmailDomain      string
	DaysSinceContact int
}

// ExtractFeatures normalizes a raw lead against a reference time.
func ExtractFeatures(lead domain.Lead, now time.Time) Features {
	f := Features{
		Title:            strings.ToLower(strings.TrimSpace(lead.Title)),
		Company:          strings.ToLower(strings.TrimSpace(lead.Company)),
		DaysSinceContact: NeverContacted,
	}

	if at := strings.LastIndex(lead.Email, "@"); at >= 0 && at < len(lead.Email)-1 {
		f.EmailDomain = strings.ToLower(lead.Email[at+1:])
	}

	if lead.LastContactedAt != nil {
		days := int(now.Sub(*lead.LastContactedAt).Hours() / 24)
		if days < 0 {
			days = 0
		}
		f.DaysSinceContact = days
	}

	return f
}

// containsAny checks if s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// containsToken checks if any whitespace/punctuation-delimited token of s
// equals one of the keywords. Used for short markers like "inc" where plain
// substring matching would misfire.
func containsToken(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	for _, token := range tokens {
		for _, kw := range keywords {
			if token == kw {
				return true
			}
		}
	}
	return false
}

// anyFieldContains reports whether any of the given text fields matches the
// keyword list.
func anyFieldContains(fields []string, keywords []string) bool {
	for _, field := range fields {
		if containsAny(strings.ToLower(field), keywords) {
			return true
		}
	}
	return false
}

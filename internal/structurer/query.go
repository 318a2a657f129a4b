package structurer

import (
	"strings"
	"unicode/utf8"

	"github.com/unmai/unmai/internal/model"
)

const (
	// maxQueryLen caps a plain search query
	maxQueryLen = 200
	// maxBilingualLen caps a query carrying a regional-language tail
	maxBilingualLen = 400
	// minQueryLen below which entities are appended for context
	minQueryLen = 50
	// longStatementLen above which a focused entity+keyword query is
	// built instead of passing the whole statement verbatim
	longStatementLen = 120

	maxQueryEntities  = 3
	maxQueryKeywords  = 3
	maxBilingualTerms = 5
	maxAlternateTerms = 6
)

// vague time periods that add no search signal
var vagueTimePeriods = map[string]bool{
	"recent": true, "now": true, "current": true, "currently": true,
	"today": true, "recently": true,
}

// BuildPrimaryQuery composes the main research query from a structured
// claim. The result never exceeds maxQueryLen for plain queries or
// maxBilingualLen when a regional-language tail is appended.
func BuildPrimaryQuery(sc model.StructuredClaim) string {
	query := composeQuery(sc)

	// Local coverage of regional claims is typically in the regional
	// language; append salient original-language terms so the search can
	// match it.
	if sc.GeographicScope.IsRegional() && hasNonLatin(sc.OriginalInput) {
		if terms := regionalTerms(sc.OriginalInput, maxBilingualTerms); terms != "" {
			if query == "" {
				query = truncateClean(terms, maxBilingualLen)
			} else {
				query = truncateClean(query+" | "+terms, maxBilingualLen)
			}
		}
	}

	if query == "" {
		query = truncateClean(sc.OriginalInput, maxQueryLen)
	}

	return strings.TrimSpace(query)
}

func composeQuery(sc model.StructuredClaim) string {
	// Long statements with known entities get a compact focused query:
	// the statement itself is too diffuse to match articles.
	if len(sc.Statement) > longStatementLen && len(sc.Entities) > 0 {
		return focusedQuery(sc)
	}

	parts := []string{}
	if sc.Statement != "" {
		parts = append(parts, sc.Statement)
	}
	if sc.TimePeriod != "" && !vagueTimePeriods[strings.ToLower(sc.TimePeriod)] {
		parts = append(parts, sc.TimePeriod)
	}
	if sc.Context != "" && len(sc.Context) < 100 {
		parts = append(parts, sc.Context)
	}

	query := strings.Join(parts, " ")

	if len(query) < minQueryLen && len(sc.Entities) > 0 {
		query = strings.TrimSpace(query + " " + strings.Join(capped(sc.Entities, maxQueryEntities), " "))
	}

	if len(query) > maxQueryLen {
		query = truncateClean(sc.Statement, maxQueryLen)
	}

	return query
}

func focusedQuery(sc model.StructuredClaim) string {
	parts := capped(sc.Entities, maxQueryEntities)
	if sc.Location != "" {
		parts = append(parts, sc.Location)
	}
	parts = append(parts, Keywords(sc.Statement, maxQueryKeywords)...)
	return truncateClean(strings.Join(parts, " "), maxQueryLen)
}

// BuildAlternateQuery builds the lower-fidelity fallback query used when
// the primary query's research assessed as irrelevant.
func BuildAlternateQuery(sc model.StructuredClaim) string {
	if hasNonLatin(sc.OriginalInput) {
		if terms := regionalTerms(sc.OriginalInput, maxAlternateTerms); terms != "" {
			return truncateClean(terms, maxQueryLen)
		}
	}

	parts := capped(sc.Entities, maxQueryEntities)
	parts = append(parts, Keywords(sc.Statement, maxQueryKeywords)...)
	if sc.Location != "" {
		parts = append(parts, sc.Location)
	}
	if sc.TimePeriod != "" && !vagueTimePeriods[strings.ToLower(sc.TimePeriod)] {
		parts = append(parts, sc.TimePeriod)
	}

	query := truncateClean(strings.Join(parts, " "), maxQueryLen)
	if query == "" {
		query = truncateClean(sc.OriginalInput, maxQueryLen)
	}
	return strings.TrimSpace(query)
}

// Keywords extracts up to max claim-specific keywords from a statement by
// stopword removal. Words of two characters or fewer are dropped.
func Keywords(statement string, max int) []string {
	var keywords []string
	seen := make(map[string]bool)

	for _, word := range strings.Fields(statement) {
		w := strings.Trim(word, ".,;:!?\"'()[]")
		lower := strings.ToLower(w)
		if len(w) <= 2 || stopwords[lower] || seen[lower] {
			continue
		}
		seen[lower] = true
		keywords = append(keywords, w)
		if len(keywords) >= max {
			break
		}
	}

	return keywords
}

// regionalTerms picks salient words (>3 chars) from original-language
// input, capped at max.
func regionalTerms(text string, max int) string {
	var terms []string
	for _, word := range strings.Fields(text) {
		if len([]rune(word)) > 3 {
			terms = append(terms, word)
			if len(terms) >= max {
				break
			}
		}
	}
	return strings.Join(terms, " ")
}

func capped(items []string, max int) []string {
	if len(items) > max {
		items = items[:max]
	}
	return append([]string(nil), items...)
}

// truncateClean hard-caps s at max bytes without splitting a multi-byte
// rune.
func truncateClean(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return strings.TrimSpace(s[:max])
}

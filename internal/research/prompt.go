package research

import (
	"fmt"
	"sort"
	"strings"

	"github.com/unmai/unmai/internal/model"
)

func systemPrompt(claim model.StructuredClaim) string {
	var b strings.Builder

	b.WriteString("You are a professional fact-checking researcher with access to real-time web search. ")
	b.WriteString("Only cite credible sources. Never speculate beyond what sources state.\n\n")

	b.WriteString("SOURCE PRIORITY for this claim:\n")
	b.WriteString(sourceGuidance(claim.ClaimType))
	b.WriteString("\n")
	b.WriteString(scopeGuidance(claim.GeographicScope))

	return b.String()
}

// sourceGuidance returns per-category guidance on which sources to prefer
func sourceGuidance(t model.ClaimType) string {
	switch t {
	case model.ClaimTypeProtestArrest, model.ClaimTypeCrime:
		return "1. Police or court statements and official press releases\n" +
			"2. Regional newspapers and TV channels covering the area\n" +
			"3. Wire services (PTI, ANI) and national dailies\n"
	case model.ClaimTypeAccidentDeath:
		return "1. Official statements from authorities (police, fire, hospitals)\n" +
			"2. Regional news outlets with on-the-ground reporting\n" +
			"3. Wire services and national outlets\n"
	case model.ClaimTypeGovernmentScheme:
		return "1. Official government portals, gazettes, and press releases\n" +
			"2. The responsible department's own announcements\n" +
			"3. Established newspapers reporting the announcement\n"
	case model.ClaimTypeHeritageEnvironment:
		return "1. Official bodies (ASI, forest and environment departments, UNESCO)\n" +
			"2. Scientific and conservation organizations\n" +
			"3. Established newspapers\n"
	case model.ClaimTypePolitics:
		return "1. Election Commission and official records\n" +
			"2. Wire services and major national newspapers\n" +
			"3. Regional press for state and local politics\n"
	case model.ClaimTypeHealthScience:
		return "1. Peer-reviewed journals and health authorities (WHO, ICMR)\n" +
			"2. Government health departments\n" +
			"3. Science desks of established outlets\n"
	default:
		return "1. Wire services (Reuters, AP, PTI, ANI)\n" +
			"2. Established national and regional newspapers\n" +
			"3. Official portals relevant to the subject\n"
	}
}

func scopeGuidance(scope model.GeographicScope) string {
	if scope.IsRegional() {
		return "COVERAGE SCOPE: This is a local/regional claim. Regional-language " +
			"outlets and district editions are the most likely places it is covered. " +
			"IMPORTANT: the absence of national or international coverage of a local " +
			"event is NOT informative - small events are routinely covered only by " +
			"local press, if at all. Report only what you actually find.\n"
	}
	return "COVERAGE SCOPE: This is a national/international claim. Major outlets " +
		"would be expected to cover it if true and significant.\n"
}

func userPrompt(query string, claim model.StructuredClaim, leads []model.SocialPost) string {
	entities := "N/A"
	if len(claim.Entities) > 0 {
		entities = strings.Join(claim.Entities, ", ")
	}
	timePeriod := claim.TimePeriod
	if timePeriod == "" {
		timePeriod = "Not specified"
	}
	contextText := claim.Context
	if contextText == "" {
		contextText = "None provided"
	}
	location := claim.Location
	if location == "" {
		location = "Not specified"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Research the following claim using credible sources.

Claim: %s

Additional Details:
- Key Entities: %s
- Location: %s
- Time Period: %s
- Context: %s

Search Query: %s
`, claim.Statement, entities, location, timePeriod, contextText, query)

	if block := leadsBlock(leads); block != "" {
		b.WriteString("\n")
		b.WriteString(block)
	}

	b.WriteString(`
Provide:
1. A summary of verified information from credible sources
2. The coverage scope you observed (which level of media covered this)
3. Key findings (3-5 bullet points)
4. Credible sources used, with URLs when available
5. Any limitations of this research

Format your response EXACTLY as:
SUMMARY: [brief summary]
SCOPE: [coverage scope observed]
FINDINGS:
- [finding 1]
- [finding 2]
SOURCES:
- [source 1]
- [source 2]
RESEARCH_LIMITATIONS: [limitations, or "None"]`)

	return b.String()
}

// leadsBlock renders social-evidence posts as research hints grouped by
// author tier, highest priority first.
func leadsBlock(leads []model.SocialPost) string {
	if len(leads) == 0 {
		return ""
	}

	byCategory := make(map[model.AuthorCategory][]model.SocialPost)
	for _, p := range leads {
		byCategory[p.AuthorCategory] = append(byCategory[p.AuthorCategory], p)
	}

	categories := make([]model.AuthorCategory, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Priority() < categories[j].Priority()
	})

	var b strings.Builder
	b.WriteString("LEADS from social media discussion (hints only, NOT evidence):\n")
	for _, c := range categories {
		fmt.Fprintf(&b, "[%s]\n", c)
		for _, p := range byCategory[c] {
			text := p.Text
			if runes := []rune(text); len(runes) > 240 {
				text = string(runes[:240]) + "..."
			}
			fmt.Fprintf(&b, "- @%s: %s\n", p.AuthorHandle, text)
		}
	}
	return b.String()
}

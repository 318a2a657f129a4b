package research

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/parse"
)

// Section labels of the structured research reply
const (
	labelSummary     = "SUMMARY"
	labelScope       = "SCOPE"
	labelFindings    = "FINDINGS"
	labelSources     = "SOURCES"
	labelLimitations = "RESEARCH_LIMITATIONS"
)

var replyLabels = []string{labelSummary, labelScope, labelFindings, labelSources, labelLimitations}

// Gatherer performs deep research on a claim through the hosted research
// capability. It never returns an error: any failure degrades to a
// clearly-labeled fallback evidence value.
type Gatherer struct {
	completer Completer
	logger    *zap.Logger
}

// NewGatherer creates a research gatherer. completer may be nil when the
// capability is unconfigured.
func NewGatherer(completer Completer, logger *zap.Logger) *Gatherer {
	return &Gatherer{completer: completer, logger: logger}
}

// Research runs deep research for the query. Optional leads from social
// evidence are embedded as research hints grouped by author tier.
func (g *Gatherer) Research(ctx context.Context, query string, claim model.StructuredClaim, leads []model.SocialPost) model.ResearchEvidence {
	if g.completer == nil {
		g.logger.Warn("research capability not configured")
		return model.UnconfiguredResearch(query)
	}

	system := systemPrompt(claim)
	user := userPrompt(query, claim, leads)

	reply, err := g.completer.Complete(ctx, system, user)
	if err != nil {
		g.logger.Warn("deep research failed", zap.String("query", query), zap.Error(err))
		return model.FallbackResearch(query, err.Error())
	}

	return parseReply(reply)
}

func parseReply(reply string) model.ResearchEvidence {
	sections := parse.ParseSections(reply, replyLabels)

	ev := model.ResearchEvidence{
		Summary:     sections.Text(labelSummary),
		Findings:    sections.Items(labelFindings),
		Sources:     sections.Items(labelSources),
		Scope:       sections.Text(labelScope),
		Limitations: sections.Text(labelLimitations),
	}
	if ev.Findings == nil {
		ev.Findings = []string{}
	}
	if ev.Sources == nil {
		ev.Sources = []string{}
	}

	// A reply with no recognized labels still carries information; keep
	// it as the summary rather than discarding it.
	if ev.Summary == "" && len(ev.Findings) == 0 && len(ev.Sources) == 0 {
		ev.Summary = strings.TrimSpace(reply)
	}

	return ev
}

// noResultPhrases mark research replies that technically succeeded but
// found nothing usable.
var noResultPhrases = []string{
	"no specific articles",
	"no articles were found",
	"no relevant results",
	"no relevant articles",
	"no information found",
	"no specific information",
	"could not find",
	"couldn't find",
	"unable to find",
	"no credible sources",
	"no news coverage",
	"no search results",
}

// AssessRelevance decides whether research evidence is usable: false when
// both findings and sources are empty, or when the summary matches a
// "nothing found" phrase. A false assessment triggers one retry with the
// alternate query.
func AssessRelevance(ev model.ResearchEvidence) bool {
	if len(ev.Findings) == 0 && len(ev.Sources) == 0 {
		return false
	}

	summary := strings.ToLower(ev.Summary)
	for _, phrase := range noResultPhrases {
		if strings.Contains(summary, phrase) {
			return false
		}
	}

	return true
}

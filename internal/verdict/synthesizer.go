package verdict

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/llm"
	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/parse"
	"github.com/unmai/unmai/internal/research"
)

var verdictLabels = []string{
	"CATEGORY", "STATUS", "EXPLANATION", "KEY_FINDINGS", "VERIFIED_SOURCES",
}

// Synthesizer turns gathered evidence into a final verdict
type Synthesizer struct {
	reasoner   llm.Reasoner
	maxRetries int
	logger     *zap.Logger
}

// NewSynthesizer creates a verdict synthesizer
func NewSynthesizer(reasoner llm.Reasoner, maxRetries int, logger *zap.Logger) *Synthesizer {
	if maxRetries <= 0 {
		maxRetries = 3
	}
	return &Synthesizer{
		reasoner:   reasoner,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Synthesize weighs the evidence and asks the reasoning model for a
// verdict. Upstream overload is retried; on exhaustion the verdict is
// UNVERIFIED carrying the error text, never an error return.
func (s *Synthesizer) Synthesize(ctx context.Context, claimText string, claim model.StructuredClaim, researchEv model.ResearchEvidence, socialEv model.SocialEvidence) model.Verdict {
	researchRelevant := research.AssessRelevance(researchEv)
	socialElevated := !researchRelevant && socialEv.HasCredibleLink()

	prompt := verdictPrompt(claimText, claim, researchEv, socialEv, researchRelevant, socialElevated)

	reply, err := llm.WithRetry(ctx, s.maxRetries, s.logger, func(ctx context.Context) (string, error) {
		return s.reasoner.Send(ctx, prompt)
	})
	if err != nil {
		s.logger.Warn("verdict generation failed", zap.Error(err))
		return model.Verdict{
			Status:      model.StatusUnverified,
			Explanation: "Unable to generate verdict. " + err.Error(),
			Sources:     researchEv.Sources,
		}
	}

	verdict := parseVerdict(reply)
	if len(verdict.Sources) == 0 {
		verdict.Sources = researchEv.Sources
	}

	// FALSE demands positive contradicting evidence. For event claims a
	// verdict reached with no findings, no sources, and no credible social
	// links cannot have any, so it is demoted. Established-knowledge claims
	// are exempt: there the model's own documented knowledge contradicts.
	if verdict.Status == model.StatusFalse &&
		verdict.Category != model.CategoryEstablishedKnowledge &&
		len(researchEv.Findings) == 0 && len(researchEv.Sources) == 0 &&
		!socialEv.HasCredibleLink() {
		s.logger.Warn("demoting FALSE verdict reached without evidence",
			zap.String("claim", claimText))
		verdict.Status = model.StatusUnverified
		verdict.Explanation = "No contradicting evidence was found; the claim cannot be marked false on absence of coverage alone. " + verdict.Explanation
	}

	return verdict
}

// parseVerdict reads the labeled reply into a Verdict. Missing or
// unrecognized labels fall back to UNVERIFIED.
func parseVerdict(reply string) model.Verdict {
	sections := parse.ParseSections(reply, verdictLabels)

	verdict := model.Verdict{
		Status:      parseStatus(sections.Text("STATUS")),
		Explanation: sections.Text("EXPLANATION"),
		Category:    parseCategory(sections.Text("CATEGORY")),
		Findings:    sections.Items("KEY_FINDINGS"),
		Sources:     sections.Items("VERIFIED_SOURCES"),
	}
	if verdict.Explanation == "" {
		verdict.Explanation = "Unable to verify this claim based on available information."
	}
	return verdict
}

// parseStatus matches the status as an exact token so hedged replies
// like "NOT TRUE" or "UNTRUE" are not read as TRUE.
func parseStatus(text string) model.Status {
	fields := strings.Fields(strings.ToUpper(text))
	for i, f := range fields {
		switch strings.Trim(f, ".,;:!?\"'()*") {
		case "FALSE":
			return model.StatusFalse
		case "TRUE":
			if i > 0 {
				prev := strings.Trim(fields[i-1], ".,;:!?\"'()*")
				if prev == "NOT" || prev == "NEVER" {
					continue
				}
			}
			return model.StatusTrue
		}
	}
	return model.StatusUnverified
}

func parseCategory(text string) model.Category {
	trimmed := strings.ToUpper(strings.TrimSpace(text))
	switch {
	case strings.HasPrefix(trimmed, "A"):
		return model.CategorySpecificEvent
	case strings.HasPrefix(trimmed, "B"):
		return model.CategoryEstablishedKnowledge
	default:
		return model.CategoryMixed
	}
}

package verdict

import (
	"fmt"
	"strings"

	"github.com/unmai/unmai/internal/model"
)

func verdictPrompt(claimText string, claim model.StructuredClaim, researchEv model.ResearchEvidence, socialEv model.SocialEvidence, researchRelevant, socialElevated bool) string {
	var b strings.Builder

	b.WriteString("You are a professional fact-checker. Based on the evidence below, evaluate the truthfulness of this claim.\n\n")
	fmt.Fprintf(&b, "ORIGINAL INPUT: %q\n\n", claimText)

	b.WriteString("STRUCTURED CLAIM ANALYSIS:\n")
	fmt.Fprintf(&b, "- Main Claim: %s\n", claim.Statement)
	fmt.Fprintf(&b, "- Claim Type: %s\n", claim.ClaimType)
	fmt.Fprintf(&b, "- Geographic Scope: %s\n", claim.GeographicScope)
	fmt.Fprintf(&b, "- Key Entities: %s\n", orNA(strings.Join(claim.Entities, ", ")))
	fmt.Fprintf(&b, "- Time Period: %s\n", orNA(claim.TimePeriod))
	fmt.Fprintf(&b, "- Context: %s\n\n", orNA(claim.Context))

	if LikelyPressRelease(claimText) {
		b.WriteString("NOTE: The claim text has the characteristics of an official press release or government notice ")
		b.WriteString("(contact numbers, designations, formatted dates). Such documents often circulate before any news ")
		b.WriteString("outlet indexes them. Do NOT treat the absence of online coverage as evidence of falsity here.\n\n")
	}

	researchWeight := "LOW (research did not return relevant results)"
	if researchRelevant {
		researchWeight = "HIGH"
	}
	fmt.Fprintf(&b, "DEEP RESEARCH - EVIDENCE WEIGHT: %s\n", researchWeight)
	fmt.Fprintf(&b, "RESEARCH SUMMARY:\n%s\n\n", orText(researchEv.Summary, "No research data available"))
	fmt.Fprintf(&b, "KEY FINDINGS:\n%s\n\n", bulleted(researchEv.Findings, "No specific findings"))
	fmt.Fprintf(&b, "CREDIBLE SOURCES:\n%s\n\n", bulleted(researchEv.Sources, "No sources available"))

	socialWeight := "LOW (supplementary only)"
	if socialElevated {
		socialWeight = "ELEVATED (deep research returned nothing relevant and social posts link to credible sources)"
	}
	fmt.Fprintf(&b, "SOCIAL MEDIA CONTEXT - EVIDENCE WEIGHT: %s\n", socialWeight)
	b.WriteString(socialContext(socialEv))
	b.WriteString("\n\n")

	b.WriteString(`EVIDENCE WEIGHTING RULES:
1. Deep research is your primary evidence source unless its weight above is LOW.
2. Social-media-linked external sources may reinforce or supplement research findings.
3. Ignore the social media context entirely if it provides no credible external links.
4. NEVER use engagement metrics (likes, reposts, views) as evidence of truth.
5. NEVER treat social media popularity or virality as proof of accuracy.

First, classify the claim:
- Category A: a specific event or incident. Requires corroboration from external sources.
- Category B: established reference knowledge (science, geography, history). May be confirmed
  from your own well-documented knowledge even without a fresh citation.
- Category C: a mix of both.

Then determine the verdict under these STRICT criteria:

TRUE - only when:
- Credible sources explicitly CONFIRM the claim with direct evidence (Category A or C), or
- The claim contradicts nothing and is confidently confirmed by well-documented general
  knowledge (Category B).

FALSE - only when:
- Credible sources explicitly CONTRADICT the claim with direct evidence, or
- Category B: the claim confidently contradicts well-documented general knowledge.
- There must be POSITIVE EVIDENCE that the opposite is true.
- NEVER mark FALSE just because no sources or no coverage were found.

UNVERIFIED - for all of these situations:
- No credible sources cover the topic at all.
- Sources discuss related topics but neither confirm nor deny the specific claim.
- "No reports found" or "unable to verify" means UNVERIFIED, not FALSE.
- Local events not covered by major media are UNVERIFIED, not FALSE.
- Only partial information is available, or general knowledge is not confident.

CRITICAL RULES:
1. "No sources confirm X" does NOT mean X is false. That is UNVERIFIED.
2. To mark FALSE you MUST have evidence proving the opposite is true.
3. When torn between UNVERIFIED and FALSE, choose UNVERIFIED.
4. For Category B, when torn between TRUE and UNVERIFIED, choose TRUE if the knowledge is confident.

Format your response EXACTLY as:
CATEGORY: [A, B, or C]
STATUS: [TRUE, FALSE, or UNVERIFIED]
EXPLANATION: [2-3 factual sentences based on the evidence]
KEY_FINDINGS:
- [finding]
VERIFIED_SOURCES:
- [source URL]
`)

	return b.String()
}

// socialContext renders the social evidence block of the verdict prompt
func socialContext(ev model.SocialEvidence) string {
	if ev.Err != "" {
		return "Social media analysis unavailable: " + ev.Err
	}
	if !ev.HasRelevantPosts {
		return orText(ev.AnalysisNote, "No social media analysis available.")
	}

	parts := []string{ev.AnalysisNote}
	if ev.DiscussionSummary != "" {
		parts = append(parts, "", "Discussion Context: "+ev.DiscussionSummary)
	}

	if len(ev.ExternalSources) > 0 {
		parts = append(parts, "", "External Sources Found via Social Media:")
		for _, s := range ev.ExternalSources {
			label := s.Title
			if label == "" {
				label = s.URL
			}
			parts = append(parts, fmt.Sprintf("- [%s] %s: %s",
				strings.ToUpper(string(s.CredibilityTier)), s.Domain, label))
		}
	} else {
		parts = append(parts, "", "External Sources Found via Social Media: None")
	}

	return strings.Join(parts, "\n")
}

func bulleted(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}

func orNA(s string) string {
	return orText(s, "N/A")
}

func orText(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

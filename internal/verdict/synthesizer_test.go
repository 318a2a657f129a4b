package verdict

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/llm"
	"github.com/unmai/unmai/internal/model"
)

type fakeReasoner struct {
	replies []string
	errs    []error
	prompts []string
}

func (f *fakeReasoner) Name() string { return "fake" }

func (f *fakeReasoner) Send(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	i := len(f.prompts) - 1
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	if i < len(f.replies) {
		return f.replies[i], nil
	}
	return "", nil
}

func relevantResearch() model.ResearchEvidence {
	return model.ResearchEvidence{
		Summary:  "Multiple outlets confirmed the event.",
		Findings: []string{"The event took place on 12 March"},
		Sources:  []string{"https://thehindu.com/article"},
	}
}

func TestSynthesize_ParsesLabeledReply(t *testing.T) {
	reasoner := &fakeReasoner{replies: []string{`CATEGORY: A
STATUS: TRUE
EXPLANATION: Two credible outlets reported the event directly.
KEY_FINDINGS:
- The event took place on 12 March
VERIFIED_SOURCES:
- https://thehindu.com/article`}}

	s := NewSynthesizer(reasoner, 3, zap.NewNop())
	v := s.Synthesize(context.Background(), "claim", model.StructuredClaim{Statement: "claim"}, relevantResearch(), model.SocialEvidence{})

	if v.Status != model.StatusTrue || v.Category != model.CategorySpecificEvent {
		t.Errorf("status=%s category=%s", v.Status, v.Category)
	}
	if len(v.Findings) != 1 || len(v.Sources) != 1 {
		t.Errorf("findings=%v sources=%v", v.Findings, v.Sources)
	}
	if !strings.Contains(v.Explanation, "credible outlets") {
		t.Errorf("explanation: %q", v.Explanation)
	}
}

func TestSynthesize_FalseWithoutEvidenceDemoted(t *testing.T) {
	reasoner := &fakeReasoner{replies: []string{`CATEGORY: A
STATUS: FALSE
EXPLANATION: No coverage was found, so the event likely never happened.`}}

	s := NewSynthesizer(reasoner, 3, zap.NewNop())
	empty := model.ResearchEvidence{Summary: "No specific articles were found", Findings: []string{}, Sources: []string{}}
	v := s.Synthesize(context.Background(), "claim", model.StructuredClaim{}, empty, model.SocialEvidence{})

	if v.Status != model.StatusUnverified {
		t.Errorf("status = %s, want UNVERIFIED (absence of coverage is not contradiction)", v.Status)
	}
	if !strings.Contains(v.Explanation, "cannot be marked false") {
		t.Errorf("explanation: %q", v.Explanation)
	}
}

func TestSynthesize_EstablishedKnowledgeFalseKept(t *testing.T) {
	reasoner := &fakeReasoner{replies: []string{`CATEGORY: B
STATUS: FALSE
EXPLANATION: The Earth is an oblate spheroid, as established by centuries of observation.`}}

	s := NewSynthesizer(reasoner, 3, zap.NewNop())
	empty := model.ResearchEvidence{Summary: "No articles found", Findings: []string{}, Sources: []string{}}
	v := s.Synthesize(context.Background(), "The Earth is flat", model.StructuredClaim{Statement: "The Earth is flat"}, empty, model.SocialEvidence{})

	if v.Status != model.StatusFalse {
		t.Errorf("status = %s, want FALSE for confidently contradicted reference knowledge", v.Status)
	}
	if v.Category != model.CategoryEstablishedKnowledge {
		t.Errorf("category = %s", v.Category)
	}
}

func TestSynthesize_FalseWithContradictingEvidenceKept(t *testing.T) {
	reasoner := &fakeReasoner{replies: []string{`CATEGORY: A
STATUS: FALSE
EXPLANATION: Official results show a different winner.
VERIFIED_SOURCES:
- https://eci.gov.in/results`}}

	s := NewSynthesizer(reasoner, 3, zap.NewNop())
	contradicting := model.ResearchEvidence{
		Summary:  "Official results contradict the claim.",
		Findings: []string{"The election was won by the other candidate"},
		Sources:  []string{"https://eci.gov.in/results"},
	}
	v := s.Synthesize(context.Background(), "claim", model.StructuredClaim{}, contradicting, model.SocialEvidence{})

	if v.Status != model.StatusFalse {
		t.Errorf("status = %s, want FALSE", v.Status)
	}
}

func TestSynthesize_RetryExhaustionYieldsUnverified(t *testing.T) {
	overloaded := llm.NewError(llm.ClassOverloaded, 503, "model overloaded", nil)
	reasoner := &fakeReasoner{errs: []error{overloaded, overloaded}}

	s := NewSynthesizer(reasoner, 2, zap.NewNop())
	v := s.Synthesize(context.Background(), "claim", model.StructuredClaim{}, relevantResearch(), model.SocialEvidence{})

	if v.Status != model.StatusUnverified {
		t.Errorf("status = %s, want UNVERIFIED", v.Status)
	}
	if !strings.Contains(v.Explanation, "model overloaded") {
		t.Errorf("explanation must carry the upstream error: %q", v.Explanation)
	}
	if len(v.Sources) != 1 {
		t.Errorf("sources should fall back to research sources: %v", v.Sources)
	}
}

func TestSynthesize_EvidenceWeightsInPrompt(t *testing.T) {
	tests := []struct {
		name         string
		research     model.ResearchEvidence
		social       model.SocialEvidence
		wantResearch string
		wantSocial   string
	}{
		{
			name:         "relevant research stays primary",
			research:     relevantResearch(),
			social:       model.SocialEvidence{},
			wantResearch: "EVIDENCE WEIGHT: HIGH",
			wantSocial:   "EVIDENCE WEIGHT: LOW",
		},
		{
			name:     "credible social links elevated when research empty",
			research: model.ResearchEvidence{Findings: []string{}, Sources: []string{}},
			social: model.SocialEvidence{
				HasRelevantPosts: true,
				ExternalSources: []model.ExternalSource{
					{Domain: "thehindu.com", CredibilityTier: model.TierSecondary},
				},
			},
			wantResearch: "EVIDENCE WEIGHT: LOW",
			wantSocial:   "EVIDENCE WEIGHT: ELEVATED",
		},
		{
			name:         "unknown-tier links stay supplementary",
			research:     model.ResearchEvidence{Findings: []string{}, Sources: []string{}},
			social:       model.SocialEvidence{HasRelevantPosts: true, ExternalSources: []model.ExternalSource{{Domain: "blog.example", CredibilityTier: model.TierUnknown}}},
			wantResearch: "EVIDENCE WEIGHT: LOW",
			wantSocial:   "EVIDENCE WEIGHT: LOW",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reasoner := &fakeReasoner{replies: []string{"STATUS: UNVERIFIED\nEXPLANATION: n/a"}}
			s := NewSynthesizer(reasoner, 1, zap.NewNop())
			s.Synthesize(context.Background(), "claim", model.StructuredClaim{}, tt.research, tt.social)

			prompt := reasoner.prompts[0]
			researchIdx := strings.Index(prompt, "DEEP RESEARCH - ")
			socialIdx := strings.Index(prompt, "SOCIAL MEDIA CONTEXT - ")
			if researchIdx < 0 || socialIdx < 0 {
				t.Fatalf("prompt missing evidence blocks")
			}
			if !strings.Contains(prompt[researchIdx:socialIdx], tt.wantResearch) {
				t.Errorf("research block missing %q", tt.wantResearch)
			}
			if !strings.Contains(prompt[socialIdx:], tt.wantSocial) {
				t.Errorf("social block missing %q", tt.wantSocial)
			}
		})
	}
}

func TestSynthesize_PressReleaseNoteInPrompt(t *testing.T) {
	pressText := `Office of the District Collector, Madurai. Relief of Rs. 5,000 will be ` +
		`disbursed from 10.30 a.m. on 15.03.2025. Contact: 0452-2531380. Signed, District Collector.`

	reasoner := &fakeReasoner{replies: []string{"STATUS: UNVERIFIED\nEXPLANATION: n/a"}}
	s := NewSynthesizer(reasoner, 1, zap.NewNop())
	s.Synthesize(context.Background(), pressText, model.StructuredClaim{}, model.ResearchEvidence{}, model.SocialEvidence{})

	if !strings.Contains(reasoner.prompts[0], "press release") {
		t.Error("prompt missing press release note")
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want model.Status
	}{
		{"TRUE", model.StatusTrue},
		{"FALSE", model.StatusFalse},
		{"UNVERIFIED", model.StatusUnverified},
		{"True", model.StatusTrue},
		{"TRUE.", model.StatusTrue},
		{"NOT TRUE", model.StatusUnverified},
		{"UNTRUE", model.StatusUnverified},
		{"never true", model.StatusUnverified},
		{"FALSE (not true)", model.StatusFalse},
		{"partially false", model.StatusFalse},
		{"", model.StatusUnverified},
		{"something else", model.StatusUnverified},
	}
	for _, tt := range tests {
		if got := parseStatus(tt.in); got != tt.want {
			t.Errorf("parseStatus(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

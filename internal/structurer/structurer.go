package structurer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/llm"
	"github.com/unmai/unmai/internal/model"
	"github.com/unmai/unmai/internal/parse"
)

// translateThreshold is the input length above which predominantly
// non-Latin text is pre-translated before structuring. Short regional
// snippets structure fine as-is; long passages in an unfamiliar script make
// the model infer wrong entities and locations.
const translateThreshold = 200

// Structurer converts free-form claim text into a StructuredClaim via the
// reasoning capability. Structuring never fails: any upstream or parse
// error degrades to a deterministic fallback built from the literal input.
type Structurer struct {
	reasoner   llm.Reasoner
	maxRetries int
	logger     *zap.Logger
}

// New creates a Structurer
func New(reasoner llm.Reasoner, maxRetries int, logger *zap.Logger) *Structurer {
	if maxRetries < 1 {
		maxRetries = 3
	}
	return &Structurer{reasoner: reasoner, maxRetries: maxRetries, logger: logger}
}

// Structure turns raw claim text into a StructuredClaim
func (s *Structurer) Structure(ctx context.Context, claimText string) model.StructuredClaim {
	working := claimText
	if len(claimText) > translateThreshold && isPredominantlyNonLatin(claimText) {
		if translated, err := s.translate(ctx, claimText); err == nil {
			working = translated
		} else {
			s.logger.Warn("pre-translation failed, structuring original text", zap.Error(err))
		}
	}

	reply, err := llm.WithRetry(ctx, s.maxRetries, s.logger, func(ctx context.Context) (string, error) {
		return s.reasoner.Send(ctx, structuringPrompt(working))
	})
	if err != nil {
		s.logger.Warn("claim structuring failed, using fallback structure", zap.Error(err))
		return model.FallbackClaim(claimText)
	}

	structured, err := parseStructuredReply(reply, claimText)
	if err != nil {
		s.logger.Warn("unparsable structuring reply, using fallback structure", zap.Error(err))
		return model.FallbackClaim(claimText)
	}

	return structured
}

func (s *Structurer) translate(ctx context.Context, text string) (string, error) {
	prompt := "Translate the following text to English. Keep proper nouns, place names, " +
		"and official designations as close to the original as possible. " +
		"Output only the translation, no commentary.\n\n" + text

	reply, err := llm.WithRetry(ctx, s.maxRetries, s.logger, func(ctx context.Context) (string, error) {
		return s.reasoner.Send(ctx, prompt)
	})
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

// structuredReply mirrors the JSON schema requested from the model
type structuredReply struct {
	Statement       string   `json:"statement"`
	ClaimType       string   `json:"claim_type"`
	GeographicScope string   `json:"geographic_scope"`
	Location        string   `json:"location"`
	Context         string   `json:"context"`
	Entities        []string `json:"entities"`
	TimePeriod      string   `json:"time_period"`
}

func parseStructuredReply(reply, claimText string) (model.StructuredClaim, error) {
	raw, ok := parse.FirstJSONObject(reply)
	if !ok {
		return model.StructuredClaim{}, fmt.Errorf("no JSON object in reply")
	}

	var sr structuredReply
	if err := json.Unmarshal([]byte(raw), &sr); err != nil {
		return model.StructuredClaim{}, fmt.Errorf("decode reply: %w", err)
	}

	// Back-fill every field the model omitted with schema defaults
	structured := model.StructuredClaim{
		Statement:       strings.TrimSpace(sr.Statement),
		ClaimType:       model.ParseClaimType(sr.ClaimType),
		GeographicScope: model.ParseScope(sr.GeographicScope),
		Location:        strings.TrimSpace(sr.Location),
		Context:         strings.TrimSpace(sr.Context),
		Entities:        sr.Entities,
		TimePeriod:      strings.TrimSpace(sr.TimePeriod),
		OriginalInput:   claimText,
	}
	if structured.Statement == "" {
		structured.Statement = claimText
	}
	if structured.Entities == nil {
		structured.Entities = []string{}
	}

	return structured, nil
}

func structuringPrompt(claimText string) string {
	return fmt.Sprintf(`You convert unstructured or vague user input into a clean, structured claim for fact-checking.

### Schema
{
  "statement": "<the main factual statement extracted or reformulated>",
  "claim_type": "<one of: protest_arrest, accident_death, government_scheme, heritage_environment, politics, crime, health_science, other>",
  "geographic_scope": "<one of: local, district, state, national, international>",
  "location": "<the most specific place the claim concerns, empty if none>",
  "context": "<any background info, source, or related details>",
  "entities": ["<names, organizations, or locations involved>"],
  "time_period": "<specific year or time frame if mentioned>"
}

### Rules
1. Always output valid JSON only - no extra text or explanation.
2. The statement must be a clear factual assertion, even if the input was a question.
3. If information is absent, use an empty string or empty list. Never invent details.
4. geographic_scope reflects how widely the claimed event would be covered: a village incident is "local", a state government announcement is "state".

Now convert this user input:
"%s"`, claimText)
}

// isPredominantlyNonLatin reports whether more than half of the letters in
// text fall outside the Latin script.
func isPredominantlyNonLatin(text string) bool {
	letters, nonLatin := 0, 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if !unicode.Is(unicode.Latin, r) {
			nonLatin++
		}
	}
	return letters > 0 && nonLatin*2 > letters
}

// hasNonLatin reports whether text contains any non-ASCII character.
// Regional-language input is detected this way for query building.
func hasNonLatin(text string) bool {
	for _, r := range text {
		if r > 127 {
			return true
		}
	}
	return false
}

package research

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/model"
)

func researchServer(t *testing.T, reply string) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		resp := openai.ChatCompletionResponse{
			Model: "sonar-pro",
			Choices: []openai.ChatCompletionChoice{
				{Message: openai.ChatCompletionMessage{Role: "assistant", Content: reply}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(server.Close)

	client := NewClient(model.ResearchConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 5 * time.Second,
	})
	return server, client
}

func TestGatherer_ParsesLabeledReply(t *testing.T) {
	reply := `SUMMARY: The closure was reported by two regional outlets.
SCOPE: district
FINDINGS:
- Schools in Madurai closed on 12 March
- The order came from the district collector
SOURCES:
- https://dinamalar.com/article
- https://thehindu.com/article
RESEARCH_LIMITATIONS: None`

	_, client := researchServer(t, reply)
	g := NewGatherer(client, zap.NewNop())

	ev := g.Research(context.Background(), "madurai schools closed", model.StructuredClaim{
		Statement:       "Schools in Madurai closed",
		GeographicScope: model.ScopeDistrict,
	}, nil)

	if ev.IsFallback() {
		t.Fatal("unexpected fallback")
	}
	if ev.Summary != "The closure was reported by two regional outlets." {
		t.Errorf("summary: %q", ev.Summary)
	}
	if len(ev.Findings) != 2 || len(ev.Sources) != 2 {
		t.Errorf("findings=%v sources=%v", ev.Findings, ev.Sources)
	}
	if ev.Scope != "district" || ev.Limitations != "None" {
		t.Errorf("scope=%q limitations=%q", ev.Scope, ev.Limitations)
	}
	if !AssessRelevance(ev) {
		t.Error("evidence with findings and sources must assess relevant")
	}
}

func TestGatherer_UnlabeledReplyKeptAsSummary(t *testing.T) {
	_, client := researchServer(t, "The model ignored the format and wrote prose.")
	g := NewGatherer(client, zap.NewNop())

	ev := g.Research(context.Background(), "q", model.StructuredClaim{}, nil)

	if ev.Summary != "The model ignored the format and wrote prose." {
		t.Errorf("summary: %q", ev.Summary)
	}
	if ev.IsFallback() {
		t.Error("a parsed reply is not a fallback")
	}
}

func TestGatherer_HTTPErrorDegradesToFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error": {"message": "overloaded", "type": "server_error"}}`))
	}))
	defer server.Close()

	client := NewClient(model.ResearchConfig{APIKey: "k", BaseURL: server.URL, Timeout: 5 * time.Second})
	g := NewGatherer(client, zap.NewNop())

	ev := g.Research(context.Background(), "some query", model.StructuredClaim{}, nil)

	if !ev.IsFallback() {
		t.Fatal("expected fallback evidence")
	}
	if !strings.Contains(ev.Summary, "Unable to perform deep research for: some query") {
		t.Errorf("summary: %q", ev.Summary)
	}
	if AssessRelevance(ev) {
		t.Error("fallback evidence must assess irrelevant")
	}
}

func TestGatherer_UnconfiguredDegradesToFallback(t *testing.T) {
	g := NewGatherer(nil, zap.NewNop())

	ev := g.Research(context.Background(), "q", model.StructuredClaim{}, nil)

	if !ev.IsFallback() {
		t.Fatal("expected fallback evidence")
	}
	if !strings.Contains(ev.Summary, "not configured") {
		t.Errorf("summary: %q", ev.Summary)
	}
}

func TestGatherer_LeadsEmbeddedGroupedByTier(t *testing.T) {
	var gotPrompt string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotPrompt = req.Messages[1].Content
		resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "SUMMARY: ok"}},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(model.ResearchConfig{APIKey: "k", BaseURL: server.URL, Timeout: 5 * time.Second})
	g := NewGatherer(client, zap.NewNop())

	leads := []model.SocialPost{
		{Text: "common post", AuthorHandle: "someone", AuthorCategory: model.AuthorCommonPeople, Priority: 3},
		{Text: "tamil news post", AuthorHandle: "polimernews", AuthorCategory: model.AuthorTamilNews, Priority: 1},
	}
	g.Research(context.Background(), "q", model.StructuredClaim{}, leads)

	if !strings.Contains(gotPrompt, "LEADS from social media") {
		t.Fatalf("prompt missing leads block: %q", gotPrompt)
	}
	tamilIdx := strings.Index(gotPrompt, "tamil news post")
	commonIdx := strings.Index(gotPrompt, "common post")
	if tamilIdx < 0 || commonIdx < 0 || tamilIdx > commonIdx {
		t.Errorf("leads must be grouped highest tier first (tamil=%d common=%d)", tamilIdx, commonIdx)
	}
}

func TestGatherer_ScopeGuidanceInSystemPrompt(t *testing.T) {
	var gotSystem string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotSystem = req.Messages[0].Content
		resp := openai.ChatCompletionResponse{Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: "SUMMARY: ok"}},
		}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewClient(model.ResearchConfig{APIKey: "k", BaseURL: server.URL, Timeout: 5 * time.Second})
	g := NewGatherer(client, zap.NewNop())

	g.Research(context.Background(), "q", model.StructuredClaim{
		ClaimType:       model.ClaimTypeProtestArrest,
		GeographicScope: model.ScopeLocal,
	}, nil)

	if !strings.Contains(gotSystem, "absence of national or international coverage") {
		t.Error("local claims need the absence-not-informative rule")
	}
	if !strings.Contains(gotSystem, "Police or court statements") {
		t.Error("protest_arrest claims need police/court source guidance")
	}
}

func TestAssessRelevance(t *testing.T) {
	tests := []struct {
		name string
		ev   model.ResearchEvidence
		want bool
	}{
		{
			name: "findings and sources present",
			ev:   model.ResearchEvidence{Summary: "found", Findings: []string{"f"}, Sources: []string{"s"}},
			want: true,
		},
		{
			name: "both empty",
			ev:   model.ResearchEvidence{Summary: "something"},
			want: false,
		},
		{
			name: "nothing-found phrase despite sources",
			ev:   model.ResearchEvidence{Summary: "No specific articles were found on this topic", Sources: []string{"s"}},
			want: false,
		},
		{
			name: "could not find",
			ev:   model.ResearchEvidence{Summary: "I could not find coverage", Findings: []string{"f"}},
			want: false,
		},
		{
			name: "findings only",
			ev:   model.ResearchEvidence{Summary: "partial", Findings: []string{"f"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssessRelevance(tt.ev); got != tt.want {
				t.Errorf("AssessRelevance = %v, want %v", got, tt.want)
			}
		})
	}
}

package social

import (
	"testing"

	"github.com/unmai/unmai/internal/model"
)

func TestLinkClassifier_Classify(t *testing.T) {
	c := NewLinkClassifier(testConfig())

	tests := []struct {
		domain string
		want   model.CredibilityTier
	}{
		{"reuters.com", model.TierPrimary},
		{"tn.gov.in", model.TierPrimary},
		{"mit.edu", model.TierPrimary},
		{"thehindu.com", model.TierSecondary},
		{"sports.ndtv.com", model.TierSecondary},
		{"randomblog.example", model.TierUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got := c.Classify(tt.domain); got != tt.want {
				t.Errorf("Classify(%s) = %s, want %s", tt.domain, got, tt.want)
			}
		})
	}
}

func TestExtractSources(t *testing.T) {
	c := NewLinkClassifier(testConfig())

	tweets := []Tweet{
		{Entities: tweetEntities{URLs: []tweetURL{
			{ExpandedURL: "https://someblog.example/post", Title: "A blog post"},
			{ExpandedURL: "https://twitter.com/someone/status/1"},
			{ExpandedURL: "https://bit.ly/abc"},
			{ExpandedURL: "https://bit.ly/def", UnwoundURL: "https://www.thehindu.com/news/article"},
		}}},
		{Entities: tweetEntities{URLs: []tweetURL{
			{ExpandedURL: "https://www.reuters.com/world/india/story"},
			{ExpandedURL: "https://thehindu.com/news/other-article"},
		}}},
	}

	sources := c.ExtractSources(tweets)

	if len(sources) != 3 {
		t.Fatalf("got %d sources, want 3: %+v", len(sources), sources)
	}
	// Primary before secondary before unknown
	if sources[0].Domain != "reuters.com" {
		t.Errorf("first source = %s, want reuters.com", sources[0].Domain)
	}
	if sources[1].Domain != "thehindu.com" || sources[1].CredibilityTier != model.TierSecondary {
		t.Errorf("second source = %+v", sources[1])
	}
	if sources[2].CredibilityTier != model.TierUnknown {
		t.Errorf("third source tier = %s", sources[2].CredibilityTier)
	}
}

func TestExtractSources_Cap(t *testing.T) {
	cfg := testConfig()
	cfg.MaxExternalSources = 2
	c := NewLinkClassifier(cfg)

	tweets := []Tweet{{Entities: tweetEntities{URLs: []tweetURL{
		{ExpandedURL: "https://a.example/1"},
		{ExpandedURL: "https://b.example/2"},
		{ExpandedURL: "https://c.example/3"},
	}}}}

	if got := len(c.ExtractSources(tweets)); got != 2 {
		t.Errorf("got %d sources, want cap of 2", got)
	}
}

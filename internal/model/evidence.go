package model

import "strings"

// ResearchEvidence is the deep-research gatherer's parsed output. A
// fallback-shaped value (empty findings, marker summary) is a valid state,
// not an error.
type ResearchEvidence struct {
	Summary     string   `json:"summary"`
	Findings    []string `json:"findings"`
	Sources     []string `json:"sources"`
	Scope       string   `json:"scope,omitempty"`
	Limitations string   `json:"limitations,omitempty"`
	Fallback    bool     `json:"fallback,omitempty"` // set when the upstream call could not be made
}

// Summary markers identifying fallback-shaped research evidence
const (
	fallbackMarkerNoResearch = "Unable to perform deep research"
	fallbackMarkerNoKey      = "research service not configured"
)

// FallbackResearch builds the canonical fallback evidence shape for a
// query that could not be researched.
func FallbackResearch(query, reason string) ResearchEvidence {
	summary := fallbackMarkerNoResearch + " for: " + query
	if reason != "" {
		summary += ". " + reason
	}
	return ResearchEvidence{
		Summary:  summary,
		Findings: []string{},
		Sources:  []string{},
		Fallback: true,
	}
}

// UnconfiguredResearch builds the fallback shape for a missing research
// credential.
func UnconfiguredResearch(query string) ResearchEvidence {
	ev := FallbackResearch(query, "The "+fallbackMarkerNoKey+".")
	return ev
}

// IsFallback reports whether the evidence is a fallback shape that must
// never be cached or treated as real research output.
func (e ResearchEvidence) IsFallback() bool {
	if e.Fallback {
		return true
	}
	return strings.Contains(e.Summary, fallbackMarkerNoResearch) ||
		strings.Contains(e.Summary, fallbackMarkerNoKey)
}

// AuthorCategory groups social post authors by trust tier
type AuthorCategory string

const (
	AuthorTamilNews    AuthorCategory = "tamil_news"    // Tamil Nadu news outlets and reporters
	AuthorNationalNews AuthorCategory = "national_news" // General national news accounts
	AuthorCommonPeople AuthorCategory = "common_people" // Ungrouped public accounts
)

// Priority returns the authoritativeness rank for the category: 1 highest.
func (c AuthorCategory) Priority() int {
	switch c {
	case AuthorTamilNews:
		return 1
	case AuthorNationalNews:
		return 2
	default:
		return 3
	}
}

// SocialPost is one retained post from the social evidence search
type SocialPost struct {
	Text           string         `json:"text"`
	Date           string         `json:"date,omitempty"`
	AuthorHandle   string         `json:"author_handle,omitempty"`
	AuthorCategory AuthorCategory `json:"author_category"`
	Priority       int            `json:"priority"`
}

// CredibilityTier is a coarse trust ranking for a linked source domain
type CredibilityTier string

const (
	TierPrimary   CredibilityTier = "primary"   // Wire agencies, government, academic
	TierSecondary CredibilityTier = "secondary" // Major newspapers, networks, fact-checkers
	TierUnknown   CredibilityTier = "unknown"
)

// Order returns the sort rank for the tier: primary before secondary before unknown.
func (t CredibilityTier) Order() int {
	switch t {
	case TierPrimary:
		return 0
	case TierSecondary:
		return 1
	default:
		return 2
	}
}

// ExternalSource is an outbound link surfaced from social posts
type ExternalSource struct {
	URL             string          `json:"url"`
	Domain          string          `json:"domain"`
	Title           string          `json:"title,omitempty"`
	Description     string          `json:"description,omitempty"`
	CredibilityTier CredibilityTier `json:"credibility_tier"`
}

// SocialEvidence is the social gatherer's output. Social media is never a
// source of truth; it only surfaces external links and discussion context.
type SocialEvidence struct {
	HasRelevantPosts  bool             `json:"has_relevant_posts"`
	PostsAnalyzed     int              `json:"posts_analyzed"`
	Posts             []SocialPost     `json:"posts,omitempty"`
	ExternalSources   []ExternalSource `json:"external_sources"`
	DiscussionSummary string           `json:"discussion_summary,omitempty"`
	AnalysisNote      string           `json:"analysis_note,omitempty"`
	SearchQueryUsed   string           `json:"search_query_used,omitempty"`
	Err               string           `json:"error,omitempty"`
}

// HasCredibleLink reports whether any external source is primary or
// secondary tier. Used by the verdict synthesizer to decide whether social
// evidence may be elevated above supplementary weight.
func (e SocialEvidence) HasCredibleLink() bool {
	for _, s := range e.ExternalSources {
		if s.CredibilityTier == TierPrimary || s.CredibilityTier == TierSecondary {
			return true
		}
	}
	return false
}

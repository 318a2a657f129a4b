package model

import "time"

// Status is the verdict on a claim
type Status string

const (
	StatusTrue       Status = "TRUE"
	StatusFalse      Status = "FALSE"
	StatusUnverified Status = "UNVERIFIED"
)

// Category is the evidentiary classification governing how strictly
// external sourcing is required.
type Category string

const (
	CategorySpecificEvent        Category = "A" // requires external corroboration
	CategoryEstablishedKnowledge Category = "B" // confirmable from general knowledge
	CategoryMixed                Category = "C"
)

// Verdict is the synthesizer's parsed decision.
//
// Invariant: StatusFalse is only produced when positive contradicting
// evidence was present; absence of evidence alone yields StatusUnverified.
type Verdict struct {
	Status      Status   `json:"status"`
	Explanation string   `json:"explanation"`
	Category    Category `json:"category"`
	Findings    []string `json:"findings,omitempty"`
	Sources     []string `json:"sources,omitempty"`
}

// SocialAnalysis summarizes the social evidence for the API response
type SocialAnalysis struct {
	PostsAnalyzed        int              `json:"posts_analyzed"`
	ExternalSourcesFound int              `json:"external_sources_found"`
	Sources              []ExternalSource `json:"sources"`
	DiscussionSummary    string           `json:"discussion_summary,omitempty"`
	Note                 string           `json:"note,omitempty"`
}

// VerdictResponse is the full result of one check_fact call
type VerdictResponse struct {
	ClaimText            string          `json:"claim_text"`
	Status               Status          `json:"status"`
	Explanation          string          `json:"explanation"`
	Sources              []string        `json:"sources"`
	ResearchSummary      string          `json:"research_summary"`
	Findings             []string        `json:"findings"`
	ResearchLimitations  string          `json:"research_limitations,omitempty"`
	StructuredClaim      StructuredClaim `json:"structured_claim"`
	SocialAnalysis       SocialAnalysis  `json:"social_analysis"`
	Cached               bool            `json:"cached"`
	CacheNote            string          `json:"cache_note,omitempty"`
}

// CacheEntry is the immutable record written after a successful research
// cycle. A cache hit always serves the original response.
type CacheEntry struct {
	ID          string           `json:"id"`
	Fingerprint string           `json:"fingerprint"`
	ClaimText   string           `json:"claim_text"`
	Structured  StructuredClaim  `json:"structured"`
	Research    ResearchEvidence `json:"research"`
	Verdict     Verdict          `json:"verdict"`
	Response    VerdictResponse  `json:"response"`
	CreatedAt   time.Time        `json:"created_at"`
}

package social

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/model"
)

const maxSearchQueryLen = 500

// Gatherer surfaces external source links from social media discussion of a
// claim. Social posts are never a source of truth; only the links they carry
// and the shape of the discussion feed downstream reasoning.
type Gatherer struct {
	searcher     Searcher
	authors      *AuthorClassifier
	links        *LinkClassifier
	enabled      bool
	postsPerTier int
	logger       *zap.Logger
}

// NewGatherer wires a social evidence gatherer. A nil searcher puts the
// gatherer in unconfigured fallback mode.
func NewGatherer(searcher Searcher, cfg model.SocialConfig, logger *zap.Logger) *Gatherer {
	postsPerTier := cfg.PostsPerTier
	if postsPerTier <= 0 {
		postsPerTier = 3
	}
	return &Gatherer{
		searcher:     searcher,
		authors:      NewAuthorClassifier(cfg),
		links:        NewLinkClassifier(cfg),
		enabled:      cfg.Enabled,
		postsPerTier: postsPerTier,
		logger:       logger,
	}
}

// Gather searches for recent posts discussing the claim and extracts the
// external links and tiered posts. Never returns an error: disabled,
// unconfigured, empty, and failed searches each produce a well-formed
// SocialEvidence shape.
func (g *Gatherer) Gather(ctx context.Context, claim model.StructuredClaim, query string) model.SocialEvidence {
	if !g.enabled {
		return model.SocialEvidence{
			ExternalSources: []model.ExternalSource{},
			AnalysisNote:    "Social media analysis is disabled.",
		}
	}
	if g.searcher == nil {
		return model.SocialEvidence{
			ExternalSources: []model.ExternalSource{},
			AnalysisNote:    "Social media analysis requires API configuration. Proceeding with deep research only.",
		}
	}

	searchQuery := BuildSearchQuery(claim, query)
	g.logger.Debug("searching social posts", zap.String("query", searchQuery))

	result, err := g.searcher.SearchRecent(ctx, searchQuery)
	if err != nil {
		g.logger.Warn("social search failed", zap.Error(err))
		return model.SocialEvidence{
			ExternalSources: []model.ExternalSource{},
			AnalysisNote:    "Social media analysis unavailable: " + err.Error(),
			Err:             err.Error(),
		}
	}

	if len(result.Tweets) == 0 {
		return model.SocialEvidence{
			ExternalSources:   []model.ExternalSource{},
			DiscussionSummary: "No relevant posts found for this claim.",
			AnalysisNote:      "No verifiable external sources found via social media.",
			SearchQueryUsed:   searchQuery,
		}
	}

	posts := g.tieredPosts(result)
	sources := g.links.ExtractSources(result.Tweets)

	return model.SocialEvidence{
		HasRelevantPosts:  true,
		PostsAnalyzed:     len(result.Tweets),
		Posts:             posts,
		ExternalSources:   sources,
		DiscussionSummary: summarizeDiscussion(result.Tweets, g.links),
		AnalysisNote:      analysisNote(sources),
		SearchQueryUsed:   searchQuery,
	}
}

// tieredPosts classifies each post's author and keeps at most postsPerTier
// posts per tier in discovery order, returned highest tier first.
func (g *Gatherer) tieredPosts(result *SearchResult) []model.SocialPost {
	byTier := map[model.AuthorCategory][]model.SocialPost{}

	for _, tweet := range result.Tweets {
		user := result.Users[tweet.AuthorID]
		category := g.authors.Classify(user)
		if len(byTier[category]) >= g.postsPerTier {
			continue
		}
		byTier[category] = append(byTier[category], model.SocialPost{
			Text:           tweet.Text,
			Date:           tweet.CreatedAt,
			AuthorHandle:   user.Username,
			AuthorCategory: category,
			Priority:       category.Priority(),
		})
	}

	ordered := make([]model.SocialPost, 0, 3*g.postsPerTier)
	for _, category := range []model.AuthorCategory{
		model.AuthorTamilNews, model.AuthorNationalNews, model.AuthorCommonPeople,
	} {
		ordered = append(ordered, byTier[category]...)
	}
	return ordered
}

// BuildSearchQuery builds the recent-search query. Entities give focus; for
// local or district claims phrased in a regional script, literal
// original-language terms replace them because local coverage is typically
// discussed in the regional language. No language filter is applied.
func BuildSearchQuery(claim model.StructuredClaim, fallbackQuery string) string {
	var base string
	if len(claim.Entities) > 0 {
		limit := 2
		if len(claim.Entities) < limit {
			limit = len(claim.Entities)
		}
		base = strings.Join(claim.Entities[:limit], " ")
	} else {
		statement := claim.Statement
		if statement == "" {
			statement = fallbackQuery
		}
		var words []string
		for _, w := range strings.Fields(statement) {
			if len([]rune(w)) > 3 {
				words = append(words, w)
			}
			if len(words) == 4 {
				break
			}
		}
		base = strings.Join(words, " ")
	}

	scope := claim.GeographicScope
	if (scope == model.ScopeLocal || scope == model.ScopeDistrict) && claim.OriginalInput != "" {
		if hasNonLatinScript(claim.OriginalInput) {
			var terms []string
			for _, w := range strings.Fields(claim.OriginalInput) {
				if len([]rune(w)) > 2 {
					terms = append(terms, w)
				}
				if len(terms) == 3 {
					break
				}
			}
			if len(terms) > 0 {
				base = strings.Join(terms, " ")
			}
		}
	}

	query := base + " has:links -is:retweet"
	if runes := []rune(query); len(runes) > maxSearchQueryLen {
		query = string(runes[:maxSearchQueryLen])
	}
	return query
}

func hasNonLatinScript(s string) bool {
	for _, r := range s {
		if r == ' ' {
			continue
		}
		if r > 127 {
			return true
		}
	}
	return false
}

// summarizeDiscussion describes the discussion factually, with no sentiment
func summarizeDiscussion(tweets []Tweet, links *LinkClassifier) string {
	credibleLinkCount := 0
	for _, tweet := range tweets {
		for _, u := range tweet.Entities.URLs {
			if u.ExpandedURL == "" {
				continue
			}
			domain := extractLinkDomain(u.ExpandedURL)
			tier := links.Classify(domain)
			if tier == model.TierPrimary || tier == model.TierSecondary {
				credibleLinkCount++
				break
			}
		}
	}

	summary := fmt.Sprintf("Found %d posts discussing this topic. ", len(tweets))
	if credibleLinkCount > 0 {
		summary += fmt.Sprintf("%d posts included links to credible news sources or official websites.", credibleLinkCount)
	} else {
		summary += "No posts contained links to credible news sources."
	}
	return summary
}

func analysisNote(sources []model.ExternalSource) string {
	if len(sources) == 0 {
		return "No verifiable external sources found via social media."
	}

	var primary, secondary int
	for _, s := range sources {
		switch s.CredibilityTier {
		case model.TierPrimary:
			primary++
		case model.TierSecondary:
			secondary++
		}
	}

	switch {
	case primary > 0:
		return fmt.Sprintf("Posts linked to %d primary source(s) and %d secondary source(s) that may corroborate research findings.", primary, secondary)
	case secondary > 0:
		return fmt.Sprintf("Posts linked to %d secondary news source(s) that may provide additional context.", secondary)
	default:
		return "Posts contained links to sources of unknown credibility. Exercise caution."
	}
}

package social

import (
	"net/url"
	"sort"
	"strings"

	"github.com/unmai/unmai/internal/model"
)

// shortenerHosts are skipped when the expanded URL was not unwound
var shortenerHosts = []string{"bit.ly", "t.co", "tinyurl"}

// LinkClassifier assigns credibility tiers to linked source domains
type LinkClassifier struct {
	primaryMap   map[string]bool
	secondaryMap map[string]bool
	maxSources   int
}

// NewLinkClassifier builds a classifier from the configured domain lists
func NewLinkClassifier(cfg model.SocialConfig) *LinkClassifier {
	c := &LinkClassifier{
		primaryMap:   make(map[string]bool, len(cfg.PrimaryDomains)),
		secondaryMap: make(map[string]bool, len(cfg.SecondaryDomains)),
		maxSources:   cfg.MaxExternalSources,
	}
	if c.maxSources <= 0 {
		c.maxSources = 10
	}
	for _, domain := range cfg.PrimaryDomains {
		c.primaryMap[domain] = true
	}
	for _, domain := range cfg.SecondaryDomains {
		c.secondaryMap[domain] = true
	}
	return c
}

// Classify returns the credibility tier for a domain
func (c *LinkClassifier) Classify(domain string) model.CredibilityTier {
	if c.primaryMap[domain] {
		return model.TierPrimary
	}
	for primary := range c.primaryMap {
		if strings.HasSuffix(domain, "."+primary) {
			return model.TierPrimary
		}
	}

	// Government and academic TLDs are primary regardless of list membership
	for _, suffix := range []string{".gov", ".edu", ".ac.uk", ".gov.uk", ".gov.in"} {
		if strings.HasSuffix(domain, suffix) {
			return model.TierPrimary
		}
	}

	if c.secondaryMap[domain] {
		return model.TierSecondary
	}
	for secondary := range c.secondaryMap {
		if strings.HasSuffix(domain, "."+secondary) {
			return model.TierSecondary
		}
	}

	return model.TierUnknown
}

// ExtractSources pulls outbound links from posts, drops platform-internal
// and unresolved shortener links, deduplicates by domain, classifies each
// into a credibility tier, and returns them sorted primary first and capped.
func (c *LinkClassifier) ExtractSources(tweets []Tweet) []model.ExternalSource {
	sources := make([]model.ExternalSource, 0)
	seenDomains := make(map[string]bool)

	for _, tweet := range tweets {
		for _, u := range tweet.Entities.URLs {
			expanded := u.ExpandedURL
			if expanded == "" {
				continue
			}
			if strings.Contains(expanded, "twitter.com") || strings.Contains(expanded, "x.com") {
				continue
			}

			// Shortened links must come with an unwound URL or be dropped
			if isShortener(expanded) {
				if u.UnwoundURL == "" || isShortener(u.UnwoundURL) {
					continue
				}
				expanded = u.UnwoundURL
			}

			domain := extractLinkDomain(expanded)
			if domain == "" || seenDomains[domain] {
				continue
			}
			seenDomains[domain] = true

			description := u.Description
			if runes := []rune(description); len(runes) > 200 {
				description = string(runes[:200])
			}

			sources = append(sources, model.ExternalSource{
				URL:             expanded,
				Domain:          domain,
				Title:           u.Title,
				Description:     description,
				CredibilityTier: c.Classify(domain),
			})
		}
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].CredibilityTier.Order() < sources[j].CredibilityTier.Order()
	})

	if len(sources) > c.maxSources {
		sources = sources[:c.maxSources]
	}
	return sources
}

func isShortener(rawURL string) bool {
	for _, shortener := range shortenerHosts {
		if strings.Contains(rawURL, shortener) {
			return true
		}
	}
	return false
}

func extractLinkDomain(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return strings.TrimPrefix(host, "www.")
}

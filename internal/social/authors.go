package social

import (
	"strings"

	"github.com/unmai/unmai/internal/model"
)

// newsDescriptionTerms mark an author bio as news-related
var newsDescriptionTerms = []string{
	"news", "journalist", "reporter", "correspondent", "editor",
	"media", "press", "broadcast", "anchor",
}

// regionalIndicators elevate a news-related author to the regional tier
var regionalIndicators = []string{
	"tamil", "tamilnadu", "tamil nadu", "chennai", "madurai", "coimbatore",
	"trichy", "tiruchirappalli", "salem", "puducherry",
	"தமிழ்", "செய்தி",
}

// AuthorClassifier assigns social post authors to priority tiers
type AuthorClassifier struct {
	tamilHandles    map[string]bool
	nationalHandles map[string]bool
}

// NewAuthorClassifier builds a classifier from configured handle lists.
// Handle matching is case-insensitive.
func NewAuthorClassifier(cfg model.SocialConfig) *AuthorClassifier {
	c := &AuthorClassifier{
		tamilHandles:    make(map[string]bool, len(cfg.TamilNewsHandles)),
		nationalHandles: make(map[string]bool, len(cfg.NationalNewsHandles)),
	}
	for _, h := range cfg.TamilNewsHandles {
		c.tamilHandles[strings.ToLower(h)] = true
	}
	for _, h := range cfg.NationalNewsHandles {
		c.nationalHandles[strings.ToLower(h)] = true
	}
	return c
}

// Classify assigns the author a tier. Known handles win outright; otherwise
// the self-description decides: news-related bios with a regional indicator
// rank as regional news, plain news-related bios as national news, and
// everything else as the public tier.
func (c *AuthorClassifier) Classify(user User) model.AuthorCategory {
	handle := strings.ToLower(user.Username)
	if c.tamilHandles[handle] {
		return model.AuthorTamilNews
	}
	if c.nationalHandles[handle] {
		return model.AuthorNationalNews
	}

	bio := strings.ToLower(user.Description)
	if bio == "" {
		return model.AuthorCommonPeople
	}

	isNews := false
	for _, term := range newsDescriptionTerms {
		if strings.Contains(bio, term) {
			isNews = true
			break
		}
	}
	if !isNews {
		return model.AuthorCommonPeople
	}

	for _, indicator := range regionalIndicators {
		if strings.Contains(bio, indicator) {
			return model.AuthorTamilNews
		}
	}
	return model.AuthorNationalNews
}

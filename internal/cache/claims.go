package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/unmai/unmai/internal/model"
)

// ClaimCache is the content-addressed verdict cache. Entries are written
// once after a successful research cycle and never updated; a hit always
// serves the original response.
type ClaimCache struct {
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewClaimCache creates a claim cache over the given store
func NewClaimCache(store Store, ttl time.Duration, logger *zap.Logger) *ClaimCache {
	return &ClaimCache{store: store, ttl: ttl, logger: logger}
}

// Lookup returns the cached entry for a claim, if any. A single point read
// on the fingerprint; no fuzzy matching.
func (c *ClaimCache) Lookup(claimText string) (*model.CacheEntry, bool) {
	key := Fingerprint(claimText)

	data, found := c.store.Get(key)
	if !found {
		return nil, false
	}

	var entry model.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		// A corrupt entry is treated as a miss so the claim is
		// re-researched rather than served garbage.
		c.logger.Warn("discarding corrupt cache entry", zap.String("fingerprint", key), zap.Error(err))
		_ = c.store.Delete(key)
		return nil, false
	}

	c.logger.Info("cache hit", zap.String("fingerprint", key))
	return &entry, true
}

// StoreResult writes a new entry for a completed verification. When the
// research evidence is fallback-shaped the write is skipped (logged, not an
// error) so a non-answer never poisons the cache. Returns the entry ID, or
// "" when the write was skipped.
func (c *ClaimCache) StoreResult(claimText string, structured model.StructuredClaim, research model.ResearchEvidence, verdict model.Verdict, response model.VerdictResponse) (string, error) {
	if research.IsFallback() {
		c.logger.Warn("skipping cache write for fallback research",
			zap.String("claim", truncate(claimText, 50)))
		return "", nil
	}

	entry := model.CacheEntry{
		ID:          uuid.NewString(),
		Fingerprint: Fingerprint(claimText),
		ClaimText:   claimText,
		Structured:  structured,
		Research:    research,
		Verdict:     verdict,
		Response:    response,
		CreatedAt:   time.Now().UTC(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return "", fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := c.store.Set(entry.Fingerprint, data, c.ttl); err != nil {
		return "", fmt.Errorf("write cache entry: %w", err)
	}

	c.logger.Info("cached verification result",
		zap.String("fingerprint", entry.Fingerprint),
		zap.String("id", entry.ID))
	return entry.ID, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

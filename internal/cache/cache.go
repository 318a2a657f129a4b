package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Store is the backing key-value store for the claim cache
type Store interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Fingerprint derives the cache key for a raw claim: identical text after
// case-folding and whitespace normalization always yields the same key.
func Fingerprint(claimText string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(claimText))), " ")
	hash := sha256.Sum256([]byte(normalized))
	return "unmai:v1:" + hex.EncodeToString(hash[:])
}

// Package cache provides a small keyed cache for calculation responses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Cache stores serialized calculation responses keyed by input hash.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}

// Key derives a stable cache key from a request payload by hashing its
// JSON encoding under a per-calculator prefix.
func Key(prefix string, payload interface{}) (string, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache payload: %w", err)
	}
	sum := sha256.Sum256(encoded)
	return prefix + ":" + hex.EncodeToString(sum[:]), nil
}

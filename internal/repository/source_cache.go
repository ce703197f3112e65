package repository

import (
	"context"
	"time"
)

// SourceCache holds serialized referral-source catalog entries keyed by
// source name. The catalog is immutable at runtime, so entries never need
// invalidation; a TTL of zero means no expiry.
// Implementations: Redis (shared across instances) or in-memory.
type SourceCache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Get returns nil with no error on a cache miss.
	Get(ctx context.Context, key string) ([]byte, error)
}

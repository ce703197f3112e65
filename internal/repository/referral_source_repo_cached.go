package repository

import (
	"context"
	"encoding/json"
	"time"

	"cartoncaps/invite/internal/model"
)

const sourceCacheKeyPrefix = "referral_source:"

type cachedReferralSourceRepository struct {
	inner ReferralSourceRepository
	cache SourceCache
	ttl   time.Duration
}

// NewCachedReferralSourceRepository wraps a source repository with a
// read-through cache. Only positive lookups are cached; a name missing
// from the catalog always goes to the store so newly seeded environments
// behave predictably.
func NewCachedReferralSourceRepository(inner ReferralSourceRepository, cache SourceCache, ttl time.Duration) ReferralSourceRepository {
	return &cachedReferralSourceRepository{inner: inner, cache: cache, ttl: ttl}
}

func (r *cachedReferralSourceRepository) GetByName(ctx context.Context, name string) (*model.ReferralSource, error) {
	key := sourceCacheKeyPrefix + name

	if raw, err := r.cache.Get(ctx, key); err == nil && raw != nil {
		var source model.ReferralSource
		if err := json.Unmarshal(raw, &source); err == nil {
			return &source, nil
		}
	}

	source, err := r.inner.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(source); err == nil {
		// Cache write failures are not fatal; the store remains the
		// source of truth.
		_ = r.cache.Set(ctx, key, raw, r.ttl)
	}
	return source, nil
}

func (r *cachedReferralSourceRepository) List(ctx context.Context) ([]model.ReferralSource, error) {
	return r.inner.List(ctx)
}

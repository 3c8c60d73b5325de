package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"time"

	"github.com/patrickmn/go-cache"

	appErrors "github.com/noah-isme/reportcard/pkg/errors"
)

// MemoryCacheRepository caches JSON payloads in process. It is used when Redis
// is not configured.
type MemoryCacheRepository struct {
	store *cache.Cache
}

// NewMemoryCacheRepository creates an in-process cache whose entries expire
// after defaultTTL unless Set overrides it.
func NewMemoryCacheRepository(defaultTTL time.Duration) *MemoryCacheRepository {
	return &MemoryCacheRepository{store: cache.New(defaultTTL, 10*time.Minute)}
}

// Get unmarshals the cached payload into dest.
func (r *MemoryCacheRepository) Get(_ context.Context, key string, dest interface{}) error {
	raw, found := r.store.Get(key)
	if !found {
		return appErrors.ErrCacheMiss
	}
	payload, ok := raw.([]byte)
	if !ok {
		r.store.Delete(key)
		return appErrors.ErrCacheMiss
	}
	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("unmarshal cache value for %s: %w", key, err)
	}
	return nil
}

// Set stores value as JSON so readers never share memory with the caller.
func (r *MemoryCacheRepository) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value for %s: %w", key, err)
	}
	if ttl <= 0 {
		ttl = cache.DefaultExpiration
	}
	r.store.Set(key, payload, ttl)
	return nil
}

// DeleteByPattern removes entries whose key matches the glob pattern.
func (r *MemoryCacheRepository) DeleteByPattern(_ context.Context, pattern string) error {
	if _, err := path.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid cache pattern %s: %w", pattern, err)
	}
	for key := range r.store.Items() {
		if ok, _ := path.Match(pattern, key); ok {
			r.store.Delete(key)
		}
	}
	return nil
}

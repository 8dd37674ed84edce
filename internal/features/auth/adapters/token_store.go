package adapters

import (
	"context"
	"errors"
	"fmt"

	"shop-admin/internal/core/cache"
)

const tokenCacheKey = "backend_token"

// CacheTokenStore keeps the backend bearer token in the shared cache.
type CacheTokenStore struct {
	cache cache.Cache
}

// NewCacheTokenStore creates a new CacheTokenStore.
func NewCacheTokenStore(c cache.Cache) *CacheTokenStore {
	return &CacheTokenStore{cache: c}
}

// Token returns the stored token or "" if nothing is stored.
func (s *CacheTokenStore) Token(ctx context.Context) (string, error) {
	data, err := s.cache.Get(ctx, tokenCacheKey)
	if errors.Is(err, cache.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return string(data), nil
}

// Save stores the token without expiry.
func (s *CacheTokenStore) Save(ctx context.Context, token string) error {
	if err := s.cache.Set(ctx, tokenCacheKey, []byte(token), 0); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Clear removes the stored token.
func (s *CacheTokenStore) Clear(ctx context.Context) error {
	if err := s.cache.Delete(ctx, tokenCacheKey); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}

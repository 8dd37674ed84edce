package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-admin/internal/core/cache"
	"shop-admin/internal/features/orders/domain"
)

const formKeyPrefix = "order_form:"

// CacheFormStore keeps form sessions in the shared cache. Every save
// refreshes the session TTL.
type CacheFormStore struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewCacheFormStore creates a new CacheFormStore.
func NewCacheFormStore(c cache.Cache, ttl time.Duration) *CacheFormStore {
	return &CacheFormStore{cache: c, ttl: ttl}
}

// Save stores the session under its id.
func (s *CacheFormStore) Save(ctx context.Context, session domain.FormSession) error {
	if session.ID == "" {
		return errors.New("form session has no id")
	}
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode form session: %w", err)
	}
	if err := s.cache.Set(ctx, formKeyPrefix+session.ID, data, s.ttl); err != nil {
		return fmt.Errorf("failed to save form session %s: %w", session.ID, err)
	}
	return nil
}

// Get loads a session by id.
func (s *CacheFormStore) Get(ctx context.Context, id string) (*domain.FormSession, error) {
	data, err := s.cache.Get(ctx, formKeyPrefix+id)
	if errors.Is(err, cache.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrFormNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load form session %s: %w", id, err)
	}

	var session domain.FormSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode form session %s: %w", id, err)
	}
	return &session, nil
}

// Delete removes a session.
func (s *CacheFormStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, formKeyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete form session %s: %w", id, err)
	}
	return nil
}

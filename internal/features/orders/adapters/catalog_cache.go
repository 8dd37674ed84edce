package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shop-admin/internal/core/cache"
	"shop-admin/internal/core/logger"
	catalogdomain "shop-admin/internal/features/catalog/domain"
	"shop-admin/internal/features/orders/ports"

	"go.uber.org/zap"
)

const catalogCacheKey = "catalog_snapshot"

// CachedCatalogProvider serves the product list from the cache, falling back
// to source on a miss. Cache errors never fail the call.
type CachedCatalogProvider struct {
	source ports.CatalogProvider
	cache  cache.Cache
	ttl    time.Duration
}

// NewCachedCatalogProvider creates a new CachedCatalogProvider. A ttl of 0
// disables caching.
func NewCachedCatalogProvider(source ports.CatalogProvider, c cache.Cache, ttl time.Duration) *CachedCatalogProvider {
	return &CachedCatalogProvider{source: source, cache: c, ttl: ttl}
}

// ListProducts returns the cached snapshot or fetches a fresh one.
func (p *CachedCatalogProvider) ListProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	log := logger.FromContext(ctx)

	if p.ttl > 0 {
		data, err := p.cache.Get(ctx, catalogCacheKey)
		switch {
		case err == nil:
			var products []catalogdomain.Product
			if err := json.Unmarshal(data, &products); err == nil {
				return products, nil
			}
			log.Warn("Discarding unreadable catalog snapshot")
		case !errors.Is(err, cache.ErrNotFound):
			log.Warn("Failed to read catalog snapshot", zap.Error(err))
		}
	}

	products, err := p.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	if p.ttl > 0 {
		data, err := json.Marshal(products)
		if err == nil {
			err = p.cache.Set(ctx, catalogCacheKey, data, p.ttl)
		}
		if err != nil {
			log.Warn("Failed to store catalog snapshot", zap.Error(err))
		}
	}

	return products, nil
}

// Invalidate drops the cached snapshot.
func (p *CachedCatalogProvider) Invalidate(ctx context.Context) error {
	return p.cache.Delete(ctx, catalogCacheKey)
}

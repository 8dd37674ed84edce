package service

import (
	"context"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/catalog/domain"
	"shop-admin/internal/features/catalog/ports"
)

// CatalogServiceImpl implements ports.CatalogService.
// Input is validated before any backend call; reads pass straight through.
type CatalogServiceImpl struct {
	repo ports.CatalogRepository
}

// NewCatalogService creates a new CatalogServiceImpl.
func NewCatalogService(repo ports.CatalogRepository) *CatalogServiceImpl {
	return &CatalogServiceImpl{repo: repo}
}

func (s *CatalogServiceImpl) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogServiceImpl) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.CreateProduct(ctx, in)
}

func (s *CatalogServiceImpl) UpdateProduct(ctx context.Context, id ids.ID, patch domain.ProductPatch) (*domain.Product, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateProduct(ctx, id, patch)
}

func (s *CatalogServiceImpl) DeleteProduct(ctx context.Context, id ids.ID) error {
	return s.repo.DeleteProduct(ctx, id)
}

func (s *CatalogServiceImpl) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogServiceImpl) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, in)
}

func (s *CatalogServiceImpl) UpdateCategory(ctx context.Context, id ids.ID, patch domain.CategoryPatch) (*domain.Category, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, id, patch)
}

func (s *CatalogServiceImpl) DeleteCategory(ctx context.Context, id ids.ID) error {
	return s.repo.DeleteCategory(ctx, id)
}

package ports

import (
	"context"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/catalog/domain"
)

// CatalogRepository is the backend product and category store (driven port).
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id ids.ID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id ids.ID) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id ids.ID, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id ids.ID) error
}

// CatalogService is the primary port used by the handler.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id ids.ID, patch domain.ProductPatch) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id ids.ID) error

	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id ids.ID, patch domain.CategoryPatch) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id ids.ID) error
}

package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/catalog/domain"
)

// BackendCatalogAdapter implements ports.CatalogRepository using the backend REST API.
type BackendCatalogAdapter struct {
	client *backend.Client
}

// NewBackendCatalogAdapter creates a new BackendCatalogAdapter.
func NewBackendCatalogAdapter(client *backend.Client) *BackendCatalogAdapter {
	return &BackendCatalogAdapter{client: client}
}

func productPath(id ids.ID) string {
	return "/product/" + url.PathEscape(id.String())
}

func categoryPath(id ids.ID) string {
	return "/category/" + url.PathEscape(id.String())
}

// ListProducts fetches every product.
func (a *BackendCatalogAdapter) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products := []domain.Product{}
	if err := a.client.Get(ctx, "/product", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

// CreateProduct creates a product.
func (a *BackendCatalogAdapter) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	var product domain.Product
	if err := a.client.Post(ctx, "/product", in, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// UpdateProduct patches a product.
func (a *BackendCatalogAdapter) UpdateProduct(ctx context.Context, id ids.ID, patch domain.ProductPatch) (*domain.Product, error) {
	var product domain.Product
	if err := a.client.Patch(ctx, productPath(id), patch, &product); err != nil {
		return nil, fmt.Errorf("failed to update product %s: %w", id, err)
	}
	return &product, nil
}

// DeleteProduct deletes a product.
func (a *BackendCatalogAdapter) DeleteProduct(ctx context.Context, id ids.ID) error {
	if err := a.client.Delete(ctx, productPath(id), nil); err != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, err)
	}
	return nil
}

// ListCategories fetches every category.
func (a *BackendCatalogAdapter) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories := []domain.Category{}
	if err := a.client.Get(ctx, "/category", &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a category.
func (a *BackendCatalogAdapter) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	if err := a.client.Post(ctx, "/category", in, &category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory patches a category.
func (a *BackendCatalogAdapter) UpdateCategory(ctx context.Context, id ids.ID, patch domain.CategoryPatch) (*domain.Category, error) {
	var category domain.Category
	if err := a.client.Patch(ctx, categoryPath(id), patch, &category); err != nil {
		return nil, fmt.Errorf("failed to update category %s: %w", id, err)
	}
	return &category, nil
}

// DeleteCategory deletes a category.
func (a *BackendCatalogAdapter) DeleteCategory(ctx context.Context, id ids.ID) error {
	if err := a.client.Delete(ctx, categoryPath(id), nil); err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return nil
}

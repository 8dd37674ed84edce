package ports

import (
	"context"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/customers/domain"
)

// CustomerRepository is the backend customer store (driven port).
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id ids.ID) error
}

// CustomerService is the primary port used by the handler.
type CustomerService interface {
	List(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id ids.ID) error
}

package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/customers/domain"
)

// BackendCustomerAdapter implements ports.CustomerRepository using the backend /customer resource.
type BackendCustomerAdapter struct {
	client *backend.Client
}

// NewBackendCustomerAdapter creates a new BackendCustomerAdapter.
func NewBackendCustomerAdapter(client *backend.Client) *BackendCustomerAdapter {
	return &BackendCustomerAdapter{client: client}
}

func customerPath(id ids.ID) string {
	return "/customer/" + url.PathEscape(id.String())
}

// List fetches every customer.
func (a *BackendCustomerAdapter) List(ctx context.Context) ([]domain.Customer, error) {
	customers := []domain.Customer{}
	if err := a.client.Get(ctx, "/customer", &customers); err != nil {
		return nil, fmt.Errorf("failed to fetch customers: %w", err)
	}
	return customers, nil
}

// Create creates a customer.
func (a *BackendCustomerAdapter) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	var customer domain.Customer
	if err := a.client.Post(ctx, "/customer", in, &customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// Update patches a customer.
func (a *BackendCustomerAdapter) Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error) {
	var customer domain.Customer
	if err := a.client.Patch(ctx, customerPath(id), patch, &customer); err != nil {
		return nil, fmt.Errorf("failed to update customer %s: %w", id, err)
	}
	return &customer, nil
}

// Delete deletes a customer.
func (a *BackendCustomerAdapter) Delete(ctx context.Context, id ids.ID) error {
	if err := a.client.Delete(ctx, customerPath(id), nil); err != nil {
		return fmt.Errorf("failed to delete customer %s: %w", id, err)
	}
	return nil
}

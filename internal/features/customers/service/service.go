package service

import (
	"context"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/customers/domain"
	"shop-admin/internal/features/customers/ports"
)

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	repo ports.CustomerRepository
}

// NewCustomerService creates a new CustomerServiceImpl.
func NewCustomerService(repo ports.CustomerRepository) *CustomerServiceImpl {
	return &CustomerServiceImpl{repo: repo}
}

// List returns every customer.
func (s *CustomerServiceImpl) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Create validates and creates a customer.
func (s *CustomerServiceImpl) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, in)
}

// Update validates and applies a partial update.
func (s *CustomerServiceImpl) Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a customer.
func (s *CustomerServiceImpl) Delete(ctx context.Context, id ids.ID) error {
	return s.repo.Delete(ctx, id)
}

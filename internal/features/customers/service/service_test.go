package service

import (
	"context"
	"testing"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/customers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockCustomerRepository is a mock implementation of ports.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Create(ctx context.Context, in domain.CustomerInput) (*domain.Customer, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id ids.ID, patch domain.CustomerPatch) (*domain.Customer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

func TestCustomerService(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCustomerRepository)
	svc := NewCustomerService(repo)

	_, err := svc.Create(ctx, domain.CustomerInput{Name: "Budi", Email: "bad"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Update(ctx, "c1", domain.CustomerPatch{})
	assert.ErrorIs(t, err, domain.ErrEmptyPatch)

	in := domain.CustomerInput{Name: "Budi", Email: "budi@example.com", Password: "pw"}
	repo.On("Create", ctx, in).Return(&domain.Customer{ID: "c1", Name: "Budi"}, nil).Once()
	repo.On("List", ctx).Return([]domain.Customer{{ID: "c1"}}, nil).Once()
	repo.On("Delete", ctx, ids.ID("c1")).Return(nil).Once()

	created, err := svc.Create(ctx, in)
	assert.NoError(t, err)
	assert.Equal(t, ids.ID("c1"), created.ID)

	customers, err := svc.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, customers, 1)

	assert.NoError(t, svc.Delete(ctx, "c1"))
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

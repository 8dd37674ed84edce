package service

import (
	"context"

	"shop-admin/internal/core/ids"
	catalogdomain "shop-admin/internal/features/catalog/domain"
	"shop-admin/internal/features/orders/domain"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of ports.OrderRepository and ports.OrderItemRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListOrders(ctx context.Context) ([]domain.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, payload domain.CreateOrderPayload) (*domain.Order, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrder(ctx context.Context, id ids.ID, payload domain.UpdateOrderPayload) (*domain.Order, error) {
	args := m.Called(ctx, id, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) DeleteOrder(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) ListOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrderItem), args.Error(1)
}

func (m *MockOrderRepository) DeleteOrderItem(ctx context.Context, id ids.ID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCatalogProvider is a mock implementation of ports.CatalogProvider
type MockCatalogProvider struct {
	mock.Mock
}

func (m *MockCatalogProvider) ListProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalogdomain.Product), args.Error(1)
}

func (m *MockCatalogProvider) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// memoryFormStore is an in-memory ports.FormStore.
type memoryFormStore struct {
	sessions map[string]domain.FormSession
	saves    int
}

func newMemoryFormStore() *memoryFormStore {
	return &memoryFormStore{sessions: map[string]domain.FormSession{}}
}

func (s *memoryFormStore) Save(_ context.Context, session domain.FormSession) error {
	s.sessions[session.ID] = session
	s.saves++
	return nil
}

func (s *memoryFormStore) Get(_ context.Context, id string) (*domain.FormSession, error) {
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrFormNotFound
	}
	return &session, nil
}

func (s *memoryFormStore) Delete(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

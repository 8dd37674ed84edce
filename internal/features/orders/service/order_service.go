package service

import (
	"context"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"
)

// OrderServiceImpl implements ports.OrderService.
type OrderServiceImpl struct {
	orders ports.OrderRepository
	items  ports.OrderItemRepository
}

// NewOrderService creates a new OrderServiceImpl.
func NewOrderService(orders ports.OrderRepository, items ports.OrderItemRepository) *OrderServiceImpl {
	return &OrderServiceImpl{orders: orders, items: items}
}

func (s *OrderServiceImpl) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *OrderServiceImpl) GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, id)
}

func (s *OrderServiceImpl) DeleteOrder(ctx context.Context, id ids.ID) error {
	return s.orders.DeleteOrder(ctx, id)
}

func (s *OrderServiceImpl) ListOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	return s.items.ListOrderItems(ctx)
}

func (s *OrderServiceImpl) CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.items.CreateOrderItem(ctx, in)
}

func (s *OrderServiceImpl) UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.items.UpdateOrderItem(ctx, id, patch)
}

func (s *OrderServiceImpl) DeleteOrderItem(ctx context.Context, id ids.ID) error {
	return s.items.DeleteOrderItem(ctx, id)
}

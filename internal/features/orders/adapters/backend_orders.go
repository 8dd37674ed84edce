package adapters

import (
	"context"
	"fmt"
	"net/url"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/ids"
	"shop-admin/internal/features/orders/domain"
)

// BackendOrderAdapter implements ports.OrderRepository and
// ports.OrderItemRepository using the backend REST API.
type BackendOrderAdapter struct {
	client *backend.Client
}

// NewBackendOrderAdapter creates a new BackendOrderAdapter.
func NewBackendOrderAdapter(client *backend.Client) *BackendOrderAdapter {
	return &BackendOrderAdapter{client: client}
}

func orderPath(id ids.ID) string {
	return "/order/" + url.PathEscape(id.String())
}

func orderItemPath(id ids.ID) string {
	return "/order_item/" + url.PathEscape(id.String())
}

// ListOrders fetches every order with its customer and items.
func (a *BackendOrderAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders := []domain.Order{}
	if err := a.client.Get(ctx, "/order", &orders); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return orders, nil
}

// GetOrder fetches a single order.
func (a *BackendOrderAdapter) GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error) {
	var order domain.Order
	if err := a.client.Get(ctx, orderPath(id), &order); err != nil {
		return nil, fmt.Errorf("failed to fetch order %s: %w", id, err)
	}
	return &order, nil
}

// CreateOrder creates an order from a validated draft. The backend checks
// stock again and computes the total.
func (a *BackendOrderAdapter) CreateOrder(ctx context.Context, payload domain.CreateOrderPayload) (*domain.Order, error) {
	var order domain.Order
	if err := a.client.Post(ctx, "/order", payload, &order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &order, nil
}

// UpdateOrder patches an order.
func (a *BackendOrderAdapter) UpdateOrder(ctx context.Context, id ids.ID, payload domain.UpdateOrderPayload) (*domain.Order, error) {
	var order domain.Order
	if err := a.client.Patch(ctx, orderPath(id), payload, &order); err != nil {
		return nil, fmt.Errorf("failed to update order %s: %w", id, err)
	}
	return &order, nil
}

// DeleteOrder deletes an order.
func (a *BackendOrderAdapter) DeleteOrder(ctx context.Context, id ids.ID) error {
	if err := a.client.Delete(ctx, orderPath(id), nil); err != nil {
		return fmt.Errorf("failed to delete order %s: %w", id, err)
	}
	return nil
}

// ListOrderItems fetches every order item.
func (a *BackendOrderAdapter) ListOrderItems(ctx context.Context) ([]domain.OrderItem, error) {
	items := []domain.OrderItem{}
	if err := a.client.Get(ctx, "/order_item", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch order items: %w", err)
	}
	return items, nil
}

// CreateOrderItem creates an order item.
func (a *BackendOrderAdapter) CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := a.client.Post(ctx, "/order_item", in, &item); err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}
	return &item, nil
}

// UpdateOrderItem patches an order item.
func (a *BackendOrderAdapter) UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error) {
	var item domain.OrderItem
	if err := a.client.Patch(ctx, orderItemPath(id), patch, &item); err != nil {
		return nil, fmt.Errorf("failed to update order item %s: %w", id, err)
	}
	return &item, nil
}

// DeleteOrderItem deletes an order item.
func (a *BackendOrderAdapter) DeleteOrderItem(ctx context.Context, id ids.ID) error {
	if err := a.client.Delete(ctx, orderItemPath(id), nil); err != nil {
		return fmt.Errorf("failed to delete order item %s: %w", id, err)
	}
	return nil
}

package ports

import (
	"context"

	"shop-admin/internal/core/ids"
	catalogdomain "shop-admin/internal/features/catalog/domain"
	"shop-admin/internal/features/orders/domain"
)

// OrderRepository is the backend order store (driven port).
type OrderRepository interface {
	domain.OrderWriter
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id ids.ID) error
}

// OrderItemRepository is the backend order item store (driven port).
type OrderItemRepository interface {
	ListOrderItems(ctx context.Context) ([]domain.OrderItem, error)
	CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id ids.ID) error
}

// CatalogProvider supplies the product list a create form captures.
type CatalogProvider interface {
	ListProducts(ctx context.Context) ([]catalogdomain.Product, error)
}

// FormStore persists form sessions between requests.
type FormStore interface {
	Save(ctx context.Context, session domain.FormSession) error
	// Get returns an error wrapping domain.ErrFormNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.FormSession, error)
	Delete(ctx context.Context, id string) error
}

// OrderService is the primary port for order and order item CRUD.
type OrderService interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id ids.ID) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id ids.ID) error

	ListOrderItems(ctx context.Context) ([]domain.OrderItem, error)
	CreateOrderItem(ctx context.Context, in domain.OrderItemInput) (*domain.OrderItem, error)
	UpdateOrderItem(ctx context.Context, id ids.ID, patch domain.OrderItemPatch) (*domain.OrderItem, error)
	DeleteOrderItem(ctx context.Context, id ids.ID) error
}

// OpenRequest selects the form variant to open.
type OpenRequest struct {
	Mode    domain.Mode `json:"mode"`
	OrderID ids.ID      `json:"order_id,omitempty"`
}

// ItemChange edits one draft row. Nil fields are left untouched.
type ItemChange struct {
	ProductID *ids.ID `json:"product_id,omitempty"`
	Quantity  *int    `json:"quantity,omitempty"`
}

// FieldsChange edits the order-level fields of a form.
type FieldsChange struct {
	CustomerID *ids.ID             `json:"customer_id,omitempty"`
	Status     *domain.OrderStatus `json:"status,omitempty"`
}

// SubmitResult is the outcome of a successful submit.
type SubmitResult struct {
	Order *domain.Order `json:"order"`
	// Orders is the reloaded order list; nil when the reload failed.
	Orders []domain.Order `json:"orders"`
}

// FormService is the primary port for order form sessions.
type FormService interface {
	Open(ctx context.Context, req OpenRequest) (*domain.FormSession, error)
	Get(ctx context.Context, id string) (*domain.FormSession, error)
	UpdateFields(ctx context.Context, id string, change FieldsChange) (*domain.FormSession, error)
	AddItem(ctx context.Context, id string) (*domain.FormSession, error)
	UpdateItem(ctx context.Context, id string, index int, change ItemChange) (*domain.FormSession, error)
	RemoveItem(ctx context.Context, id string, index int) (*domain.FormSession, error)
	Cancel(ctx context.Context, id string) error
	Submit(ctx context.Context, id string) (*SubmitResult, error)
}

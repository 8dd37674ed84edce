package domain

import (
	"fmt"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/money"
)

// OrderStatus represents the current state of a persisted order.
type OrderStatus string

const (
	// OrderStatusPending is the initial status of a new order.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates the order is being prepared.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusCompleted indicates the order has been fulfilled.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled indicates the order was cancelled.
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusRefunded indicates the payment was returned.
	OrderStatusRefunded OrderStatus = "refunded"
)

// Statuses lists every status an admin may assign, in display order.
var Statuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusRefunded,
}

// Valid reports whether s is one of Statuses.
func (s OrderStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// ParseStatus converts raw input into an OrderStatus.
func ParseStatus(raw string) (OrderStatus, error) {
	s := OrderStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// CustomerRef is the customer relation the backend eager-loads on orders.
type CustomerRef struct {
	ID   ids.ID `json:"id"`
	Name string `json:"name"`
}

// ProductRef is the product relation the backend eager-loads on order items.
type ProductRef struct {
	ID    ids.ID       `json:"id"`
	Name  string       `json:"name"`
	Price money.Amount `json:"price"`
}

// OrderItem is a persisted line item.
type OrderItem struct {
	ID        ids.ID       `json:"id"`
	OrderID   ids.ID       `json:"order_id,omitempty"`
	ProductID ids.ID       `json:"product_id"`
	Quantity  int          `json:"quantity"`
	Price     money.Amount `json:"price"`
	Product   *ProductRef  `json:"product,omitempty"`
}

// Order is a persisted order. OrderDate and TotalAmount are computed by the
// backend and only ever echoed back.
type Order struct {
	ID          ids.ID       `json:"id"`
	CustomerID  ids.ID       `json:"customer_id"`
	OrderDate   string       `json:"order_date"`
	TotalAmount money.Amount `json:"total_amount"`
	Status      OrderStatus  `json:"status"`
	OrderItems  []OrderItem  `json:"order_items,omitempty"`
	Customer    *CustomerRef `json:"customer,omitempty"`
}

// CustomerName returns the eager-loaded customer name, or "N/A".
func (o Order) CustomerName() string {
	if o.Customer == nil || o.Customer.Name == "" {
		return "N/A"
	}
	return o.Customer.Name
}

// UpdateOrderPayload is the PATCH /order/{id} body sent by the edit form.
type UpdateOrderPayload struct {
	ID          ids.ID       `json:"id,omitempty"`
	CustomerID  ids.ID       `json:"customer_id"`
	OrderDate   string       `json:"order_date"`
	TotalAmount money.Amount `json:"total_amount"`
	Status      OrderStatus  `json:"status"`
}

// OrderItemInput creates a single order item outside of checkout.
type OrderItemInput struct {
	OrderID   ids.ID `json:"order_id"`
	ProductID ids.ID `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Validate checks the order item payload.
func (in OrderItemInput) Validate() error {
	if in.OrderID.IsZero() {
		return ErrOrderRequired
	}
	if in.ProductID.IsZero() {
		return ErrProductNotSelected
	}
	if in.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	return nil
}

// OrderItemPatch changes the quantity of an order item.
type OrderItemPatch struct {
	Quantity *int `json:"quantity,omitempty"`
}

// Validate checks the order item patch.
func (p OrderItemPatch) Validate() error {
	if p.Quantity == nil {
		return ErrEmptyPatch
	}
	if *p.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	return nil
}

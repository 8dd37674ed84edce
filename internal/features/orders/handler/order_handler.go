package handler

import (
	"net/http"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/orders/domain"
	"shop-admin/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests for persisted orders and order items.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Register mounts the order routes.
func (h *OrderHandler) Register(r fiber.Router) {
	r.Get("/orders", h.ListOrders)
	r.Get("/orders/:id", h.GetOrder)
	r.Delete("/orders/:id", h.DeleteOrder)

	r.Get("/order-items", h.ListOrderItems)
	r.Post("/order-items", h.CreateOrderItem)
	r.Patch("/order-items/:id", h.UpdateOrderItem)
	r.Delete("/order-items/:id", h.DeleteOrderItem)
}

// ListOrders handles GET /orders.
// @Summary List orders
// @Description Returns every order with its customer and items.
// @Tags Orders
// @Produce json
// @Success 200 {array} domain.Order
// @Failure 502 {object} respond.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListOrders(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list orders")
	}
	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles GET /orders/:id.
// @Summary Get an order
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	order, err := h.service.GetOrder(c.UserContext(), ids.ID(id))
	if err != nil {
		return fail(c, err, "Failed to get order", zap.String("order_id", id))
	}
	return c.Status(http.StatusOK).JSON(order)
}

// DeleteOrder handles DELETE /orders/:id.
// @Summary Delete an order
// @Tags Orders
// @Param id path string true "Order ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOrder(c.UserContext(), ids.ID(id)); err != nil {
		return fail(c, err, "Failed to delete order", zap.String("order_id", id))
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListOrderItems handles GET /order-items.
// @Summary List order items
// @Tags Order Items
// @Produce json
// @Success 200 {array} domain.OrderItem
// @Router /order-items [get]
func (h *OrderHandler) ListOrderItems(c *fiber.Ctx) error {
	items, err := h.service.ListOrderItems(c.UserContext())
	if err != nil {
		return fail(c, err, "Failed to list order items")
	}
	return c.Status(http.StatusOK).JSON(items)
}

// CreateOrderItem handles POST /order-items.
// @Summary Create an order item
// @Tags Order Items
// @Accept json
// @Produce json
// @Param item body domain.OrderItemInput true "Order item"
// @Success 201 {object} domain.OrderItem
// @Failure 400 {object} respond.ErrorResponse
// @Router /order-items [post]
func (h *OrderHandler) CreateOrderItem(c *fiber.Ctx) error {
	var in domain.OrderItemInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	item, err := h.service.CreateOrderItem(c.UserContext(), in)
	if err != nil {
		return fail(c, err, "Failed to create order item")
	}
	return c.Status(http.StatusCreated).JSON(item)
}

// UpdateOrderItem handles PATCH /order-items/:id.
// @Summary Update an order item
// @Tags Order Items
// @Accept json
// @Produce json
// @Param id path string true "Order item ID"
// @Param item body domain.OrderItemPatch true "Fields to change"
// @Success 200 {object} domain.OrderItem
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /order-items/{id} [patch]
func (h *OrderHandler) UpdateOrderItem(c *fiber.Ctx) error {
	var patch domain.OrderItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	id := c.Params("id")
	item, err := h.service.UpdateOrderItem(c.UserContext(), ids.ID(id), patch)
	if err != nil {
		return fail(c, err, "Failed to update order item", zap.String("item_id", id))
	}
	return c.Status(http.StatusOK).JSON(item)
}

// DeleteOrderItem handles DELETE /order-items/:id.
// @Summary Delete an order item
// @Tags Order Items
// @Param id path string true "Order item ID"
// @Success 204
// @Router /order-items/{id} [delete]
func (h *OrderHandler) DeleteOrderItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.service.DeleteOrderItem(c.UserContext(), ids.ID(id)); err != nil {
		return fail(c, err, "Failed to delete order item", zap.String("item_id", id))
	}
	return c.SendStatus(http.StatusNoContent)
}

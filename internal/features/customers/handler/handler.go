package handler

import (
	"errors"
	"net/http"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/customers/domain"
	"shop-admin/internal/features/customers/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	service ports.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(service ports.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// Register mounts the customer routes.
func (h *CustomerHandler) Register(r fiber.Router) {
	r.Get("/customers", h.List)
	r.Post("/customers", h.Create)
	r.Patch("/customers/:id", h.Update)
	r.Delete("/customers/:id", h.Delete)
}

func (h *CustomerHandler) fail(c *fiber.Ctx, err error, logMsg string) error {
	if errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrInvalidEmail) ||
		errors.Is(err, domain.ErrPasswordRequired) ||
		errors.Is(err, domain.ErrEmptyPatch) {
		return respond.Error(c, http.StatusBadRequest, err.Error())
	}
	return respond.Failure(c, err, logMsg, zap.String("customer_id", c.Params("id")))
}

// List handles GET /customers.
// @Summary List customers
// @Tags Customers
// @Produce json
// @Success 200 {array} domain.Customer
// @Router /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	customers, err := h.service.List(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Failed to list customers")
	}
	return c.Status(http.StatusOK).JSON(customers)
}

// Create handles POST /customers.
// @Summary Create a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param customer body domain.CustomerInput true "Customer"
// @Success 201 {object} domain.Customer
// @Failure 400 {object} respond.ErrorResponse
// @Router /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in domain.CustomerInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	customer, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, "Failed to create customer")
	}
	return c.Status(http.StatusCreated).JSON(customer)
}

// Update handles PATCH /customers/:id.
// @Summary Update a customer
// @Tags Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param customer body domain.CustomerPatch true "Fields to change"
// @Success 200 {object} domain.Customer
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var patch domain.CustomerPatch
	if err := c.BodyParser(&patch); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	customer, err := h.service.Update(c.UserContext(), ids.ID(c.Params("id")), patch)
	if err != nil {
		return h.fail(c, err, "Failed to update customer")
	}
	return c.Status(http.StatusOK).JSON(customer)
}

// Delete handles DELETE /customers/:id.
// @Summary Delete a customer
// @Tags Customers
// @Param id path string true "Customer ID"
// @Success 204
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), ids.ID(c.Params("id"))); err != nil {
		return h.fail(c, err, "Failed to delete customer")
	}
	return c.SendStatus(http.StatusNoContent)
}

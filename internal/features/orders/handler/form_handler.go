package handler

import (
	"net/http"

	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/orders/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormHandler exposes order form sessions over HTTP.
type FormHandler struct {
	service ports.FormService
}

// NewFormHandler creates a new FormHandler.
func NewFormHandler(service ports.FormService) *FormHandler {
	return &FormHandler{service: service}
}

// Register mounts the form routes.
func (h *FormHandler) Register(r fiber.Router) {
	forms := r.Group("/forms")
	forms.Post("/", h.Open)
	forms.Get("/:id", h.Get)
	forms.Patch("/:id", h.UpdateFields)
	forms.Delete("/:id", h.Cancel)
	forms.Post("/:id/items", h.AddItem)
	forms.Patch("/:id/items/:index", h.UpdateItem)
	forms.Delete("/:id/items/:index", h.RemoveItem)
	forms.Post("/:id/submit", h.Submit)
}

// Open handles POST /forms.
// @Summary Open an order form
// @Description Create mode captures the product catalog; edit mode loads the order. Any previous draft is never resumed.
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body ports.OpenRequest true "Form mode"
// @Success 201 {object} domain.FormSession
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /forms [post]
func (h *FormHandler) Open(c *fiber.Ctx) error {
	var req ports.OpenRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.Open(c.UserContext(), req)
	if err != nil {
		return fail(c, err, "Failed to open order form", zap.String("mode", string(req.Mode)))
	}
	return c.Status(http.StatusCreated).JSON(session)
}

// Get handles GET /forms/:id.
// @Summary Get an order form
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} domain.FormSession
// @Failure 404 {object} respond.ErrorResponse
// @Router /forms/{id} [get]
func (h *FormHandler) Get(c *fiber.Ctx) error {
	session, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to load order form", zap.String("form_id", c.Params("id")))
	}
	return c.Status(http.StatusOK).JSON(session)
}

// UpdateFields handles PATCH /forms/:id.
// @Summary Change customer or status
// @Description The customer is editable only in create mode; the status only in edit mode.
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param change body ports.FieldsChange true "Fields to change"
// @Success 200 {object} domain.FormSession
// @Failure 400 {object} respond.ErrorResponse
// @Failure 409 {object} respond.ErrorResponse
// @Router /forms/{id} [patch]
func (h *FormHandler) UpdateFields(c *fiber.Ctx) error {
	var change ports.FieldsChange
	if err := c.BodyParser(&change); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.UpdateFields(c.UserContext(), c.Params("id"), change)
	if err != nil {
		return fail(c, err, "Failed to update order form", zap.String("form_id", c.Params("id")))
	}
	return c.Status(http.StatusOK).JSON(session)
}

// Cancel handles DELETE /forms/:id.
// @Summary Cancel an order form
// @Tags Forms
// @Param id path string true "Form ID"
// @Success 204
// @Failure 404 {object} respond.ErrorResponse
// @Router /forms/{id} [delete]
func (h *FormHandler) Cancel(c *fiber.Ctx) error {
	if err := h.service.Cancel(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to cancel order form", zap.String("form_id", c.Params("id")))
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddItem handles POST /forms/:id/items.
// @Summary Add a line item
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} domain.FormSession
// @Failure 409 {object} respond.ErrorResponse
// @Router /forms/{id}/items [post]
func (h *FormHandler) AddItem(c *fiber.Ctx) error {
	session, err := h.service.AddItem(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to add line item", zap.String("form_id", c.Params("id")))
	}
	return c.Status(http.StatusOK).JSON(session)
}

// UpdateItem handles PATCH /forms/:id/items/:index.
// @Summary Select a product or set a quantity
// @Description Selecting an unknown product resets the row. Quantities are stored as entered.
// @Tags Forms
// @Accept json
// @Produce json
// @Param id path string true "Form ID"
// @Param index path int true "Line item index"
// @Param change body ports.ItemChange true "Fields to change"
// @Success 200 {object} domain.FormSession
// @Failure 400 {object} respond.ErrorResponse
// @Router /forms/{id}/items/{index} [patch]
func (h *FormHandler) UpdateItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid item index")
	}

	var change ports.ItemChange
	if err := c.BodyParser(&change); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.UpdateItem(c.UserContext(), c.Params("id"), index, change)
	if err != nil {
		return fail(c, err, "Failed to update line item", zap.String("form_id", c.Params("id")), zap.Int("index", index))
	}
	return c.Status(http.StatusOK).JSON(session)
}

// RemoveItem handles DELETE /forms/:id/items/:index.
// @Summary Remove a line item
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Param index path int true "Line item index"
// @Success 200 {object} domain.FormSession
// @Failure 400 {object} respond.ErrorResponse
// @Router /forms/{id}/items/{index} [delete]
func (h *FormHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid item index")
	}

	session, err := h.service.RemoveItem(c.UserContext(), c.Params("id"), index)
	if err != nil {
		return fail(c, err, "Failed to remove line item", zap.String("form_id", c.Params("id")), zap.Int("index", index))
	}
	return c.Status(http.StatusOK).JSON(session)
}

// Submit handles POST /forms/:id/submit.
// @Summary Submit an order form
// @Description Create mode validates the draft first; a failed validation never reaches the backend. On success the form is closed and the order list is reloaded.
// @Tags Forms
// @Produce json
// @Param id path string true "Form ID"
// @Success 200 {object} ports.SubmitResult
// @Failure 404 {object} respond.ErrorResponse
// @Failure 422 {object} ValidationResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /forms/{id}/submit [post]
func (h *FormHandler) Submit(c *fiber.Ctx) error {
	result, err := h.service.Submit(c.UserContext(), c.Params("id"))
	if err != nil {
		return fail(c, err, "Failed to submit order form", zap.String("form_id", c.Params("id")))
	}
	return c.Status(http.StatusOK).JSON(result)
}

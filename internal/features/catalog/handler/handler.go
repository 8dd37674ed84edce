package handler

import (
	"errors"
	"net/http"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/catalog/domain"
	"shop-admin/internal/features/catalog/ports"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for products and categories.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// Register mounts the catalog routes.
func (h *CatalogHandler) Register(r fiber.Router) {
	r.Get("/products", h.ListProducts)
	r.Post("/products", h.CreateProduct)
	r.Patch("/products/:id", h.UpdateProduct)
	r.Delete("/products/:id", h.DeleteProduct)

	r.Get("/categories", h.ListCategories)
	r.Post("/categories", h.CreateCategory)
	r.Patch("/categories/:id", h.UpdateCategory)
	r.Delete("/categories/:id", h.DeleteCategory)
}

func isInputError(err error) bool {
	return errors.Is(err, domain.ErrNameRequired) ||
		errors.Is(err, domain.ErrNegativePrice) ||
		errors.Is(err, domain.ErrNegativeStock) ||
		errors.Is(err, domain.ErrEmptyPatch)
}

func (h *CatalogHandler) fail(c *fiber.Ctx, err error, logMsg string) error {
	if isInputError(err) {
		return respond.Error(c, http.StatusBadRequest, err.Error())
	}
	return respond.Failure(c, err, logMsg, zap.String("id", c.Params("id")))
}

// ListProducts handles GET /products.
// @Summary List products
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Product
// @Failure 502 {object} respond.ErrorResponse
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.service.ListProducts(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Failed to list products")
	}
	return c.Status(http.StatusOK).JSON(products)
}

// CreateProduct handles POST /products.
// @Summary Create a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body domain.ProductInput true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} respond.ErrorResponse
// @Router /products [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in domain.ProductInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	product, err := h.service.CreateProduct(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, "Failed to create product")
	}
	return c.Status(http.StatusCreated).JSON(product)
}

// UpdateProduct handles PATCH /products/:id.
// @Summary Update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body domain.ProductPatch true "Fields to change"
// @Success 200 {object} domain.Product
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /products/{id} [patch]
func (h *CatalogHandler) UpdateProduct(c *fiber.Ctx) error {
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	product, err := h.service.UpdateProduct(c.UserContext(), ids.ID(c.Params("id")), patch)
	if err != nil {
		return h.fail(c, err, "Failed to update product")
	}
	return c.Status(http.StatusOK).JSON(product)
}

// DeleteProduct handles DELETE /products/:id.
// @Summary Delete a product
// @Tags Catalog
// @Param id path string true "Product ID"
// @Success 204
// @Router /products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *fiber.Ctx) error {
	if err := h.service.DeleteProduct(c.UserContext(), ids.ID(c.Params("id"))); err != nil {
		return h.fail(c, err, "Failed to delete product")
	}
	return c.SendStatus(http.StatusNoContent)
}

// ListCategories handles GET /categories.
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} domain.Category
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext())
	if err != nil {
		return h.fail(c, err, "Failed to list categories")
	}
	return c.Status(http.StatusOK).JSON(categories)
}

// CreateCategory handles POST /categories.
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param category body domain.CategoryInput true "Category"
// @Success 201 {object} domain.Category
// @Router /categories [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in domain.CategoryInput
	if err := c.BodyParser(&in); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.CreateCategory(c.UserContext(), in)
	if err != nil {
		return h.fail(c, err, "Failed to create category")
	}
	return c.Status(http.StatusCreated).JSON(category)
}

// UpdateCategory handles PATCH /categories/:id.
// @Summary Update a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body domain.CategoryPatch true "Fields to change"
// @Success 200 {object} domain.Category
// @Router /categories/{id} [patch]
func (h *CatalogHandler) UpdateCategory(c *fiber.Ctx) error {
	var patch domain.CategoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	category, err := h.service.UpdateCategory(c.UserContext(), ids.ID(c.Params("id")), patch)
	if err != nil {
		return h.fail(c, err, "Failed to update category")
	}
	return c.Status(http.StatusOK).JSON(category)
}

// DeleteCategory handles DELETE /categories/:id.
// @Summary Delete a category
// @Tags Catalog
// @Param id path string true "Category ID"
// @Success 204
// @Router /categories/{id} [delete]
func (h *CatalogHandler) DeleteCategory(c *fiber.Ctx) error {
	if err := h.service.DeleteCategory(c.UserContext(), ids.ID(c.Params("id"))); err != nil {
		return h.fail(c, err, "Failed to delete category")
	}
	return c.SendStatus(http.StatusNoContent)
}

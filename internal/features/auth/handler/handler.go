package handler

import (
	"errors"
	"net/http"

	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/auth/domain"
	"shop-admin/internal/features/auth/ports"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles admin login and logout.
type AuthHandler struct {
	service ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register mounts the auth routes.
func (h *AuthHandler) Register(r fiber.Router) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
}

// Login handles POST /login.
// @Summary Log in to the backend
// @Description Exchanges admin credentials for a backend token and stores it for later calls.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body domain.Credentials true "Admin credentials"
// @Success 200 {object} domain.Session
// @Failure 400 {object} respond.ErrorResponse
// @Failure 401 {object} respond.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var creds domain.Credentials
	if err := c.BodyParser(&creds); err != nil {
		return respond.Error(c, http.StatusBadRequest, "Invalid request body")
	}

	session, err := h.service.Login(c.UserContext(), creds)
	if err != nil {
		if errors.Is(err, domain.ErrMissingCredentials) {
			return respond.Error(c, http.StatusBadRequest, err.Error())
		}
		return respond.Failure(c, err, "Login failed")
	}

	return c.Status(http.StatusOK).JSON(session)
}

// Logout handles POST /logout.
// @Summary Log out from the backend
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} respond.ErrorResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.service.Logout(c.UserContext()); err != nil {
		return respond.Failure(c, err, "Logout failed")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Logged out",
	})
}

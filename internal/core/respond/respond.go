// Package respond holds the JSON error envelope shared by every handler.
package respond

import (
	"context"
	"errors"
	"net/http"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RayID returns the request id set by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	if rayID, ok := c.Locals("requestid").(string); ok && rayID != "" {
		return rayID
	}
	return "unknown"
}

// Error writes an ErrorResponse with the given status.
func Error(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   RayID(c),
	})
}

// Failure logs err and maps it to a response. Backend 4xx statuses are passed
// through with the backend's message; backend 5xx become 502.
func Failure(c *fiber.Ctx, err error, logMsg string, fields ...zap.Field) error {
	fields = append(fields, zap.Error(err))
	logger.FromContext(c.UserContext()).Error(logMsg, fields...)

	var apiErr *backend.APIError
	switch {
	case errors.Is(err, backend.ErrMissingToken):
		return Error(c, http.StatusUnauthorized, "Token not found")
	case errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
		return Error(c, apiErr.StatusCode, apiErr.Message)
	case errors.As(err, &apiErr):
		return Error(c, http.StatusBadGateway, apiErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return Error(c, http.StatusGatewayTimeout, "Backend timed out")
	default:
		return Error(c, http.StatusInternalServerError, err.Error())
	}
}

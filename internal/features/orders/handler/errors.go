package handler

import (
	"errors"
	"net/http"

	"shop-admin/internal/core/respond"
	"shop-admin/internal/features/orders/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ValidationResponse is returned with 422 when a draft fails validation.
type ValidationResponse struct {
	Message  string               `json:"message"`
	RayID    string               `json:"ray_id"`
	Problems []domain.ItemProblem `json:"problems,omitempty"`
}

var inputErrors = []error{
	domain.ErrItemIndex,
	domain.ErrInvalidStatus,
	domain.ErrUnknownMode,
	domain.ErrOrderRequired,
	domain.ErrProductNotSelected,
	domain.ErrNonPositiveQuantity,
	domain.ErrEmptyPatch,
}

var conflictErrors = []error{
	domain.ErrCustomerLocked,
	domain.ErrItemsLocked,
	domain.ErrStatusLocked,
	domain.ErrFormClosed,
}

func matches(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func fail(c *fiber.Ctx, err error, logMsg string, fields ...zap.Field) error {
	if ve, ok := domain.AsValidationError(err); ok {
		return c.Status(http.StatusUnprocessableEntity).JSON(ValidationResponse{
			Message:  ve.Message,
			RayID:    respond.RayID(c),
			Problems: ve.Problems,
		})
	}
	switch {
	case errors.Is(err, domain.ErrFormNotFound):
		return respond.Error(c, http.StatusNotFound, "Form not found")
	case matches(err, conflictErrors):
		return respond.Error(c, http.StatusConflict, err.Error())
	case matches(err, inputErrors):
		return respond.Error(c, http.StatusBadRequest, err.Error())
	}
	return respond.Failure(c, err, logMsg, fields...)
}

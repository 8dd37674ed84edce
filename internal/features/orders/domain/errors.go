package domain

import (
	"errors"
	"strings"

	"shop-admin/internal/core/ids"
)

var (
	// ErrEmptyDraft is returned when a draft has no line items.
	ErrEmptyDraft = errors.New("order has no items")
	// ErrInvalidItems is returned when at least one line item fails validation.
	ErrInvalidItems = errors.New("order has invalid items")
	// ErrProductNotSelected marks a line item without a product.
	ErrProductNotSelected = errors.New("no product selected")
	// ErrNonPositiveQuantity marks a line item whose quantity is zero or negative.
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	// ErrInsufficientStock marks a line item whose quantity exceeds the captured stock.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrItemIndex is returned for a line item index outside the draft.
	ErrItemIndex = errors.New("line item index out of range")
	// ErrInvalidStatus is returned for a status outside Statuses.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrCustomerLocked is returned when an edit form is asked to change the customer.
	ErrCustomerLocked = errors.New("customer cannot be changed on an existing order")
	// ErrItemsLocked is returned when an edit form is asked to change line items.
	ErrItemsLocked = errors.New("items cannot be changed on an existing order")
	// ErrStatusLocked is returned when a create form is asked to set a status.
	ErrStatusLocked = errors.New("status can only be changed on an existing order")
	// ErrFormClosed is returned for any operation on a closed form.
	ErrFormClosed = errors.New("form is closed")
	// ErrFormNotFound is returned when a form session does not exist or has expired.
	ErrFormNotFound = errors.New("form session not found")
	// ErrUnknownMode is returned when a form session carries an unknown mode.
	ErrUnknownMode = errors.New("unknown form mode")
	// ErrOrderRequired is returned when an order item has no order.
	ErrOrderRequired = errors.New("order_id is required")
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)

const (
	msgEmptyDraft   = "add at least one product to the order"
	msgInvalidItems = "check the order's products and quantities (insufficient stock or invalid data)"
)

// ItemProblem describes why one line item failed validation.
type ItemProblem struct {
	Index     int    `json:"index"`
	ProductID ids.ID `json:"product_id"`
	Message   string `json:"message"`
	Reason    error  `json:"-"`
}

// ValidationError blocks a submit. It unwraps to its Kind and to every
// item's Reason so errors.Is works on both.
type ValidationError struct {
	Kind     error
	Message  string
	Problems []ItemProblem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

// Unwrap exposes the kind and every item reason.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(e.Problems)+1)
	errs = append(errs, e.Kind)
	for _, p := range e.Problems {
		errs = append(errs, p.Reason)
	}
	return errs
}

// AsValidationError extracts a *ValidationError from err.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

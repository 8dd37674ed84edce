package domain

import "shop-admin/internal/core/ids"

// Category groups products. The backend links a category to one product.
type Category struct {
	ID          ids.ID `json:"id"`
	ProductID   ids.ID `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryInput is the body for creating a category.
type CategoryInput struct {
	ProductID   ids.ID `json:"product_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate checks the create payload.
func (in CategoryInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// CategoryPatch is a partial update; nil fields are left untouched.
type CategoryPatch struct {
	ProductID   *ids.ID `json:"product_id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Validate checks the patch payload.
func (p CategoryPatch) Validate() error {
	if p.ProductID == nil && p.Name == nil && p.Description == nil {
		return ErrEmptyPatch
	}
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	return nil
}

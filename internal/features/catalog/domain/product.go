package domain

import (
	"errors"

	"shop-admin/internal/core/ids"
	"shop-admin/internal/core/money"
)

var (
	// ErrNameRequired is returned when a product or category has no name.
	ErrNameRequired = errors.New("name is required")
	// ErrNegativePrice is returned when a product price is below zero.
	ErrNegativePrice = errors.New("price must not be negative")
	// ErrNegativeStock is returned when a product stock is below zero.
	ErrNegativeStock = errors.New("stock must not be negative")
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)

// Product is a catalog entry owned by the backend.
type Product struct {
	ID          ids.ID       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	Stock       int          `json:"stock"`
	Category    string       `json:"category"`
}

// ProductInput is the body for creating a product.
type ProductInput struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       money.Amount `json:"price"`
	Stock       int          `json:"stock"`
	Category    string       `json:"category"`
}

// Validate checks the create payload.
func (in ProductInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Price.Negative() {
		return ErrNegativePrice
	}
	if in.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

// ProductPatch is a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name        *string       `json:"name,omitempty"`
	Description *string       `json:"description,omitempty"`
	Price       *money.Amount `json:"price,omitempty"`
	Stock       *int          `json:"stock,omitempty"`
	Category    *string       `json:"category,omitempty"`
}

// Validate checks the patch payload.
func (p ProductPatch) Validate() error {
	if p.Name == nil && p.Description == nil && p.Price == nil && p.Stock == nil && p.Category == nil {
		return ErrEmptyPatch
	}
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Price != nil && p.Price.Negative() {
		return ErrNegativePrice
	}
	if p.Stock != nil && *p.Stock < 0 {
		return ErrNegativeStock
	}
	return nil
}

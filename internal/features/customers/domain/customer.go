package domain

import (
	"errors"
	"net/mail"

	"shop-admin/internal/core/ids"
)

var (
	// ErrNameRequired is returned when a customer has no name.
	ErrNameRequired = errors.New("name is required")
	// ErrInvalidEmail is returned when the email address cannot be parsed.
	ErrInvalidEmail = errors.New("email is invalid")
	// ErrPasswordRequired is returned when a new customer has no password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrEmptyPatch is returned when an update carries no fields.
	ErrEmptyPatch = errors.New("no fields to update")
)

// Customer is a shop customer. The password is write-only and never decoded.
type Customer struct {
	ID      ids.ID `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerInput is the body for creating a customer.
type CustomerInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// Validate checks the create payload.
func (in CustomerInput) Validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return ErrInvalidEmail
	}
	if in.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

// CustomerPatch is a partial update; nil fields are left untouched.
type CustomerPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// Validate checks the patch payload.
func (p CustomerPatch) Validate() error {
	if p.Name == nil && p.Email == nil && p.Password == nil && p.Phone == nil && p.Address == nil {
		return ErrEmptyPatch
	}
	if p.Name != nil && *p.Name == "" {
		return ErrNameRequired
	}
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return ErrInvalidEmail
		}
	}
	if p.Password != nil && *p.Password == "" {
		return ErrPasswordRequired
	}
	return nil
}

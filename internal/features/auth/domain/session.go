package domain

import "errors"

// ErrMissingCredentials is returned when email or password is blank.
var ErrMissingCredentials = errors.New("email and password are required")

// ErrNoToken is returned when the backend login response carries no token.
var ErrNoToken = errors.New("login response did not contain a token")

// Credentials is the admin login input.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both fields are present.
func (c Credentials) Validate() error {
	if c.Email == "" || c.Password == "" {
		return ErrMissingCredentials
	}
	return nil
}

// User is the authenticated admin as reported by the backend.
type User struct {
	ID    any    `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

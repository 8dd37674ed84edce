package adapters

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shop-admin/internal/core/backend"
	"shop-admin/internal/features/auth/domain"
)

// BackendAuthAdapter implements ports.AuthProvider against the backend /login and /logout.
type BackendAuthAdapter struct {
	client *backend.Client
}

// NewBackendAuthAdapter creates a new BackendAuthAdapter.
func NewBackendAuthAdapter(client *backend.Client) *BackendAuthAdapter {
	return &BackendAuthAdapter{client: client}
}

type loginResponse struct {
	Token       string       `json:"token"`
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token.
func (a *BackendAuthAdapter) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	var resp loginResponse
	if err := a.client.Post(ctx, "/login", creds, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	token := resp.Token
	if token == "" {
		token = resp.AccessToken
	}
	if token == "" {
		return nil, domain.ErrNoToken
	}

	return &domain.Session{Token: token, User: resp.User}, nil
}

// Logout revokes the stored token on the backend. It refuses to call the
// backend when no token is stored.
func (a *BackendAuthAdapter) Logout(ctx context.Context) error {
	if err := a.client.RequireToken(ctx); err != nil {
		return err
	}
	if err := a.client.Post(ctx, "/logout", struct{}{}, nil); err != nil {
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			// already revoked
			return nil
		}
		return fmt.Errorf("logout failed: %w", err)
	}
	return nil
}

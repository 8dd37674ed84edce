package ports

import (
	"context"

	"shop-admin/internal/features/auth/domain"
)

// AuthProvider is the backend authentication endpoint (driven port).
type AuthProvider interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Logout(ctx context.Context) error
}

// TokenStore persists the bearer token between requests.
type TokenStore interface {
	// Token returns the stored token, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

// AuthService is the primary port used by the handler.
type AuthService interface {
	Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error)
	Logout(ctx context.Context) error
}

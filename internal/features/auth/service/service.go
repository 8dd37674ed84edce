package service

import (
	"context"
	"fmt"

	"shop-admin/internal/features/auth/domain"
	"shop-admin/internal/features/auth/ports"
)

// AuthServiceImpl implements ports.AuthService.
type AuthServiceImpl struct {
	provider ports.AuthProvider
	store    ports.TokenStore
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(provider ports.AuthProvider, store ports.TokenStore) *AuthServiceImpl {
	return &AuthServiceImpl{
		provider: provider,
		store:    store,
	}
}

// Login authenticates against the backend and persists the returned token.
func (s *AuthServiceImpl) Login(ctx context.Context, creds domain.Credentials) (*domain.Session, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	session, err := s.provider.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, session.Token); err != nil {
		return nil, fmt.Errorf("service: failed to persist token: %w", err)
	}

	return session, nil
}

// Logout revokes the token on the backend and then forgets it locally.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.provider.Logout(ctx); err != nil {
		return err
	}

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("service: failed to clear token: %w", err)
	}

	return nil
}

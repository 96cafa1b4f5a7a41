package services

import (
	"context"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// AuthTokens bundles the credentials issued on successful authentication.
type AuthTokens struct {
	AccessToken        string
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

// AuthSvcFacade issues and rotates application credentials.
type AuthSvcFacade interface {
	// Login verifies password credentials and issues tokens.
	Login(ctx context.Context, email, password string) (*domain.User, *AuthTokens, error)

	// LoginWithGoogleCode exchanges a Google authorization code, validates the
	// ID token, resolves the user and issues tokens.
	LoginWithGoogleCode(ctx context.Context, code string) (*domain.User, *AuthTokens, error)

	// Refresh rotates the refresh token and issues a new access token.
	Refresh(ctx context.Context, refreshToken string) (*domain.User, *AuthTokens, error)

	// Logout invalidates the user's refresh token.
	Logout(ctx context.Context, userID string) error
}

// GoogleOAuthSvc wraps the Google code-exchange and ID-token validation calls.
type GoogleOAuthSvc interface {
	// ExchangeCode exchanges an authorization code for the Google ID token's
	// verified claims (subject, email, name).
	ExchangeCode(ctx context.Context, code string) (subject, email, name string, err error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/platform/config"
	"github.com/IgrejaViva/igreja_backend/internal/utils"
)

// authService implements the AuthSvcFacade interface. Refresh tokens are
// opaque "userID.random" strings; only the SHA256 hash of the random part is
// stored, and every refresh rotates it.
type authService struct {
	BaseService
	cfg       *config.Config
	userSvc   portssvc.UserSvcFacade
	userRepo  portsrepo.UserWriter
	googleSvc portssvc.GoogleOAuthSvc
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config, userSvc portssvc.UserSvcFacade, userRepo portsrepo.UserWriter, googleSvc portssvc.GoogleOAuthSvc) portssvc.AuthSvcFacade {
	return &authService{
		cfg:       cfg,
		userSvc:   userSvc,
		userRepo:  userRepo,
		googleSvc: googleSvc,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies password credentials and issues tokens.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, *portssvc.AuthTokens, error) {
	user, err := s.userSvc.AuthenticateUser(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

// LoginWithGoogleCode exchanges a Google authorization code and issues tokens
// for the resolved user.
func (s *authService) LoginWithGoogleCode(ctx context.Context, code string) (*domain.User, *portssvc.AuthTokens, error) {
	subject, email, name, err := s.googleSvc.ExchangeCode(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed")
		return nil, nil, apperrors.ErrUnauthorized
	}
	user, err := s.userSvc.FindOrCreateOAuthUser(ctx, "google", subject, email, name)
	if err != nil {
		return nil, nil, err
	}
	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.LogInfo(ctx, "User logged in via Google", slog.String("user_id", user.UserID))
	return user, tokens, nil
}

// Refresh validates the presented refresh token, rotates it and issues a new
// access token.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*domain.User, *portssvc.AuthTokens, error) {
	userID, raw, ok := strings.Cut(refreshToken, ".")
	if !ok || userID == "" || raw == "" {
		return nil, nil, apperrors.ErrUnauthorized
	}

	user, err := s.userSvc.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.ErrUnauthorized
		}
		return nil, nil, err
	}
	if user.RefreshTokenHash == nil || user.RefreshTokenExpiryAt == nil {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(*user.RefreshTokenExpiryAt) {
		return nil, nil, apperrors.ErrUnauthorized
	}
	if !utils.CompareRefreshTokenHash(raw, *user.RefreshTokenHash) {
		s.LogInfo(ctx, "Refresh token mismatch", slog.String("user_id", userID))
		return nil, nil, apperrors.ErrUnauthorized
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, tokens, nil
}

// Logout clears the user's stored refresh token.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil, nil); err != nil {
		s.LogError(ctx, err, "Failed to clear refresh token", slog.String("user_id", userID))
		return err
	}
	return nil
}

// issueTokens creates an access token and a rotated refresh token, persisting
// the refresh token hash.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*portssvc.AuthTokens, error) {
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	raw, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}
	expiry := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	hash := utils.HashRefreshToken(raw)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, &hash, &expiry); err != nil {
		s.LogError(ctx, err, "Failed to persist refresh token", slog.String("user_id", user.UserID))
		return nil, err
	}

	return &portssvc.AuthTokens{
		AccessToken:        accessToken,
		RefreshToken:       user.UserID + "." + raw,
		RefreshTokenExpiry: expiry,
	}, nil
}

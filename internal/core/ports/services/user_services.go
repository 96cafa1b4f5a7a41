package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// UserReaderSvc defines read operations for users
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for users
type UserWriterSvc interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)

	// FindOrCreateOAuthUser resolves a user from an external identity,
	// creating a MEMBER-role user on first sign-in.
	FindOrCreateOAuthUser(ctx context.Context, provider, providerUserID, email, name string) (*domain.User, error)
}

// UserAuthenticatorSvc verifies password credentials.
type UserAuthenticatorSvc interface {
	// AuthenticateUser returns the user when the email/password pair is valid,
	// apperrors.ErrUnauthorized otherwise.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthenticatorSvc
}

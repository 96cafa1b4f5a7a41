package repositories

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CongregationReader defines read operations for congregation data
type CongregationReader interface {
	// FindCongregationByID retrieves a specific congregation by its ID.
	FindCongregationByID(ctx context.Context, congregationID string) (*domain.Congregation, error)

	// ListCongregations retrieves all active congregations.
	ListCongregations(ctx context.Context, limit, offset int) ([]domain.Congregation, error)

	// ListCongregationIDsByUserID retrieves the IDs of the congregations a
	// user is assigned to.
	ListCongregationIDsByUserID(ctx context.Context, userID string) ([]string, error)
}

// CongregationWriter defines write operations for congregation data
type CongregationWriter interface {
	// SaveCongregation persists a new congregation.
	SaveCongregation(ctx context.Context, congregation domain.Congregation) error

	// UpdateCongregation updates an existing congregation.
	UpdateCongregation(ctx context.Context, congregation domain.Congregation) error
}

// CongregationAssignmentManager manages user-to-congregation assignments
type CongregationAssignmentManager interface {
	// AssignUserToCongregation links a user (typically a pastor) to a congregation.
	AssignUserToCongregation(ctx context.Context, assignment domain.UserCongregation) error

	// RemoveUserFromCongregation unlinks a user from a congregation.
	RemoveUserFromCongregation(ctx context.Context, userID, congregationID string) error
}

// CongregationRepositoryFacade combines all congregation repository interfaces
type CongregationRepositoryFacade interface {
	CongregationReader
	CongregationWriter
	CongregationAssignmentManager
}

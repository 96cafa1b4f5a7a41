package repositories

import (
	"context"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// ReconciliationListFilter narrows a reconciliation listing.
type ReconciliationListFilter struct {
	CongregationIDs []string
	Status          *domain.ReconciliationStatus
	Month           *time.Time
	Limit           int
	Offset          int
}

// ReconciliationReader defines read operations for reconciliation data
type ReconciliationReader interface {
	// FindReconciliationByID retrieves a specific reconciliation by its ID.
	FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.Reconciliation, error)

	// ListReconciliations retrieves reconciliations matching the filter,
	// newest month first.
	ListReconciliations(ctx context.Context, filter ReconciliationListFilter) ([]domain.Reconciliation, error)
}

// ReconciliationWriter defines write operations for reconciliation data
type ReconciliationWriter interface {
	// SaveReconciliation persists a new reconciliation. Returns
	// apperrors.ErrDuplicate when one already exists for the congregation and
	// month.
	SaveReconciliation(ctx context.Context, reconciliation domain.Reconciliation) error

	// UpdateReconciliationAmounts rewrites the subtotals and derived totals of
	// a still-pending reconciliation. Returns apperrors.ErrConflict when the
	// reconciliation is no longer pending.
	UpdateReconciliationAmounts(ctx context.Context, reconciliation domain.Reconciliation) error

	// ReviewReconciliation moves a pending reconciliation to APPROVED or
	// REJECTED. Returns apperrors.ErrConflict when it is no longer pending.
	ReviewReconciliation(ctx context.Context, reconciliationID string, to domain.ReconciliationStatus, reviewerID string, now time.Time) error
}

// ReconciliationRepositoryFacade combines all reconciliation repository interfaces
type ReconciliationRepositoryFacade interface {
	ReconciliationReader
	ReconciliationWriter
}

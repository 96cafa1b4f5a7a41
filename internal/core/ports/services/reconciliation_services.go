package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// ReconciliationReaderSvc defines read operations for reconciliations
type ReconciliationReaderSvc interface {
	GetReconciliationByID(ctx context.Context, reconciliationID, actorUserID string) (*domain.Reconciliation, error)
	ListReconciliations(ctx context.Context, actorUserID string, params dto.ListReconciliationsParams) ([]domain.Reconciliation, error)
}

// ReconciliationWriterSvc defines submission operations for reconciliations
type ReconciliationWriterSvc interface {
	// CreateReconciliation validates the congregation scope and persists a new
	// reconciliation. Status is always PENDING for pastor actors regardless of
	// the request payload.
	CreateReconciliation(ctx context.Context, req dto.CreateReconciliationRequest, actorUserID string) (*domain.Reconciliation, error)

	// UpdateReconciliation rewrites the subtotals of a still-pending
	// reconciliation; totals are recomputed server-side.
	UpdateReconciliation(ctx context.Context, reconciliationID string, req dto.UpdateReconciliationRequest, actorUserID string) (*domain.Reconciliation, error)
}

// ReconciliationReviewerSvc defines the admin review decision
type ReconciliationReviewerSvc interface {
	// ReviewReconciliation moves a pending reconciliation to APPROVED or
	// REJECTED. Admin/superadmin only.
	ReviewReconciliation(ctx context.Context, reconciliationID string, decision domain.ReconciliationStatus, actorUserID string) (*domain.Reconciliation, error)
}

// ReconciliationSvcFacade combines all reconciliation service interfaces
type ReconciliationSvcFacade interface {
	ReconciliationReaderSvc
	ReconciliationWriterSvc
	ReconciliationReviewerSvc
}

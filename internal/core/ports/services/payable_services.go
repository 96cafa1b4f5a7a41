package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// PayableReaderSvc defines read operations for payables
type PayableReaderSvc interface {
	// GetPayableByID retrieves a payable with its approval history, scoped to
	// the congregations the actor may see.
	GetPayableByID(ctx context.Context, payableID, actorUserID string) (*domain.Payable, []domain.ApprovalRecord, error)

	// ListPayables retrieves payables the actor may see, filtered by status
	// bucket and congregation.
	ListPayables(ctx context.Context, actorUserID string, params dto.ListPayablesParams) ([]domain.Payable, error)
}

// PayableWriterSvc defines creation of payables
type PayableWriterSvc interface {
	// CreatePayable validates and persists a new payable in PENDING_MANAGEMENT.
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error)
}

// PayableApproverSvc defines the status transitions of the approval chain
type PayableApproverSvc interface {
	// ApprovePayable advances a pending payable one step. The approval level
	// is inferred from the current status.
	ApprovePayable(ctx context.Context, payableID, actorUserID string) (*domain.Payable, error)

	// RejectPayable terminates a pending payable with a mandatory reason.
	RejectPayable(ctx context.Context, payableID, actorUserID, reason string) (*domain.Payable, error)

	// MarkPayablePaid settles an approved payable.
	MarkPayablePaid(ctx context.Context, payableID, actorUserID string) (*domain.Payable, error)
}

// PayableSvcFacade combines all payable service interfaces
type PayableSvcFacade interface {
	PayableReaderSvc
	PayableWriterSvc
	PayableApproverSvc
}

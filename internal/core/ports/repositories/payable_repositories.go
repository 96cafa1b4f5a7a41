package repositories

import (
	"context"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// PayableListFilter narrows a payable listing.
type PayableListFilter struct {
	CongregationIDs []string               // empty means no congregation restriction
	Statuses        []domain.PayableStatus // empty means any status
	Limit           int
	Offset          int
}

// PayableReader defines read operations for payable data
type PayableReader interface {
	// FindPayableByID retrieves a specific payable by its ID.
	FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error)

	// ListPayables retrieves payables matching the filter, newest due first.
	ListPayables(ctx context.Context, filter PayableListFilter) ([]domain.Payable, error)

	// ListApprovalRecords retrieves the append-only approval history of a
	// payable, oldest first.
	ListApprovalRecords(ctx context.Context, payableID string) ([]domain.ApprovalRecord, error)
}

// PayableWriter defines write operations for payable data
type PayableWriter interface {
	// SavePayable persists a new payable.
	SavePayable(ctx context.Context, payable domain.Payable) error
}

// PayableTransitioner applies status transitions. Each method performs one
// guarded UPDATE with the expected current status as a precondition and
// returns apperrors.ErrConflict when another actor changed the row first.
type PayableTransitioner interface {
	// AdvancePayable moves a payable from one pending status to the next and
	// appends the approval record in the same transaction. approvedAt is set
	// when the transition lands on APPROVED.
	AdvancePayable(ctx context.Context, payableID string, from, to domain.PayableStatus, record domain.ApprovalRecord, approvedAt *time.Time, actorID string, now time.Time) error

	// RejectPayable moves a payable from a pending status to REJECTED, storing
	// the reason and appending the approval record in the same transaction.
	RejectPayable(ctx context.Context, payableID string, from domain.PayableStatus, record domain.ApprovalRecord, reason string, actorID string, now time.Time) error

	// MarkPayablePaid moves a payable from APPROVED to PAID.
	MarkPayablePaid(ctx context.Context, payableID string, actorID string, now time.Time) error
}

// PayableRepositoryFacade combines all payable-related repository interfaces
type PayableRepositoryFacade interface {
	PayableReader
	PayableWriter
	PayableTransitioner
}

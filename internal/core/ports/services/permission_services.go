package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// PermissionSvc answers role-and-scope capability questions. It is the sole
// arbiter the workflow services consult before executing any transition;
// route-level gating is advisory only.
type PermissionSvc interface {
	// CanPerform reports whether the user may perform the action on a module.
	CanPerform(ctx context.Context, userID string, module domain.Module, action domain.ModuleAction) (bool, error)

	// AuthorizeApproval returns apperrors.ErrForbidden unless the user holds
	// the given payable approval level.
	AuthorizeApproval(ctx context.Context, userID string, level domain.ApprovalLevel) error

	// AuthorizePayment returns apperrors.ErrForbidden unless the user may
	// execute payments.
	AuthorizePayment(ctx context.Context, userID string) error

	// AuthorizeReconciliationReview returns apperrors.ErrForbidden unless the
	// user may approve or reject reconciliations.
	AuthorizeReconciliationReview(ctx context.Context, userID string) error

	// VisibleCongregationIDs returns the congregations the user may act
	// within. The boolean is true when the user sees every congregation
	// (admin/superadmin), in which case the slice is empty.
	VisibleCongregationIDs(ctx context.Context, userID string) ([]string, bool, error)

	// AuthorizeCongregationAccess returns apperrors.ErrForbidden unless the
	// congregation is within the user's visible set.
	AuthorizeCongregationAccess(ctx context.Context, userID, congregationID string) error

	// GetRole returns the user's role.
	GetRole(ctx context.Context, userID string) (domain.UserRole, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// reconciliationService implements the ReconciliationSvcFacade interface
type reconciliationService struct {
	BaseService
	reconciliationRepo portsrepo.ReconciliationRepositoryFacade
	permissionSvc      portssvc.PermissionSvc
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(reconciliationRepo portsrepo.ReconciliationRepositoryFacade, permissionSvc portssvc.PermissionSvc) portssvc.ReconciliationSvcFacade {
	return &reconciliationService{
		reconciliationRepo: reconciliationRepo,
		permissionSvc:      permissionSvc,
	}
}

var _ portssvc.ReconciliationSvcFacade = (*reconciliationService)(nil)

// GetReconciliationByID retrieves a reconciliation scoped to the actor's
// congregations.
func (s *reconciliationService) GetReconciliationByID(ctx context.Context, reconciliationID, actorUserID string) (*domain.Reconciliation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleReconciliations, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	reconciliation, err := s.reconciliationRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, reconciliation.CongregationID); err != nil {
		return nil, err
	}
	return reconciliation, nil
}

// ListReconciliations retrieves reconciliations visible to the actor.
func (s *reconciliationService) ListReconciliations(ctx context.Context, actorUserID string, params dto.ListReconciliationsParams) ([]domain.Reconciliation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleReconciliations, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	visible, all, err := s.permissionSvc.VisibleCongregationIDs(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	filter := portsrepo.ReconciliationListFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if !all {
		if len(visible) == 0 {
			return []domain.Reconciliation{}, nil
		}
		filter.CongregationIDs = visible
	}
	if params.CongregationID != "" {
		if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, params.CongregationID); err != nil {
			return nil, err
		}
		filter.CongregationIDs = []string{params.CongregationID}
	}
	if params.Status != "" {
		status := domain.ReconciliationStatus(params.Status)
		switch status {
		case domain.ReconciliationStatusPending, domain.ReconciliationStatusApproved, domain.ReconciliationStatusRejected:
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
	}
	if params.Month != "" {
		parsed, err := time.Parse("2006-01", params.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: month must be formatted YYYY-MM", apperrors.ErrValidation)
		}
		month := domain.NormalizeMonth(parsed)
		filter.Month = &month
	}

	return s.reconciliationRepo.ListReconciliations(ctx, filter)
}

// CreateReconciliation persists a new monthly reconciliation. Totals are
// derived server-side and the status is forced to PENDING: a client-supplied
// status is ignored so a pastor cannot submit a pre-approved report.
func (s *reconciliationService) CreateReconciliation(ctx context.Context, req dto.CreateReconciliationRequest, actorUserID string) (*domain.Reconciliation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleReconciliations, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	congregationID, err := s.resolveCongregation(ctx, actorUserID, req.CongregationID)
	if err != nil {
		return nil, err
	}
	if err := validateSubtotals(req.PixAmount, req.OnlinePixAmount, req.DebitAmount, req.CreditAmount, req.CashAmount); err != nil {
		return nil, err
	}

	now := time.Now()
	reconciliation := domain.Reconciliation{
		ReconciliationID: uuid.NewString(),
		CongregationID:   congregationID,
		Month:            domain.NormalizeMonth(req.Month),
		PixAmount:        req.PixAmount,
		OnlinePixAmount:  req.OnlinePixAmount,
		DebitAmount:      req.DebitAmount,
		CreditAmount:     req.CreditAmount,
		CashAmount:       req.CashAmount,
		Status:           domain.ReconciliationStatusPending,
		SenderID:         actorUserID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	reconciliation.ComputeTotals()

	if err := s.reconciliationRepo.SaveReconciliation(ctx, reconciliation); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: a reconciliation already exists for this congregation and month", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to save reconciliation", slog.String("congregation_id", congregationID))
		return nil, err
	}
	s.LogInfo(ctx, "Reconciliation submitted",
		slog.String("reconciliation_id", reconciliation.ReconciliationID),
		slog.String("congregation_id", congregationID),
		slog.String("month", reconciliation.Month.Format("2006-01")),
		slog.String("total_income", reconciliation.TotalIncome.String()),
		slog.String("amount_to_send", reconciliation.AmountToSend.String()))
	return &reconciliation, nil
}

// UpdateReconciliation rewrites the subtotals of a still-pending
// reconciliation and recomputes the derived totals.
func (s *reconciliationService) UpdateReconciliation(ctx context.Context, reconciliationID string, req dto.UpdateReconciliationRequest, actorUserID string) (*domain.Reconciliation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleReconciliations, domain.ActionEdit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	reconciliation, err := s.reconciliationRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, reconciliation.CongregationID); err != nil {
		return nil, err
	}
	if reconciliation.Status != domain.ReconciliationStatusPending {
		return nil, fmt.Errorf("%w: reconciliation is %s and can no longer be edited", apperrors.ErrConflict, reconciliation.Status)
	}
	if err := validateSubtotals(req.PixAmount, req.OnlinePixAmount, req.DebitAmount, req.CreditAmount, req.CashAmount); err != nil {
		return nil, err
	}

	reconciliation.PixAmount = req.PixAmount
	reconciliation.OnlinePixAmount = req.OnlinePixAmount
	reconciliation.DebitAmount = req.DebitAmount
	reconciliation.CreditAmount = req.CreditAmount
	reconciliation.CashAmount = req.CashAmount
	reconciliation.ComputeTotals()
	reconciliation.LastUpdatedAt = time.Now()
	reconciliation.LastUpdatedBy = actorUserID

	if err := s.reconciliationRepo.UpdateReconciliationAmounts(ctx, *reconciliation); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to update reconciliation", slog.String("reconciliation_id", reconciliationID))
		}
		return nil, err
	}
	return reconciliation, nil
}

// ReviewReconciliation applies the admin decision to a pending reconciliation.
func (s *reconciliationService) ReviewReconciliation(ctx context.Context, reconciliationID string, decision domain.ReconciliationStatus, actorUserID string) (*domain.Reconciliation, error) {
	if decision != domain.ReconciliationStatusApproved && decision != domain.ReconciliationStatusRejected {
		return nil, fmt.Errorf("%w: decision must be APPROVED or REJECTED", apperrors.ErrValidation)
	}
	if err := s.permissionSvc.AuthorizeReconciliationReview(ctx, actorUserID); err != nil {
		return nil, err
	}

	reconciliation, err := s.reconciliationRepo.FindReconciliationByID(ctx, reconciliationID)
	if err != nil {
		return nil, err
	}
	if reconciliation.Status != domain.ReconciliationStatusPending {
		return nil, fmt.Errorf("%w: reconciliation is already %s", apperrors.ErrConflict, reconciliation.Status)
	}

	now := time.Now()
	if err := s.reconciliationRepo.ReviewReconciliation(ctx, reconciliationID, decision, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to review reconciliation", slog.String("reconciliation_id", reconciliationID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Reconciliation reviewed",
		slog.String("reconciliation_id", reconciliationID),
		slog.String("decision", string(decision)))

	return s.reconciliationRepo.FindReconciliationByID(ctx, reconciliationID)
}

// resolveCongregation determines the congregation a submission targets. Actors
// assigned to exactly one congregation may omit it; everyone else must name
// one within their visible set.
func (s *reconciliationService) resolveCongregation(ctx context.Context, actorUserID, requested string) (string, error) {
	if requested != "" {
		if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, requested); err != nil {
			return "", err
		}
		return requested, nil
	}
	visible, all, err := s.permissionSvc.VisibleCongregationIDs(ctx, actorUserID)
	if err != nil {
		return "", err
	}
	if all || len(visible) != 1 {
		return "", fmt.Errorf("%w: congregationID is required", apperrors.ErrValidation)
	}
	return visible[0], nil
}

func validateSubtotals(amounts ...decimal.Decimal) error {
	for _, a := range amounts {
		if a.IsNegative() {
			return fmt.Errorf("%w: amounts cannot be negative", apperrors.ErrValidation)
		}
	}
	return nil
}

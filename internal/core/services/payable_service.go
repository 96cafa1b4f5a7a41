package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// payableService implements the PayableSvcFacade interface
type payableService struct {
	BaseService
	payableRepo   portsrepo.PayableRepositoryFacade
	categoryRepo  portsrepo.CategoryReader
	permissionSvc portssvc.PermissionSvc
}

// NewPayableService creates a new payable service
func NewPayableService(payableRepo portsrepo.PayableRepositoryFacade, categoryRepo portsrepo.CategoryReader, permissionSvc portssvc.PermissionSvc) portssvc.PayableSvcFacade {
	return &payableService{
		payableRepo:   payableRepo,
		categoryRepo:  categoryRepo,
		permissionSvc: permissionSvc,
	}
}

var _ portssvc.PayableSvcFacade = (*payableService)(nil)

// GetPayableByID retrieves a payable with its approval history.
func (s *payableService) GetPayableByID(ctx context.Context, payableID, actorUserID string) (*domain.Payable, []domain.ApprovalRecord, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModulePayables, domain.ActionView)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		return nil, nil, apperrors.ErrForbidden
	}

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, payable.CongregationID); err != nil {
		return nil, nil, err
	}

	history, err := s.payableRepo.ListApprovalRecords(ctx, payableID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list approval records", slog.String("payable_id", payableID))
		return nil, nil, err
	}
	return payable, history, nil
}

// ListPayables retrieves payables visible to the actor.
func (s *payableService) ListPayables(ctx context.Context, actorUserID string, params dto.ListPayablesParams) ([]domain.Payable, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModulePayables, domain.ActionView)
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

	filter := portsrepo.PayableListFilter{
		Limit:  params.Limit,
		Offset: params.Offset,
	}
	if !all {
		if len(visible) == 0 {
			return []domain.Payable{}, nil
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
		statuses, ok := domain.PayableStatusesForFilter(strings.ToUpper(params.Status))
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidation, params.Status)
		}
		filter.Statuses = statuses
	}

	return s.payableRepo.ListPayables(ctx, filter)
}

// CreatePayable validates and persists a new payable. Every payable enters the
// chain at PENDING_MANAGEMENT regardless of who creates it.
func (s *payableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, creatorUserID, domain.ModulePayables, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, creatorUserID, req.CongregationID); err != nil {
		return nil, err
	}
	if err := validateCreatePayableRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %s not found", apperrors.ErrValidation, req.CategoryID)
		}
		return nil, err
	}

	now := time.Now()
	payable := domain.Payable{
		PayableID:      uuid.NewString(),
		CongregationID: req.CongregationID,
		CategoryID:     req.CategoryID,
		Description:    req.Description,
		Amount:         req.Amount,
		DueDate:        req.DueDate,
		PaymentMethod:  req.PaymentMethod,
		PayeeName:      req.PayeeName,
		PixKey:         req.PixKey,
		BankName:       req.BankName,
		BankAgency:     req.BankAgency,
		BankAccount:    req.BankAccount,
		IsUrgent:       req.IsUrgent,
		UrgencyReason:  req.UrgencyReason,
		Status:         domain.PayableStatusPendingManagement,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.IsRecurring {
		payable.Recurrence = &domain.Recurrence{
			Frequency:  *req.RecurrenceFrequency,
			DayOfWeek:  req.RecurrenceDayOfWeek,
			DayOfMonth: req.RecurrenceDayOfMonth,
			NextDate:   *req.RecurrenceNextDate,
		}
	}
	if req.IsFutureScheduled {
		payable.ScheduledFor = req.ScheduledFor
	}

	if err := s.payableRepo.SavePayable(ctx, payable); err != nil {
		s.LogError(ctx, err, "Failed to save payable", slog.String("congregation_id", req.CongregationID))
		return nil, err
	}
	s.LogInfo(ctx, "Payable created",
		slog.String("payable_id", payable.PayableID),
		slog.String("congregation_id", payable.CongregationID),
		slog.String("amount", payable.Amount.String()))
	return &payable, nil
}

// validateCreatePayableRequest enforces the cross-field rules that gin binding
// tags cannot express.
func validateCreatePayableRequest(req dto.CreatePayableRequest) error {
	if !req.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	switch req.PaymentMethod {
	case domain.PaymentMethodPix:
		if req.PixKey == "" {
			return fmt.Errorf("%w: pixKey is required for PIX payments", apperrors.ErrValidation)
		}
	case domain.PaymentMethodTransfer:
		if req.BankName == "" || req.BankAgency == "" || req.BankAccount == "" {
			return fmt.Errorf("%w: bankName, bankAgency and bankAccount are required for TRANSFER payments", apperrors.ErrValidation)
		}
	}
	if req.IsUrgent && req.UrgencyReason == "" {
		return fmt.Errorf("%w: urgencyReason is required for urgent payables", apperrors.ErrValidation)
	}
	if req.IsRecurring && req.IsFutureScheduled {
		return fmt.Errorf("%w: a payable cannot be both recurring and future-scheduled", apperrors.ErrValidation)
	}
	if req.IsRecurring {
		if req.RecurrenceFrequency == nil || req.RecurrenceNextDate == nil {
			return fmt.Errorf("%w: recurrenceFrequency and recurrenceNextDate are required for recurring payables", apperrors.ErrValidation)
		}
		switch *req.RecurrenceFrequency {
		case domain.RecurrenceWeekly:
			if req.RecurrenceDayOfWeek == nil || *req.RecurrenceDayOfWeek < 0 || *req.RecurrenceDayOfWeek > 6 {
				return fmt.Errorf("%w: recurrenceDayOfWeek (0-6) is required for weekly recurrence", apperrors.ErrValidation)
			}
		case domain.RecurrenceMonthly:
			if req.RecurrenceDayOfMonth == nil || *req.RecurrenceDayOfMonth < 1 || *req.RecurrenceDayOfMonth > 31 {
				return fmt.Errorf("%w: recurrenceDayOfMonth (1-31) is required for monthly recurrence", apperrors.ErrValidation)
			}
		default:
			return fmt.Errorf("%w: unknown recurrence frequency %q", apperrors.ErrValidation, *req.RecurrenceFrequency)
		}
	}
	if req.IsFutureScheduled && req.ScheduledFor == nil {
		return fmt.Errorf("%w: scheduledFor is required for future-scheduled payables", apperrors.ErrValidation)
	}
	return nil
}

// ApprovePayable advances a pending payable one step along the chain. The
// required approval level is inferred from the current status, never supplied
// by the client.
func (s *payableService) ApprovePayable(ctx context.Context, payableID, actorUserID string) (*domain.Payable, error) {
	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, payable.CongregationID); err != nil {
		return nil, err
	}

	level, ok := domain.ApprovalLevelFor(payable.Status)
	if !ok {
		return nil, fmt.Errorf("%w: payable is %s and cannot be approved", apperrors.ErrConflict, payable.Status)
	}
	if err := s.permissionSvc.AuthorizeApproval(ctx, actorUserID, level); err != nil {
		return nil, err
	}

	next, _ := domain.NextPayableStatus(payable.Status)
	now := time.Now()
	record := domain.ApprovalRecord{
		ApprovalID: uuid.NewString(),
		PayableID:  payableID,
		ApproverID: actorUserID,
		Level:      level,
		Action:     domain.ApprovalActionApproved,
		CreatedAt:  now,
	}
	var approvedAt *time.Time
	if next == domain.PayableStatusApproved {
		approvedAt = &now
	}

	if err := s.payableRepo.AdvancePayable(ctx, payableID, payable.Status, next, record, approvedAt, actorUserID, now); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogInfo(ctx, "Concurrent transition lost",
				slog.String("payable_id", payableID),
				slog.String("expected_status", string(payable.Status)))
		} else {
			s.LogError(ctx, err, "Failed to advance payable", slog.String("payable_id", payableID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Payable approved",
		slog.String("payable_id", payableID),
		slog.String("level", string(level)),
		slog.String("new_status", string(next)))

	return s.payableRepo.FindPayableByID(ctx, payableID)
}

// RejectPayable terminates a pending payable. The reason is mandatory and the
// rejection is final.
func (s *payableService) RejectPayable(ctx context.Context, payableID, actorUserID, reason string) (*domain.Payable, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", apperrors.ErrValidation)
	}

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, payable.CongregationID); err != nil {
		return nil, err
	}

	level, ok := domain.ApprovalLevelFor(payable.Status)
	if !ok {
		return nil, fmt.Errorf("%w: payable is %s and cannot be rejected", apperrors.ErrConflict, payable.Status)
	}
	if err := s.permissionSvc.AuthorizeApproval(ctx, actorUserID, level); err != nil {
		return nil, err
	}

	now := time.Now()
	record := domain.ApprovalRecord{
		ApprovalID: uuid.NewString(),
		PayableID:  payableID,
		ApproverID: actorUserID,
		Level:      level,
		Action:     domain.ApprovalActionRejected,
		Notes:      reason,
		CreatedAt:  now,
	}
	if err := s.payableRepo.RejectPayable(ctx, payableID, payable.Status, record, reason, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to reject payable", slog.String("payable_id", payableID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Payable rejected",
		slog.String("payable_id", payableID),
		slog.String("level", string(level)))

	return s.payableRepo.FindPayableByID(ctx, payableID)
}

// MarkPayablePaid settles an approved payable.
func (s *payableService) MarkPayablePaid(ctx context.Context, payableID, actorUserID string) (*domain.Payable, error) {
	if err := s.permissionSvc.AuthorizePayment(ctx, actorUserID); err != nil {
		return nil, err
	}

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, payable.CongregationID); err != nil {
		return nil, err
	}
	if payable.Status != domain.PayableStatusApproved {
		return nil, fmt.Errorf("%w: payable is %s, only approved payables can be paid", apperrors.ErrConflict, payable.Status)
	}

	now := time.Now()
	if err := s.payableRepo.MarkPayablePaid(ctx, payableID, actorUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to mark payable paid", slog.String("payable_id", payableID))
		}
		return nil, err
	}
	s.LogInfo(ctx, "Payable paid", slog.String("payable_id", payableID))

	return s.payableRepo.FindPayableByID(ctx, payableID)
}

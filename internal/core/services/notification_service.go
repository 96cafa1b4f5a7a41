package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// notificationService implements the NotificationSvcFacade interface
type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
	permissionSvc    portssvc.PermissionSvc
}

// NewNotificationService creates a new notification service
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, permissionSvc portssvc.PermissionSvc) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo, permissionSvc: permissionSvc}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// CreateNotification dispatches a notification to a user or a role broadcast.
func (s *notificationService) CreateNotification(ctx context.Context, req dto.CreateNotificationRequest, actorUserID string) (*domain.Notification, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleNotifications, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	if req.RecipientID == nil && req.TargetRole == nil {
		return nil, fmt.Errorf("%w: either recipientID or targetRole is required", apperrors.ErrValidation)
	}
	if req.RecipientID != nil && req.TargetRole != nil {
		return nil, fmt.Errorf("%w: recipientID and targetRole are mutually exclusive", apperrors.ErrValidation)
	}

	now := time.Now()
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		Title:          req.Title,
		Body:           req.Body,
		RecipientID:    req.RecipientID,
		TargetRole:     req.TargetRole,
		CongregationID: req.CongregationID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification")
		return nil, err
	}
	return &notification, nil
}

// ListNotifications retrieves notifications addressed to the actor.
func (s *notificationService) ListNotifications(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Notification, error) {
	role, err := s.permissionSvc.GetRole(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	congregationIDs, _, err := s.permissionSvc.VisibleCongregationIDs(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	return s.notificationRepo.ListNotificationsForUser(ctx, actorUserID, role, congregationIDs, limit, offset)
}

// MarkNotificationRead stamps a direct notification as read by its recipient.
func (s *notificationService) MarkNotificationRead(ctx context.Context, notificationID, actorUserID string) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		return err
	}
	if notification.RecipientID == nil || *notification.RecipientID != actorUserID {
		return apperrors.ErrForbidden
	}
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, actorUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read", slog.String("notification_id", notificationID))
		return err
	}
	return nil
}

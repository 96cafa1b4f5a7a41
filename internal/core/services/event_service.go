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

// eventService implements the EventSvcFacade interface
type eventService struct {
	BaseService
	eventRepo     portsrepo.EventRepositoryFacade
	permissionSvc portssvc.PermissionSvc
}

// NewEventService creates a new event service
func NewEventService(eventRepo portsrepo.EventRepositoryFacade, permissionSvc portssvc.PermissionSvc) portssvc.EventSvcFacade {
	return &eventService{eventRepo: eventRepo, permissionSvc: permissionSvc}
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// GetEventByID retrieves an event by ID.
func (s *eventService) GetEventByID(ctx context.Context, eventID, actorUserID string) (*domain.Event, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleEvents, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return s.eventRepo.FindEventByID(ctx, eventID)
}

// ListEvents retrieves events of a congregation.
func (s *eventService) ListEvents(ctx context.Context, actorUserID string, params dto.ListEventsParams) ([]domain.Event, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleEvents, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return s.eventRepo.ListEvents(ctx, params.CongregationID, params.Limit, params.Offset)
}

// CreateEvent schedules a new event.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, actorUserID string) (*domain.Event, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleEvents, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, req.CongregationID); err != nil {
		return nil, err
	}
	if !req.EndsAt.After(req.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must be after startsAt", apperrors.ErrValidation)
	}

	visibility := req.Visibility
	if visibility == "" {
		visibility = domain.EventVisibilityMembers
	}

	now := time.Now()
	event := domain.Event{
		EventID:        uuid.NewString(),
		CongregationID: req.CongregationID,
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Visibility:     visibility,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to save event", slog.String("congregation_id", req.CongregationID))
		return nil, err
	}
	return &event, nil
}

// UpdateEvent updates a scheduled event.
func (s *eventService) UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, actorUserID string) (*domain.Event, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleEvents, domain.ActionEdit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, event.CongregationID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.StartsAt != nil {
		event.StartsAt = *req.StartsAt
	}
	if req.EndsAt != nil {
		event.EndsAt = *req.EndsAt
	}
	if !event.EndsAt.After(event.StartsAt) {
		return nil, fmt.Errorf("%w: endsAt must be after startsAt", apperrors.ErrValidation)
	}
	event.LastUpdatedAt = time.Now()
	event.LastUpdatedBy = actorUserID

	if err := s.eventRepo.UpdateEvent(ctx, *event); err != nil {
		s.LogError(ctx, err, "Failed to update event", slog.String("event_id", eventID))
		return nil, err
	}
	return event, nil
}

// DeleteEvent removes a scheduled event.
func (s *eventService) DeleteEvent(ctx context.Context, eventID, actorUserID string) error {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleEvents, domain.ActionEdit)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, event.CongregationID); err != nil {
		return err
	}
	return s.eventRepo.DeleteEvent(ctx, eventID)
}

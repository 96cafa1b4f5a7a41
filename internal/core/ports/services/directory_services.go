package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// MemberSvcFacade defines membership record operations.
type MemberSvcFacade interface {
	GetMemberByID(ctx context.Context, memberID, actorUserID string) (*domain.Member, error)
	ListMembers(ctx context.Context, actorUserID string, params dto.ListMembersParams) ([]domain.Member, error)
	CreateMember(ctx context.Context, req dto.CreateMemberRequest, actorUserID string) (*domain.Member, error)
	UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actorUserID string) (*domain.Member, error)
	DeactivateMember(ctx context.Context, memberID, actorUserID string) error
}

// EventSvcFacade defines event scheduling operations.
type EventSvcFacade interface {
	GetEventByID(ctx context.Context, eventID, actorUserID string) (*domain.Event, error)
	ListEvents(ctx context.Context, actorUserID string, params dto.ListEventsParams) ([]domain.Event, error)
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, actorUserID string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req dto.UpdateEventRequest, actorUserID string) (*domain.Event, error)
	DeleteEvent(ctx context.Context, eventID, actorUserID string) error
}

// NotificationSvcFacade defines notification dispatch operations.
type NotificationSvcFacade interface {
	CreateNotification(ctx context.Context, req dto.CreateNotificationRequest, actorUserID string) (*domain.Notification, error)
	ListNotifications(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID, actorUserID string) error
}

// CategorySvcFacade defines expense category operations.
type CategorySvcFacade interface {
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actorUserID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actorUserID string) (*domain.Category, error)
}

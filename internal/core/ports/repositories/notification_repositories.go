package repositories

import (
	"context"
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// NotificationReader defines read operations for notification data
type NotificationReader interface {
	FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error)

	// ListNotificationsForUser retrieves notifications addressed to the user
	// directly or broadcast to their role/congregations, newest first.
	ListNotificationsForUser(ctx context.Context, userID string, role domain.UserRole, congregationIDs []string, limit, offset int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notification data
type NotificationWriter interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkNotificationRead stamps read_at on a direct notification.
	MarkNotificationRead(ctx context.Context, notificationID, userID string, now time.Time) error
}

// NotificationRepositoryFacade combines all notification repository interfaces
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}

package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CreateNotificationRequest defines the data needed to dispatch a notification.
// Either RecipientID or TargetRole must be set.
type CreateNotificationRequest struct {
	Title          string           `json:"title" binding:"required"`
	Body           string           `json:"body" binding:"required"`
	RecipientID    *string          `json:"recipientID,omitempty"`
	TargetRole     *domain.UserRole `json:"targetRole,omitempty" binding:"omitempty,oneof=SUPERADMIN ADMIN PRESIDENT DIRECTOR MANAGEMENT FINANCE PASTOR MEMBER"`
	CongregationID *string          `json:"congregationID,omitempty"`
}

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string           `json:"notificationID"`
	Title          string           `json:"title"`
	Body           string           `json:"body"`
	RecipientID    *string          `json:"recipientID,omitempty"`
	TargetRole     *domain.UserRole `json:"targetRole,omitempty"`
	CongregationID *string          `json:"congregationID,omitempty"`
	ReadAt         *time.Time       `json:"readAt,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ListNotificationsParams defines query parameters for listing notifications.
type ListNotificationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListNotificationsResponse wraps the list of notifications.
type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

// ToNotificationResponse converts a domain.Notification to its DTO
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Title:          n.Title,
		Body:           n.Body,
		RecipientID:    n.RecipientID,
		TargetRole:     n.TargetRole,
		CongregationID: n.CongregationID,
		ReadAt:         n.ReadAt,
		CreatedAt:      n.CreatedAt,
	}
}

// ToListNotificationsResponse converts domain notifications to the list response
func ToListNotificationsResponse(ns []domain.Notification) ListNotificationsResponse {
	res := make([]NotificationResponse, len(ns))
	for i := range ns {
		res[i] = ToNotificationResponse(&ns[i])
	}
	return ListNotificationsResponse{Notifications: res}
}

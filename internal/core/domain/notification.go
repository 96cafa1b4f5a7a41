package domain

import "time"

// Notification is a dispatched message. It is either addressed to a single
// user (RecipientID set) or broadcast to a role within a congregation.
type Notification struct {
	NotificationID string     `json:"notificationID"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	RecipientID    *string    `json:"recipientID,omitempty"`
	TargetRole     *UserRole  `json:"targetRole,omitempty"`
	CongregationID *string    `json:"congregationID,omitempty"`
	ReadAt         *time.Time `json:"readAt,omitempty"`
	AuditFields
}

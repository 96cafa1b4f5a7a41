package models

import "time"

// Notification is the DB representation of a dispatched notification.
type Notification struct {
	NotificationID string     `db:"notification_id"`
	Title          string     `db:"title"`
	Body           string     `db:"body"`
	RecipientID    *string    `db:"recipient_id"`
	TargetRole     *string    `db:"target_role"`
	CongregationID *string    `db:"congregation_id"`
	ReadAt         *time.Time `db:"read_at"`
	AuditFields
}

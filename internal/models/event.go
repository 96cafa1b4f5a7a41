package models

import "time"

// Event is the DB representation of a scheduled event.
type Event struct {
	EventID        string    `db:"event_id"`
	CongregationID string    `db:"congregation_id"`
	Title          string    `db:"title"`
	Description    string    `db:"description"`
	Location       string    `db:"location"`
	StartsAt       time.Time `db:"starts_at"`
	EndsAt         time.Time `db:"ends_at"`
	Visibility     string    `db:"visibility"`
	AuditFields
}

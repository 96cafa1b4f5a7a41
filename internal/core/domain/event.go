package domain

import "time"

// EventVisibility controls who can see a scheduled event.
type EventVisibility string

const (
	EventVisibilityPublic  EventVisibility = "PUBLIC"
	EventVisibilityMembers EventVisibility = "MEMBERS"
)

// Event is a scheduled activity of a congregation.
type Event struct {
	EventID        string          `json:"eventID"`
	CongregationID string          `json:"congregationID"`
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Location       string          `json:"location,omitempty"`
	StartsAt       time.Time       `json:"startsAt"`
	EndsAt         time.Time       `json:"endsAt"`
	Visibility     EventVisibility `json:"visibility"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CreateEventRequest defines the data needed to schedule an event.
type CreateEventRequest struct {
	CongregationID string                 `json:"congregationID" binding:"required"`
	Title          string                 `json:"title" binding:"required"`
	Description    string                 `json:"description"`
	Location       string                 `json:"location"`
	StartsAt       time.Time              `json:"startsAt" binding:"required"`
	EndsAt         time.Time              `json:"endsAt" binding:"required"`
	Visibility     domain.EventVisibility `json:"visibility" binding:"omitempty,oneof=PUBLIC MEMBERS"`
}

// UpdateEventRequest defines the data allowed for updating an event.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Location    *string    `json:"location"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
}

// EventResponse defines the data returned for an event.
type EventResponse struct {
	EventID        string                 `json:"eventID"`
	CongregationID string                 `json:"congregationID"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description,omitempty"`
	Location       string                 `json:"location,omitempty"`
	StartsAt       time.Time              `json:"startsAt"`
	EndsAt         time.Time              `json:"endsAt"`
	Visibility     domain.EventVisibility `json:"visibility"`
	CreatedAt      time.Time              `json:"createdAt"`
}

// ListEventsParams defines query parameters for listing events.
type ListEventsParams struct {
	CongregationID string `form:"congregationID" binding:"required"`
	Limit          int    `form:"limit,default=20"`
	Offset         int    `form:"offset,default=0"`
}

// ListEventsResponse wraps the list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToEventResponse converts a domain.Event to its DTO
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:        e.EventID,
		CongregationID: e.CongregationID,
		Title:          e.Title,
		Description:    e.Description,
		Location:       e.Location,
		StartsAt:       e.StartsAt,
		EndsAt:         e.EndsAt,
		Visibility:     e.Visibility,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListEventsResponse converts domain events to the list response
func ToListEventsResponse(es []domain.Event) ListEventsResponse {
	res := make([]EventResponse, len(es))
	for i := range es {
		res[i] = ToEventResponse(&es[i])
	}
	return ListEventsResponse{Events: res}
}

package repositories

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// EventReader defines read operations for event data
type EventReader interface {
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context, congregationID string, limit, offset int) ([]domain.Event, error)
}

// EventWriter defines write operations for event data
type EventWriter interface {
	SaveEvent(ctx context.Context, event domain.Event) error
	UpdateEvent(ctx context.Context, event domain.Event) error
	DeleteEvent(ctx context.Context, eventID string) error
}

// EventRepositoryFacade combines all event repository interfaces
type EventRepositoryFacade interface {
	EventReader
	EventWriter
}

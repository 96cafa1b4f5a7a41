package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelEvent converts a domain Event to a model Event
func ToModelEvent(d domain.Event) models.Event {
	return models.Event{
		EventID:        d.EventID,
		CongregationID: d.CongregationID,
		Title:          d.Title,
		Description:    d.Description,
		Location:       d.Location,
		StartsAt:       d.StartsAt,
		EndsAt:         d.EndsAt,
		Visibility:     string(d.Visibility),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEvent converts a model Event to a domain Event
func ToDomainEvent(m models.Event) domain.Event {
	return domain.Event{
		EventID:        m.EventID,
		CongregationID: m.CongregationID,
		Title:          m.Title,
		Description:    m.Description,
		Location:       m.Location,
		StartsAt:       m.StartsAt,
		EndsAt:         m.EndsAt,
		Visibility:     domain.EventVisibility(m.Visibility),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEventSlice converts model Events to domain form
func ToDomainEventSlice(ms []models.Event) []domain.Event {
	ds := make([]domain.Event, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEvent(m)
	}
	return ds
}

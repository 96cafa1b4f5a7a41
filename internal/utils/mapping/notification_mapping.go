package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelNotification converts a domain Notification to a model Notification
func ToModelNotification(d domain.Notification) models.Notification {
	m := models.Notification{
		NotificationID: d.NotificationID,
		Title:          d.Title,
		Body:           d.Body,
		RecipientID:    d.RecipientID,
		CongregationID: d.CongregationID,
		ReadAt:         d.ReadAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
	if d.TargetRole != nil {
		role := string(*d.TargetRole)
		m.TargetRole = &role
	}
	return m
}

// ToDomainNotification converts a model Notification to a domain Notification
func ToDomainNotification(m models.Notification) domain.Notification {
	d := domain.Notification{
		NotificationID: m.NotificationID,
		Title:          m.Title,
		Body:           m.Body,
		RecipientID:    m.RecipientID,
		CongregationID: m.CongregationID,
		ReadAt:         m.ReadAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
	if m.TargetRole != nil {
		role := domain.UserRole(*m.TargetRole)
		d.TargetRole = &role
	}
	return d
}

// ToDomainNotificationSlice converts model Notifications to domain form
func ToDomainNotificationSlice(ms []models.Notification) []domain.Notification {
	ds := make([]domain.Notification, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainNotification(m)
	}
	return ds
}

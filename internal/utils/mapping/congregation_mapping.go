package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelCongregation converts a domain Congregation to a model Congregation
func ToModelCongregation(d domain.Congregation) models.Congregation {
	return models.Congregation{
		CongregationID: d.CongregationID,
		Name:           d.Name,
		City:           d.City,
		Address:        d.Address,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCongregation converts a model Congregation to a domain Congregation
func ToDomainCongregation(m models.Congregation) domain.Congregation {
	return domain.Congregation{
		CongregationID: m.CongregationID,
		Name:           m.Name,
		City:           m.City,
		Address:        m.Address,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCongregationSlice converts model Congregations to domain form
func ToDomainCongregationSlice(ms []models.Congregation) []domain.Congregation {
	ds := make([]domain.Congregation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCongregation(m)
	}
	return ds
}

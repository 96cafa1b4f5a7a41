package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelMember converts a domain Member to a model Member
func ToModelMember(d domain.Member) models.Member {
	return models.Member{
		MemberID:       d.MemberID,
		CongregationID: d.CongregationID,
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		BirthDate:      d.BirthDate,
		BaptismDate:    d.BaptismDate,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainMember converts a model Member to a domain Member
func ToDomainMember(m models.Member) domain.Member {
	return domain.Member{
		MemberID:       m.MemberID,
		CongregationID: m.CongregationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		BirthDate:      m.BirthDate,
		BaptismDate:    m.BaptismDate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMemberSlice converts model Members to domain form
func ToDomainMemberSlice(ms []models.Member) []domain.Member {
	ds := make([]domain.Member, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMember(m)
	}
	return ds
}

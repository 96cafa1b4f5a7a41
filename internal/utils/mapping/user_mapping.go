package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:               d.UserID,
		Name:                 d.Name,
		Email:                d.Email,
		PasswordHash:         d.PasswordHash,
		Role:                 string(d.Role),
		AuthProvider:         d.AuthProvider,
		ProviderUserID:       d.ProviderUserID,
		RefreshTokenHash:     d.RefreshTokenHash,
		RefreshTokenExpiryAt: d.RefreshTokenExpiryAt,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:               m.UserID,
		Name:                 m.Name,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		Role:                 domain.UserRole(m.Role),
		AuthProvider:         m.AuthProvider,
		ProviderUserID:       m.ProviderUserID,
		RefreshTokenHash:     m.RefreshTokenHash,
		RefreshTokenExpiryAt: m.RefreshTokenExpiryAt,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainUserSlice converts a slice of model Users to domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

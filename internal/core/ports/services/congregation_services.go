package services

import (
	"context"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// CongregationSvcFacade defines congregation administration operations.
type CongregationSvcFacade interface {
	GetCongregationByID(ctx context.Context, congregationID, actorUserID string) (*domain.Congregation, error)
	ListCongregations(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Congregation, error)
	CreateCongregation(ctx context.Context, req dto.CreateCongregationRequest, actorUserID string) (*domain.Congregation, error)
	UpdateCongregation(ctx context.Context, congregationID string, req dto.UpdateCongregationRequest, actorUserID string) (*domain.Congregation, error)

	// AssignPastor links a pastor to a congregation. Admin only.
	AssignPastor(ctx context.Context, congregationID, pastorUserID, actorUserID string) error

	// RemovePastor unlinks a pastor from a congregation. Admin only.
	RemovePastor(ctx context.Context, congregationID, pastorUserID, actorUserID string) error
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// congregationService implements the CongregationSvcFacade interface
type congregationService struct {
	BaseService
	congregationRepo portsrepo.CongregationRepositoryFacade
	userRepo         portsrepo.UserReader
	permissionSvc    portssvc.PermissionSvc
}

// NewCongregationService creates a new congregation service
func NewCongregationService(congregationRepo portsrepo.CongregationRepositoryFacade, userRepo portsrepo.UserReader, permissionSvc portssvc.PermissionSvc) portssvc.CongregationSvcFacade {
	return &congregationService{
		congregationRepo: congregationRepo,
		userRepo:         userRepo,
		permissionSvc:    permissionSvc,
	}
}

var _ portssvc.CongregationSvcFacade = (*congregationService)(nil)

// GetCongregationByID retrieves a congregation by ID.
func (s *congregationService) GetCongregationByID(ctx context.Context, congregationID, actorUserID string) (*domain.Congregation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return s.congregationRepo.FindCongregationByID(ctx, congregationID)
}

// ListCongregations retrieves active congregations.
func (s *congregationService) ListCongregations(ctx context.Context, actorUserID string, limit, offset int) ([]domain.Congregation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionView)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}
	return s.congregationRepo.ListCongregations(ctx, limit, offset)
}

// CreateCongregation registers a new congregation. Admin only.
func (s *congregationService) CreateCongregation(ctx context.Context, req dto.CreateCongregationRequest, actorUserID string) (*domain.Congregation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	congregation := domain.Congregation{
		CongregationID: uuid.NewString(),
		Name:           req.Name,
		City:           req.City,
		Address:        req.Address,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.congregationRepo.SaveCongregation(ctx, congregation); err != nil {
		s.LogError(ctx, err, "Failed to save congregation")
		return nil, err
	}
	s.LogInfo(ctx, "Congregation created", slog.String("congregation_id", congregation.CongregationID))
	return &congregation, nil
}

// UpdateCongregation updates an existing congregation. Admin only.
func (s *congregationService) UpdateCongregation(ctx context.Context, congregationID string, req dto.UpdateCongregationRequest, actorUserID string) (*domain.Congregation, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionEdit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	congregation, err := s.congregationRepo.FindCongregationByID(ctx, congregationID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		congregation.Name = *req.Name
	}
	if req.City != nil {
		congregation.City = *req.City
	}
	if req.Address != nil {
		congregation.Address = *req.Address
	}
	if req.IsActive != nil {
		congregation.IsActive = *req.IsActive
	}
	congregation.LastUpdatedAt = time.Now()
	congregation.LastUpdatedBy = actorUserID

	if err := s.congregationRepo.UpdateCongregation(ctx, *congregation); err != nil {
		s.LogError(ctx, err, "Failed to update congregation", slog.String("congregation_id", congregationID))
		return nil, err
	}
	return congregation, nil
}

// AssignPastor links a pastor to a congregation.
func (s *congregationService) AssignPastor(ctx context.Context, congregationID, pastorUserID, actorUserID string) error {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionEdit)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}

	pastor, err := s.userRepo.FindUserByID(ctx, pastorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: user %s not found", apperrors.ErrValidation, pastorUserID)
		}
		return err
	}
	if pastor.Role != domain.RolePastor {
		return fmt.Errorf("%w: user %s is not a pastor", apperrors.ErrValidation, pastorUserID)
	}
	if _, err := s.congregationRepo.FindCongregationByID(ctx, congregationID); err != nil {
		return err
	}

	assignment := domain.UserCongregation{
		UserID:         pastorUserID,
		CongregationID: congregationID,
		AssignedAt:     time.Now(),
	}
	if err := s.congregationRepo.AssignUserToCongregation(ctx, assignment); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("%w: pastor already assigned to this congregation", apperrors.ErrDuplicate)
		}
		s.LogError(ctx, err, "Failed to assign pastor",
			slog.String("user_id", pastorUserID),
			slog.String("congregation_id", congregationID))
		return err
	}
	s.LogInfo(ctx, "Pastor assigned",
		slog.String("user_id", pastorUserID),
		slog.String("congregation_id", congregationID))
	return nil
}

// RemovePastor unlinks a pastor from a congregation.
func (s *congregationService) RemovePastor(ctx context.Context, congregationID, pastorUserID, actorUserID string) error {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCongregations, domain.ActionEdit)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	if err := s.congregationRepo.RemoveUserFromCongregation(ctx, pastorUserID, congregationID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to remove pastor",
				slog.String("user_id", pastorUserID),
				slog.String("congregation_id", congregationID))
		}
		return err
	}
	return nil
}

package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
	"log/slog"
)

// memberService implements the MemberSvcFacade interface
type memberService struct {
	BaseService
	memberRepo    portsrepo.MemberRepositoryFacade
	permissionSvc portssvc.PermissionSvc
}

// NewMemberService creates a new member service
func NewMemberService(memberRepo portsrepo.MemberRepositoryFacade, permissionSvc portssvc.PermissionSvc) portssvc.MemberSvcFacade {
	return &memberService{memberRepo: memberRepo, permissionSvc: permissionSvc}
}

var _ portssvc.MemberSvcFacade = (*memberService)(nil)

func (s *memberService) authorize(ctx context.Context, actorUserID string, action domain.ModuleAction, congregationID string) error {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleMembers, action)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrForbidden
	}
	return s.permissionSvc.AuthorizeCongregationAccess(ctx, actorUserID, congregationID)
}

// GetMemberByID retrieves a member by ID.
func (s *memberService) GetMemberByID(ctx context.Context, memberID, actorUserID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorUserID, domain.ActionView, member.CongregationID); err != nil {
		return nil, err
	}
	return member, nil
}

// ListMembers retrieves members of a congregation.
func (s *memberService) ListMembers(ctx context.Context, actorUserID string, params dto.ListMembersParams) ([]domain.Member, error) {
	if err := s.authorize(ctx, actorUserID, domain.ActionView, params.CongregationID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListMembers(ctx, params.CongregationID, params.Limit, params.Offset)
}

// CreateMember registers a new member.
func (s *memberService) CreateMember(ctx context.Context, req dto.CreateMemberRequest, actorUserID string) (*domain.Member, error) {
	if err := s.authorize(ctx, actorUserID, domain.ActionInsert, req.CongregationID); err != nil {
		return nil, err
	}

	now := time.Now()
	member := domain.Member{
		MemberID:       uuid.NewString(),
		CongregationID: req.CongregationID,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		BirthDate:      req.BirthDate,
		BaptismDate:    req.BaptismDate,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.memberRepo.SaveMember(ctx, member); err != nil {
		s.LogError(ctx, err, "Failed to save member", slog.String("congregation_id", req.CongregationID))
		return nil, err
	}
	return &member, nil
}

// UpdateMember updates an existing member.
func (s *memberService) UpdateMember(ctx context.Context, memberID string, req dto.UpdateMemberRequest, actorUserID string) (*domain.Member, error) {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actorUserID, domain.ActionEdit, member.CongregationID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Email != nil {
		member.Email = *req.Email
	}
	if req.Phone != nil {
		member.Phone = *req.Phone
	}
	if req.BirthDate != nil {
		member.BirthDate = req.BirthDate
	}
	if req.BaptismDate != nil {
		member.BaptismDate = req.BaptismDate
	}
	if req.IsActive != nil {
		member.IsActive = *req.IsActive
	}
	member.LastUpdatedAt = time.Now()
	member.LastUpdatedBy = actorUserID

	if err := s.memberRepo.UpdateMember(ctx, *member); err != nil {
		s.LogError(ctx, err, "Failed to update member", slog.String("member_id", memberID))
		return nil, err
	}
	return member, nil
}

// DeactivateMember soft-deletes a member record.
func (s *memberService) DeactivateMember(ctx context.Context, memberID, actorUserID string) error {
	member, err := s.memberRepo.FindMemberByID(ctx, memberID)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actorUserID, domain.ActionEdit, member.CongregationID); err != nil {
		return err
	}
	return s.memberRepo.DeactivateMember(ctx, memberID, actorUserID, time.Now())
}

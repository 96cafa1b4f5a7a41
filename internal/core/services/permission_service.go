package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
)

// permissionService implements the PermissionSvc interface. It is the single
// authoritative capability check: handlers hide buttons, but services call
// through here before every transition.
type permissionService struct {
	BaseService
	userRepo         portsrepo.UserReader
	congregationRepo portsrepo.CongregationReader
}

// NewPermissionService creates a new permission service
func NewPermissionService(userRepo portsrepo.UserReader, congregationRepo portsrepo.CongregationReader) portssvc.PermissionSvc {
	return &permissionService{userRepo: userRepo, congregationRepo: congregationRepo}
}

var _ portssvc.PermissionSvc = (*permissionService)(nil)

// approvalLevelRoles maps each payable approval level to the role that may act
// at that stage. Superadmin may act at any stage.
var approvalLevelRoles = map[domain.ApprovalLevel]domain.UserRole{
	domain.ApprovalLevelManagement: domain.RoleManagement,
	domain.ApprovalLevelDirector:   domain.RoleDirector,
	domain.ApprovalLevelPresident:  domain.RolePresident,
}

// modulePermissions maps module/action pairs to the roles allowed to perform
// them. Superadmin is implicitly allowed everything.
var modulePermissions = map[domain.Module]map[domain.ModuleAction][]domain.UserRole{
	domain.ModulePayables: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePresident, domain.RoleDirector, domain.RoleManagement, domain.RoleFinance, domain.RolePastor},
		domain.ActionInsert: {domain.RoleAdmin, domain.RoleManagement, domain.RoleFinance, domain.RolePastor},
		domain.ActionEdit:   {domain.RoleAdmin},
	},
	domain.ModuleReconciliations: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePastor},
		domain.ActionInsert: {domain.RoleAdmin, domain.RolePastor},
		domain.ActionEdit:   {domain.RoleAdmin, domain.RolePastor},
	},
	domain.ModuleCongregations: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePresident, domain.RoleDirector, domain.RoleManagement, domain.RoleFinance, domain.RolePastor},
		domain.ActionInsert: {domain.RoleAdmin},
		domain.ActionEdit:   {domain.RoleAdmin},
	},
	domain.ModuleMembers: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePastor},
		domain.ActionInsert: {domain.RoleAdmin, domain.RolePastor},
		domain.ActionEdit:   {domain.RoleAdmin, domain.RolePastor},
	},
	domain.ModuleEvents: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePresident, domain.RoleDirector, domain.RoleManagement, domain.RoleFinance, domain.RolePastor, domain.RoleMember},
		domain.ActionInsert: {domain.RoleAdmin, domain.RolePastor},
		domain.ActionEdit:   {domain.RoleAdmin, domain.RolePastor},
	},
	domain.ModuleNotifications: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePresident, domain.RoleDirector, domain.RoleManagement, domain.RoleFinance, domain.RolePastor, domain.RoleMember},
		domain.ActionInsert: {domain.RoleAdmin},
		domain.ActionEdit:   {domain.RoleAdmin},
	},
	domain.ModuleCategories: {
		domain.ActionView:   {domain.RoleAdmin, domain.RolePresident, domain.RoleDirector, domain.RoleManagement, domain.RoleFinance, domain.RolePastor},
		domain.ActionInsert: {domain.RoleAdmin},
		domain.ActionEdit:   {domain.RoleAdmin},
	},
	domain.ModuleUsers: {
		domain.ActionView:   {domain.RoleAdmin},
		domain.ActionInsert: {domain.RoleAdmin},
		domain.ActionEdit:   {domain.RoleAdmin},
	},
}

// GetRole returns the user's role.
func (s *permissionService) GetRole(ctx context.Context, userID string) (domain.UserRole, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user for role lookup", slog.String("user_id", userID))
		}
		return "", err
	}
	return user.Role, nil
}

// CanPerform reports whether the user may perform the action on a module.
func (s *permissionService) CanPerform(ctx context.Context, userID string, module domain.Module, action domain.ModuleAction) (bool, error) {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return false, err
	}
	if role == domain.RoleSuperadmin {
		return true, nil
	}
	actions, ok := modulePermissions[module]
	if !ok {
		return false, nil
	}
	for _, allowed := range actions[action] {
		if role == allowed {
			return true, nil
		}
	}
	return false, nil
}

// AuthorizeApproval checks the actor holds the approval level inferred from a
// payable's current status.
func (s *permissionService) AuthorizeApproval(ctx context.Context, userID string, level domain.ApprovalLevel) error {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return err
	}
	if role == domain.RoleSuperadmin {
		return nil
	}
	required, ok := approvalLevelRoles[level]
	if !ok || role != required {
		s.LogDebug(ctx, "User does not hold required approval level",
			slog.String("user_id", userID),
			slog.String("user_role", string(role)),
			slog.String("required_level", string(level)))
		return apperrors.ErrForbidden
	}
	return nil
}

// AuthorizePayment checks the actor may execute payments.
func (s *permissionService) AuthorizePayment(ctx context.Context, userID string) error {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return err
	}
	if role == domain.RoleSuperadmin || role == domain.RoleFinance {
		return nil
	}
	return apperrors.ErrForbidden
}

// AuthorizeReconciliationReview checks the actor may approve or reject
// reconciliations.
func (s *permissionService) AuthorizeReconciliationReview(ctx context.Context, userID string) error {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return err
	}
	if role == domain.RoleSuperadmin || role == domain.RoleAdmin {
		return nil
	}
	return apperrors.ErrForbidden
}

// VisibleCongregationIDs returns the congregations the user may act within.
func (s *permissionService) VisibleCongregationIDs(ctx context.Context, userID string) ([]string, bool, error) {
	role, err := s.GetRole(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if role == domain.RoleSuperadmin || role == domain.RoleAdmin {
		return nil, true, nil
	}
	ids, err := s.congregationRepo.ListCongregationIDsByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list congregation assignments", slog.String("user_id", userID))
		return nil, false, err
	}
	return ids, false, nil
}

// AuthorizeCongregationAccess checks the congregation is within the user's
// visible set.
func (s *permissionService) AuthorizeCongregationAccess(ctx context.Context, userID, congregationID string) error {
	ids, all, err := s.VisibleCongregationIDs(ctx, userID)
	if err != nil {
		return err
	}
	if all {
		return nil
	}
	for _, id := range ids {
		if id == congregationID {
			return nil
		}
	}
	s.LogDebug(ctx, "Congregation outside user's assigned set",
		slog.String("user_id", userID),
		slog.String("congregation_id", congregationID))
	return apperrors.ErrForbidden
}

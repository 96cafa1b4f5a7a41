package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/core/services"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash *string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

// --- Mock CongregationRepository ---
type MockCongregationRepository struct {
	mock.Mock
}

func (m *MockCongregationRepository) FindCongregationByID(ctx context.Context, congregationID string) (*domain.Congregation, error) {
	args := m.Called(ctx, congregationID)
	var congregation *domain.Congregation
	if args.Get(0) != nil {
		congregation = args.Get(0).(*domain.Congregation)
	}
	return congregation, args.Error(1)
}

func (m *MockCongregationRepository) ListCongregations(ctx context.Context, limit, offset int) ([]domain.Congregation, error) {
	args := m.Called(ctx, limit, offset)
	var congregations []domain.Congregation
	if args.Get(0) != nil {
		congregations = args.Get(0).([]domain.Congregation)
	}
	return congregations, args.Error(1)
}

func (m *MockCongregationRepository) ListCongregationIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Error(1)
}

func (m *MockCongregationRepository) SaveCongregation(ctx context.Context, congregation domain.Congregation) error {
	args := m.Called(ctx, congregation)
	return args.Error(0)
}

func (m *MockCongregationRepository) UpdateCongregation(ctx context.Context, congregation domain.Congregation) error {
	args := m.Called(ctx, congregation)
	return args.Error(0)
}

func (m *MockCongregationRepository) AssignUserToCongregation(ctx context.Context, assignment domain.UserCongregation) error {
	args := m.Called(ctx, assignment)
	return args.Error(0)
}

func (m *MockCongregationRepository) RemoveUserFromCongregation(ctx context.Context, userID, congregationID string) error {
	args := m.Called(ctx, userID, congregationID)
	return args.Error(0)
}

// --- Test Suite ---
type PermissionServiceTestSuite struct {
	suite.Suite
	mockUserRepo         *MockUserRepository
	mockCongregationRepo *MockCongregationRepository
	service              portssvc.PermissionSvc
}

func (suite *PermissionServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockCongregationRepo = new(MockCongregationRepository)
	suite.service = services.NewPermissionService(suite.mockUserRepo, suite.mockCongregationRepo)
}

func (suite *PermissionServiceTestSuite) stubUser(role domain.UserRole) string {
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, Role: role}, nil)
	return userID
}

// --- CanPerform Tests ---

func (suite *PermissionServiceTestSuite) TestCanPerform_SuperadminBypassesMatrix() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleSuperadmin)

	allowed, err := suite.service.CanPerform(ctx, userID, domain.ModuleUsers, domain.ActionEdit)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *PermissionServiceTestSuite) TestCanPerform_PastorCanSubmitReconciliation() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RolePastor)

	allowed, err := suite.service.CanPerform(ctx, userID, domain.ModuleReconciliations, domain.ActionInsert)

	suite.Require().NoError(err)
	suite.True(allowed)
}

func (suite *PermissionServiceTestSuite) TestCanPerform_MemberCannotViewPayables() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleMember)

	allowed, err := suite.service.CanPerform(ctx, userID, domain.ModulePayables, domain.ActionView)

	suite.Require().NoError(err)
	suite.False(allowed)
}

func (suite *PermissionServiceTestSuite) TestCanPerform_DirectorCannotCreatePayable() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleDirector)

	allowed, err := suite.service.CanPerform(ctx, userID, domain.ModulePayables, domain.ActionInsert)

	suite.Require().NoError(err)
	suite.False(allowed)
}

func (suite *PermissionServiceTestSuite) TestCanPerform_UnknownUser() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	allowed, err := suite.service.CanPerform(ctx, userID, domain.ModulePayables, domain.ActionView)

	suite.Require().Error(err)
	suite.False(allowed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AuthorizeApproval Tests ---

func (suite *PermissionServiceTestSuite) TestAuthorizeApproval_MatchingLevel() {
	ctx := context.Background()

	cases := map[domain.UserRole]domain.ApprovalLevel{
		domain.RoleManagement: domain.ApprovalLevelManagement,
		domain.RoleDirector:   domain.ApprovalLevelDirector,
		domain.RolePresident:  domain.ApprovalLevelPresident,
	}
	for role, level := range cases {
		userID := suite.stubUser(role)
		suite.NoError(suite.service.AuthorizeApproval(ctx, userID, level))
	}
}

func (suite *PermissionServiceTestSuite) TestAuthorizeApproval_WrongLevel() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleManagement)

	err := suite.service.AuthorizeApproval(ctx, userID, domain.ApprovalLevelDirector)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PermissionServiceTestSuite) TestAuthorizeApproval_SuperadminAnyLevel() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleSuperadmin)

	suite.NoError(suite.service.AuthorizeApproval(ctx, userID, domain.ApprovalLevelManagement))
	suite.NoError(suite.service.AuthorizeApproval(ctx, userID, domain.ApprovalLevelPresident))
}

func (suite *PermissionServiceTestSuite) TestAuthorizeApproval_AdminCannotApprove() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleAdmin)

	err := suite.service.AuthorizeApproval(ctx, userID, domain.ApprovalLevelManagement)

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- AuthorizePayment Tests ---

func (suite *PermissionServiceTestSuite) TestAuthorizePayment_FinanceOnly() {
	ctx := context.Background()

	financeID := suite.stubUser(domain.RoleFinance)
	suite.NoError(suite.service.AuthorizePayment(ctx, financeID))

	presidentID := suite.stubUser(domain.RolePresident)
	suite.ErrorIs(suite.service.AuthorizePayment(ctx, presidentID), apperrors.ErrForbidden)
}

// --- AuthorizeReconciliationReview Tests ---

func (suite *PermissionServiceTestSuite) TestAuthorizeReconciliationReview_AdminOnly() {
	ctx := context.Background()

	adminID := suite.stubUser(domain.RoleAdmin)
	suite.NoError(suite.service.AuthorizeReconciliationReview(ctx, adminID))

	pastorID := suite.stubUser(domain.RolePastor)
	suite.ErrorIs(suite.service.AuthorizeReconciliationReview(ctx, pastorID), apperrors.ErrForbidden)
}

// --- VisibleCongregationIDs Tests ---

func (suite *PermissionServiceTestSuite) TestVisibleCongregationIDs_AdminSeesAll() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RoleAdmin)

	ids, all, err := suite.service.VisibleCongregationIDs(ctx, userID)

	suite.Require().NoError(err)
	suite.True(all)
	suite.Empty(ids)
	suite.mockCongregationRepo.AssertNotCalled(suite.T(), "ListCongregationIDsByUserID", mock.Anything, mock.Anything)
}

func (suite *PermissionServiceTestSuite) TestVisibleCongregationIDs_PastorScopedToAssignments() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RolePastor)
	assigned := []string{uuid.NewString(), uuid.NewString()}
	suite.mockCongregationRepo.On("ListCongregationIDsByUserID", ctx, userID).Return(assigned, nil).Once()

	ids, all, err := suite.service.VisibleCongregationIDs(ctx, userID)

	suite.Require().NoError(err)
	suite.False(all)
	suite.Equal(assigned, ids)
}

// --- AuthorizeCongregationAccess Tests ---

func (suite *PermissionServiceTestSuite) TestAuthorizeCongregationAccess_AssignedCongregation() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RolePastor)
	congregationID := uuid.NewString()
	suite.mockCongregationRepo.On("ListCongregationIDsByUserID", ctx, userID).Return([]string{congregationID}, nil).Once()

	suite.NoError(suite.service.AuthorizeCongregationAccess(ctx, userID, congregationID))
}

func (suite *PermissionServiceTestSuite) TestAuthorizeCongregationAccess_OutsideAssignedSet() {
	ctx := context.Background()
	userID := suite.stubUser(domain.RolePastor)
	suite.mockCongregationRepo.On("ListCongregationIDsByUserID", ctx, userID).Return([]string{uuid.NewString()}, nil).Once()

	err := suite.service.AuthorizeCongregationAccess(ctx, userID, uuid.NewString())

	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestPermissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermissionServiceTestSuite))
}

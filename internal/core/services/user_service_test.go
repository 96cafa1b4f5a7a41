package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/core/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo   *MockUserRepository
	mockPermission *MockPermissionService
	service        portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPermission = new(MockPermissionService)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockPermission)
}

// --- CreateUser Tests ---

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	password := "correct-horse-battery"

	req := dto.CreateUserRequest{
		Name:     "Maria Souza",
		Email:    "Maria.Souza@Example.COM",
		Password: password,
		Role:     domain.RolePastor,
	}

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModuleUsers, domain.ActionInsert).Return(true, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "maria.souza@example.com" &&
			u.Role == domain.RolePastor &&
			u.PasswordHash != password &&
			u.PasswordHash != ""
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("maria.souza@example.com", user.Email)
	suite.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Forbidden() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModuleUsers, domain.ActionInsert).Return(false, nil).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name: "x", Email: "x@example.com", Password: "password", Role: domain.RoleMember,
	}, creatorID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	creatorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModuleUsers, domain.ActionInsert).Return(true, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.CreateUser(ctx, dto.CreateUserRequest{
		Name: "x", Email: "taken@example.com", Password: "password", Role: domain.RoleMember,
	}, creatorID)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- UpdateUser Tests ---

func (suite *UserServiceTestSuite) TestUpdateUser_PromotesRole() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	userID := uuid.NewString()
	newRole := domain.RoleDirector

	existing := &domain.User{UserID: userID, Name: "Joao", Role: domain.RoleMember}

	suite.mockPermission.On("CanPerform", ctx, updaterID, domain.ModuleUsers, domain.ActionEdit).Return(true, nil).Once()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleDirector && u.Name == "Joao" && u.LastUpdatedBy == updaterID
	})).Return(nil).Once()

	user, err := suite.service.UpdateUser(ctx, userID, dto.UpdateUserRequest{Role: &newRole}, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleDirector, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "s3cret-enough"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), Email: "pastor@example.com", PasswordHash: string(hash)}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "pastor@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "Pastor@Example.com", password)

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("right-password"), bcrypt.MinCost)
	suite.Require().NoError(err)

	stored := &domain.User{UserID: uuid.NewString(), PasswordHash: string(hash)}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "a@example.com", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownEmailSameError() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.AuthenticateUser(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthOnlyAccount() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), AuthProvider: "google"}
	suite.mockUserRepo.On("FindUserByEmail", ctx, "oauth@example.com").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "oauth@example.com", "anything")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

// --- FindOrCreateOAuthUser Tests ---

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_ExistingProviderIdentity() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), AuthProvider: "google", ProviderUserID: "sub-123"}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, "google", "sub-123").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-123", "x@example.com", "X")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_LinksExistingEmailAccount() {
	ctx := context.Background()
	stored := &domain.User{UserID: uuid.NewString(), Email: "linked@example.com", Role: domain.RolePastor}

	suite.mockUserRepo.On("FindUserByProviderID", ctx, "google", "sub-456").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "linked@example.com").Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.AuthProvider == "google" && u.ProviderUserID == "sub-456" && u.Role == domain.RolePastor
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-456", "Linked@Example.com", "Linked")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.Equal(domain.RolePastor, user.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestFindOrCreateOAuthUser_CreatesMember() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderID", ctx, "google", "sub-789").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleMember && u.AuthProvider == "google" && u.Email == "new@example.com"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateOAuthUser(ctx, "google", "sub-789", "New@example.com", "New Member")

	suite.Require().NoError(err)
	suite.Equal(domain.RoleMember, user.Role)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

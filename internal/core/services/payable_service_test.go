package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/core/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// --- Mock PermissionService (shared by the service test suites) ---
type MockPermissionService struct {
	mock.Mock
}

func (m *MockPermissionService) CanPerform(ctx context.Context, userID string, module domain.Module, action domain.ModuleAction) (bool, error) {
	args := m.Called(ctx, userID, module, action)
	return args.Bool(0), args.Error(1)
}

func (m *MockPermissionService) AuthorizeApproval(ctx context.Context, userID string, level domain.ApprovalLevel) error {
	args := m.Called(ctx, userID, level)
	return args.Error(0)
}

func (m *MockPermissionService) AuthorizePayment(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPermissionService) AuthorizeReconciliationReview(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPermissionService) VisibleCongregationIDs(ctx context.Context, userID string) ([]string, bool, error) {
	args := m.Called(ctx, userID)
	var ids []string
	if args.Get(0) != nil {
		ids = args.Get(0).([]string)
	}
	return ids, args.Bool(1), args.Error(2)
}

func (m *MockPermissionService) AuthorizeCongregationAccess(ctx context.Context, userID, congregationID string) error {
	args := m.Called(ctx, userID, congregationID)
	return args.Error(0)
}

func (m *MockPermissionService) GetRole(ctx context.Context, userID string) (domain.UserRole, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserRole), args.Error(1)
}

// --- Mock PayableRepository ---
type MockPayableRepository struct {
	mock.Mock
}

func (m *MockPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	args := m.Called(ctx, payableID)
	var payable *domain.Payable
	if args.Get(0) != nil {
		payable = args.Get(0).(*domain.Payable)
	}
	return payable, args.Error(1)
}

func (m *MockPayableRepository) ListPayables(ctx context.Context, filter portsrepo.PayableListFilter) ([]domain.Payable, error) {
	args := m.Called(ctx, filter)
	var payables []domain.Payable
	if args.Get(0) != nil {
		payables = args.Get(0).([]domain.Payable)
	}
	return payables, args.Error(1)
}

func (m *MockPayableRepository) ListApprovalRecords(ctx context.Context, payableID string) ([]domain.ApprovalRecord, error) {
	args := m.Called(ctx, payableID)
	var records []domain.ApprovalRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.ApprovalRecord)
	}
	return records, args.Error(1)
}

func (m *MockPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockPayableRepository) AdvancePayable(ctx context.Context, payableID string, from, to domain.PayableStatus, record domain.ApprovalRecord, approvedAt *time.Time, actorID string, now time.Time) error {
	args := m.Called(ctx, payableID, from, to, record, approvedAt, actorID, now)
	return args.Error(0)
}

func (m *MockPayableRepository) RejectPayable(ctx context.Context, payableID string, from domain.PayableStatus, record domain.ApprovalRecord, reason string, actorID string, now time.Time) error {
	args := m.Called(ctx, payableID, from, record, reason, actorID, now)
	return args.Error(0)
}

func (m *MockPayableRepository) MarkPayablePaid(ctx context.Context, payableID string, actorID string, now time.Time) error {
	args := m.Called(ctx, payableID, actorID, now)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	args := m.Called(ctx, limit, offset)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// --- Test Suite ---
type PayableServiceTestSuite struct {
	suite.Suite
	mockRepo         *MockPayableRepository
	mockCategoryRepo *MockCategoryRepository
	mockPermission   *MockPermissionService
	service          portssvc.PayableSvcFacade
}

func (suite *PayableServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPayableRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.mockPermission = new(MockPermissionService)
	suite.service = services.NewPayableService(suite.mockRepo, suite.mockCategoryRepo, suite.mockPermission)
}

func basePayableRequest(congregationID, categoryID string) dto.CreatePayableRequest {
	return dto.CreatePayableRequest{
		CongregationID: congregationID,
		CategoryID:     categoryID,
		Description:    "Electricity bill",
		Amount:         decimal.NewFromFloat(350.75),
		DueDate:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		PaymentMethod:  domain.PaymentMethodPix,
		PayeeName:      "Energy Co",
		PixKey:         "energy@pix.example",
	}
}

// --- CreatePayable Tests ---

func (suite *PayableServiceTestSuite) TestCreatePayable_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	congregationID := uuid.NewString()
	categoryID := uuid.NewString()
	req := basePayableRequest(congregationID, categoryID)

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, congregationID).Return(nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID, Name: "Utilities"}, nil).Once()
	suite.mockRepo.On("SavePayable", ctx, mock.MatchedBy(func(p domain.Payable) bool {
		return p.Status == domain.PayableStatusPendingManagement &&
			p.CongregationID == congregationID &&
			p.CreatedBy == creatorID &&
			p.PayableID != ""
	})).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(payable)
	suite.Equal(domain.PayableStatusPendingManagement, payable.Status)
	suite.Nil(payable.Recurrence)
	suite.Nil(payable.ScheduledFor)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockPermission.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestCreatePayable_Forbidden() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := basePayableRequest(uuid.NewString(), uuid.NewString())

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(false, nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable", mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_PixWithoutKey() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := basePayableRequest(uuid.NewString(), uuid.NewString())
	req.PixKey = ""

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_TransferWithoutBankDetails() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := basePayableRequest(uuid.NewString(), uuid.NewString())
	req.PaymentMethod = domain.PaymentMethodTransfer
	req.BankName = "Banco Central"

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_UrgentWithoutReason() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := basePayableRequest(uuid.NewString(), uuid.NewString())
	req.IsUrgent = true

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_RecurringAndScheduled() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	freq := domain.RecurrenceMonthly
	day := 5
	nextDate := time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)
	scheduledFor := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	req := basePayableRequest(uuid.NewString(), uuid.NewString())
	req.IsRecurring = true
	req.RecurrenceFrequency = &freq
	req.RecurrenceDayOfMonth = &day
	req.RecurrenceNextDate = &nextDate
	req.IsFutureScheduled = true
	req.ScheduledFor = &scheduledFor

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_WeeklyRecurrenceMissingDay() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	freq := domain.RecurrenceWeekly
	nextDate := time.Date(2025, 8, 4, 0, 0, 0, 0, time.UTC)

	req := basePayableRequest(uuid.NewString(), uuid.NewString())
	req.IsRecurring = true
	req.RecurrenceFrequency = &freq
	req.RecurrenceNextDate = &nextDate

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PayableServiceTestSuite) TestCreatePayable_CategoryNotFound() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := basePayableRequest(uuid.NewString(), uuid.NewString())

	suite.mockPermission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, creatorID, req.CongregationID).Return(nil).Once()
	suite.mockCategoryRepo.On("FindCategoryByID", ctx, req.CategoryID).Return(nil, apperrors.ErrNotFound).Once()

	payable, err := suite.service.CreatePayable(ctx, req, creatorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SavePayable", mock.Anything, mock.Anything)
}

// --- ApprovePayable Tests ---

func (suite *PayableServiceTestSuite) TestApprovePayable_AdvancesToDirector() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingManagement}
	advanced := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingDirector}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockPermission.On("AuthorizeApproval", ctx, actorID, domain.ApprovalLevelManagement).Return(nil).Once()
	suite.mockRepo.On("AdvancePayable", ctx, payableID,
		domain.PayableStatusPendingManagement, domain.PayableStatusPendingDirector,
		mock.MatchedBy(func(r domain.ApprovalRecord) bool {
			return r.Level == domain.ApprovalLevelManagement && r.Action == domain.ApprovalActionApproved && r.ApproverID == actorID
		}),
		(*time.Time)(nil), actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(advanced, nil).Once()

	payable, err := suite.service.ApprovePayable(ctx, payableID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayableStatusPendingDirector, payable.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestApprovePayable_FinalStepSetsApprovedAt() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingPresident}
	now := time.Now()
	approved := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusApproved, ApprovedAt: &now}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockPermission.On("AuthorizeApproval", ctx, actorID, domain.ApprovalLevelPresident).Return(nil).Once()
	suite.mockRepo.On("AdvancePayable", ctx, payableID,
		domain.PayableStatusPendingPresident, domain.PayableStatusApproved,
		mock.MatchedBy(func(r domain.ApprovalRecord) bool {
			return r.Level == domain.ApprovalLevelPresident && r.Action == domain.ApprovalActionApproved
		}),
		mock.MatchedBy(func(at *time.Time) bool { return at != nil }),
		actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(approved, nil).Once()

	payable, err := suite.service.ApprovePayable(ctx, payableID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayableStatusApproved, payable.Status)
	suite.NotNil(payable.ApprovedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestApprovePayable_TerminalStatus() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	rejected := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusRejected}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(rejected, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()

	payable, err := suite.service.ApprovePayable(ctx, payableID, actorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "AdvancePayable", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestApprovePayable_WrongLevel() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingDirector}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockPermission.On("AuthorizeApproval", ctx, actorID, domain.ApprovalLevelDirector).Return(apperrors.ErrForbidden).Once()

	payable, err := suite.service.ApprovePayable(ctx, payableID, actorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PayableServiceTestSuite) TestApprovePayable_ConcurrentTransition() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingManagement}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockPermission.On("AuthorizeApproval", ctx, actorID, domain.ApprovalLevelManagement).Return(nil).Once()
	suite.mockRepo.On("AdvancePayable", ctx, payableID,
		domain.PayableStatusPendingManagement, domain.PayableStatusPendingDirector,
		mock.Anything, (*time.Time)(nil), actorID, mock.AnythingOfType("time.Time")).Return(apperrors.ErrConflict).Once()

	payable, err := suite.service.ApprovePayable(ctx, payableID, actorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- RejectPayable Tests ---

func (suite *PayableServiceTestSuite) TestRejectPayable_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	reason := "budget exceeded"
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingDirector}
	rejected := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusRejected, RejectionReason: &reason}

	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockPermission.On("AuthorizeApproval", ctx, actorID, domain.ApprovalLevelDirector).Return(nil).Once()
	suite.mockRepo.On("RejectPayable", ctx, payableID, domain.PayableStatusPendingDirector,
		mock.MatchedBy(func(r domain.ApprovalRecord) bool {
			return r.Action == domain.ApprovalActionRejected && r.Notes == reason && r.Level == domain.ApprovalLevelDirector
		}),
		reason, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(rejected, nil).Once()

	payable, err := suite.service.RejectPayable(ctx, payableID, actorID, reason)

	suite.Require().NoError(err)
	suite.Equal(domain.PayableStatusRejected, payable.Status)
	suite.Require().NotNil(payable.RejectionReason)
	suite.Equal(reason, *payable.RejectionReason)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestRejectPayable_EmptyReason() {
	ctx := context.Background()

	payable, err := suite.service.RejectPayable(ctx, uuid.NewString(), uuid.NewString(), "   ")

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPayableByID", mock.Anything, mock.Anything)
}

// --- MarkPayablePaid Tests ---

func (suite *PayableServiceTestSuite) TestMarkPayablePaid_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	now := time.Now()
	approved := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusApproved}
	paid := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPaid, PaidAt: &now}

	suite.mockPermission.On("AuthorizePayment", ctx, actorID).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(approved, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()
	suite.mockRepo.On("MarkPayablePaid", ctx, payableID, actorID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(paid, nil).Once()

	payable, err := suite.service.MarkPayablePaid(ctx, payableID, actorID)

	suite.Require().NoError(err)
	suite.Equal(domain.PayableStatusPaid, payable.Status)
	suite.NotNil(payable.PaidAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestMarkPayablePaid_NotApproved() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()
	congregationID := uuid.NewString()
	pending := &domain.Payable{PayableID: payableID, CongregationID: congregationID, Status: domain.PayableStatusPendingPresident}

	suite.mockPermission.On("AuthorizePayment", ctx, actorID).Return(nil).Once()
	suite.mockRepo.On("FindPayableByID", ctx, payableID).Return(pending, nil).Once()
	suite.mockPermission.On("AuthorizeCongregationAccess", ctx, actorID, congregationID).Return(nil).Once()

	payable, err := suite.service.MarkPayablePaid(ctx, payableID, actorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkPayablePaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestMarkPayablePaid_Forbidden() {
	ctx := context.Background()
	actorID := uuid.NewString()
	payableID := uuid.NewString()

	suite.mockPermission.On("AuthorizePayment", ctx, actorID).Return(apperrors.ErrForbidden).Once()

	payable, err := suite.service.MarkPayablePaid(ctx, payableID, actorID)

	suite.Require().Error(err)
	suite.Nil(payable)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPayableByID", mock.Anything, mock.Anything)
}

// --- ListPayables Tests ---

func (suite *PayableServiceTestSuite) TestListPayables_ScopedToVisibleCongregations() {
	ctx := context.Background()
	actorID := uuid.NewString()
	congregationID := uuid.NewString()
	expected := []domain.Payable{{PayableID: uuid.NewString(), CongregationID: congregationID}}

	suite.mockPermission.On("CanPerform", ctx, actorID, domain.ModulePayables, domain.ActionView).Return(true, nil).Once()
	suite.mockPermission.On("VisibleCongregationIDs", ctx, actorID).Return([]string{congregationID}, false, nil).Once()
	suite.mockRepo.On("ListPayables", ctx, portsrepo.PayableListFilter{
		CongregationIDs: []string{congregationID},
		Limit:           20,
	}).Return(expected, nil).Once()

	payables, err := suite.service.ListPayables(ctx, actorID, dto.ListPayablesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Len(payables, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestListPayables_NoAssignedCongregations() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, actorID, domain.ModulePayables, domain.ActionView).Return(true, nil).Once()
	suite.mockPermission.On("VisibleCongregationIDs", ctx, actorID).Return([]string{}, false, nil).Once()

	payables, err := suite.service.ListPayables(ctx, actorID, dto.ListPayablesParams{Limit: 20})

	suite.Require().NoError(err)
	suite.Empty(payables)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListPayables", mock.Anything, mock.Anything)
}

func (suite *PayableServiceTestSuite) TestListPayables_PendingBucketCoversAllStages() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, actorID, domain.ModulePayables, domain.ActionView).Return(true, nil).Once()
	suite.mockPermission.On("VisibleCongregationIDs", ctx, actorID).Return(nil, true, nil).Once()
	suite.mockRepo.On("ListPayables", ctx, portsrepo.PayableListFilter{
		Statuses: []domain.PayableStatus{
			domain.PayableStatusPendingManagement,
			domain.PayableStatusPendingDirector,
			domain.PayableStatusPendingPresident,
		},
		Limit: 20,
	}).Return([]domain.Payable{}, nil).Once()

	_, err := suite.service.ListPayables(ctx, actorID, dto.ListPayablesParams{Status: "pending", Limit: 20})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestListPayables_ExactStatusFilter() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, actorID, domain.ModulePayables, domain.ActionView).Return(true, nil).Once()
	suite.mockPermission.On("VisibleCongregationIDs", ctx, actorID).Return(nil, true, nil).Once()
	suite.mockRepo.On("ListPayables", ctx, portsrepo.PayableListFilter{
		Statuses: []domain.PayableStatus{domain.PayableStatusApproved},
		Limit:    20,
	}).Return([]domain.Payable{}, nil).Once()

	_, err := suite.service.ListPayables(ctx, actorID, dto.ListPayablesParams{Status: "APPROVED", Limit: 20})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PayableServiceTestSuite) TestListPayables_UnknownStatus() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockPermission.On("CanPerform", ctx, actorID, domain.ModulePayables, domain.ActionView).Return(true, nil).Once()
	suite.mockPermission.On("VisibleCongregationIDs", ctx, actorID).Return(nil, true, nil).Once()

	payables, err := suite.service.ListPayables(ctx, actorID, dto.ListPayablesParams{Status: "BOGUS", Limit: 20})

	suite.Require().Error(err)
	suite.Nil(payables)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestPayableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PayableServiceTestSuite))
}

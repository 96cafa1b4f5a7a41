package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	"github.com/IgrejaViva/igreja_backend/internal/core/services"
)

// fakePayableRepository keeps one payable and its approval history in memory so
// a test can walk several transitions against the same record.
type fakePayableRepository struct {
	payable *domain.Payable
	history []domain.ApprovalRecord
}

var _ portsrepo.PayableRepositoryFacade = (*fakePayableRepository)(nil)

func (f *fakePayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	if f.payable == nil || f.payable.PayableID != payableID {
		return nil, apperrors.ErrNotFound
	}
	p := *f.payable
	return &p, nil
}

func (f *fakePayableRepository) ListPayables(ctx context.Context, filter portsrepo.PayableListFilter) ([]domain.Payable, error) {
	if f.payable == nil {
		return []domain.Payable{}, nil
	}
	return []domain.Payable{*f.payable}, nil
}

func (f *fakePayableRepository) ListApprovalRecords(ctx context.Context, payableID string) ([]domain.ApprovalRecord, error) {
	return append([]domain.ApprovalRecord(nil), f.history...), nil
}

func (f *fakePayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	f.payable = &payable
	return nil
}

func (f *fakePayableRepository) AdvancePayable(ctx context.Context, payableID string, from, to domain.PayableStatus, record domain.ApprovalRecord, approvedAt *time.Time, actorID string, now time.Time) error {
	if f.payable == nil || f.payable.PayableID != payableID {
		return apperrors.ErrNotFound
	}
	if f.payable.Status != from {
		return apperrors.ErrConflict
	}
	f.payable.Status = to
	if approvedAt != nil {
		f.payable.ApprovedAt = approvedAt
	}
	f.payable.LastUpdatedAt = now
	f.payable.LastUpdatedBy = actorID
	f.history = append(f.history, record)
	return nil
}

func (f *fakePayableRepository) RejectPayable(ctx context.Context, payableID string, from domain.PayableStatus, record domain.ApprovalRecord, reason string, actorID string, now time.Time) error {
	if f.payable == nil || f.payable.PayableID != payableID {
		return apperrors.ErrNotFound
	}
	if f.payable.Status != from {
		return apperrors.ErrConflict
	}
	f.payable.Status = domain.PayableStatusRejected
	f.payable.RejectionReason = &reason
	f.payable.RejectedAt = &now
	f.payable.LastUpdatedAt = now
	f.payable.LastUpdatedBy = actorID
	f.history = append(f.history, record)
	return nil
}

func (f *fakePayableRepository) MarkPayablePaid(ctx context.Context, payableID string, actorID string, now time.Time) error {
	if f.payable == nil || f.payable.PayableID != payableID {
		return apperrors.ErrNotFound
	}
	if f.payable.Status != domain.PayableStatusApproved {
		return apperrors.ErrConflict
	}
	f.payable.Status = domain.PayableStatusPaid
	f.payable.PaidAt = &now
	f.payable.LastUpdatedAt = now
	f.payable.LastUpdatedBy = actorID
	return nil
}

// TestPayableApprovalChain walks a payable from creation through two approvals
// and a final rejection, checking the accumulated history along the way.
func TestPayableApprovalChain(t *testing.T) {
	ctx := context.Background()
	repo := &fakePayableRepository{}
	categoryRepo := new(MockCategoryRepository)
	permission := new(MockPermissionService)
	service := services.NewPayableService(repo, categoryRepo, permission)

	congregationID := uuid.NewString()
	categoryID := uuid.NewString()
	creatorID := uuid.NewString()
	managerID := uuid.NewString()
	directorID := uuid.NewString()
	presidentID := uuid.NewString()

	permission.On("CanPerform", ctx, creatorID, domain.ModulePayables, domain.ActionInsert).Return(true, nil).Once()
	permission.On("AuthorizeCongregationAccess", ctx, mock.Anything, congregationID).Return(nil)
	permission.On("AuthorizeApproval", ctx, managerID, domain.ApprovalLevelManagement).Return(nil).Once()
	permission.On("AuthorizeApproval", ctx, directorID, domain.ApprovalLevelDirector).Return(nil).Once()
	permission.On("AuthorizeApproval", ctx, presidentID, domain.ApprovalLevelPresident).Return(nil).Once()
	categoryRepo.On("FindCategoryByID", ctx, categoryID).Return(&domain.Category{CategoryID: categoryID, Name: "Utilities"}, nil).Once()

	created, err := service.CreatePayable(ctx, basePayableRequest(congregationID, categoryID), creatorID)
	require.NoError(t, err)
	require.Equal(t, domain.PayableStatusPendingManagement, created.Status)

	afterManagement, err := service.ApprovePayable(ctx, created.PayableID, managerID)
	require.NoError(t, err)
	require.Equal(t, domain.PayableStatusPendingDirector, afterManagement.Status)

	afterDirector, err := service.ApprovePayable(ctx, created.PayableID, directorID)
	require.NoError(t, err)
	require.Equal(t, domain.PayableStatusPendingPresident, afterDirector.Status)

	rejected, err := service.RejectPayable(ctx, created.PayableID, presidentID, "budget exceeded")
	require.NoError(t, err)
	require.Equal(t, domain.PayableStatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "budget exceeded", *rejected.RejectionReason)
	assert.NotNil(t, rejected.RejectedAt)
	assert.Nil(t, rejected.ApprovedAt)

	require.Len(t, repo.history, 3)
	assert.Equal(t, domain.ApprovalActionApproved, repo.history[0].Action)
	assert.Equal(t, domain.ApprovalLevelManagement, repo.history[0].Level)
	assert.Equal(t, managerID, repo.history[0].ApproverID)
	assert.Equal(t, domain.ApprovalActionApproved, repo.history[1].Action)
	assert.Equal(t, domain.ApprovalLevelDirector, repo.history[1].Level)
	assert.Equal(t, domain.ApprovalActionRejected, repo.history[2].Action)
	assert.Equal(t, domain.ApprovalLevelPresident, repo.history[2].Level)
	assert.Equal(t, "budget exceeded", repo.history[2].Notes)

	// The record is terminal now: no further transition may touch it.
	_, err = service.ApprovePayable(ctx, created.PayableID, managerID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	require.Len(t, repo.history, 3)
}

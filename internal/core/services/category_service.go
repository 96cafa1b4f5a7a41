package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	portssvc "github.com/IgrejaViva/igreja_backend/internal/core/ports/services"
	"github.com/IgrejaViva/igreja_backend/internal/dto"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo  portsrepo.CategoryRepositoryFacade
	permissionSvc portssvc.PermissionSvc
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade, permissionSvc portssvc.PermissionSvc) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, permissionSvc: permissionSvc}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryByID(ctx, categoryID)
}

// ListCategories retrieves categories.
func (s *categoryService) ListCategories(ctx context.Context, limit, offset int) ([]domain.Category, error) {
	return s.categoryRepo.ListCategories(ctx, limit, offset)
}

// CreateCategory registers a new expense category. Admin only.
func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, actorUserID string) (*domain.Category, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCategories, domain.ActionInsert)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:  uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category")
		return nil, err
	}
	s.LogInfo(ctx, "Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// UpdateCategory updates an expense category. Admin only.
func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, actorUserID string) (*domain.Category, error) {
	allowed, err := s.permissionSvc.CanPerform(ctx, actorUserID, domain.ModuleCategories, domain.ActionEdit)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = actorUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, err
	}
	return category, nil
}

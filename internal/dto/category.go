package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create an expense category.
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID  string    `json:"categoryID"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListCategoriesParams defines query parameters for listing categories.
type ListCategoriesParams struct {
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// ListCategoriesResponse wraps the list of categories.
type ListCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain.Category to its DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:  c.CategoryID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

// ToListCategoriesResponse converts domain categories to the list response
func ToListCategoriesResponse(cs []domain.Category) ListCategoriesResponse {
	res := make([]CategoryResponse, len(cs))
	for i := range cs {
		res[i] = ToCategoryResponse(&cs[i])
	}
	return ListCategoriesResponse{Categories: res}
}

package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CreateCongregationRequest defines the data needed to create a congregation.
type CreateCongregationRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
}

// UpdateCongregationRequest defines the data allowed for updating a congregation.
type UpdateCongregationRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"isActive"`
}

// AssignPastorRequest links a pastor to a congregation.
type AssignPastorRequest struct {
	UserID string `json:"userID" binding:"required"`
}

// CongregationResponse defines the data returned for a congregation.
type CongregationResponse struct {
	CongregationID string    `json:"congregationID"`
	Name           string    `json:"name"`
	City           string    `json:"city"`
	Address        string    `json:"address"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ListCongregationsParams defines query parameters for listing congregations.
type ListCongregationsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListCongregationsResponse wraps the list of congregations.
type ListCongregationsResponse struct {
	Congregations []CongregationResponse `json:"congregations"`
}

// ToCongregationResponse converts a domain.Congregation to its DTO
func ToCongregationResponse(c *domain.Congregation) CongregationResponse {
	return CongregationResponse{
		CongregationID: c.CongregationID,
		Name:           c.Name,
		City:           c.City,
		Address:        c.Address,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// ToListCongregationsResponse converts domain congregations to the list response
func ToListCongregationsResponse(cs []domain.Congregation) ListCongregationsResponse {
	res := make([]CongregationResponse, len(cs))
	for i := range cs {
		res[i] = ToCongregationResponse(&cs[i])
	}
	return ListCongregationsResponse{Congregations: res}
}

package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
)

// CreateMemberRequest defines the data needed to register a member.
type CreateMemberRequest struct {
	CongregationID string     `json:"congregationID" binding:"required"`
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"omitempty,email"`
	Phone          string     `json:"phone"`
	BirthDate      *time.Time `json:"birthDate"`
	BaptismDate    *time.Time `json:"baptismDate"`
}

// UpdateMemberRequest defines the data allowed for updating a member.
type UpdateMemberRequest struct {
	Name        *string    `json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	BirthDate   *time.Time `json:"birthDate"`
	BaptismDate *time.Time `json:"baptismDate"`
	IsActive    *bool      `json:"isActive"`
}

// MemberResponse defines the data returned for a member.
type MemberResponse struct {
	MemberID       string     `json:"memberID"`
	CongregationID string     `json:"congregationID"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	BaptismDate    *time.Time `json:"baptismDate,omitempty"`
	IsActive       bool       `json:"isActive"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// ListMembersParams defines query parameters for listing members.
type ListMembersParams struct {
	CongregationID string `form:"congregationID" binding:"required"`
	Limit          int    `form:"limit,default=20"`
	Offset         int    `form:"offset,default=0"`
}

// ListMembersResponse wraps the list of members.
type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// ToMemberResponse converts a domain.Member to its DTO
func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID:       m.MemberID,
		CongregationID: m.CongregationID,
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		BirthDate:      m.BirthDate,
		BaptismDate:    m.BaptismDate,
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
	}
}

// ToListMembersResponse converts domain members to the list response
func ToListMembersResponse(ms []domain.Member) ListMembersResponse {
	res := make([]MemberResponse, len(ms))
	for i := range ms {
		res[i] = ToMemberResponse(&ms[i])
	}
	return ListMembersResponse{Members: res}
}

package domain

import "time"

// Member is a membership record of a congregation.
type Member struct {
	MemberID       string     `json:"memberID"`
	CongregationID string     `json:"congregationID"`
	Name           string     `json:"name"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	BirthDate      *time.Time `json:"birthDate,omitempty"`
	BaptismDate    *time.Time `json:"baptismDate,omitempty"`
	IsActive       bool       `json:"isActive"`
	AuditFields
}

package domain

import "time"

// UserRole defines the authority tier a user holds across the application.
type UserRole string

const (
	RoleSuperadmin UserRole = "SUPERADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RolePresident  UserRole = "PRESIDENT"
	RoleDirector   UserRole = "DIRECTOR"
	RoleManagement UserRole = "MANAGEMENT"
	RoleFinance    UserRole = "FINANCE"
	RolePastor     UserRole = "PASTOR"
	RoleMember     UserRole = "MEMBER"
)

// User represents an application user.
type User struct {
	UserID               string     `json:"userID"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	PasswordHash         string     `json:"-"`
	Role                 UserRole   `json:"role"`
	AuthProvider         string     `json:"authProvider,omitempty"` // e.g. "google" for OAuth users
	ProviderUserID       string     `json:"-"`
	RefreshTokenHash     *string    `json:"-"`
	RefreshTokenExpiryAt *time.Time `json:"-"`
	AuditFields
}

// UserCongregation represents the assignment of a user (typically a pastor)
// to a congregation. Pastors may act only within their assigned set.
type UserCongregation struct {
	UserID         string    `json:"userID"`
	CongregationID string    `json:"congregationID"`
	AssignedAt     time.Time `json:"assignedAt"`
}

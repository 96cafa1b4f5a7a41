package models

import "time"

// User is the DB representation of a user.
type User struct {
	UserID               string     `db:"user_id"`
	Name                 string     `db:"name"`
	Email                string     `db:"email"`
	PasswordHash         string     `db:"password_hash"`
	Role                 string     `db:"role"`
	AuthProvider         string     `db:"auth_provider"`
	ProviderUserID       string     `db:"provider_user_id"`
	RefreshTokenHash     *string    `db:"refresh_token_hash"`
	RefreshTokenExpiryAt *time.Time `db:"refresh_token_expiry_at"`
	AuditFields
}

// UserCongregation is the DB representation of a user-to-congregation assignment.
type UserCongregation struct {
	UserID         string    `db:"user_id"`
	CongregationID string    `db:"congregation_id"`
	AssignedAt     time.Time `db:"assigned_at"`
}

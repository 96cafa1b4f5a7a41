package models

import "time"

// Member is the DB representation of a congregation member.
type Member struct {
	MemberID       string     `db:"member_id"`
	CongregationID string     `db:"congregation_id"`
	Name           string     `db:"name"`
	Email          string     `db:"email"`
	Phone          string     `db:"phone"`
	BirthDate      *time.Time `db:"birth_date"`
	BaptismDate    *time.Time `db:"baptism_date"`
	IsActive       bool       `db:"is_active"`
	AuditFields
}

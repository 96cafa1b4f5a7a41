package models

// Congregation is the DB representation of a congregation.
type Congregation struct {
	CongregationID string `db:"congregation_id"`
	Name           string `db:"name"`
	City           string `db:"city"`
	Address        string `db:"address"`
	IsActive       bool   `db:"is_active"`
	AuditFields
}

package models

// Category is the DB representation of an expense category.
type Category struct {
	CategoryID  string `db:"category_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

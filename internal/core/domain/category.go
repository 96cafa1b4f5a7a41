package domain

// Category classifies payable expenses.
type Category struct {
	CategoryID  string `json:"categoryID"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

package domain

// Congregation is a physical branch of the church and the tenant scoping unit
// for reconciliations, payables, members and events.
type Congregation struct {
	CongregationID string `json:"congregationID"`
	Name           string `json:"name"`
	City           string `json:"city"`
	Address        string `json:"address"`
	IsActive       bool   `json:"isActive"`
	AuditFields
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus is the review state of a monthly reconciliation.
type ReconciliationStatus string

const (
	ReconciliationStatusPending  ReconciliationStatus = "PENDING"
	ReconciliationStatusApproved ReconciliationStatus = "APPROVED"
	ReconciliationStatusRejected ReconciliationStatus = "REJECTED"
)

// RemittanceRate is the fixed share of a congregation's monthly income that is
// remitted upstream.
var RemittanceRate = decimal.NewFromFloat(0.15)

// Reconciliation is a congregation's monthly report of collected income.
// TotalIncome and AmountToSend are derived, never user-entered.
type Reconciliation struct {
	ReconciliationID string               `json:"reconciliationID"`
	CongregationID   string               `json:"congregationID"`
	Month            time.Time            `json:"month"` // normalized to first of month
	PixAmount        decimal.Decimal      `json:"pixAmount"`
	OnlinePixAmount  decimal.Decimal      `json:"onlinePixAmount"`
	DebitAmount      decimal.Decimal      `json:"debitAmount"`
	CreditAmount     decimal.Decimal      `json:"creditAmount"`
	CashAmount       decimal.Decimal      `json:"cashAmount"`
	TotalIncome      decimal.Decimal      `json:"totalIncome"`
	AmountToSend     decimal.Decimal      `json:"amountToSend"`
	Status           ReconciliationStatus `json:"status"`
	SenderID         string               `json:"senderID"`
	ReviewerID       *string              `json:"reviewerID,omitempty"`
	ReviewedAt       *time.Time           `json:"reviewedAt,omitempty"`
	AuditFields
}

// ComputeTotals recomputes TotalIncome as the sum of the five subtotals and
// AmountToSend as the remittance share, rounded half-up to cents.
func (r *Reconciliation) ComputeTotals() {
	r.TotalIncome = r.PixAmount.
		Add(r.OnlinePixAmount).
		Add(r.DebitAmount).
		Add(r.CreditAmount).
		Add(r.CashAmount)
	r.AmountToSend = r.TotalIncome.Mul(RemittanceRate).Round(2)
}

// NormalizeMonth truncates a date to the first of its month in UTC.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

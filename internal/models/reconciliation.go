package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus mirrors domain.ReconciliationStatus for DB storage.
type ReconciliationStatus string

// Reconciliation is the DB representation of a monthly reconciliation. The
// total_income and amount_to_send columns mirror the derived values; they are
// always rewritten from the subtotals on save.
type Reconciliation struct {
	ReconciliationID string               `db:"reconciliation_id"`
	CongregationID   string               `db:"congregation_id"`
	Month            time.Time            `db:"month"`
	PixAmount        decimal.Decimal      `db:"pix_amount"`
	OnlinePixAmount  decimal.Decimal      `db:"online_pix_amount"`
	DebitAmount      decimal.Decimal      `db:"debit_amount"`
	CreditAmount     decimal.Decimal      `db:"credit_amount"`
	CashAmount       decimal.Decimal      `db:"cash_amount"`
	TotalIncome      decimal.Decimal      `db:"total_income"`
	AmountToSend     decimal.Decimal      `db:"amount_to_send"`
	Status           ReconciliationStatus `db:"status"`
	SenderID         string               `db:"sender_id"`
	ReviewerID       *string              `db:"reviewer_id"`
	ReviewedAt       *time.Time           `db:"reviewed_at"`
	AuditFields
}

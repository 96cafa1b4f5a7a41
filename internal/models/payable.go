package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableStatus mirrors domain.PayableStatus for DB storage.
type PayableStatus string

// PaymentMethod mirrors domain.PaymentMethod for DB storage.
type PaymentMethod string

// RecurrenceFrequency mirrors domain.RecurrenceFrequency for DB storage.
type RecurrenceFrequency string

// Payable is the DB representation of an accounts-payable record. Recurrence
// is flattened into nullable columns; a payable has either recurrence columns
// or scheduled_for populated, never both.
type Payable struct {
	PayableID           string               `db:"payable_id"`
	CongregationID      string               `db:"congregation_id"`
	CategoryID          string               `db:"category_id"`
	Description         string               `db:"description"`
	Amount              decimal.Decimal      `db:"amount"`
	DueDate             time.Time            `db:"due_date"`
	PaymentMethod       PaymentMethod        `db:"payment_method"`
	PayeeName           string               `db:"payee_name"`
	PixKey              string               `db:"pix_key"`
	BankName            string               `db:"bank_name"`
	BankAgency          string               `db:"bank_agency"`
	BankAccount         string               `db:"bank_account"`
	IsUrgent            bool                 `db:"is_urgent"`
	UrgencyReason       string               `db:"urgency_reason"`
	RecurrenceFrequency *RecurrenceFrequency `db:"recurrence_frequency"`
	RecurrenceDayOfWeek *int                 `db:"recurrence_day_of_week"`
	RecurrenceDayOfMonth *int                `db:"recurrence_day_of_month"`
	RecurrenceNextDate  *time.Time           `db:"recurrence_next_date"`
	ScheduledFor        *time.Time           `db:"scheduled_for"`
	Status              PayableStatus        `db:"status"`
	RejectionReason     *string              `db:"rejection_reason"`
	ApprovedAt          *time.Time           `db:"approved_at"`
	PaidAt              *time.Time           `db:"paid_at"`
	RejectedAt          *time.Time           `db:"rejected_at"`
	AuditFields
}

// ApprovalRecord is the DB representation of one approval history entry.
type ApprovalRecord struct {
	ApprovalID string    `db:"approval_id"`
	PayableID  string    `db:"payable_id"`
	ApproverID string    `db:"approver_id"`
	Level      string    `db:"level"`
	Action     string    `db:"action"`
	Notes      string    `db:"notes"`
	CreatedAt  time.Time `db:"created_at"`
}

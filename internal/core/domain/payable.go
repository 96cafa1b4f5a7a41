package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayableStatus is the lifecycle state of an accounts-payable record.
type PayableStatus string

const (
	PayableStatusPendingManagement PayableStatus = "PENDING_MANAGEMENT"
	PayableStatusPendingDirector   PayableStatus = "PENDING_DIRECTOR"
	PayableStatusPendingPresident  PayableStatus = "PENDING_PRESIDENT"
	PayableStatusApproved          PayableStatus = "APPROVED"
	PayableStatusPaid              PayableStatus = "PAID"
	PayableStatusRejected          PayableStatus = "REJECTED"
)

// ApprovalLevel is the authority tier required to advance a payable out of its
// current pending state.
type ApprovalLevel string

const (
	ApprovalLevelManagement ApprovalLevel = "MANAGEMENT"
	ApprovalLevelDirector   ApprovalLevel = "DIRECTOR"
	ApprovalLevelPresident  ApprovalLevel = "PRESIDENT"
)

// PaymentMethod enumerates how a payable is settled.
type PaymentMethod string

const (
	PaymentMethodPix      PaymentMethod = "PIX"
	PaymentMethodTransfer PaymentMethod = "TRANSFER"
	PaymentMethodBoleto   PaymentMethod = "BOLETO"
	PaymentMethodCash     PaymentMethod = "CASH"
	PaymentMethodCard     PaymentMethod = "CARD"
	PaymentMethodCheck    PaymentMethod = "CHECK"
)

// RecurrenceFrequency enumerates the supported repetition intervals for
// recurring payables.
type RecurrenceFrequency string

const (
	RecurrenceWeekly  RecurrenceFrequency = "WEEKLY"
	RecurrenceMonthly RecurrenceFrequency = "MONTHLY"
)

// Recurrence describes a repeating payable: frequency plus the anchor day and
// the next date an occurrence is due. Mutually exclusive with ScheduledFor on
// the payable itself.
type Recurrence struct {
	Frequency  RecurrenceFrequency `json:"frequency"`
	DayOfWeek  *int                `json:"dayOfWeek,omitempty"`  // 0=Sunday..6, required for WEEKLY
	DayOfMonth *int                `json:"dayOfMonth,omitempty"` // 1..31, required for MONTHLY
	NextDate   time.Time           `json:"nextDate"`
}

// Payable is an expense request requiring sequential approval before payment.
type Payable struct {
	PayableID      string          `json:"payableID"`
	CongregationID string          `json:"congregationID"`
	CategoryID     string          `json:"categoryID"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        time.Time       `json:"dueDate"`
	PaymentMethod  PaymentMethod   `json:"paymentMethod"`
	PayeeName      string          `json:"payeeName"`
	PixKey         string          `json:"pixKey,omitempty"`
	BankName       string          `json:"bankName,omitempty"`
	BankAgency     string          `json:"bankAgency,omitempty"`
	BankAccount    string          `json:"bankAccount,omitempty"`
	IsUrgent       bool            `json:"isUrgent"`
	UrgencyReason  string          `json:"urgencyReason,omitempty"`
	Recurrence     *Recurrence     `json:"recurrence,omitempty"`
	ScheduledFor   *time.Time      `json:"scheduledFor,omitempty"`
	Status         PayableStatus   `json:"status"`
	RejectionReason *string        `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time     `json:"approvedAt,omitempty"`
	PaidAt          *time.Time     `json:"paidAt,omitempty"`
	RejectedAt      *time.Time     `json:"rejectedAt,omitempty"`
	AuditFields
}

// ApprovalAction is the action recorded in a payable's approval history.
type ApprovalAction string

const (
	ApprovalActionApproved ApprovalAction = "APPROVED"
	ApprovalActionRejected ApprovalAction = "REJECTED"
)

// ApprovalRecord is one append-only history entry per transition at each
// approval stage. Never mutated or deleted.
type ApprovalRecord struct {
	ApprovalID string         `json:"approvalID"`
	PayableID  string         `json:"payableID"`
	ApproverID string         `json:"approverID"`
	Level      ApprovalLevel  `json:"level"`
	Action     ApprovalAction `json:"action"`
	Notes      string         `json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// ApprovalLevelFor returns the authority tier that may act on a payable in the
// given status. The second return is false for any non-pending status, in
// which case approve/reject are unavailable.
func ApprovalLevelFor(status PayableStatus) (ApprovalLevel, bool) {
	switch status {
	case PayableStatusPendingManagement:
		return ApprovalLevelManagement, true
	case PayableStatusPendingDirector:
		return ApprovalLevelDirector, true
	case PayableStatusPendingPresident:
		return ApprovalLevelPresident, true
	default:
		return "", false
	}
}

// NextPayableStatus returns the status an approval advances the payable to.
// Only pending statuses have a successor.
func NextPayableStatus(status PayableStatus) (PayableStatus, bool) {
	switch status {
	case PayableStatusPendingManagement:
		return PayableStatusPendingDirector, true
	case PayableStatusPendingDirector:
		return PayableStatusPendingPresident, true
	case PayableStatusPendingPresident:
		return PayableStatusApproved, true
	default:
		return "", false
	}
}

// PayableStatusRank orders the forward progression of statuses. REJECTED is
// terminal and sits outside the order (rank -1).
func PayableStatusRank(status PayableStatus) int {
	switch status {
	case PayableStatusPendingManagement:
		return 0
	case PayableStatusPendingDirector:
		return 1
	case PayableStatusPendingPresident:
		return 2
	case PayableStatusApproved:
		return 3
	case PayableStatusPaid:
		return 4
	default:
		return -1
	}
}

// IsPending reports whether the payable still awaits an approval decision.
func (s PayableStatus) IsPending() bool {
	_, ok := ApprovalLevelFor(s)
	return ok
}

// PayableStatusesForFilter resolves a list-filter token to the statuses it
// covers. A token is either an exact status or one of the screen buckets:
// NEW (awaiting the first approval), PENDING (any pending stage), AUTHORIZE
// (awaiting the final approval). The second return is false for an unknown
// token.
func PayableStatusesForFilter(token string) ([]PayableStatus, bool) {
	switch token {
	case "NEW":
		return []PayableStatus{PayableStatusPendingManagement}, true
	case "PENDING":
		return []PayableStatus{
			PayableStatusPendingManagement,
			PayableStatusPendingDirector,
			PayableStatusPendingPresident,
		}, true
	case "AUTHORIZE":
		return []PayableStatus{PayableStatusPendingPresident}, true
	}
	status := PayableStatus(token)
	if PayableStatusRank(status) >= 0 || status == PayableStatusRejected {
		return []PayableStatus{status}, true
	}
	return nil, false
}

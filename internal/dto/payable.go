package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePayableRequest defines the data needed to create a new payable.
// Banking fields are conditionally required depending on payment method;
// the service validates the cross-field rules.
type CreatePayableRequest struct {
	CongregationID string               `json:"congregationID" binding:"required"`
	CategoryID     string               `json:"categoryID" binding:"required"`
	Description    string               `json:"description" binding:"required"`
	Amount         decimal.Decimal      `json:"amount" binding:"required"`
	DueDate        time.Time            `json:"dueDate" binding:"required"`
	PaymentMethod  domain.PaymentMethod `json:"paymentMethod" binding:"required,oneof=PIX TRANSFER BOLETO CASH CARD CHECK"`
	PayeeName      string               `json:"payeeName" binding:"required"`
	PixKey         string               `json:"pixKey"`
	BankName       string               `json:"bankName"`
	BankAgency     string               `json:"bankAgency"`
	BankAccount    string               `json:"bankAccount"`
	IsUrgent       bool                 `json:"isUrgent"`
	UrgencyReason  string               `json:"urgencyReason"`

	// Recurrence descriptor, mutually exclusive with ScheduledFor.
	IsRecurring          bool                        `json:"isRecurring"`
	RecurrenceFrequency  *domain.RecurrenceFrequency `json:"recurrenceFrequency,omitempty"`
	RecurrenceDayOfWeek  *int                        `json:"recurrenceDayOfWeek,omitempty"`
	RecurrenceDayOfMonth *int                        `json:"recurrenceDayOfMonth,omitempty"`
	RecurrenceNextDate   *time.Time                  `json:"recurrenceNextDate,omitempty"`

	IsFutureScheduled bool       `json:"isFutureScheduled"`
	ScheduledFor      *time.Time `json:"scheduledFor,omitempty"`
}

// RejectPayableRequest carries the mandatory rejection reason.
type RejectPayableRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListPayablesParams defines query parameters for listing payables.
type ListPayablesParams struct {
	Status         string `form:"status"` // exact status or a bucket: NEW, PENDING, AUTHORIZE
	CongregationID string `form:"congregationID"`
	Limit          int    `form:"limit,default=20"`
	Offset         int    `form:"offset,default=0"`
}

// ApprovalRecordResponse is one approval history entry as rendered in the
// details view.
type ApprovalRecordResponse struct {
	ApprovalID string    `json:"approvalID"`
	ApproverID string    `json:"approverID"`
	Level      string    `json:"level"`
	Action     string    `json:"action"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PayableResponse defines the data returned for a payable.
type PayableResponse struct {
	PayableID       string               `json:"payableID"`
	CongregationID  string               `json:"congregationID"`
	CategoryID      string               `json:"categoryID"`
	Description     string               `json:"description"`
	Amount          decimal.Decimal      `json:"amount"`
	DueDate         time.Time            `json:"dueDate"`
	PaymentMethod   domain.PaymentMethod `json:"paymentMethod"`
	PayeeName       string               `json:"payeeName"`
	PixKey          string               `json:"pixKey,omitempty"`
	BankName        string               `json:"bankName,omitempty"`
	BankAgency      string               `json:"bankAgency,omitempty"`
	BankAccount     string               `json:"bankAccount,omitempty"`
	IsUrgent        bool                 `json:"isUrgent"`
	UrgencyReason   string               `json:"urgencyReason,omitempty"`
	Recurrence      *domain.Recurrence   `json:"recurrence,omitempty"`
	ScheduledFor    *time.Time           `json:"scheduledFor,omitempty"`
	Status          domain.PayableStatus `json:"status"`
	RejectionReason *string              `json:"rejectionReason,omitempty"`
	ApprovedAt      *time.Time           `json:"approvedAt,omitempty"`
	PaidAt          *time.Time           `json:"paidAt,omitempty"`
	RejectedAt      *time.Time           `json:"rejectedAt,omitempty"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
}

// PayableDetailResponse is a payable together with its approval history.
type PayableDetailResponse struct {
	Payable PayableResponse          `json:"payable"`
	History []ApprovalRecordResponse `json:"history"`
}

// ListPayablesResponse wraps the list of payables.
type ListPayablesResponse struct {
	Payables []PayableResponse `json:"payables"`
}

// ToPayableResponse converts a domain.Payable to PayableResponse DTO
func ToPayableResponse(p *domain.Payable) PayableResponse {
	return PayableResponse{
		PayableID:       p.PayableID,
		CongregationID:  p.CongregationID,
		CategoryID:      p.CategoryID,
		Description:     p.Description,
		Amount:          p.Amount,
		DueDate:         p.DueDate,
		PaymentMethod:   p.PaymentMethod,
		PayeeName:       p.PayeeName,
		PixKey:          p.PixKey,
		BankName:        p.BankName,
		BankAgency:      p.BankAgency,
		BankAccount:     p.BankAccount,
		IsUrgent:        p.IsUrgent,
		UrgencyReason:   p.UrgencyReason,
		Recurrence:      p.Recurrence,
		ScheduledFor:    p.ScheduledFor,
		Status:          p.Status,
		RejectionReason: p.RejectionReason,
		ApprovedAt:      p.ApprovedAt,
		PaidAt:          p.PaidAt,
		RejectedAt:      p.RejectedAt,
		CreatedAt:       p.CreatedAt,
		CreatedBy:       p.CreatedBy,
	}
}

// ToApprovalRecordResponse converts a domain.ApprovalRecord to its DTO
func ToApprovalRecordResponse(r domain.ApprovalRecord) ApprovalRecordResponse {
	return ApprovalRecordResponse{
		ApprovalID: r.ApprovalID,
		ApproverID: r.ApproverID,
		Level:      string(r.Level),
		Action:     string(r.Action),
		Notes:      r.Notes,
		CreatedAt:  r.CreatedAt,
	}
}

// ToListPayablesResponse converts domain payables to the list response
func ToListPayablesResponse(payables []domain.Payable) ListPayablesResponse {
	res := make([]PayableResponse, len(payables))
	for i := range payables {
		res[i] = ToPayableResponse(&payables[i])
	}
	return ListPayablesResponse{Payables: res}
}

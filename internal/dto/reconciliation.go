package dto

import (
	"time"

	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReconciliationRequest defines the data a pastor submits for a month.
// Status is accepted in the payload but ignored for every actor: the service
// forces PENDING on create regardless of what the client sends.
type CreateReconciliationRequest struct {
	CongregationID  string          `json:"congregationID"`
	Month           time.Time       `json:"month" binding:"required"`
	PixAmount       decimal.Decimal `json:"pixAmount"`
	OnlinePixAmount decimal.Decimal `json:"onlinePixAmount"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	CashAmount      decimal.Decimal `json:"cashAmount"`
	Status          string          `json:"status,omitempty"`
}

// UpdateReconciliationRequest rewrites the subtotals of a pending reconciliation.
type UpdateReconciliationRequest struct {
	PixAmount       decimal.Decimal `json:"pixAmount"`
	OnlinePixAmount decimal.Decimal `json:"onlinePixAmount"`
	DebitAmount     decimal.Decimal `json:"debitAmount"`
	CreditAmount    decimal.Decimal `json:"creditAmount"`
	CashAmount      decimal.Decimal `json:"cashAmount"`
}

// ReviewReconciliationRequest carries the admin's decision.
type ReviewReconciliationRequest struct {
	Status domain.ReconciliationStatus `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// ListReconciliationsParams defines query parameters for listing reconciliations.
type ListReconciliationsParams struct {
	CongregationID string `form:"congregationID"`
	Status         string `form:"status"`
	Month          string `form:"month"` // YYYY-MM
	Limit          int    `form:"limit,default=20"`
	Offset         int    `form:"offset,default=0"`
}

// ReconciliationResponse defines the data returned for a reconciliation.
type ReconciliationResponse struct {
	ReconciliationID string                      `json:"reconciliationID"`
	CongregationID   string                      `json:"congregationID"`
	Month            time.Time                   `json:"month"`
	PixAmount        decimal.Decimal             `json:"pixAmount"`
	OnlinePixAmount  decimal.Decimal             `json:"onlinePixAmount"`
	DebitAmount      decimal.Decimal             `json:"debitAmount"`
	CreditAmount     decimal.Decimal             `json:"creditAmount"`
	CashAmount       decimal.Decimal             `json:"cashAmount"`
	TotalIncome      decimal.Decimal             `json:"totalIncome"`
	AmountToSend     decimal.Decimal             `json:"amountToSend"`
	Status           domain.ReconciliationStatus `json:"status"`
	SenderID         string                      `json:"senderID"`
	ReviewerID       *string                     `json:"reviewerID,omitempty"`
	ReviewedAt       *time.Time                  `json:"reviewedAt,omitempty"`
	CreatedAt        time.Time                   `json:"createdAt"`
}

// ListReconciliationsResponse wraps the list of reconciliations.
type ListReconciliationsResponse struct {
	Reconciliations []ReconciliationResponse `json:"reconciliations"`
}

// ToReconciliationResponse converts a domain.Reconciliation to its DTO
func ToReconciliationResponse(r *domain.Reconciliation) ReconciliationResponse {
	return ReconciliationResponse{
		ReconciliationID: r.ReconciliationID,
		CongregationID:   r.CongregationID,
		Month:            r.Month,
		PixAmount:        r.PixAmount,
		OnlinePixAmount:  r.OnlinePixAmount,
		DebitAmount:      r.DebitAmount,
		CreditAmount:     r.CreditAmount,
		CashAmount:       r.CashAmount,
		TotalIncome:      r.TotalIncome,
		AmountToSend:     r.AmountToSend,
		Status:           r.Status,
		SenderID:         r.SenderID,
		ReviewerID:       r.ReviewerID,
		ReviewedAt:       r.ReviewedAt,
		CreatedAt:        r.CreatedAt,
	}
}

// ToListReconciliationsResponse converts domain reconciliations to the list response
func ToListReconciliationsResponse(rs []domain.Reconciliation) ListReconciliationsResponse {
	res := make([]ReconciliationResponse, len(rs))
	for i := range rs {
		res[i] = ToReconciliationResponse(&rs[i])
	}
	return ListReconciliationsResponse{Reconciliations: res}
}

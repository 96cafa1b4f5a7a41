package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelReconciliation converts a domain Reconciliation to a model Reconciliation
func ToModelReconciliation(d domain.Reconciliation) models.Reconciliation {
	return models.Reconciliation{
		ReconciliationID: d.ReconciliationID,
		CongregationID:   d.CongregationID,
		Month:            d.Month,
		PixAmount:        d.PixAmount,
		OnlinePixAmount:  d.OnlinePixAmount,
		DebitAmount:      d.DebitAmount,
		CreditAmount:     d.CreditAmount,
		CashAmount:       d.CashAmount,
		TotalIncome:      d.TotalIncome,
		AmountToSend:     d.AmountToSend,
		Status:           models.ReconciliationStatus(d.Status),
		SenderID:         d.SenderID,
		ReviewerID:       d.ReviewerID,
		ReviewedAt:       d.ReviewedAt,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainReconciliation converts a model Reconciliation to a domain Reconciliation
func ToDomainReconciliation(m models.Reconciliation) domain.Reconciliation {
	return domain.Reconciliation{
		ReconciliationID: m.ReconciliationID,
		CongregationID:   m.CongregationID,
		Month:            m.Month,
		PixAmount:        m.PixAmount,
		OnlinePixAmount:  m.OnlinePixAmount,
		DebitAmount:      m.DebitAmount,
		CreditAmount:     m.CreditAmount,
		CashAmount:       m.CashAmount,
		TotalIncome:      m.TotalIncome,
		AmountToSend:     m.AmountToSend,
		Status:           domain.ReconciliationStatus(m.Status),
		SenderID:         m.SenderID,
		ReviewerID:       m.ReviewerID,
		ReviewedAt:       m.ReviewedAt,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainReconciliationSlice converts model Reconciliations to domain form
func ToDomainReconciliationSlice(ms []models.Reconciliation) []domain.Reconciliation {
	ds := make([]domain.Reconciliation, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReconciliation(m)
	}
	return ds
}

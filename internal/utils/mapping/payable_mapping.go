package mapping

import (
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	"github.com/IgrejaViva/igreja_backend/internal/models"
)

// ToModelPayable converts a domain Payable to a model Payable, flattening the
// recurrence descriptor into nullable columns.
func ToModelPayable(d domain.Payable) models.Payable {
	m := models.Payable{
		PayableID:       d.PayableID,
		CongregationID:  d.CongregationID,
		CategoryID:      d.CategoryID,
		Description:     d.Description,
		Amount:          d.Amount,
		DueDate:         d.DueDate,
		PaymentMethod:   models.PaymentMethod(d.PaymentMethod),
		PayeeName:       d.PayeeName,
		PixKey:          d.PixKey,
		BankName:        d.BankName,
		BankAgency:      d.BankAgency,
		BankAccount:     d.BankAccount,
		IsUrgent:        d.IsUrgent,
		UrgencyReason:   d.UrgencyReason,
		ScheduledFor:    d.ScheduledFor,
		Status:          models.PayableStatus(d.Status),
		RejectionReason: d.RejectionReason,
		ApprovedAt:      d.ApprovedAt,
		PaidAt:          d.PaidAt,
		RejectedAt:      d.RejectedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.Recurrence != nil {
		freq := models.RecurrenceFrequency(d.Recurrence.Frequency)
		next := d.Recurrence.NextDate
		m.RecurrenceFrequency = &freq
		m.RecurrenceDayOfWeek = d.Recurrence.DayOfWeek
		m.RecurrenceDayOfMonth = d.Recurrence.DayOfMonth
		m.RecurrenceNextDate = &next
	}
	return m
}

// ToDomainPayable converts a model Payable to a domain Payable, rebuilding the
// recurrence descriptor when the recurrence columns are populated.
func ToDomainPayable(m models.Payable) domain.Payable {
	d := domain.Payable{
		PayableID:       m.PayableID,
		CongregationID:  m.CongregationID,
		CategoryID:      m.CategoryID,
		Description:     m.Description,
		Amount:          m.Amount,
		DueDate:         m.DueDate,
		PaymentMethod:   domain.PaymentMethod(m.PaymentMethod),
		PayeeName:       m.PayeeName,
		PixKey:          m.PixKey,
		BankName:        m.BankName,
		BankAgency:      m.BankAgency,
		BankAccount:     m.BankAccount,
		IsUrgent:        m.IsUrgent,
		UrgencyReason:   m.UrgencyReason,
		ScheduledFor:    m.ScheduledFor,
		Status:          domain.PayableStatus(m.Status),
		RejectionReason: m.RejectionReason,
		ApprovedAt:      m.ApprovedAt,
		PaidAt:          m.PaidAt,
		RejectedAt:      m.RejectedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.RecurrenceFrequency != nil && m.RecurrenceNextDate != nil {
		d.Recurrence = &domain.Recurrence{
			Frequency:  domain.RecurrenceFrequency(*m.RecurrenceFrequency),
			DayOfWeek:  m.RecurrenceDayOfWeek,
			DayOfMonth: m.RecurrenceDayOfMonth,
			NextDate:   *m.RecurrenceNextDate,
		}
	}
	return d
}

// ToDomainPayableSlice converts a slice of model Payables to domain Payables
func ToDomainPayableSlice(ms []models.Payable) []domain.Payable {
	ds := make([]domain.Payable, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayable(m)
	}
	return ds
}

// ToModelApprovalRecord converts a domain ApprovalRecord to its model
func ToModelApprovalRecord(d domain.ApprovalRecord) models.ApprovalRecord {
	return models.ApprovalRecord{
		ApprovalID: d.ApprovalID,
		PayableID:  d.PayableID,
		ApproverID: d.ApproverID,
		Level:      string(d.Level),
		Action:     string(d.Action),
		Notes:      d.Notes,
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainApprovalRecord converts a model ApprovalRecord to its domain form
func ToDomainApprovalRecord(m models.ApprovalRecord) domain.ApprovalRecord {
	return domain.ApprovalRecord{
		ApprovalID: m.ApprovalID,
		PayableID:  m.PayableID,
		ApproverID: m.ApproverID,
		Level:      domain.ApprovalLevel(m.Level),
		Action:     domain.ApprovalAction(m.Action),
		Notes:      m.Notes,
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainApprovalRecordSlice converts model ApprovalRecords to domain form
func ToDomainApprovalRecordSlice(ms []models.ApprovalRecord) []domain.ApprovalRecord {
	ds := make([]domain.ApprovalRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainApprovalRecord(m)
	}
	return ds
}

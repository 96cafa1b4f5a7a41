package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	"github.com/IgrejaViva/igreja_backend/internal/models"
	"github.com/IgrejaViva/igreja_backend/internal/utils/mapping"
)

const payableColumns = `payable_id, congregation_id, category_id, description, amount, due_date,
		payment_method, payee_name, pix_key, bank_name, bank_agency, bank_account,
		is_urgent, urgency_reason, recurrence_frequency, recurrence_day_of_week,
		recurrence_day_of_month, recurrence_next_date, scheduled_for, status,
		rejection_reason, approved_at, paid_at, rejected_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxPayableRepository struct {
	BaseRepository
}

func newPgxPayableRepository(db *pgxpool.Pool) portsrepo.PayableRepositoryFacade {
	return &PgxPayableRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.PayableRepositoryFacade = (*PgxPayableRepository)(nil)

func scanPayable(row pgx.Row) (models.Payable, error) {
	var m models.Payable
	err := row.Scan(
		&m.PayableID,
		&m.CongregationID,
		&m.CategoryID,
		&m.Description,
		&m.Amount,
		&m.DueDate,
		&m.PaymentMethod,
		&m.PayeeName,
		&m.PixKey,
		&m.BankName,
		&m.BankAgency,
		&m.BankAccount,
		&m.IsUrgent,
		&m.UrgencyReason,
		&m.RecurrenceFrequency,
		&m.RecurrenceDayOfWeek,
		&m.RecurrenceDayOfMonth,
		&m.RecurrenceNextDate,
		&m.ScheduledFor,
		&m.Status,
		&m.RejectionReason,
		&m.ApprovedAt,
		&m.PaidAt,
		&m.RejectedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) error {
	m := mapping.ToModelPayable(payable)
	query := `
		INSERT INTO payables (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PayableID, m.CongregationID, m.CategoryID, m.Description, m.Amount, m.DueDate,
		m.PaymentMethod, m.PayeeName, m.PixKey, m.BankName, m.BankAgency, m.BankAccount,
		m.IsUrgent, m.UrgencyReason, m.RecurrenceFrequency, m.RecurrenceDayOfWeek,
		m.RecurrenceDayOfMonth, m.RecurrenceNextDate, m.ScheduledFor, m.Status,
		m.RejectionReason, m.ApprovedAt, m.PaidAt, m.RejectedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save payable: %w", err)
	}
	return nil
}

func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables WHERE payable_id = $1;`
	m, err := scanPayable(r.Pool.QueryRow(ctx, query, payableID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable by ID %s: %w", payableID, err)
	}
	d := mapping.ToDomainPayable(m)
	return &d, nil
}

func (r *PgxPayableRepository) ListPayables(ctx context.Context, filter portsrepo.PayableListFilter) ([]domain.Payable, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var conditions []string
	var args []interface{}
	argPos := 1

	if len(filter.CongregationIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("congregation_id = ANY($%d)", argPos))
		args = append(args, filter.CongregationIDs)
		argPos++
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", argPos))
		args = append(args, statuses)
		argPos++
	}

	query := `SELECT ` + payableColumns + ` FROM payables`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY due_date DESC, payable_id LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payables: %w", err)
	}
	defer rows.Close()

	var ms []models.Payable
	for rows.Next() {
		m, err := scanPayable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", err)
	}
	return mapping.ToDomainPayableSlice(ms), nil
}

func (r *PgxPayableRepository) ListApprovalRecords(ctx context.Context, payableID string) ([]domain.ApprovalRecord, error) {
	query := `
		SELECT approval_id, payable_id, approver_id, level, action, notes, created_at
		FROM payable_approvals
		WHERE payable_id = $1
		ORDER BY created_at, approval_id;
	`
	rows, err := r.Pool.Query(ctx, query, payableID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approval records: %w", err)
	}
	defer rows.Close()

	var ms []models.ApprovalRecord
	for rows.Next() {
		var m models.ApprovalRecord
		if err := rows.Scan(&m.ApprovalID, &m.PayableID, &m.ApproverID, &m.Level, &m.Action, &m.Notes, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan approval record row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approval record rows: %w", err)
	}
	return mapping.ToDomainApprovalRecordSlice(ms), nil
}

// AdvancePayable applies a guarded status UPDATE and appends the approval
// record in one transaction. The WHERE clause carries the expected current
// status: if another actor transitioned the row first, zero rows match and the
// caller gets ErrConflict.
func (r *PgxPayableRepository) AdvancePayable(ctx context.Context, payableID string, from, to domain.PayableStatus, record domain.ApprovalRecord, approvedAt *time.Time, actorID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payables
		SET status = $1, approved_at = COALESCE($2, approved_at), last_updated_at = $3, last_updated_by = $4
		WHERE payable_id = $5 AND status = $6;
	`
	tag, err := tx.Exec(ctx, query, string(to), approvedAt, now, actorID, payableID, string(from))
	if err != nil {
		return fmt.Errorf("failed to advance payable %s: %w", payableID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.transitionConflict(ctx, tx, payableID)
	}

	if err := insertApprovalRecord(ctx, tx, record); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// RejectPayable moves a pending payable to REJECTED with the same guarded
// UPDATE discipline as AdvancePayable.
func (r *PgxPayableRepository) RejectPayable(ctx context.Context, payableID string, from domain.PayableStatus, record domain.ApprovalRecord, reason string, actorID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `
		UPDATE payables
		SET status = $1, rejection_reason = $2, rejected_at = $3, last_updated_at = $3, last_updated_by = $4
		WHERE payable_id = $5 AND status = $6;
	`
	tag, err := tx.Exec(ctx, query, string(domain.PayableStatusRejected), reason, now, actorID, payableID, string(from))
	if err != nil {
		return fmt.Errorf("failed to reject payable %s: %w", payableID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.transitionConflict(ctx, tx, payableID)
	}

	if err := insertApprovalRecord(ctx, tx, record); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxPayableRepository) MarkPayablePaid(ctx context.Context, payableID string, actorID string, now time.Time) error {
	query := `
		UPDATE payables
		SET status = $1, paid_at = $2, last_updated_at = $2, last_updated_by = $3
		WHERE payable_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, string(domain.PayableStatusPaid), now, actorID, payableID, string(domain.PayableStatusApproved))
	if err != nil {
		return fmt.Errorf("failed to mark payable %s paid: %w", payableID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payables WHERE payable_id = $1)`, payableID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check payable %s: %w", payableID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		return apperrors.ErrConflict
	}
	return nil
}

// transitionConflict distinguishes a missing payable from a lost race after a
// guarded UPDATE touched zero rows.
func (r *PgxPayableRepository) transitionConflict(ctx context.Context, tx pgx.Tx, payableID string) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM payables WHERE payable_id = $1)`, payableID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check payable %s: %w", payableID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

func insertApprovalRecord(ctx context.Context, tx pgx.Tx, record domain.ApprovalRecord) error {
	m := mapping.ToModelApprovalRecord(record)
	query := `
		INSERT INTO payable_approvals (approval_id, payable_id, approver_id, level, action, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, query, m.ApprovalID, m.PayableID, m.ApproverID, m.Level, m.Action, m.Notes, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert approval record: %w", err)
	}
	return nil
}

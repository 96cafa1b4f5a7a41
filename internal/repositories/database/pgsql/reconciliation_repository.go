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

const reconciliationColumns = `reconciliation_id, congregation_id, month, pix_amount, online_pix_amount,
		debit_amount, credit_amount, cash_amount, total_income, amount_to_send,
		status, sender_id, reviewer_id, reviewed_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxReconciliationRepository struct {
	BaseRepository
}

func newPgxReconciliationRepository(db *pgxpool.Pool) portsrepo.ReconciliationRepositoryFacade {
	return &PgxReconciliationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ReconciliationRepositoryFacade = (*PgxReconciliationRepository)(nil)

func scanReconciliation(row pgx.Row) (models.Reconciliation, error) {
	var m models.Reconciliation
	err := row.Scan(
		&m.ReconciliationID,
		&m.CongregationID,
		&m.Month,
		&m.PixAmount,
		&m.OnlinePixAmount,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.CashAmount,
		&m.TotalIncome,
		&m.AmountToSend,
		&m.Status,
		&m.SenderID,
		&m.ReviewerID,
		&m.ReviewedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxReconciliationRepository) SaveReconciliation(ctx context.Context, reconciliation domain.Reconciliation) error {
	m := mapping.ToModelReconciliation(reconciliation)
	query := `
		INSERT INTO reconciliations (` + reconciliationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ReconciliationID, m.CongregationID, m.Month, m.PixAmount, m.OnlinePixAmount,
		m.DebitAmount, m.CreditAmount, m.CashAmount, m.TotalIncome, m.AmountToSend,
		m.Status, m.SenderID, m.ReviewerID, m.ReviewedAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save reconciliation: %w", err)
	}
	return nil
}

func (r *PgxReconciliationRepository) FindReconciliationByID(ctx context.Context, reconciliationID string) (*domain.Reconciliation, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE reconciliation_id = $1;`
	m, err := scanReconciliation(r.Pool.QueryRow(ctx, query, reconciliationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find reconciliation by ID %s: %w", reconciliationID, err)
	}
	d := mapping.ToDomainReconciliation(m)
	return &d, nil
}

func (r *PgxReconciliationRepository) ListReconciliations(ctx context.Context, filter portsrepo.ReconciliationListFilter) ([]domain.Reconciliation, error) {
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
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, string(*filter.Status))
		argPos++
	}
	if filter.Month != nil {
		conditions = append(conditions, fmt.Sprintf("month = $%d", argPos))
		args = append(args, *filter.Month)
		argPos++
	}

	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY month DESC, congregation_id LIMIT $%d OFFSET $%d;", argPos, argPos+1)
	args = append(args, limit, offset)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reconciliations: %w", err)
	}
	defer rows.Close()

	var ms []models.Reconciliation
	for rows.Next() {
		m, err := scanReconciliation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reconciliation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reconciliation rows: %w", err)
	}
	return mapping.ToDomainReconciliationSlice(ms), nil
}

// UpdateReconciliationAmounts rewrites the subtotals and derived totals of a
// still-pending reconciliation. The status precondition in the WHERE clause
// makes the edit lose against a concurrent review.
func (r *PgxReconciliationRepository) UpdateReconciliationAmounts(ctx context.Context, reconciliation domain.Reconciliation) error {
	m := mapping.ToModelReconciliation(reconciliation)
	query := `
		UPDATE reconciliations
		SET pix_amount = $1, online_pix_amount = $2, debit_amount = $3, credit_amount = $4,
			cash_amount = $5, total_income = $6, amount_to_send = $7,
			last_updated_at = $8, last_updated_by = $9
		WHERE reconciliation_id = $10 AND status = $11;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PixAmount, m.OnlinePixAmount, m.DebitAmount, m.CreditAmount,
		m.CashAmount, m.TotalIncome, m.AmountToSend,
		m.LastUpdatedAt, m.LastUpdatedBy,
		m.ReconciliationID, string(domain.ReconciliationStatusPending),
	)
	if err != nil {
		return fmt.Errorf("failed to update reconciliation %s: %w", m.ReconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.reviewConflict(ctx, m.ReconciliationID)
	}
	return nil
}

// ReviewReconciliation moves a pending reconciliation to its final state.
func (r *PgxReconciliationRepository) ReviewReconciliation(ctx context.Context, reconciliationID string, to domain.ReconciliationStatus, reviewerID string, now time.Time) error {
	query := `
		UPDATE reconciliations
		SET status = $1, reviewer_id = $2, reviewed_at = $3, last_updated_at = $3, last_updated_by = $2
		WHERE reconciliation_id = $4 AND status = $5;
	`
	tag, err := r.Pool.Exec(ctx, query, string(to), reviewerID, now, reconciliationID, string(domain.ReconciliationStatusPending))
	if err != nil {
		return fmt.Errorf("failed to review reconciliation %s: %w", reconciliationID, err)
	}
	if tag.RowsAffected() == 0 {
		return r.reviewConflict(ctx, reconciliationID)
	}
	return nil
}

func (r *PgxReconciliationRepository) reviewConflict(ctx context.Context, reconciliationID string) error {
	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM reconciliations WHERE reconciliation_id = $1)`, reconciliationID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check reconciliation %s: %w", reconciliationID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrConflict
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	"github.com/IgrejaViva/igreja_backend/internal/models"
	"github.com/IgrejaViva/igreja_backend/internal/utils/mapping"
)

const congregationColumns = `congregation_id, name, city, address, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxCongregationRepository struct {
	BaseRepository
}

func newPgxCongregationRepository(db *pgxpool.Pool) portsrepo.CongregationRepositoryFacade {
	return &PgxCongregationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.CongregationRepositoryFacade = (*PgxCongregationRepository)(nil)

func scanCongregation(row pgx.Row) (models.Congregation, error) {
	var m models.Congregation
	err := row.Scan(
		&m.CongregationID,
		&m.Name,
		&m.City,
		&m.Address,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxCongregationRepository) SaveCongregation(ctx context.Context, congregation domain.Congregation) error {
	m := mapping.ToModelCongregation(congregation)
	query := `
		INSERT INTO congregations (` + congregationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CongregationID, m.Name, m.City, m.Address, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save congregation: %w", err)
	}
	return nil
}

func (r *PgxCongregationRepository) FindCongregationByID(ctx context.Context, congregationID string) (*domain.Congregation, error) {
	query := `SELECT ` + congregationColumns + ` FROM congregations WHERE congregation_id = $1;`
	m, err := scanCongregation(r.Pool.QueryRow(ctx, query, congregationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find congregation by ID %s: %w", congregationID, err)
	}
	d := mapping.ToDomainCongregation(m)
	return &d, nil
}

func (r *PgxCongregationRepository) ListCongregations(ctx context.Context, limit, offset int) ([]domain.Congregation, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + congregationColumns + `
		FROM congregations
		WHERE is_active = TRUE
		ORDER BY name, congregation_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list congregations: %w", err)
	}
	defer rows.Close()

	var ms []models.Congregation
	for rows.Next() {
		m, err := scanCongregation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan congregation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating congregation rows: %w", err)
	}
	return mapping.ToDomainCongregationSlice(ms), nil
}

func (r *PgxCongregationRepository) ListCongregationIDsByUserID(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT congregation_id FROM user_congregations WHERE user_id = $1 ORDER BY congregation_id;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list congregation assignments for user %s: %w", userID, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan congregation assignment row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating congregation assignment rows: %w", err)
	}
	return ids, nil
}

func (r *PgxCongregationRepository) UpdateCongregation(ctx context.Context, congregation domain.Congregation) error {
	m := mapping.ToModelCongregation(congregation)
	query := `
		UPDATE congregations
		SET name = $1, city = $2, address = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6
		WHERE congregation_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.City, m.Address, m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy, m.CongregationID,
	)
	if err != nil {
		return fmt.Errorf("failed to update congregation %s: %w", m.CongregationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCongregationRepository) AssignUserToCongregation(ctx context.Context, assignment domain.UserCongregation) error {
	query := `
		INSERT INTO user_congregations (user_id, congregation_id, assigned_at)
		VALUES ($1, $2, $3);
	`
	_, err := r.Pool.Exec(ctx, query, assignment.UserID, assignment.CongregationID, assignment.AssignedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to assign user to congregation: %w", err)
	}
	return nil
}

func (r *PgxCongregationRepository) RemoveUserFromCongregation(ctx context.Context, userID, congregationID string) error {
	query := `DELETE FROM user_congregations WHERE user_id = $1 AND congregation_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, userID, congregationID)
	if err != nil {
		return fmt.Errorf("failed to remove user from congregation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

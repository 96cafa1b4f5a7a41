package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IgrejaViva/igreja_backend/internal/apperrors"
	"github.com/IgrejaViva/igreja_backend/internal/core/domain"
	portsrepo "github.com/IgrejaViva/igreja_backend/internal/core/ports/repositories"
	"github.com/IgrejaViva/igreja_backend/internal/models"
	"github.com/IgrejaViva/igreja_backend/internal/utils/mapping"
)

const memberColumns = `member_id, congregation_id, name, email, phone, birth_date, baptism_date, is_active,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxMemberRepository struct {
	BaseRepository
}

func newPgxMemberRepository(db *pgxpool.Pool) portsrepo.MemberRepositoryFacade {
	return &PgxMemberRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.MemberRepositoryFacade = (*PgxMemberRepository)(nil)

func scanMember(row pgx.Row) (models.Member, error) {
	var m models.Member
	err := row.Scan(
		&m.MemberID,
		&m.CongregationID,
		&m.Name,
		&m.Email,
		&m.Phone,
		&m.BirthDate,
		&m.BaptismDate,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxMemberRepository) SaveMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		INSERT INTO members (` + memberColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.MemberID, m.CongregationID, m.Name, m.Email, m.Phone, m.BirthDate, m.BaptismDate, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}
	return nil
}

func (r *PgxMemberRepository) FindMemberByID(ctx context.Context, memberID string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE member_id = $1;`
	m, err := scanMember(r.Pool.QueryRow(ctx, query, memberID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find member by ID %s: %w", memberID, err)
	}
	d := mapping.ToDomainMember(m)
	return &d, nil
}

func (r *PgxMemberRepository) ListMembers(ctx context.Context, congregationID string, limit, offset int) ([]domain.Member, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + memberColumns + `
		FROM members
		WHERE congregation_id = $1 AND is_active = TRUE
		ORDER BY name, member_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, congregationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var ms []models.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}
	return mapping.ToDomainMemberSlice(ms), nil
}

func (r *PgxMemberRepository) UpdateMember(ctx context.Context, member domain.Member) error {
	m := mapping.ToModelMember(member)
	query := `
		UPDATE members
		SET name = $1, email = $2, phone = $3, birth_date = $4, baptism_date = $5, is_active = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE member_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Name, m.Email, m.Phone, m.BirthDate, m.BaptismDate, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.MemberID,
	)
	if err != nil {
		return fmt.Errorf("failed to update member %s: %w", m.MemberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxMemberRepository) DeactivateMember(ctx context.Context, memberID string, userID string, now time.Time) error {
	query := `
		UPDATE members
		SET is_active = FALSE, last_updated_at = $1, last_updated_by = $2
		WHERE member_id = $3;
	`
	tag, err := r.Pool.Exec(ctx, query, now, userID, memberID)
	if err != nil {
		return fmt.Errorf("failed to deactivate member %s: %w", memberID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

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

const eventColumns = `event_id, congregation_id, title, description, location, starts_at, ends_at, visibility,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxEventRepository struct {
	BaseRepository
}

func newPgxEventRepository(db *pgxpool.Pool) portsrepo.EventRepositoryFacade {
	return &PgxEventRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.EventRepositoryFacade = (*PgxEventRepository)(nil)

func scanEvent(row pgx.Row) (models.Event, error) {
	var m models.Event
	err := row.Scan(
		&m.EventID,
		&m.CongregationID,
		&m.Title,
		&m.Description,
		&m.Location,
		&m.StartsAt,
		&m.EndsAt,
		&m.Visibility,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxEventRepository) SaveEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EventID, m.CongregationID, m.Title, m.Description, m.Location, m.StartsAt, m.EndsAt, m.Visibility,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}
	return nil
}

func (r *PgxEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE event_id = $1;`
	m, err := scanEvent(r.Pool.QueryRow(ctx, query, eventID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find event by ID %s: %w", eventID, err)
	}
	d := mapping.ToDomainEvent(m)
	return &d, nil
}

func (r *PgxEventRepository) ListEvents(ctx context.Context, congregationID string, limit, offset int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE congregation_id = $1
		ORDER BY starts_at DESC, event_id
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, congregationID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var ms []models.Event
	for rows.Next() {
		m, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}
	return mapping.ToDomainEventSlice(ms), nil
}

func (r *PgxEventRepository) UpdateEvent(ctx context.Context, event domain.Event) error {
	m := mapping.ToModelEvent(event)
	query := `
		UPDATE events
		SET title = $1, description = $2, location = $3, starts_at = $4, ends_at = $5, visibility = $6,
			last_updated_at = $7, last_updated_by = $8
		WHERE event_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Description, m.Location, m.StartsAt, m.EndsAt, m.Visibility,
		m.LastUpdatedAt, m.LastUpdatedBy, m.EventID,
	)
	if err != nil {
		return fmt.Errorf("failed to update event %s: %w", m.EventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEventRepository) DeleteEvent(ctx context.Context, eventID string) error {
	query := `DELETE FROM events WHERE event_id = $1;`
	tag, err := r.Pool.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event %s: %w", eventID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

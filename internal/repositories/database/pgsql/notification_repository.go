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

const notificationColumns = `notification_id, title, body, recipient_id, target_role, congregation_id, read_at,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxNotificationRepository struct {
	BaseRepository
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.NotificationID,
		&m.Title,
		&m.Body,
		&m.RecipientID,
		&m.TargetRole,
		&m.CongregationID,
		&m.ReadAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := mapping.ToModelNotification(notification)
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.NotificationID, m.Title, m.Body, m.RecipientID, m.TargetRole, m.CongregationID, m.ReadAt,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationByID(ctx context.Context, notificationID string) (*domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE notification_id = $1;`
	m, err := scanNotification(r.Pool.QueryRow(ctx, query, notificationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find notification by ID %s: %w", notificationID, err)
	}
	d := mapping.ToDomainNotification(m)
	return &d, nil
}

// ListNotificationsForUser returns direct notifications plus role broadcasts
// scoped to the user's congregations (or unscoped broadcasts).
func (r *PgxNotificationRepository) ListNotificationsForUser(ctx context.Context, userID string, role domain.UserRole, congregationIDs []string, limit, offset int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE recipient_id = $1
			OR (target_role = $2 AND (congregation_id IS NULL OR congregation_id = ANY($3)))
		ORDER BY created_at DESC, notification_id
		LIMIT $4 OFFSET $5;
	`
	rows, err := r.Pool.Query(ctx, query, userID, string(role), congregationIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var ms []models.Notification
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string, now time.Time) error {
	query := `
		UPDATE notifications
		SET read_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE notification_id = $3 AND recipient_id = $2 AND read_at IS NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, now, userID, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM notifications WHERE notification_id = $1)`, notificationID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check notification %s: %w", notificationID, err)
		}
		if !exists {
			return apperrors.ErrNotFound
		}
		// Already read; marking again is a no-op.
	}
	return nil
}

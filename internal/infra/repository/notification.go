package repository

import (
	"context"
	"time"

	"savoria-api/internal/infra"
	"savoria-api/internal/infra/db"
	"savoria-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues an outbox row inside the caller's transaction so the
// job commits or rolls back with the order it describes.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (id, kind, topic, payload, status, run_at)
		VALUES ($1, $2, $3, $4, 'pending', $5)`,
		uuid.New(), kind, topic, payload, pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

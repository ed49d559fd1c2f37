package commands

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"savoria-api/internal/domain/order"
	"savoria-api/internal/infra/db"
)

// TxBeginner is the slice of *pgxpool.Pool the command side needs to open
// a transaction.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Write-side records prevent dependency on read-side query types.

type IdempotencyRecord struct {
	Key           uuid.UUID
	CustomerID    uuid.UUID
	Status        string
	RequestHash   string
	ResultOrderID *uuid.UUID
	ExpiresAt     time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, customerID uuid.UUID, totals order.Totals, placedAt time.Time) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key for this request. It reports true when the
	// key was fresh (or expired and reclaimed) and the caller owns it.
	TryInsert(ctx context.Context, key uuid.UUID, customerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID, customerID uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, customerID uuid.UUID, responseBodyHash string, resultOrderID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

package repository

import (
	"context"
	"time"

	"savoria-api/internal/infra"
	"savoria-api/internal/infra/db"
	"savoria-api/internal/pkg/pgconv"
	"savoria-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdempotencyRepository struct {
	pool *pgxpool.Pool
}

func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{pool: pool}
}

// TryInsert claims the key: a fresh key is inserted, an expired one is
// reclaimed for this request. Returns true when the caller now owns the
// key and should process the order; false means a live record exists and
// Get decides what it means.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, customerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO idempotency_keys (key, customer_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key, customer_id) DO UPDATE
		SET endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    response_body_hash = NULL,
		    result_order_id = NULL,
		    expires_at = EXCLUDED.expires_at
		WHERE idempotency_keys.expires_at < now()`,
		key, customerID, endpoint, requestHash, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, customerID uuid.UUID) (*commands.IdempotencyRecord, error) {
	var (
		record        commands.IdempotencyRecord
		resultOrderID pgtype.UUID
		expiresAt     pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT key, customer_id, status, request_hash, result_order_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND customer_id = $2`, key, customerID).
		Scan(&record.Key, &record.CustomerID, &record.Status, &record.RequestHash, &resultOrderID, &expiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record.ResultOrderID = pgconv.UUIDPtrFromPgtype(resultOrderID)
	record.ExpiresAt = pgconv.TimeFromPgtype(expiresAt)

	// Expired keys behave as if never seen.
	if time.Now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return &record, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, customerID uuid.UUID, responseBodyHash string, resultOrderID uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', response_body_hash = $3, result_order_id = $4
		WHERE key = $1 AND customer_id = $2`,
		key, customerID, responseBodyHash, resultOrderID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM idempotency_keys WHERE expires_at < now()`)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}

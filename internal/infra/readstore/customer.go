package readstore

import (
	"context"

	"savoria-api/internal/domain/offer"
	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerReadStore struct {
	pool *pgxpool.Pool
}

func NewCustomerReadStore(pool *pgxpool.Pool) *CustomerReadStore {
	return &CustomerReadStore{pool: pool}
}

func (r *CustomerReadStore) FindProfile(ctx context.Context, id uuid.UUID) (*offer.Profile, error) {
	var (
		dateOfBirth     pgtype.Date
		anniversaryDate pgtype.Date
	)
	err := r.pool.QueryRow(ctx,
		`SELECT date_of_birth, anniversary_date FROM customers WHERE id = $1`, id).
		Scan(&dateOfBirth, &anniversaryDate)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer profile", err)
	}

	return &offer.Profile{
		DateOfBirth:     pgconv.DatePtrFromPgtype(dateOfBirth),
		AnniversaryDate: pgconv.DatePtrFromPgtype(anniversaryDate),
	}, nil
}

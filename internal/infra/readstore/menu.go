package readstore

import (
	"context"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MenuReadStore struct {
	pool *pgxpool.Pool
}

func NewMenuReadStore(pool *pgxpool.Pool) *MenuReadStore {
	return &MenuReadStore{pool: pool}
}

const menuItemColumns = `id, name, price, category_id, available`

func (r *MenuReadStore) List(ctx context.Context) ([]catalog.Item, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, scanErr := scanMenuItem(rows.Scan)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", scanErr)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}
	return items, nil
}

func (r *MenuReadStore) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = $1`, id)

	item, err := scanMenuItem(row.Scan)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}
	return &item, nil
}

func (r *MenuReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+menuItemColumns+` FROM menu_items WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find menu items by IDs", err)
	}
	defer rows.Close()

	var items []catalog.Item
	for rows.Next() {
		item, scanErr := scanMenuItem(rows.Scan)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item", scanErr)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read menu items", err)
	}
	return items, nil
}

func scanMenuItem(scan func(dest ...any) error) (catalog.Item, error) {
	var (
		id         uuid.UUID
		name       string
		price      pgtype.Numeric
		categoryID pgtype.UUID
		available  bool
	)
	if err := scan(&id, &name, &price, &categoryID, &available); err != nil {
		return catalog.Item{}, err
	}

	priceDec, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return catalog.Item{}, err
	}

	return catalog.Item{
		ID:         id,
		Name:       name,
		Price:      priceDec,
		CategoryID: pgconv.UUIDPtrFromPgtype(categoryID),
		Available:  available,
	}, nil
}

package readstore

import (
	"context"

	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/pgconv"
	"savoria-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderReadStore struct {
	pool *pgxpool.Pool
}

func NewOrderReadStore(pool *pgxpool.Pool) *OrderReadStore {
	return &OrderReadStore{pool: pool}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	var (
		view          queries.OrderView
		subtotal      pgtype.Numeric
		totalDiscount pgtype.Numeric
		grandTotal    pgtype.Numeric
		createdAt     pgtype.Timestamptz
		updatedAt     pgtype.Timestamptz
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_id, status, subtotal, total_discount, grand_total, created_at, updated_at
		FROM orders
		WHERE id = $1`, id).
		Scan(&view.ID, &view.CustomerID, &view.Status, &subtotal, &totalDiscount, &grandTotal, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	if view.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
		return nil, infra.WrapRepoErr("failed to convert order subtotal", err)
	}
	if view.TotalDiscount, err = pgconv.DecimalFromNumeric(totalDiscount); err != nil {
		return nil, infra.WrapRepoErr("failed to convert order discount", err)
	}
	if view.GrandTotal, err = pgconv.DecimalFromNumeric(grandTotal); err != nil {
		return nil, infra.WrapRepoErr("failed to convert order total", err)
	}
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)

	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = items

	return &view, nil
}

func (r *OrderReadStore) findItems(ctx context.Context, orderID uuid.UUID) ([]queries.OrderItemView, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT oi.menu_item_id, mi.name, oi.quantity, oi.unit_price,
		       oi.subtotal, oi.discount, oi.total, oi.applied_offer_id
		FROM order_items oi
		JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = $1
		ORDER BY oi.position`, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []queries.OrderItemView
	for rows.Next() {
		var (
			item           queries.OrderItemView
			unitPrice      pgtype.Numeric
			subtotal       pgtype.Numeric
			discount       pgtype.Numeric
			total          pgtype.Numeric
			appliedOfferID pgtype.UUID
		)
		if err := rows.Scan(&item.MenuItemID, &item.MenuItemName, &item.Quantity,
			&unitPrice, &subtotal, &discount, &total, &appliedOfferID); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}

		if item.UnitPrice, err = pgconv.DecimalFromNumeric(unitPrice); err != nil {
			return nil, infra.WrapRepoErr("failed to convert item unit price", err)
		}
		if item.Subtotal, err = pgconv.DecimalFromNumeric(subtotal); err != nil {
			return nil, infra.WrapRepoErr("failed to convert item subtotal", err)
		}
		if item.Discount, err = pgconv.DecimalFromNumeric(discount); err != nil {
			return nil, infra.WrapRepoErr("failed to convert item discount", err)
		}
		if item.Total, err = pgconv.DecimalFromNumeric(total); err != nil {
			return nil, infra.WrapRepoErr("failed to convert item total", err)
		}
		item.AppliedOfferID = pgconv.UUIDPtrFromPgtype(appliedOfferID)

		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	return items, nil
}

func (r *OrderReadStore) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.OrderListItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, status, grand_total, created_at
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customer orders", err)
	}
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var (
			item       queries.OrderListItem
			grandTotal pgtype.Numeric
			createdAt  pgtype.Timestamptz
		)
		if err := rows.Scan(&item.ID, &item.Status, &grandTotal, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		if item.GrandTotal, err = pgconv.DecimalFromNumeric(grandTotal); err != nil {
			return nil, infra.WrapRepoErr("failed to convert order total", err)
		}
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer orders", err)
	}
	return result, nil
}

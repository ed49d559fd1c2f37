package repository

import (
	"context"
	"time"

	"savoria-api/internal/domain/order"
	"savoria-api/internal/infra"
	"savoria-api/internal/infra/db"
	"savoria-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create persists the order header and its lines inside the caller's
// transaction. Line order is preserved via the position column.
func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, customerID uuid.UUID, totals order.Totals, placedAt time.Time) (uuid.UUID, error) {
	orderID := uuid.New()

	_, err := tx.Exec(ctx, `
		INSERT INTO orders (id, customer_id, status, subtotal, total_discount, grand_total, created_at, updated_at)
		VALUES ($1, $2, 'placed', $3, $4, $5, $6, $6)`,
		orderID, customerID,
		pgconv.DecimalToNumeric(totals.Subtotal),
		pgconv.DecimalToNumeric(totals.TotalDiscount),
		pgconv.DecimalToNumeric(totals.GrandTotal),
		pgconv.TimeToPgtype(placedAt))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert order", err)
	}

	for i, line := range totals.Lines {
		var appliedOfferID *uuid.UUID
		if line.Applied != nil {
			id := line.Applied.Offer.ID
			appliedOfferID = &id
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, menu_item_id, position, quantity, unit_price, subtotal, discount, total, applied_offer_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), orderID, line.ItemID, i, line.Quantity,
			pgconv.DecimalToNumeric(line.UnitPrice),
			pgconv.DecimalToNumeric(line.Subtotal),
			pgconv.DecimalToNumeric(line.Discount),
			pgconv.DecimalToNumeric(line.Total),
			pgconv.UUIDPtrToPgtype(appliedOfferID))
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to insert order item", err, infra.KindForeignKeyViolated)
		}
	}

	return orderID, nil
}

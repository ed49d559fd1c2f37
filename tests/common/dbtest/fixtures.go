//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestCustomer(t *testing.T, db DBLike, email string, dateOfBirth, anniversaryDate *time.Time) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO customers (id, name, email, date_of_birth, anniversary_date) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		customerID, "Test Customer", email, dateOfBirth, anniversaryDate)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM customers WHERE email = $1", email).Scan(&customerID)
	}

	return customerID
}

func CreateTestCategory(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	categoryID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO categories (id, name) VALUES ($1, $2)", categoryID, name)
	require.NoError(t, err)

	return categoryID
}

func CreateTestMenuItem(t *testing.T, db DBLike, name string, price decimal.Decimal, categoryID *uuid.UUID) uuid.UUID {
	t.Helper()

	itemID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO menu_items (id, name, price, category_id, available) VALUES ($1, $2, $3, $4, true)",
		itemID, name, price, categoryID)
	require.NoError(t, err)

	return itemID
}

// OfferRow mirrors the offers table; zero values mean column defaults.
type OfferRow struct {
	Title         string
	Type          string
	DiscountValue decimal.Decimal
	BuyQuantity   int
	GetQuantity   int
	Scope         string
	ItemID        *uuid.UUID
	CategoryID    *uuid.UUID
	ValidDays     []string
	StartTime     *string
	EndTime       *string
	StartDate     *time.Time
	EndDate       *time.Time
	Active        bool
}

func CreateTestOffer(t *testing.T, db DBLike, row OfferRow) uuid.UUID {
	t.Helper()

	if row.Scope == "" {
		row.Scope = "all"
	}

	offerID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO offers (id, title, offer_type, discount_value, buy_quantity, get_quantity,
		                    scope, item_id, category_id, valid_days, start_time, end_time,
		                    start_date, end_date, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		offerID, row.Title, row.Type, row.DiscountValue, row.BuyQuantity, row.GetQuantity,
		row.Scope, row.ItemID, row.CategoryID, row.ValidDays, row.StartTime, row.EndTime,
		row.StartDate, row.EndDate, row.Active)
	require.NoError(t, err)

	return offerID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO categories (id, name) VALUES
		    (gen_random_uuid(), 'Mains'),
		    (gen_random_uuid(), 'Desserts')
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}

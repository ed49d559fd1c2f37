package readstore

import (
	"context"
	"time"

	"savoria-api/internal/domain/offer"
	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/errs"
	"savoria-api/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OfferReadStore struct {
	pool *pgxpool.Pool
}

func NewOfferReadStore(pool *pgxpool.Pool) *OfferReadStore {
	return &OfferReadStore{pool: pool}
}

func (r *OfferReadStore) ListActive(ctx context.Context) ([]offer.Offer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, description, offer_type, discount_value,
		       buy_quantity, get_quantity, scope, item_id, category_id,
		       valid_days, start_time, end_time, start_date, end_date, active
		FROM offers
		WHERE active = TRUE
		ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active offers", err)
	}
	defer rows.Close()

	var offers []offer.Offer
	for rows.Next() {
		o, scanErr := scanOffer(rows.Scan)
		if scanErr != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", scanErr)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}
	return offers, nil
}

func scanOffer(scan func(dest ...any) error) (offer.Offer, error) {
	var (
		id            uuid.UUID
		title         string
		description   pgtype.Text
		offerType     string
		discountValue pgtype.Numeric
		buyQuantity   pgtype.Int4
		getQuantity   pgtype.Int4
		scope         string
		itemID        pgtype.UUID
		categoryID    pgtype.UUID
		validDays     []string
		startTime     pgtype.Text
		endTime       pgtype.Text
		startDate     pgtype.Date
		endDate       pgtype.Date
		active        bool
	)
	if err := scan(&id, &title, &description, &offerType, &discountValue,
		&buyQuantity, &getQuantity, &scope, &itemID, &categoryID,
		&validDays, &startTime, &endTime, &startDate, &endDate, &active); err != nil {
		return offer.Offer{}, err
	}

	valueDec, err := pgconv.DecimalFromNumeric(discountValue)
	if err != nil {
		return offer.Offer{}, err
	}

	days, err := toWeekdays(validDays)
	if err != nil {
		return offer.Offer{}, err
	}

	return offer.Offer{
		ID:            id,
		Title:         title,
		Description:   textOrEmpty(description),
		Type:          offer.Type(offerType),
		DiscountValue: valueDec,
		BuyQuantity:   int(buyQuantity.Int32),
		GetQuantity:   int(getQuantity.Int32),
		Scope:         offer.Scope(scope),
		ItemID:        pgconv.UUIDPtrFromPgtype(itemID),
		CategoryID:    pgconv.UUIDPtrFromPgtype(categoryID),
		ValidDays:     days,
		StartTime:     textOrEmpty(startTime),
		EndTime:       textOrEmpty(endTime),
		StartDate:     pgconv.DatePtrFromPgtype(startDate),
		EndDate:       pgconv.DatePtrFromPgtype(endDate),
		Active:        active,
	}, nil
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func toWeekdays(names []string) ([]time.Weekday, error) {
	if len(names) == 0 {
		return nil, nil
	}
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		d, ok := weekdayNames[name]
		if !ok {
			return nil, errs.New("unknown weekday name: " + name)
		}
		days = append(days, d)
	}
	return days, nil
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

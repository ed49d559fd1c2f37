package queries

import (
	"context"

	"github.com/google/uuid"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
	"savoria-api/internal/domain/order"
	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/clock"
	"savoria-api/internal/pkg/errs"
)

var ErrUnknownMenuItem = errs.New("cart references unknown menu item")

type QuoteLine struct {
	MenuItemID uuid.UUID
	Quantity   int
}

// CartQueries produces the checkout preview. It prices through the same
// engine the order command uses, so the preview and the committed totals
// can only differ if the offer set changes between the two calls.
type CartQueries interface {
	Quote(ctx context.Context, lines []QuoteLine, customerID *uuid.UUID) (*CartQuoteView, error)
}

type cartQueriesImpl struct {
	menu      MenuReadStore
	offers    OfferReadStore
	customers CustomerReadStore
	clock     clock.Clock
}

func NewCartQueries(menu MenuReadStore, offers OfferReadStore, customers CustomerReadStore, clock clock.Clock) CartQueries {
	return &cartQueriesImpl{menu: menu, offers: offers, customers: customers, clock: clock}
}

func (q *cartQueriesImpl) Quote(ctx context.Context, lines []QuoteLine, customerID *uuid.UUID) (*CartQuoteView, error) {
	orderLines, err := q.resolveLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	offers, err := q.offers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := q.loadProfile(ctx, customerID)
	if err != nil {
		return nil, err
	}

	totals := order.PriceCart(orderLines, offers, q.clock.Now(), profile)
	return toCartQuoteView(totals), nil
}

func (q *cartQueriesImpl) resolveLines(ctx context.Context, lines []QuoteLine) ([]order.Line, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID)
	}

	items, err := q.menu.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]catalog.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	orderLines := make([]order.Line, 0, len(lines))
	for _, l := range lines {
		item, ok := byID[l.MenuItemID]
		if !ok {
			return nil, ErrUnknownMenuItem
		}
		orderLines = append(orderLines, order.Line{Item: &item, Quantity: l.Quantity})
	}
	return orderLines, nil
}

func (q *cartQueriesImpl) loadProfile(ctx context.Context, customerID *uuid.UUID) (*offer.Profile, error) {
	if customerID == nil {
		return nil, nil
	}
	profile, err := q.customers.FindProfile(ctx, *customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func toCartQuoteView(totals order.Totals) *CartQuoteView {
	view := &CartQuoteView{
		Subtotal:      totals.Subtotal,
		TotalDiscount: totals.TotalDiscount,
		GrandTotal:    totals.GrandTotal,
		Items:         make([]CartLineView, 0, len(totals.Lines)),
	}
	for _, lt := range totals.Lines {
		line := CartLineView{
			MenuItemID: lt.ItemID,
			Quantity:   lt.Quantity,
			UnitPrice:  lt.UnitPrice,
			Subtotal:   lt.Subtotal,
			Discount:   lt.Discount,
			Total:      lt.Total,
		}
		if lt.Applied != nil {
			applied := toEvaluatedOfferView(*lt.Applied)
			line.AppliedOffer = &applied
		}
		view.Items = append(view.Items, line)
	}
	return view
}

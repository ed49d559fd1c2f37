package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
	"savoria-api/internal/infra"
	"savoria-api/internal/pkg/clock"
	"savoria-api/internal/pkg/errs"
)

var ErrMenuItemNotFound = errs.New("menu item not found")

// MenuQueries serves menu browsing: each item carries the offers that are
// valid and applicable right now, priced for a single unit. This is the
// chargeable preview: the numbers shown here are the ones checkout will
// reproduce.
type MenuQueries interface {
	List(ctx context.Context, customerID *uuid.UUID) ([]*MenuItemView, error)
	Get(ctx context.Context, id uuid.UUID, customerID *uuid.UUID) (*MenuItemView, error)
}

type menuQueriesImpl struct {
	menu      MenuReadStore
	offers    OfferReadStore
	customers CustomerReadStore
	clock     clock.Clock
}

func NewMenuQueries(menu MenuReadStore, offers OfferReadStore, customers CustomerReadStore, clock clock.Clock) MenuQueries {
	return &menuQueriesImpl{menu: menu, offers: offers, customers: customers, clock: clock}
}

func (q *menuQueriesImpl) List(ctx context.Context, customerID *uuid.UUID) ([]*MenuItemView, error) {
	items, err := q.menu.List(ctx)
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

	now := q.clock.Now()
	views := make([]*MenuItemView, 0, len(items))
	for _, item := range items {
		views = append(views, buildMenuItemView(item, offers, now, profile))
	}
	return views, nil
}

func (q *menuQueriesImpl) Get(ctx context.Context, id uuid.UUID, customerID *uuid.UUID) (*MenuItemView, error) {
	item, err := q.menu.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
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

	return buildMenuItemView(*item, offers, q.clock.Now(), profile), nil
}

// Unknown customers browse anonymously; a missing profile only means
// birthday/anniversary offers stay invalid.
func (q *menuQueriesImpl) loadProfile(ctx context.Context, customerID *uuid.UUID) (*offer.Profile, error) {
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

func buildMenuItemView(item catalog.Item, offers []offer.Offer, now time.Time, profile *offer.Profile) *MenuItemView {
	applicable := offer.ApplicableOffers(item, offers, now, profile)
	evaluated := offer.Evaluate(item.Price, 1, applicable)

	views := make([]EvaluatedOfferView, 0, len(evaluated))
	for _, e := range evaluated {
		views = append(views, toEvaluatedOfferView(e))
	}

	view := &MenuItemView{
		ID:         item.ID,
		Name:       item.Name,
		Price:      item.Price,
		CategoryID: item.CategoryID,
		Available:  item.Available,
		Offers:     views,
	}
	if len(views) > 0 {
		view.BestOffer = &views[0]
	}
	return view
}

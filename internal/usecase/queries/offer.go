package queries

import (
	"context"

	"github.com/google/uuid"

	"savoria-api/internal/domain/offer/display"
	"savoria-api/internal/infra"
)

// OfferQueries serves marketing surfaces. RewardsForItem deliberately uses
// the loose display filter (active + target match, no temporal validity):
// a happy-hour offer shows in the gallery all day, it just isn't worth
// anything outside its window. Chargeable numbers never come from here.
type OfferQueries interface {
	ListActive(ctx context.Context) ([]*OfferView, error)
	RewardsForItem(ctx context.Context, itemID uuid.UUID) ([]*OfferView, error)
}

type offerQueriesImpl struct {
	menu   MenuReadStore
	offers OfferReadStore
}

func NewOfferQueries(menu MenuReadStore, offers OfferReadStore) OfferQueries {
	return &offerQueriesImpl{menu: menu, offers: offers}
}

func (q *offerQueriesImpl) ListActive(ctx context.Context) ([]*OfferView, error) {
	offers, err := q.offers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]*OfferView, 0, len(offers))
	for _, o := range offers {
		v := toOfferView(o)
		views = append(views, &v)
	}
	return views, nil
}

func (q *offerQueriesImpl) RewardsForItem(ctx context.Context, itemID uuid.UUID) ([]*OfferView, error) {
	item, err := q.menu.FindByID(ctx, itemID)
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

	matched := display.ForItem(*item, offers)
	views := make([]*OfferView, 0, len(matched))
	for _, o := range matched {
		v := toOfferView(o)
		views = append(views, &v)
	}
	return views, nil
}

//go:build unit

package display_test

import (
	"testing"
	"time"

	"savoria-api/internal/domain/offer"
	"savoria-api/internal/domain/offer/display"
	"savoria-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForItem_IgnoresTemporalValidity(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()

	// Out of window, wrong weekday, expired: all still shown.
	happyHour := builder.NewOfferBuilder().
		WithType(offer.TypeHappyHour).
		WithWindow("17:00", "19:00").
		Build()
	weekendOnly := builder.NewOfferBuilder().
		WithValidDays(time.Saturday, time.Sunday).
		Build()
	expired := builder.NewOfferBuilder().
		WithDateRange(
			time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
		).
		Build()

	got := display.ForItem(item, []offer.Offer{happyHour, weekendOnly, expired})
	assert.Len(t, got, 3)
}

func TestForItem_FiltersInactive(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()
	inactive := builder.NewOfferBuilder().Inactive().Build()

	got := display.ForItem(item, []offer.Offer{inactive})
	assert.Empty(t, got)
}

func TestForItem_FiltersByTarget(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()
	other := builder.NewMenuItemBuilder().Build()

	forItem := builder.NewOfferBuilder().WithItemScope(item.ID).Build()
	forOther := builder.NewOfferBuilder().WithItemScope(other.ID).Build()
	forAll := builder.NewOfferBuilder().Build()

	got := display.ForItem(item, []offer.Offer{forItem, forOther, forAll})
	require.Len(t, got, 2)
	assert.Equal(t, forItem.ID, got[0].ID)
	assert.Equal(t, forAll.ID, got[1].ID)
}

//go:build unit

package offer_test

import (
	"testing"
	"time"

	"savoria-api/internal/domain/offer"
	"savoria-api/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicableOffers(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()
	other := builder.NewMenuItemBuilder().Build()

	live := builder.NewOfferBuilder().Build()
	inactive := builder.NewOfferBuilder().Inactive().Build()
	wrongItem := builder.NewOfferBuilder().WithItemScope(other.ID).Build()
	outOfWindow := builder.NewOfferBuilder().WithWindow("09:00", "11:00").Build()

	offers := []offer.Offer{live, inactive, wrongItem, outOfWindow}

	got := offer.ApplicableOffers(item, offers, tuesdayEvening, nil)
	require.Len(t, got, 1)
	assert.Equal(t, live.ID, got[0].ID)
}

func TestApplicableOffers_Empty(t *testing.T) {
	item := builder.NewMenuItemBuilder().Build()
	assert.Nil(t, offer.ApplicableOffers(item, nil, tuesdayEvening, nil))
}

func TestEvaluate_NumbersForOneLine(t *testing.T) {
	o := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	got := offer.Evaluate(dec("20.00"), 3, []offer.Offer{o})
	require.Len(t, got, 1)

	e := got[0]
	assert.True(t, dec("6.00").Equal(e.DiscountAmount), "discount %s", e.DiscountAmount)
	assert.True(t, dec("18.00").Equal(e.DiscountedUnitPrice), "unit %s", e.DiscountedUnitPrice)
	assert.True(t, dec("54.00").Equal(e.TotalAfterDiscount), "total %s", e.TotalAfterDiscount)
	assert.True(t, dec("10").Equal(e.SavingPercent), "saving %s", e.SavingPercent)
}

func TestEvaluate_SortsBestFirst(t *testing.T) {
	small := builder.NewOfferBuilder().WithDiscountValue(dec("5")).Build()
	big := builder.NewOfferBuilder().WithDiscountValue(dec("30")).Build()
	medium := builder.NewOfferBuilder().WithDiscountValue(dec("15")).Build()

	got := offer.Evaluate(dec("10.00"), 1, []offer.Offer{small, big, medium})
	require.Len(t, got, 3)

	assert.Equal(t, big.ID, got[0].Offer.ID)
	assert.Equal(t, medium.ID, got[1].Offer.ID)
	assert.Equal(t, small.ID, got[2].Offer.ID)
}

func TestEvaluate_TiesKeepInputOrder(t *testing.T) {
	first := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()
	second := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()
	third := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	got := offer.Evaluate(dec("10.00"), 2, []offer.Offer{first, second, third})
	require.Len(t, got, 3)

	assert.Equal(t, first.ID, got[0].Offer.ID)
	assert.Equal(t, second.ID, got[1].Offer.ID)
	assert.Equal(t, third.ID, got[2].Offer.ID)
}

func TestEvaluate_EmptyInput(t *testing.T) {
	assert.Nil(t, offer.Evaluate(dec("10.00"), 1, nil))
	assert.Nil(t, offer.Evaluate(dec("10.00"), 1, []offer.Offer{}))
}

func TestBestOffer(t *testing.T) {
	percentage := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()
	fixed := builder.NewOfferBuilder().
		WithType(offer.TypeFixedAmount).
		WithDiscountValue(dec("3.00")).
		Build()

	// At 20.00 x 2: percentage gives 4.00, fixed gives 6.00.
	best := offer.BestOffer(dec("20.00"), 2, []offer.Offer{percentage, fixed})
	require.NotNil(t, best)
	assert.Equal(t, fixed.ID, best.Offer.ID)
	assert.True(t, dec("6.00").Equal(best.DiscountAmount))
}

func TestBestOffer_NoneApplicable(t *testing.T) {
	assert.Nil(t, offer.BestOffer(dec("20.00"), 2, nil))
}

func TestBestOffer_CrossTypeComparisonByAbsoluteAmount(t *testing.T) {
	// BxGy on a cheap item can still beat a percentage.
	bxgy := builder.NewOfferBuilder().
		WithType(offer.TypeBuyXGetY).
		WithBuyGet(2, 1).
		Build()
	percentage := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	// qty 6 at 4.00: BxGy frees 2 units = 8.00; 10% = 2.40.
	best := offer.BestOffer(dec("4.00"), 6, []offer.Offer{percentage, bxgy})
	require.NotNil(t, best)
	assert.Equal(t, bxgy.ID, best.Offer.ID)
	assert.True(t, dec("8.00").Equal(best.DiscountAmount))
}

func TestEvaluate_SingleInstantConsistency(t *testing.T) {
	// The same instant drives both gating and arithmetic; an offer valid
	// at evaluation keeps its numbers regardless of wall-clock drift.
	o := builder.NewOfferBuilder().
		WithType(offer.TypeHappyHour).
		WithDiscountValue(dec("50")).
		WithWindow("17:00", "19:00").
		Build()

	now := time.Date(2025, 6, 10, 18, 59, 0, 0, time.UTC)
	item := builder.NewMenuItemBuilder().WithPrice(dec("10.00")).Build()

	applicable := offer.ApplicableOffers(item, []offer.Offer{o}, now, nil)
	require.Len(t, applicable, 1)

	best := offer.BestOffer(item.Price, 1, applicable)
	require.NotNil(t, best)
	assert.True(t, dec("5.00").Equal(best.DiscountAmount))
}

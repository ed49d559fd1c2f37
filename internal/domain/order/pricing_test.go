//go:build unit

package order_test

import (
	"testing"
	"time"

	"savoria-api/internal/domain/offer"
	"savoria-api/internal/domain/order"
	"savoria-api/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestPriceLine_AppliesBestOffer(t *testing.T) {
	item := builder.NewMenuItemBuilder().WithPrice(dec("20.00")).Build()

	weak := builder.NewOfferBuilder().WithDiscountValue(dec("5")).Build()
	strong := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	lt := order.PriceLine(order.Line{Item: &item, Quantity: 3}, []offer.Offer{weak, strong}, noon, nil)

	assert.Equal(t, item.ID, lt.ItemID)
	assert.Equal(t, 3, lt.Quantity)
	assert.True(t, dec("60.00").Equal(lt.Subtotal), "subtotal %s", lt.Subtotal)
	assert.True(t, dec("6.00").Equal(lt.Discount), "discount %s", lt.Discount)
	assert.True(t, dec("54.00").Equal(lt.Total), "total %s", lt.Total)
	require.NotNil(t, lt.Applied)
	assert.Equal(t, strong.ID, lt.Applied.Offer.ID)
}

func TestPriceLine_NoApplicableOffers(t *testing.T) {
	item := builder.NewMenuItemBuilder().WithPrice(dec("12.50")).Build()

	lt := order.PriceLine(order.Line{Item: &item, Quantity: 2}, nil, noon, nil)

	assert.True(t, dec("25.00").Equal(lt.Subtotal))
	assert.True(t, lt.Discount.IsZero())
	assert.True(t, dec("25.00").Equal(lt.Total))
	assert.Nil(t, lt.Applied)
}

func TestPriceLine_NilItemPricesToZero(t *testing.T) {
	lt := order.PriceLine(order.Line{Item: nil, Quantity: 2}, nil, noon, nil)

	assert.True(t, lt.Subtotal.IsZero())
	assert.True(t, lt.Discount.IsZero())
	assert.True(t, lt.Total.IsZero())
	assert.Nil(t, lt.Applied)
}

func TestPriceLine_QuantityFloorsAtOne(t *testing.T) {
	item := builder.NewMenuItemBuilder().WithPrice(dec("10.00")).Build()

	lt := order.PriceLine(order.Line{Item: &item, Quantity: 0}, nil, noon, nil)
	assert.Equal(t, 1, lt.Quantity)
	assert.True(t, dec("10.00").Equal(lt.Subtotal))
}

func TestPriceCart_EmptyCart(t *testing.T) {
	totals := order.PriceCart(nil, nil, noon, nil)

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.TotalDiscount.IsZero())
	assert.True(t, totals.GrandTotal.IsZero())
	assert.Empty(t, totals.Lines)
}

func TestPriceCart_AggregatesLines(t *testing.T) {
	pizza := builder.NewMenuItemBuilder().WithPrice(dec("20.00")).Build()
	soda := builder.NewMenuItemBuilder().WithPrice(dec("3.00")).Build()

	tenPercent := builder.NewOfferBuilder().
		WithItemScope(pizza.ID).
		WithDiscountValue(dec("10")).
		Build()

	lines := []order.Line{
		{Item: &pizza, Quantity: 2}, // 40.00, discount 4.00
		{Item: &soda, Quantity: 3},  // 9.00, no discount
	}

	totals := order.PriceCart(lines, []offer.Offer{tenPercent}, noon, nil)

	assert.True(t, dec("49.00").Equal(totals.Subtotal), "subtotal %s", totals.Subtotal)
	assert.True(t, dec("4.00").Equal(totals.TotalDiscount), "discount %s", totals.TotalDiscount)
	assert.True(t, dec("45.00").Equal(totals.GrandTotal), "grand total %s", totals.GrandTotal)
	require.Len(t, totals.Lines, 2)

	// subtotal - totalDiscount = grandTotal holds line by line too.
	for _, lt := range totals.Lines {
		assert.True(t, lt.Subtotal.Sub(lt.Discount).Equal(lt.Total))
	}
}

func TestPriceCart_PerLineBestSelection(t *testing.T) {
	// Each line picks its own best offer; a cart-wide winner is never forced.
	cheap := builder.NewMenuItemBuilder().WithPrice(dec("4.00")).Build()
	pricey := builder.NewMenuItemBuilder().WithPrice(dec("40.00")).Build()

	bxgy := builder.NewOfferBuilder().
		WithType(offer.TypeBuyXGetY).
		WithBuyGet(2, 1).
		WithItemScope(cheap.ID).
		Build()
	tenPercent := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	lines := []order.Line{
		{Item: &cheap, Quantity: 6},  // bxgy: 8.00 beats 10%: 2.40
		{Item: &pricey, Quantity: 1}, // only 10% applies: 4.00
	}

	totals := order.PriceCart(lines, []offer.Offer{bxgy, tenPercent}, noon, nil)

	require.Len(t, totals.Lines, 2)
	require.NotNil(t, totals.Lines[0].Applied)
	assert.Equal(t, bxgy.ID, totals.Lines[0].Applied.Offer.ID)
	require.NotNil(t, totals.Lines[1].Applied)
	assert.Equal(t, tenPercent.ID, totals.Lines[1].Applied.Offer.ID)
	assert.True(t, dec("12.00").Equal(totals.TotalDiscount), "discount %s", totals.TotalDiscount)
}

func TestPriceCart_ProfileGatesBirthdayOffers(t *testing.T) {
	item := builder.NewMenuItemBuilder().WithPrice(dec("30.00")).Build()
	birthday := builder.NewOfferBuilder().
		WithType(offer.TypeBirthday).
		WithDiscountValue(dec("20")).
		Build()

	lines := []order.Line{{Item: &item, Quantity: 1}}

	dob := time.Date(1990, 6, 10, 0, 0, 0, 0, time.UTC)
	withProfile := order.PriceCart(lines, []offer.Offer{birthday}, noon, &offer.Profile{DateOfBirth: &dob})
	assert.True(t, dec("6.00").Equal(withProfile.TotalDiscount))

	anonymous := order.PriceCart(lines, []offer.Offer{birthday}, noon, nil)
	assert.True(t, anonymous.TotalDiscount.IsZero())
}

//go:build unit

package offer_test

import (
	"testing"

	"savoria-api/internal/domain/offer"
	"savoria-api/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestDiscountForItem_Percentage(t *testing.T) {
	o := builder.NewOfferBuilder().WithDiscountValue(dec("10")).Build()

	// 20.00 * 10% * 3 = 6.00
	got := offer.DiscountForItem(dec("20.00"), o, 3)
	assert.True(t, dec("6.00").Equal(got), "got %s", got)
}

func TestDiscountForItem_HappyHourIsPercentage(t *testing.T) {
	o := builder.NewOfferBuilder().
		WithType(offer.TypeHappyHour).
		WithDiscountValue(dec("25")).
		Build()

	got := offer.DiscountForItem(dec("8.00"), o, 2)
	assert.True(t, dec("4.00").Equal(got), "got %s", got)
}

func TestDiscountForItem_FixedAmount(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice string
		value     string
		quantity  int
		want      string
	}{
		{"normal fixed discount", "10.00", "2.00", 3, "6.00"},
		{"capped at unit price", "5.00", "8.00", 2, "10.00"},
		{"exactly unit price", "5.00", "5.00", 1, "5.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := builder.NewOfferBuilder().
				WithType(offer.TypeFixedAmount).
				WithDiscountValue(dec(tt.value)).
				Build()
			got := offer.DiscountForItem(dec(tt.unitPrice), o, tt.quantity)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestDiscountForItem_BuyXGetY(t *testing.T) {
	tests := []struct {
		name     string
		buy, get int
		quantity int
		want     string // free units * 4.00
	}{
		{"buy 2 get 1, one set plus remainder", 2, 1, 5, "4.00"},
		{"buy 2 get 1, two complete sets", 2, 1, 6, "8.00"},
		{"buy 2 get 1, below one set", 2, 1, 2, "0.00"},
		{"buy 1 get 1", 1, 1, 4, "8.00"},
		{"unset quantities default to one-for-one", 0, 0, 2, "4.00"},
		{"buy 3 get 2", 3, 2, 10, "16.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := builder.NewOfferBuilder().
				WithType(offer.TypeBuyXGetY).
				WithBuyGet(tt.buy, tt.get).
				Build()
			got := offer.DiscountForItem(dec("4.00"), o, tt.quantity)
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestDiscountForItem_BirthdayAnniversary(t *testing.T) {
	t.Run("configured percentage", func(t *testing.T) {
		o := builder.NewOfferBuilder().
			WithType(offer.TypeBirthday).
			WithDiscountValue(dec("20")).
			Build()
		got := offer.DiscountForItem(dec("15.00"), o, 2)
		assert.True(t, dec("6.00").Equal(got), "got %s", got)
	})

	t.Run("zero value grants nothing", func(t *testing.T) {
		o := builder.NewOfferBuilder().
			WithType(offer.TypeAnniversary).
			WithDiscountValue(decimal.Zero).
			Build()
		got := offer.DiscountForItem(dec("15.00"), o, 2)
		assert.True(t, got.IsZero())
	})
}

func TestDiscountForItem_Guards(t *testing.T) {
	o := builder.NewOfferBuilder().Build()

	assert.True(t, offer.DiscountForItem(decimal.Zero, o, 3).IsZero())
	assert.True(t, offer.DiscountForItem(dec("-5.00"), o, 3).IsZero())
	assert.True(t, offer.DiscountForItem(dec("10.00"), o, 0).IsZero())
	assert.True(t, offer.DiscountForItem(dec("10.00"), o, -1).IsZero())
}

func TestDiscountForItem_UnknownTypeIsZero(t *testing.T) {
	o := builder.NewOfferBuilder().Build()
	o.Type = offer.Type("flash-sale")
	assert.True(t, offer.DiscountForItem(dec("10.00"), o, 2).IsZero())
}

func TestDiscountForItem_NeverExceedsLineTotal(t *testing.T) {
	o := builder.NewOfferBuilder().WithDiscountValue(dec("150")).Build()

	lineTotal := dec("20.00")
	got := offer.DiscountForItem(dec("10.00"), o, 2)
	assert.True(t, lineTotal.Equal(got), "got %s", got)
}

func TestDiscountForItem_NegativeValueClampsToZero(t *testing.T) {
	o := builder.NewOfferBuilder().WithDiscountValue(dec("-10")).Build()
	assert.True(t, offer.DiscountForItem(dec("10.00"), o, 2).IsZero())
}

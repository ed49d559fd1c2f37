package offer

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountForItem computes the total currency discount o grants for
// quantity units priced at unitPrice each. Non-positive price or quantity
// yields zero, as does any unrecognised offer type. The result is always
// within [0, unitPrice*quantity].
func DiscountForItem(unitPrice decimal.Decimal, o Offer, quantity int) decimal.Decimal {
	if unitPrice.Sign() <= 0 || quantity <= 0 {
		return decimal.Zero
	}

	qty := decimal.NewFromInt(int64(quantity))

	var discount decimal.Decimal
	switch o.Type {
	case TypePercentage, TypeHappyHour:
		// Happy hour is a percentage whose gating lives in IsValid.
		discount = unitPrice.Mul(o.DiscountValue).Div(hundred).Mul(qty)

	case TypeFixedAmount:
		// The cap is per unit, not pooled across the line, so no single
		// unit is ever discounted below zero.
		perUnit := decimal.Min(o.DiscountValue, unitPrice)
		discount = perUnit.Mul(qty)

	case TypeBuyXGetY:
		discount = buyXGetYDiscount(unitPrice, o, quantity)

	case TypeBirthday, TypeAnniversary:
		// Valid-but-unconfigured birthday offers grant nothing; that is a
		// recognised state, not an error.
		if o.DiscountValue.IsZero() {
			return decimal.Zero
		}
		discount = unitPrice.Mul(o.DiscountValue).Div(hundred).Mul(qty)

	default:
		return decimal.Zero
	}

	return clampDiscount(discount, unitPrice.Mul(qty))
}

// buyXGetYDiscount packs the quantity into complete sets of buy+get units;
// only complete sets earn free units, the trailing remainder earns nothing.
func buyXGetYDiscount(unitPrice decimal.Decimal, o Offer, quantity int) decimal.Decimal {
	buy := o.BuyQuantity
	if buy < 1 {
		buy = 1
	}
	get := o.GetQuantity
	if get < 1 {
		get = 1
	}

	completeSets := quantity / (buy + get)
	freeUnits := completeSets * get

	return unitPrice.Mul(decimal.NewFromInt(int64(freeUnits)))
}

func clampDiscount(d, lineTotal decimal.Decimal) decimal.Decimal {
	if d.Sign() < 0 {
		return decimal.Zero
	}
	if d.GreaterThan(lineTotal) {
		return lineTotal
	}
	return d
}

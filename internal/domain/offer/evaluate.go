package offer

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"savoria-api/internal/domain/catalog"
)

// Evaluated is an offer together with the numbers it produces for one line.
type Evaluated struct {
	Offer               Offer
	DiscountAmount      decimal.Decimal
	DiscountedUnitPrice decimal.Decimal
	TotalAfterDiscount  decimal.Decimal
	SavingPercent       decimal.Decimal
}

// ApplicableOffers returns the offers that are both live at now and
// targeted at item. This is the strict gate: anything priced for money
// must come through here.
func ApplicableOffers(item catalog.Item, offers []Offer, now time.Time, p *Profile) []Offer {
	var applicable []Offer
	for _, o := range offers {
		if IsValid(o, now, p) && AppliesToItem(o, item) {
			applicable = append(applicable, o)
		}
	}
	return applicable
}

// Evaluate prices each offer for quantity units at unitPrice and returns
// them sorted best-first by absolute discount. The sort is stable so equal
// discounts keep their input order and repeated calls are deterministic.
func Evaluate(unitPrice decimal.Decimal, quantity int, offers []Offer) []Evaluated {
	if len(offers) == 0 {
		return nil
	}

	lineTotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	evaluated := make([]Evaluated, 0, len(offers))
	for _, o := range offers {
		amount := DiscountForItem(unitPrice, o, quantity)

		perUnit := decimal.Zero
		if quantity > 0 {
			perUnit = amount.Div(decimal.NewFromInt(int64(quantity)))
		}

		saving := decimal.Zero
		if lineTotal.Sign() > 0 {
			saving = amount.Div(lineTotal).Mul(hundred)
		}

		evaluated = append(evaluated, Evaluated{
			Offer:               o,
			DiscountAmount:      amount,
			DiscountedUnitPrice: decimal.Max(decimal.Zero, unitPrice.Sub(perUnit)),
			TotalAfterDiscount:  decimal.Max(decimal.Zero, lineTotal.Sub(amount)),
			SavingPercent:       saving,
		})
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].DiscountAmount.GreaterThan(evaluated[j].DiscountAmount)
	})

	return evaluated
}

// BestOffer returns the offer yielding the largest absolute discount for
// the line, or nil when none apply. Ties go to the earliest in input order.
func BestOffer(unitPrice decimal.Decimal, quantity int, offers []Offer) *Evaluated {
	evaluated := Evaluate(unitPrice, quantity, offers)
	if len(evaluated) == 0 {
		return nil
	}
	return &evaluated[0]
}

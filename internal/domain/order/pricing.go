// Package order prices carts. The same functions back the checkout preview
// and the authoritative recompute at order placement; totals stored on an
// order are never taken from the client.
package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
)

// Line is one cart entry. A nil Item (dangling catalog reference) prices
// to all zeros rather than failing.
type Line struct {
	Item     *catalog.Item
	Quantity int
}

// LineTotal is the priced result for one line, with enough detail to
// reproduce an itemized receipt.
type LineTotal struct {
	ItemID    uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal
	Applied   *offer.Evaluated
}

// Totals aggregates a whole cart.
type Totals struct {
	Subtotal      decimal.Decimal
	TotalDiscount decimal.Decimal
	GrandTotal    decimal.Decimal
	Lines         []LineTotal
}

// PriceLine prices one line at the instant now: the best valid-and-
// applicable offer is applied, everything else is reported untouched.
func PriceLine(line Line, offers []offer.Offer, now time.Time, p *offer.Profile) LineTotal {
	if line.Item == nil {
		return LineTotal{
			Subtotal: decimal.Zero,
			Discount: decimal.Zero,
			Total:    decimal.Zero,
		}
	}

	quantity := line.Quantity
	if quantity < 1 {
		quantity = 1
	}

	unitPrice := line.Item.Price
	subtotal := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	applicable := offer.ApplicableOffers(*line.Item, offers, now, p)
	best := offer.BestOffer(unitPrice, quantity, applicable)

	discount := decimal.Zero
	if best != nil {
		discount = best.DiscountAmount
	}

	return LineTotal{
		ItemID:    line.Item.ID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Subtotal:  subtotal,
		Discount:  discount,
		Total:     decimal.Max(decimal.Zero, subtotal.Sub(discount)),
		Applied:   best,
	}
}

// PriceCart folds PriceLine over every line. The caller captures now once
// so a single evaluation cannot straddle a window edge and disagree with
// itself. An empty cart is a zero result, not an error.
func PriceCart(lines []Line, offers []offer.Offer, now time.Time, p *offer.Profile) Totals {
	totals := Totals{
		Subtotal:      decimal.Zero,
		TotalDiscount: decimal.Zero,
		GrandTotal:    decimal.Zero,
	}
	if len(lines) == 0 {
		return totals
	}

	for _, line := range lines {
		lt := PriceLine(line, offers, now, p)
		totals.Subtotal = totals.Subtotal.Add(lt.Subtotal)
		totals.TotalDiscount = totals.TotalDiscount.Add(lt.Discount)
		totals.Lines = append(totals.Lines, lt)
	}

	totals.GrandTotal = decimal.Max(decimal.Zero, totals.Subtotal.Sub(totals.TotalDiscount))
	return totals
}

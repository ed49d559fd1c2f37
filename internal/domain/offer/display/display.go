// Package display selects offers for marketing surfaces (rewards gallery,
// offer banners) where temporal validity is deliberately ignored: only the
// active flag and target matching are checked. Nothing here is a price
// guarantee; chargeable amounts always go through the offer package's
// strict path, and keeping this filter in its own package keeps it out of
// commit-path imports.
package display

import (
	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
)

// ForItem returns the active offers whose target matches item, regardless
// of date, weekday, daily window, or customer attributes.
func ForItem(item catalog.Item, offers []offer.Offer) []offer.Offer {
	var matched []offer.Offer
	for _, o := range offers {
		if o.Active && offer.AppliesToItem(o, item) {
			matched = append(matched, o)
		}
	}
	return matched
}

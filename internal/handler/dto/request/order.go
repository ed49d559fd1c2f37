package request

import (
	"github.com/google/uuid"

	"savoria-api/internal/usecase/queries"
)

type OrderItemRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"required,gte=1"`
}

// PlaceOrderRequest deliberately has no price or total fields: the server
// recomputes every amount from its own records.
type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Note  *string            `json:"note,omitempty"`
}

// An empty item list is a valid quote request and prices to zero totals.
type QuoteCartRequest struct {
	Items []OrderItemRequest `json:"items" binding:"omitempty,dive"`
}

func (r QuoteCartRequest) ToQuoteLines() []queries.QuoteLine {
	lines := make([]queries.QuoteLine, 0, len(r.Items))
	for _, item := range r.Items {
		lines = append(lines, queries.QuoteLine{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}
	return lines
}

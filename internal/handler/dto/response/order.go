package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"savoria-api/internal/usecase/queries"
)

type CartLineResponse struct {
	MenuItemID   uuid.UUID               `json:"menuItemId"`
	Quantity     int                     `json:"quantity"`
	UnitPrice    decimal.Decimal         `json:"unitPrice"`
	Subtotal     decimal.Decimal         `json:"subtotal"`
	Discount     decimal.Decimal         `json:"discount"`
	Total        decimal.Decimal         `json:"total"`
	AppliedOffer *EvaluatedOfferResponse `json:"appliedOffer,omitempty"`
}

type CartQuoteResponse struct {
	Subtotal      decimal.Decimal    `json:"subtotal"`
	TotalDiscount decimal.Decimal    `json:"totalDiscount"`
	GrandTotal    decimal.Decimal    `json:"grandTotal"`
	Items         []CartLineResponse `json:"items"`
}

type OrderItemResponse struct {
	MenuItemID     uuid.UUID       `json:"menuItemId"`
	MenuItemName   string          `json:"menuItemName"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
	AppliedOfferID *uuid.UUID      `json:"appliedOfferId,omitempty"`
}

type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    uuid.UUID           `json:"customerId"`
	Status        string              `json:"status"`
	Subtotal      decimal.Decimal     `json:"subtotal"`
	TotalDiscount decimal.Decimal     `json:"totalDiscount"`
	GrandTotal    decimal.Decimal     `json:"grandTotal"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type OrderListResponse struct {
	ID         uuid.UUID       `json:"id"`
	Status     string          `json:"status"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func FromCartQuoteView(v *queries.CartQuoteView) *CartQuoteResponse {
	items := make([]CartLineResponse, 0, len(v.Items))
	for _, line := range v.Items {
		resp := CartLineResponse{
			MenuItemID: line.MenuItemID,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Subtotal:   line.Subtotal,
			Discount:   line.Discount,
			Total:      line.Total,
		}
		if line.AppliedOffer != nil {
			applied := fromEvaluatedOfferView(*line.AppliedOffer)
			resp.AppliedOffer = &applied
		}
		items = append(items, resp)
	}
	return &CartQuoteResponse{
		Subtotal:      v.Subtotal,
		TotalDiscount: v.TotalDiscount,
		GrandTotal:    v.GrandTotal,
		Items:         items,
	}
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, OrderItemResponse{
			MenuItemID:     item.MenuItemID,
			MenuItemName:   item.MenuItemName,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Subtotal:       item.Subtotal,
			Discount:       item.Discount,
			Total:          item.Total,
			AppliedOfferID: item.AppliedOfferID,
		})
	}
	return &OrderResponse{
		ID:            v.ID,
		CustomerID:    v.CustomerID,
		Status:        v.Status,
		Subtotal:      v.Subtotal,
		TotalDiscount: v.TotalDiscount,
		GrandTotal:    v.GrandTotal,
		Items:         items,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromOrderListItem(v *queries.OrderListItem) *OrderListResponse {
	return &OrderListResponse{
		ID:         v.ID,
		Status:     v.Status,
		GrandTotal: v.GrandTotal,
		CreatedAt:  v.CreatedAt,
	}
}

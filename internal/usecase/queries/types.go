package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"
)

// Read models (DTO for read side)

type OfferView struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	BuyQuantity   int             `json:"buy_quantity,omitempty"`
	GetQuantity   int             `json:"get_quantity,omitempty"`
	Scope         string          `json:"scope"`
	ItemID        *uuid.UUID      `json:"item_id,omitempty"`
	CategoryID    *uuid.UUID      `json:"category_id,omitempty"`
	ValidDays     []string        `json:"valid_days,omitempty"`
	StartTime     string          `json:"start_time,omitempty"`
	EndTime       string          `json:"end_time,omitempty"`
	StartDate     *time.Time      `json:"start_date,omitempty"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
}

type EvaluatedOfferView struct {
	OfferView
	DiscountAmount      decimal.Decimal `json:"discount_amount"`
	DiscountedUnitPrice decimal.Decimal `json:"discounted_unit_price"`
	TotalAfterDiscount  decimal.Decimal `json:"total_after_discount"`
	SavingPercent       decimal.Decimal `json:"saving_percent"`
}

type MenuItemView struct {
	ID         uuid.UUID            `json:"id"`
	Name       string               `json:"name"`
	Price      decimal.Decimal      `json:"price"`
	CategoryID *uuid.UUID           `json:"category_id,omitempty"`
	Available  bool                 `json:"available"`
	Offers     []EvaluatedOfferView `json:"offers"`
	BestOffer  *EvaluatedOfferView  `json:"best_offer,omitempty"`
}

type CartLineView struct {
	MenuItemID   uuid.UUID       `json:"menu_item_id"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	AppliedOffer *EvaluatedOfferView `json:"applied_offer,omitempty"`
}

type CartQuoteView struct {
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Items         []CartLineView  `json:"items"`
}

type OrderItemView struct {
	MenuItemID     uuid.UUID       `json:"menu_item_id"`
	MenuItemName   string          `json:"menu_item_name"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	Total          decimal.Decimal `json:"total"`
	AppliedOfferID *uuid.UUID      `json:"applied_offer_id,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Status        string          `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TotalDiscount decimal.Decimal `json:"total_discount"`
	GrandTotal    decimal.Decimal `json:"grand_total"`
	Items         []OrderItemView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderListItem struct {
	ID         uuid.UUID       `json:"id"`
	Status     string          `json:"status"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Read stores implemented by internal/infra/readstore

type MenuReadStore interface {
	List(ctx context.Context) ([]catalog.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Item, error)
}

type OfferReadStore interface {
	ListActive(ctx context.Context) ([]offer.Offer, error)
}

type CustomerReadStore interface {
	FindProfile(ctx context.Context, id uuid.UUID) (*offer.Profile, error)
}

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderListItem, error)
}

// Converters shared by the query implementations.

func toOfferView(o offer.Offer) OfferView {
	days := make([]string, 0, len(o.ValidDays))
	for _, d := range o.ValidDays {
		days = append(days, d.String())
	}
	return OfferView{
		ID:            o.ID,
		Title:         o.Title,
		Description:   o.Description,
		Type:          string(o.Type),
		DiscountValue: o.DiscountValue,
		BuyQuantity:   o.BuyQuantity,
		GetQuantity:   o.GetQuantity,
		Scope:         string(o.Scope),
		ItemID:        o.ItemID,
		CategoryID:    o.CategoryID,
		ValidDays:     days,
		StartTime:     o.StartTime,
		EndTime:       o.EndTime,
		StartDate:     o.StartDate,
		EndDate:       o.EndDate,
	}
}

func toEvaluatedOfferView(e offer.Evaluated) EvaluatedOfferView {
	return EvaluatedOfferView{
		OfferView:           toOfferView(e.Offer),
		DiscountAmount:      e.DiscountAmount,
		DiscountedUnitPrice: e.DiscountedUnitPrice,
		TotalAfterDiscount:  e.TotalAfterDiscount,
		SavingPercent:       e.SavingPercent,
	}
}

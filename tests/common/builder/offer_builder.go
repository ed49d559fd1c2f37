//go:build unit || e2e

package builder

import (
	"time"

	"savoria-api/internal/domain/catalog"
	"savoria-api/internal/domain/offer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OfferBuilder struct {
	ID            uuid.UUID
	Title         string
	Description   string
	Type          offer.Type
	DiscountValue decimal.Decimal
	BuyQuantity   int
	GetQuantity   int
	Scope         offer.Scope
	ItemID        *uuid.UUID
	CategoryID    *uuid.UUID
	ValidDays     []time.Weekday
	StartTime     string
	EndTime       string
	StartDate     *time.Time
	EndDate       *time.Time
	Active        bool
}

func NewOfferBuilder() *OfferBuilder {
	return &OfferBuilder{
		ID:            uuid.New(),
		Title:         "Ten Percent Off",
		Description:   "10% off everything",
		Type:          offer.TypePercentage,
		DiscountValue: decimal.NewFromInt(10),
		Scope:         offer.ScopeAll,
		Active:        true,
	}
}

func (b *OfferBuilder) With(mutate func(*OfferBuilder)) *OfferBuilder {
	mutate(b)
	return b
}

func (b *OfferBuilder) WithType(t offer.Type) *OfferBuilder {
	b.Type = t
	return b
}

func (b *OfferBuilder) WithDiscountValue(v decimal.Decimal) *OfferBuilder {
	b.DiscountValue = v
	return b
}

func (b *OfferBuilder) WithBuyGet(buy, get int) *OfferBuilder {
	b.BuyQuantity = buy
	b.GetQuantity = get
	return b
}

func (b *OfferBuilder) WithItemScope(itemID uuid.UUID) *OfferBuilder {
	b.Scope = offer.ScopeItem
	b.ItemID = &itemID
	return b
}

func (b *OfferBuilder) WithCategoryScope(categoryID uuid.UUID) *OfferBuilder {
	b.Scope = offer.ScopeCategory
	b.CategoryID = &categoryID
	return b
}

func (b *OfferBuilder) WithWindow(start, end string) *OfferBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *OfferBuilder) WithValidDays(days ...time.Weekday) *OfferBuilder {
	b.ValidDays = days
	return b
}

func (b *OfferBuilder) WithDateRange(start, end time.Time) *OfferBuilder {
	b.StartDate = &start
	b.EndDate = &end
	return b
}

func (b *OfferBuilder) Inactive() *OfferBuilder {
	b.Active = false
	return b
}

func (b *OfferBuilder) Build() offer.Offer {
	return offer.Offer{
		ID:            b.ID,
		Title:         b.Title,
		Description:   b.Description,
		Type:          b.Type,
		DiscountValue: b.DiscountValue,
		BuyQuantity:   b.BuyQuantity,
		GetQuantity:   b.GetQuantity,
		Scope:         b.Scope,
		ItemID:        b.ItemID,
		CategoryID:    b.CategoryID,
		ValidDays:     b.ValidDays,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		StartDate:     b.StartDate,
		EndDate:       b.EndDate,
		Active:        b.Active,
	}
}

type MenuItemBuilder struct {
	ID         uuid.UUID
	Name       string
	Price      decimal.Decimal
	CategoryID *uuid.UUID
	Available  bool
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:        uuid.New(),
		Name:      "Margherita Pizza",
		Price:     decimal.NewFromFloat(12.50),
		Available: true,
	}
}

func (b *MenuItemBuilder) WithPrice(p decimal.Decimal) *MenuItemBuilder {
	b.Price = p
	return b
}

func (b *MenuItemBuilder) WithCategory(categoryID uuid.UUID) *MenuItemBuilder {
	b.CategoryID = &categoryID
	return b
}

func (b *MenuItemBuilder) Unavailable() *MenuItemBuilder {
	b.Available = false
	return b
}

func (b *MenuItemBuilder) Build() catalog.Item {
	return catalog.Item{
		ID:         b.ID,
		Name:       b.Name,
		Price:      b.Price,
		CategoryID: b.CategoryID,
		Available:  b.Available,
	}
}

package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"savoria-api/internal/usecase/queries"
)

type OfferResponse struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	DiscountValue decimal.Decimal `json:"discountValue"`
	BuyQuantity   int             `json:"buyQuantity,omitempty"`
	GetQuantity   int             `json:"getQuantity,omitempty"`
	Scope         string          `json:"scope"`
	ItemID        *uuid.UUID      `json:"itemId,omitempty"`
	CategoryID    *uuid.UUID      `json:"categoryId,omitempty"`
	ValidDays     []string        `json:"validDays,omitempty"`
	StartTime     string          `json:"startTime,omitempty"`
	EndTime       string          `json:"endTime,omitempty"`
	StartDate     *time.Time      `json:"startDate,omitempty"`
	EndDate       *time.Time      `json:"endDate,omitempty"`
}

type EvaluatedOfferResponse struct {
	OfferResponse
	DiscountAmount      decimal.Decimal `json:"discountAmount"`
	DiscountedUnitPrice decimal.Decimal `json:"discountedUnitPrice"`
	TotalAfterDiscount  decimal.Decimal `json:"totalAfterDiscount"`
	SavingPercent       decimal.Decimal `json:"savingPercent"`
}

type MenuItemResponse struct {
	ID         uuid.UUID                `json:"id"`
	Name       string                   `json:"name"`
	Price      decimal.Decimal          `json:"price"`
	CategoryID *uuid.UUID               `json:"categoryId,omitempty"`
	Available  bool                     `json:"available"`
	Offers     []EvaluatedOfferResponse `json:"offers"`
	BestOffer  *EvaluatedOfferResponse  `json:"bestOffer,omitempty"`
}

func FromOfferView(v *queries.OfferView) *OfferResponse {
	return &OfferResponse{
		ID:            v.ID,
		Title:         v.Title,
		Description:   v.Description,
		Type:          v.Type,
		DiscountValue: v.DiscountValue,
		BuyQuantity:   v.BuyQuantity,
		GetQuantity:   v.GetQuantity,
		Scope:         v.Scope,
		ItemID:        v.ItemID,
		CategoryID:    v.CategoryID,
		ValidDays:     v.ValidDays,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
	}
}

func fromEvaluatedOfferView(v queries.EvaluatedOfferView) EvaluatedOfferResponse {
	return EvaluatedOfferResponse{
		OfferResponse:       *FromOfferView(&v.OfferView),
		DiscountAmount:      v.DiscountAmount,
		DiscountedUnitPrice: v.DiscountedUnitPrice,
		TotalAfterDiscount:  v.TotalAfterDiscount,
		SavingPercent:       v.SavingPercent,
	}
}

func FromMenuItemView(v *queries.MenuItemView) *MenuItemResponse {
	offers := make([]EvaluatedOfferResponse, 0, len(v.Offers))
	for _, o := range v.Offers {
		offers = append(offers, fromEvaluatedOfferView(o))
	}

	resp := &MenuItemResponse{
		ID:         v.ID,
		Name:       v.Name,
		Price:      v.Price,
		CategoryID: v.CategoryID,
		Available:  v.Available,
		Offers:     offers,
	}
	if v.BestOffer != nil {
		best := fromEvaluatedOfferView(*v.BestOffer)
		resp.BestOffer = &best
	}
	return resp
}

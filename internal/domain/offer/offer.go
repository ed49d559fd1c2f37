// Package offer implements promotional offer resolution: which offers are
// live at a given moment, which apply to a given menu item, how much each
// one is worth, and which is best for a line. Order placement and menu
// display both price through this package so the two sides can never drift.
//
// All functions are pure and fail closed: sparse or malformed offer data
// yields "not valid" or a zero discount, never an error.
package offer

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type enumerates the supported offer variants.
type Type string

const (
	// TypePercentage takes DiscountValue percent off every unit.
	TypePercentage Type = "percentage"
	// TypeFixedAmount takes DiscountValue currency units off every unit,
	// capped per unit at the unit price.
	TypeFixedAmount Type = "fixed"
	// TypeBuyXGetY gives GetQuantity free units per complete set of
	// BuyQuantity+GetQuantity units.
	TypeBuyXGetY Type = "bxgy"
	// TypeHappyHour is a percentage discount gated by the daily
	// StartTime/EndTime window.
	TypeHappyHour Type = "happyHour"
	// TypeBirthday is a percentage discount valid only on the customer's
	// birthday (month and day match).
	TypeBirthday Type = "birthday"
	// TypeAnniversary is the anniversary counterpart of TypeBirthday.
	TypeAnniversary Type = "anniversary"
)

// Scope enumerates what an offer targets.
type Scope string

const (
	ScopeAll      Scope = "all"
	ScopeItem     Scope = "item"
	ScopeCategory Scope = "category"
)

// Offer is a promotional rule as configured by the back office. It is a
// read-only input to every computation here; derived numbers live on
// Evaluated values.
type Offer struct {
	ID          uuid.UUID
	Title       string
	Description string

	Type          Type
	DiscountValue decimal.Decimal
	BuyQuantity   int
	GetQuantity   int

	Scope      Scope
	ItemID     *uuid.UUID
	CategoryID *uuid.UUID

	// ValidDays empty means every day.
	ValidDays []time.Weekday
	// StartTime/EndTime are zero-padded 24h "HH:MM" strings; both must be
	// set for the daily window to apply.
	StartTime string
	EndTime   string
	StartDate *time.Time
	EndDate   *time.Time

	Active bool
}

// Profile carries the customer attributes consulted by birthday and
// anniversary offers. A nil Profile invalidates those offer types.
type Profile struct {
	DateOfBirth     *time.Time
	AnniversaryDate *time.Time
}

// Package catalog holds the menu item record as the pricing side sees it.
// Items are owned by the menu administration flows; everything here only
// reads them.
package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Item struct {
	ID         uuid.UUID
	Name       string
	Price      decimal.Decimal
	CategoryID *uuid.UUID
	Available  bool
}

package order

import (
	"fmt"

	"pizzadelivery/internal/pkg/errs"
)

// Line is one priced position of an order. The unit price is a snapshot taken
// from the catalog when the order was created and is never re-derived.
type Line struct {
	itemID    int64
	quantity  int
	unitPrice float64
}

// NewLine validates and builds a line. Quantity must be positive and the unit
// price non-negative.
func NewLine(itemID int64, quantity int, unitPrice float64) (Line, error) {
	if itemID <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("item_id", fmt.Errorf("%d is not a valid item identifier", itemID))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("unit_price", fmt.Errorf("%f is negative", unitPrice))
	}

	return Line{
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ItemID returns the catalog item identifier.
func (l Line) ItemID() int64 {
	return l.itemID
}

// Quantity returns the ordered quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot taken at order creation.
func (l Line) UnitPrice() float64 {
	return l.unitPrice
}

// Subtotal is quantity times the snapshotted unit price.
func (l Line) Subtotal() float64 {
	return float64(l.quantity) * l.unitPrice
}

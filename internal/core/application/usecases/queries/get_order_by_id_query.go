package queries

import (
	"errors"

	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order by its sequence id. The sequence id
// is internal, so this lookup is restricted to back-office roles.
type GetOrderByIDQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery validates the order id.
func NewGetOrderByIDQuery(orderID int64) (GetOrderByIDQuery, error) {
	if orderID <= 0 {
		return GetOrderByIDQuery{}, errs.NewValueIsRequiredError("orderID")
	}

	return GetOrderByIDQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the sequence id to look up.
func (q GetOrderByIDQuery) OrderID() int64 {
	return q.orderID
}

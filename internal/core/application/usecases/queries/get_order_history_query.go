package queries

import (
	"errors"

	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the calling customer's own orders. The
// customer id comes from the introspected token, never from the request, so
// a caller cannot read someone else's history.
type GetOrderHistoryQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query scoped to one customer.
func NewGetOrderHistoryQuery(customerID int64) (GetOrderHistoryQuery, error) {
	if customerID <= 0 {
		return GetOrderHistoryQuery{}, errs.NewValueIsRequiredError("customerID")
	}

	return GetOrderHistoryQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// CustomerID returns the owning customer.
func (q GetOrderHistoryQuery) CustomerID() int64 {
	return q.customerID
}

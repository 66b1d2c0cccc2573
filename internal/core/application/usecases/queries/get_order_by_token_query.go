package queries

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetOrderByTokenQueryIsNotConstructed = errors.New(
	"GetOrderByTokenQuery must be created via NewGetOrderByTokenQuery constructor",
)

// GetOrderByTokenQuery retrieves one order by its public token. Any
// authenticated caller holding the token may track the order with it.
type GetOrderByTokenQuery struct {
	orderToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByTokenQuery validates the token.
func NewGetOrderByTokenQuery(orderToken kernel.UUID) (GetOrderByTokenQuery, error) {
	if err := orderToken.Validate(); err != nil {
		return GetOrderByTokenQuery{}, err
	}

	return GetOrderByTokenQuery{
		orderToken: orderToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByTokenQueryIsNotConstructed)
}

// OrderToken returns the token to look up.
func (q GetOrderByTokenQuery) OrderToken() kernel.UUID {
	return q.orderToken
}

package queries

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrGetDeliveryByOrderTokenQueryIsNotConstructed = errors.New(
	"GetDeliveryByOrderTokenQuery must be created via NewGetDeliveryByOrderTokenQuery constructor",
)

// GetDeliveryByOrderTokenQuery retrieves the delivery created for an order.
// This is how a caller tracking an order crosses over to its delivery.
type GetDeliveryByOrderTokenQuery struct {
	orderToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryByOrderTokenQuery validates the order token.
func NewGetDeliveryByOrderTokenQuery(orderToken kernel.UUID) (GetDeliveryByOrderTokenQuery, error) {
	if err := orderToken.Validate(); err != nil {
		return GetDeliveryByOrderTokenQuery{}, err
	}

	return GetDeliveryByOrderTokenQuery{
		orderToken: orderToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByOrderTokenQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByOrderTokenQueryIsNotConstructed)
}

// OrderToken returns the originating order's token.
func (q GetDeliveryByOrderTokenQuery) OrderToken() kernel.UUID {
	return q.orderToken
}

package commands

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// CreateDeliveryCommand requests a delivery record for an order token. It is
// issued both by the fulfillment event consumer and by the explicit
// admin/staff API path; in either case at most one delivery may exist per
// order token.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand validates the order token.
func NewCreateDeliveryCommand(orderToken kernel.UUID) (CreateDeliveryCommand, error) {
	if err := orderToken.Validate(); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return CreateDeliveryCommand{
		orderToken: orderToken,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// OrderToken returns the token of the originating order.
func (c CreateDeliveryCommand) OrderToken() kernel.UUID {
	return c.orderToken
}

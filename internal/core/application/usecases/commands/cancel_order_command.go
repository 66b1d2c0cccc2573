package commands

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand requests cancellation of a pending order. The actor is
// carried so the handler can enforce that customers cancel only their own
// orders.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Claims
	orderToken kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand validates the actor and the order token.
func NewCancelOrderCommand(actor identity.Claims, orderToken kernel.UUID) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderToken.Validate(),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.orderToken = orderToken
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c CancelOrderCommand) Actor() identity.Claims {
	return c.actor
}

// OrderToken returns the token of the order to cancel.
func (c CancelOrderCommand) OrderToken() kernel.UUID {
	return c.orderToken
}

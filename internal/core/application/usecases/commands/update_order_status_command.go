package commands

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a status transition on an order,
// addressed by its token.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderToken kernel.UUID
	newStatus  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand validates token and target status. Whether the
// transition is legal from the current status is decided by the aggregate.
func NewUpdateOrderStatusCommand(orderToken kernel.UUID, newStatus order.Status) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderToken.Validate(),
		newStatus.Validate(),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	cmd.orderToken = orderToken
	cmd.newStatus = newStatus
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderToken returns the token of the order to transition.
func (c UpdateOrderStatusCommand) OrderToken() kernel.UUID {
	return c.orderToken
}

// NewStatus returns the requested target status.
func (c UpdateOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

package commands

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/identity"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is an agent-driven status transition. Only the
// agent the delivery is assigned to may move it; the handler masks a
// mismatched agent as not-found so agents cannot probe for foreign
// deliveries.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	actor         identity.Claims
	deliveryToken kernel.UUID
	newStatus     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand validates the actor, token and status.
func NewUpdateDeliveryStatusCommand(
	actor identity.Claims,
	deliveryToken kernel.UUID,
	newStatus delivery.Status,
) (UpdateDeliveryStatusCommand, error) {
	if err := actor.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := deliveryToken.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}
	if err := newStatus.Validate(); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return UpdateDeliveryStatusCommand{
		actor:         actor,
		deliveryToken: deliveryToken,
		newStatus:     newStatus,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// Actor returns the authenticated caller.
func (c UpdateDeliveryStatusCommand) Actor() identity.Claims {
	return c.actor
}

// DeliveryToken returns the token of the delivery to update.
func (c UpdateDeliveryStatusCommand) DeliveryToken() kernel.UUID {
	return c.deliveryToken
}

// NewStatus returns the requested status.
func (c UpdateDeliveryStatusCommand) NewStatus() delivery.Status {
	return c.newStatus
}

package commands

import (
	"errors"

	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrDeleteDeliveryCommandIsNotConstructed = errors.New(
	"DeleteDeliveryCommand must be created via NewDeleteDeliveryCommand constructor",
)

// DeleteDeliveryCommand removes a delivery record by its sequence id. An
// admin-only maintenance operation.
type DeleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID int64

	guard guard.ConstructorGuard
}

// NewDeleteDeliveryCommand validates the delivery id.
func NewDeleteDeliveryCommand(deliveryID int64) (DeleteDeliveryCommand, error) {
	if deliveryID <= 0 {
		return DeleteDeliveryCommand{}, errs.NewValueIsRequiredError("deliveryID")
	}

	return DeleteDeliveryCommand{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the sequence id of the delivery to remove.
func (c DeleteDeliveryCommand) DeliveryID() int64 {
	return c.deliveryID
}

package commands

import (
	"errors"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/pkg/errs"
	"pizzadelivery/internal/pkg/guard"
)

var ErrAssignDeliveryCommandIsNotConstructed = errors.New(
	"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
)

// AssignDeliveryCommand hands a delivery to a delivery agent. The bearer
// token is forwarded to the identity service to verify the agent before any
// state is touched.
type AssignDeliveryCommand struct { //nolint:recvcheck //using for validation
	bearerToken     string
	deliveryToken   kernel.UUID
	agentID         int64
	requestedStatus delivery.Status

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand validates all inputs for the assignment.
func NewAssignDeliveryCommand(
	bearerToken string,
	deliveryToken kernel.UUID,
	agentID int64,
	requestedStatus delivery.Status,
) (AssignDeliveryCommand, error) {
	if bearerToken == "" {
		return AssignDeliveryCommand{}, errs.NewValueIsRequiredError("bearerToken")
	}
	if err := deliveryToken.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}
	if agentID <= 0 {
		return AssignDeliveryCommand{}, errs.NewValueIsRequiredError("delivery_person_id")
	}
	if err := requestedStatus.Validate(); err != nil {
		return AssignDeliveryCommand{}, err
	}

	return AssignDeliveryCommand{
		bearerToken:     bearerToken,
		deliveryToken:   deliveryToken,
		agentID:         agentID,
		requestedStatus: requestedStatus,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// BearerToken returns the caller's raw bearer token for upstream calls.
func (c AssignDeliveryCommand) BearerToken() string {
	return c.bearerToken
}

// DeliveryToken returns the token of the delivery being assigned.
func (c AssignDeliveryCommand) DeliveryToken() kernel.UUID {
	return c.deliveryToken
}

// AgentID returns the delivery agent to assign.
func (c AssignDeliveryCommand) AgentID() int64 {
	return c.agentID
}

// RequestedStatus returns the status the caller asked for.
func (c AssignDeliveryCommand) RequestedStatus() delivery.Status {
	return c.requestedStatus
}

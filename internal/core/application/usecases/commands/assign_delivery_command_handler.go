package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/ports"
	"pizzadelivery/internal/pkg/errs"
)

// AssignDeliveryCommandHandler assigns a delivery to an agent after the
// identity service confirms the agent exists and carries the delivery role.
// The authority check happens before any mutation: an invalid agent or an
// unreachable identity service leaves the delivery untouched.
type AssignDeliveryCommandHandler struct {
	deliveryRepository ports.DeliveryRepository
	identityClient     ports.IdentityClient
	logger             *slog.Logger
}

// NewAssignDeliveryCommandHandler creates a new AssignDeliveryCommandHandler.
func NewAssignDeliveryCommandHandler(
	deliveryRepository ports.DeliveryRepository,
	identityClient ports.IdentityClient,
	logger *slog.Logger,
) (AssignDeliveryCommandHandler, error) {
	if deliveryRepository == nil {
		return AssignDeliveryCommandHandler{}, errors.New("deliveryRepository must not be nil")
	}
	if identityClient == nil {
		return AssignDeliveryCommandHandler{}, errors.New("identityClient must not be nil")
	}
	if logger == nil {
		return AssignDeliveryCommandHandler{}, errors.New("logger must not be nil")
	}

	return AssignDeliveryCommandHandler{
		deliveryRepository: deliveryRepository,
		identityClient:     identityClient,
		logger:             logger.With("component", "assign_delivery_handler"),
	}, nil
}

// Handle verifies the agent against the identity service, then assigns the
// delivery and persists the change.
func (h *AssignDeliveryCommandHandler) Handle(
	ctx context.Context, cmd AssignDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	valid, err := h.identityClient.ValidateDeliveryAgent(ctx, cmd.BearerToken(), cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, errs.NewValueIsInvalidError("invalid delivery person ID or user is not a delivery person")
	}

	aggregate, err := h.deliveryRepository.GetByToken(ctx, cmd.DeliveryToken())
	if err != nil {
		return nil, err
	}

	if err := aggregate.Assign(cmd.AgentID(), cmd.RequestedStatus(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := h.deliveryRepository.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	h.logger.Info("Delivery assigned",
		"delivery_token", aggregate.Token().String(),
		"agent_id", cmd.AgentID())

	return aggregate, nil
}

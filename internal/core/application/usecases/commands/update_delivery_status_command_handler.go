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

// UpdateDeliveryStatusCommandHandler applies an agent-driven status
// transition to a delivery.
type UpdateDeliveryStatusCommandHandler struct {
	deliveryRepository ports.DeliveryRepository
	logger             *slog.Logger
}

// NewUpdateDeliveryStatusCommandHandler creates a new UpdateDeliveryStatusCommandHandler.
func NewUpdateDeliveryStatusCommandHandler(
	deliveryRepository ports.DeliveryRepository,
	logger *slog.Logger,
) (UpdateDeliveryStatusCommandHandler, error) {
	if deliveryRepository == nil {
		return UpdateDeliveryStatusCommandHandler{}, errors.New("deliveryRepository must not be nil")
	}
	if logger == nil {
		return UpdateDeliveryStatusCommandHandler{}, errors.New("logger must not be nil")
	}

	return UpdateDeliveryStatusCommandHandler{
		deliveryRepository: deliveryRepository,
		logger:             logger.With("component", "update_delivery_status_handler"),
	}, nil
}

// Handle advances the delivery status. A delivery that is unassigned or
// assigned to a different agent is reported as not found.
func (h *UpdateDeliveryStatusCommandHandler) Handle(
	ctx context.Context, cmd UpdateDeliveryStatusCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.deliveryRepository.GetByToken(ctx, cmd.DeliveryToken())
	if err != nil {
		return nil, err
	}

	if !aggregate.IsAssignedTo(cmd.Actor().UserID) {
		return nil, errs.NewObjectNotFoundError("deliveryToken", cmd.DeliveryToken())
	}

	if err := aggregate.UpdateStatus(cmd.NewStatus(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := h.deliveryRepository.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	h.logger.Info("Delivery status updated",
		"delivery_token", aggregate.Token().String(),
		"status", aggregate.Status().String())

	return aggregate, nil
}

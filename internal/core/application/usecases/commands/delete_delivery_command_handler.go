package commands

import (
	"context"
	"errors"
	"log/slog"

	"pizzadelivery/internal/core/ports"
)

// DeleteDeliveryCommandHandler removes a delivery record.
type DeleteDeliveryCommandHandler struct {
	deliveryRepository ports.DeliveryRepository
	logger             *slog.Logger
}

// NewDeleteDeliveryCommandHandler creates a new DeleteDeliveryCommandHandler.
func NewDeleteDeliveryCommandHandler(
	deliveryRepository ports.DeliveryRepository,
	logger *slog.Logger,
) (DeleteDeliveryCommandHandler, error) {
	if deliveryRepository == nil {
		return DeleteDeliveryCommandHandler{}, errors.New("deliveryRepository must not be nil")
	}
	if logger == nil {
		return DeleteDeliveryCommandHandler{}, errors.New("logger must not be nil")
	}

	return DeleteDeliveryCommandHandler{
		deliveryRepository: deliveryRepository,
		logger:             logger.With("component", "delete_delivery_handler"),
	}, nil
}

// Handle deletes the delivery, reporting not-found for an unknown id.
func (h *DeleteDeliveryCommandHandler) Handle(ctx context.Context, cmd DeleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.deliveryRepository.GetByID(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	if err := h.deliveryRepository.Delete(ctx, cmd.DeliveryID()); err != nil {
		return err
	}

	h.logger.Info("Delivery deleted", "delivery_id", cmd.DeliveryID())
	return nil
}

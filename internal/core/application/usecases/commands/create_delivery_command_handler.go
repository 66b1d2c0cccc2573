package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/ports"
)

// CreateDeliveryCommandHandler creates a pending delivery for an order token.
// Duplicate submissions (the same order token seen twice) surface as a
// Conflict from the repository; callers decide whether that is an error or a
// benign replay.
type CreateDeliveryCommandHandler struct {
	deliveryRepository ports.DeliveryRepository
	logger             *slog.Logger
}

// NewCreateDeliveryCommandHandler creates a new CreateDeliveryCommandHandler.
func NewCreateDeliveryCommandHandler(
	deliveryRepository ports.DeliveryRepository,
	logger *slog.Logger,
) (CreateDeliveryCommandHandler, error) {
	if deliveryRepository == nil {
		return CreateDeliveryCommandHandler{}, errors.New("deliveryRepository must not be nil")
	}
	if logger == nil {
		return CreateDeliveryCommandHandler{}, errors.New("logger must not be nil")
	}

	return CreateDeliveryCommandHandler{
		deliveryRepository: deliveryRepository,
		logger:             logger.With("component", "create_delivery_handler"),
	}, nil
}

// Handle creates a new pending delivery and persists it.
func (h *CreateDeliveryCommandHandler) Handle(
	ctx context.Context, cmd CreateDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := delivery.NewDelivery(kernel.NewUUID(), cmd.OrderToken(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := h.deliveryRepository.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	h.logger.Info("Delivery created",
		"delivery_token", aggregate.Token().String(),
		"order_token", aggregate.OrderToken().String())

	return aggregate, nil
}

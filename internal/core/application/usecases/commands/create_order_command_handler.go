package commands

import (
	"context"
	"log/slog"
	"time"

	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/domain/model/order"
	"pizzadelivery/internal/core/ports"
)

// CreateOrderCommandHandler runs the order creation saga: validate the
// location, price every line against the catalog, persist order and lines
// atomically, then publish the fulfillment event.
//
// Failure handling follows the saga's rules: any catalog failure aborts
// before the first write, so a failed attempt leaves no partial order. A
// publish failure after the commit is logged and swallowed — the order
// stands, and the missing delivery record is an accepted, recoverable
// inconsistency.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogClient
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewCreateOrderCommandHandler wires the saga's dependencies.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogClient,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		publisher:  publisher,
		logger:     logger.With("component", "create_order_handler"),
	}
}

// Handle executes the saga and returns the committed order aggregate.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.catalog.CheckLocation(ctx, cmd.BearerToken(), cmd.LocationCode()); err != nil {
		return nil, err
	}

	// Price every line before touching the store. A single missing item
	// aborts the whole order; partial orders are never persisted.
	lines := make([]order.Line, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		price, err := h.catalog.GetItemPrice(ctx, cmd.BearerToken(), item.ItemID)
		if err != nil {
			return nil, err
		}

		line, err := order.NewLine(item.ItemID, item.Quantity, price)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.Actor().UserID,
		cmd.LocationCode(),
		lines,
		cmd.DeliveryAddress(),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publishFulfillmentRequested(ctx, newOrder)

	return newOrder, nil
}

// publishFulfillmentRequested hands the committed order to the event
// channel. Errors are logged, never propagated: the commit already happened
// and the order must not be failed retroactively.
func (h *CreateOrderCommandHandler) publishFulfillmentRequested(ctx context.Context, o *order.Order) {
	event := ports.FulfillmentRequestedEvent{
		OrderToken:      o.Token().String(),
		CustomerID:      o.CustomerID(),
		LocationCode:    o.LocationCode(),
		TotalPrice:      o.TotalPrice(),
		Status:          o.Status().String(),
		DeliveryAddress: o.DeliveryAddress(),
		Lines:           make([]ports.FulfillmentLine, 0, len(o.Lines())),
		CreatedAt:       o.CreatedAt(),
	}
	for _, line := range o.Lines() {
		event.Lines = append(event.Lines, ports.FulfillmentLine{
			ItemID:    line.ItemID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
			Subtotal:  line.Subtotal(),
		})
	}

	if err := h.publisher.PublishFulfillmentRequested(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish fulfillment event, order stands",
			"order_token", o.Token().String(), "error", err)
	}
}

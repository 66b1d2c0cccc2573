// Package kafkaconsumer runs the delivery service's side of the fulfillment
// contract: it reads fulfillment events off the topic and creates a pending
// delivery for each new order token.
package kafkaconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"

	"pizzadelivery/internal/core/application/usecases/commands"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/kernel"
	"pizzadelivery/internal/core/ports"
	"pizzadelivery/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// GroupID is the consumer group shared by all delivery service instances.
const GroupID = "delivery-service-group"

// messageReader is the slice of kafka.Reader the consumer needs. Narrowed to
// an interface so tests can drive the loop without a broker.
type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// deliveryCreator is the command handler the consumer feeds.
type deliveryCreator interface {
	Handle(ctx context.Context, cmd commands.CreateDeliveryCommand) (*delivery.Delivery, error)
}

// NewKafkaReader builds the group reader for the fulfillment topic.
// ReadMessage on a group reader commits offsets automatically.
func NewKafkaReader(brokers []string, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		GroupID: GroupID,
		Topic:   topic,
	})
}

// FulfillmentConsumer supervises the consume loop. Failures are isolated per
// message: a malformed payload is logged and skipped, a duplicate event is a
// benign no-op, and only context cancellation or a closed reader stops the
// loop.
type FulfillmentConsumer struct {
	reader  messageReader
	creator deliveryCreator
	logger  *slog.Logger
}

// NewFulfillmentConsumer wires the consumer to its reader and handler.
func NewFulfillmentConsumer(
	reader messageReader,
	creator deliveryCreator,
	logger *slog.Logger,
) *FulfillmentConsumer {
	return &FulfillmentConsumer{
		reader:  reader,
		creator: creator,
		logger:  logger.With("component", "fulfillment_consumer"),
	}
}

// Start runs the consume loop until the context is cancelled or the reader
// is closed. It blocks; run it in its own goroutine.
func (c *FulfillmentConsumer) Start(ctx context.Context) {
	c.logger.InfoContext(ctx, "Fulfillment consumer started")

	for {
		message, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
				c.logger.Info("Fulfillment consumer stopped")
				return
			}
			c.logger.ErrorContext(ctx, "Failed to read fulfillment message", "error", err)
			continue
		}

		c.process(ctx, message)
	}
}

// Stop closes the reader, which unblocks a pending ReadMessage.
func (c *FulfillmentConsumer) Stop() error {
	return c.reader.Close()
}

func (c *FulfillmentConsumer) process(ctx context.Context, message kafka.Message) {
	var event ports.FulfillmentRequestedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		c.logger.WarnContext(ctx, "Skipping malformed fulfillment event",
			"offset", message.Offset, "error", err)
		return
	}

	orderToken, err := kernel.UUIDFromString(event.OrderToken)
	if err != nil {
		c.logger.WarnContext(ctx, "Skipping fulfillment event with invalid order token",
			"offset", message.Offset, "order_token", event.OrderToken, "error", err)
		return
	}

	cmd, err := commands.NewCreateDeliveryCommand(orderToken)
	if err != nil {
		c.logger.WarnContext(ctx, "Skipping fulfillment event",
			"offset", message.Offset, "error", err)
		return
	}

	if _, err = c.creator.Handle(ctx, cmd); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			c.logger.InfoContext(ctx, "Duplicate fulfillment event ignored",
				"order_token", event.OrderToken)
			return
		}
		c.logger.ErrorContext(ctx, "Failed to create delivery from fulfillment event",
			"order_token", event.OrderToken, "error", err)
		return
	}

	c.logger.InfoContext(ctx, "Delivery created from fulfillment event",
		"order_token", event.OrderToken)
}

// Package kafkaproducer publishes fulfillment events to the broker. It is
// the producing half of the order-to-delivery contract; the delivery service
// consumes from the same topic.
package kafkaproducer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"pizzadelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// FulfillmentPublisher implements ports.EventPublisher on a kafka writer.
// Messages are keyed by order token so every event for one order lands on
// the same partition.
type FulfillmentPublisher struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewFulfillmentPublisher creates a publisher for the fulfillment topic.
func NewFulfillmentPublisher(brokers []string, topic string, logger *slog.Logger) *FulfillmentPublisher {
	return &FulfillmentPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		logger: logger.With("component", "fulfillment_publisher"),
	}
}

// PublishFulfillmentRequested writes one event to the topic.
func (p *FulfillmentPublisher) PublishFulfillmentRequested(
	ctx context.Context, event ports.FulfillmentRequestedEvent,
) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal fulfillment event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderToken),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("write fulfillment event: %w", err)
	}

	p.logger.InfoContext(ctx, "Fulfillment event published", "order_token", event.OrderToken)
	return nil
}

// Close flushes pending messages and releases the writer.
func (p *FulfillmentPublisher) Close() error {
	return p.writer.Close()
}

package ports

import (
	"context"
	"time"
)

// FulfillmentLine is one priced order line inside a fulfillment event.
type FulfillmentLine struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// FulfillmentRequestedEvent is the payload published to the fulfillment
// topic after an order commit, keyed by order token for partition affinity.
// It is the only contract between the order and delivery services besides
// the order token itself.
type FulfillmentRequestedEvent struct {
	OrderToken      string            `json:"order_token"`
	CustomerID      int64             `json:"customer_id"`
	LocationCode    string            `json:"location_code"`
	TotalPrice      float64           `json:"total_price"`
	Status          string            `json:"status"`
	DeliveryAddress *string           `json:"delivery_address"`
	Lines           []FulfillmentLine `json:"lines"`
	CreatedAt       time.Time         `json:"created_at"`
}

// EventPublisher hands committed orders to the fulfillment topic. A publish
// failure must not fail the originating request; the order already stands.
type EventPublisher interface {
	PublishFulfillmentRequested(ctx context.Context, event FulfillmentRequestedEvent) error
}

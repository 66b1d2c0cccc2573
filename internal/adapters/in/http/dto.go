// Package http exposes both services' REST APIs on echo. Each service has
// its own server type; the middleware handles token introspection and role
// gating before a handler runs.
package http

import (
	"time"

	"pizzadelivery/internal/core/application/usecases/queries"
	"pizzadelivery/internal/core/domain/model/delivery"
	"pizzadelivery/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	LocationCode    string             `json:"location_code"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

// OrderItemRequest is one requested position; the price comes from the
// catalog, never from the client.
type OrderItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// UpdateOrderStatusRequest is the body of PATCH /api/v1/orders/{token}/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse is one priced position in an order payload.
type OrderLineResponse struct {
	ItemID    int64   `json:"item_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// OrderResponse is the order payload. The sequence id stays internal; only
// back-office listings include it.
type OrderResponse struct {
	ID              int64               `json:"id,omitempty"`
	Token           string              `json:"order_token"`
	CustomerID      int64               `json:"customer_id"`
	LocationCode    string              `json:"location_code"`
	TotalPrice      float64             `json:"total_price"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	DeliveryAddress *string             `json:"delivery_address,omitempty"`
	Lines           []OrderLineResponse `json:"lines,omitempty"`
}

// OrderStatusResponse is the tracking projection payload.
type OrderStatusResponse struct {
	Token      string    `json:"order_token"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateDeliveryRequest is the body of POST /api/v1/deliveries.
type CreateDeliveryRequest struct {
	OrderToken string `json:"order_token"`
}

// AssignDeliveryRequest is the body of PATCH /api/v1/deliveries/{token}/assign.
type AssignDeliveryRequest struct {
	DeliveryPersonID int64  `json:"delivery_person_id"`
	Status           string `json:"status"`
}

// UpdateDeliveryStatusRequest is the body of PATCH /api/v1/deliveries/{token}/status.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// DeliveryResponse is the delivery payload.
type DeliveryResponse struct {
	ID         int64      `json:"id,omitempty"`
	Token      string     `json:"delivery_token"`
	OrderToken string     `json:"order_token"`
	AgentID    *int64     `json:"delivery_person_id,omitempty"`
	Status     string     `json:"status"`
	AssignedAt *time.Time `json:"assigned_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func orderFromAggregate(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ItemID:    line.ItemID(),
			Quantity:  line.Quantity(),
			UnitPrice: line.UnitPrice(),
			Subtotal:  line.Subtotal(),
		})
	}

	return OrderResponse{
		Token:           o.Token().String(),
		CustomerID:      o.CustomerID(),
		LocationCode:    o.LocationCode(),
		TotalPrice:      o.TotalPrice(),
		Status:          o.Status().String(),
		CreatedAt:       o.CreatedAt(),
		DeliveryAddress: o.DeliveryAddress(),
		Lines:           lines,
	}
}

func orderFromReadModel(resp queries.OrderResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(resp.Lines))
	for _, line := range resp.Lines {
		lines = append(lines, OrderLineResponse{
			ItemID:    line.ItemID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Subtotal:  line.Subtotal,
		})
	}

	return OrderResponse{
		ID:              resp.ID,
		Token:           resp.Token.String(),
		CustomerID:      resp.CustomerID,
		LocationCode:    resp.LocationCode,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
		DeliveryAddress: resp.DeliveryAddress,
		Lines:           lines,
	}
}

func orderFromSummary(resp queries.OrderSummaryResponse) OrderResponse {
	return OrderResponse{
		ID:              resp.ID,
		Token:           resp.Token.String(),
		CustomerID:      resp.CustomerID,
		LocationCode:    resp.LocationCode,
		TotalPrice:      resp.TotalPrice,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
		DeliveryAddress: resp.DeliveryAddress,
	}
}

func deliveryFromAggregate(d *delivery.Delivery) DeliveryResponse {
	return DeliveryResponse{
		Token:      d.Token().String(),
		OrderToken: d.OrderToken().String(),
		AgentID:    d.AgentID(),
		Status:     d.Status().String(),
		AssignedAt: d.AssignedAt(),
		UpdatedAt:  d.UpdatedAt(),
	}
}

func deliveryFromReadModel(resp queries.DeliveryResponse) DeliveryResponse {
	return DeliveryResponse{
		ID:         resp.ID,
		Token:      resp.Token.String(),
		OrderToken: resp.OrderToken.String(),
		AgentID:    resp.AgentID,
		Status:     resp.Status,
		AssignedAt: resp.AssignedAt,
		UpdatedAt:  resp.UpdatedAt,
	}
}
